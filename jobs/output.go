package jobs

import (
	"net/http"
	"strconv"

	"github.com/wmcgee3/zosmf/endpoint"
	"github.com/wmcgee3/zosmf/internal/restfiles"
)

// SpoolFile is one spool file of a job, such as JESMSGLG or SYSPRINT.
type SpoolFile struct {
	ID           int    `json:"id"`
	DDName       string `json:"ddname"`
	StepName     string `json:"stepname,omitempty"`
	ProcStep     string `json:"procstep,omitempty"`
	Class        string `json:"class"`
	RecordFormat string `json:"recfm"`
	RecordLength int    `json:"lrecl"`
	ByteCount    int    `json:"byte-count"`
	RecordCount  int    `json:"record-count"`
	RecordsURL   string `json:"records-url"`
	JobName      string `json:"jobname"`
	JobID        string `json:"jobid"`
	Correlator   string `json:"job-correlator,omitempty"`
	Subsystem    string `json:"subsystem"`
}

// FileID names a spool file of a job.
type FileID string

// FileJCL is the JCL the job was submitted with.
const FileJCL FileID = "JCL"

// FileNumber identifies a spool file by its id.
func FileNumber(id int) FileID {
	return FileID(strconv.Itoa(id))
}

func (f FileID) String() string { return string(f) }

// DataType selects how spool content is converted on read.
type DataType string

const (
	DataTypeText   DataType = "text"
	DataTypeBinary DataType = "binary"
	DataTypeRecord DataType = "record"
)

func (d DataType) String() string { return string(d) }

// RecordRange selects the records of a spool file read.
type RecordRange string

// Records selects the records from start to end, both zero-based and
// inclusive.
func Records(start, end int) RecordRange {
	return RecordRange(restfiles.Records(start, end))
}

// RecordCount selects count records beginning at start.
func RecordCount(start, count int) RecordRange {
	return RecordRange(restfiles.RecordCount(start, count))
}

func (r RecordRange) String() string { return string(r) }

// FileText is spool content read as text.
type FileText struct {
	Data string
}

func (FileText) TryFromResponse(resp *http.Response) (FileText, error) {
	data, err := endpoint.ReadText(resp)
	if err != nil {
		return FileText{}, err
	}
	return FileText{Data: data}, nil
}

// FileBytes is spool content read as binary or records.
type FileBytes struct {
	Data []byte
}

func (FileBytes) TryFromResponse(resp *http.Response) (FileBytes, error) {
	data, err := endpoint.ReadBytes(resp)
	if err != nil {
		return FileBytes{}, err
	}
	return FileBytes{Data: data}, nil
}

// FilesBuilder lists the spool files of a job.
//
//zosmf:endpoint GET /zosmf/restjobs/jobs{subsystem}/{identifier}/files
type FilesBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	subsystem  Subsystem  `endpoint:"path,optional"`
	identifier Identifier `endpoint:"path"`
}

// ReadFileBuilder reads the records of one spool file.
//
//zosmf:endpoint GET /zosmf/restjobs/jobs{subsystem}/{identifier}/files/{fileID}/records
type ReadFileBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	subsystem  Subsystem  `endpoint:"path,optional"`
	identifier Identifier `endpoint:"path"`
	fileID     FileID     `endpoint:"path"`

	recordRange *RecordRange `endpoint:"header=X-IBM-Record-Range"`
	dataType    DataType     `endpoint:"query=mode,optional,skip_setter"`
	// Encoding sets the code page the content is converted from.
	encoding *string `endpoint:"query=fileEncoding"`

	// Search returns only the records containing value.
	search *string `endpoint:"query=search,builder=readFileSearch"`
	// Regex treats the search value as a regular expression.
	regex bool `endpoint:"optional"`
	// CaseSensitive makes the search match case.
	caseSensitive bool `endpoint:"optional"`
	// MaxReturn limits the number of records a search returns.
	maxReturn *int
}

// Text reads the content as text, converted to UTF-8.
func (b ReadFileBuilder[T]) Text() ReadFileBuilder[FileText] {
	n := narrowReadFileBuilder[FileText](b)
	n.dataType = DataTypeText
	return n
}

// Binary reads the content without conversion.
func (b ReadFileBuilder[T]) Binary() ReadFileBuilder[FileBytes] {
	n := narrowReadFileBuilder[FileBytes](b)
	n.dataType = DataTypeBinary
	return n
}

// Record reads the content as records, each prefixed by its length.
func (b ReadFileBuilder[T]) Record() ReadFileBuilder[FileBytes] {
	n := narrowReadFileBuilder[FileBytes](b)
	n.dataType = DataTypeRecord
	return n
}

func readFileSearch[T endpoint.Target[T]](r endpoint.Request, b *ReadFileBuilder[T]) endpoint.Request {
	return restfiles.Search(r, b.search, b.regex, b.caseSensitive, b.maxReturn)
}
