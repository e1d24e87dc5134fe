package datasets

import (
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
	"github.com/wmcgee3/zosmf/internal/restfiles"
)

// Read is the content of a data set or member read as text.
// NotModified is set, and Data is empty, when an If-None-Match etag
// still matched.
type Read struct {
	Data          string
	NotModified   bool
	ETag          string
	SessionRef    string
	TransactionID string
}

func (Read) AcceptStatus(status int) bool { return status == http.StatusNotModified }

func (Read) TryFromResponse(resp *http.Response) (Read, error) {
	id, err := endpoint.TransactionID(resp)
	if err != nil {
		return Read{}, err
	}
	r := Read{
		NotModified:   resp.StatusCode == http.StatusNotModified,
		ETag:          endpoint.ETag(resp),
		SessionRef:    endpoint.SessionRef(resp),
		TransactionID: id,
	}
	if r.NotModified {
		return r, nil
	}
	if r.Data, err = endpoint.ReadText(resp); err != nil {
		return Read{}, err
	}
	return r, nil
}

// ReadBinary is the content of a data set read as binary or records.
type ReadBinary struct {
	Data          []byte
	NotModified   bool
	ETag          string
	SessionRef    string
	TransactionID string
}

func (ReadBinary) AcceptStatus(status int) bool { return status == http.StatusNotModified }

func (ReadBinary) TryFromResponse(resp *http.Response) (ReadBinary, error) {
	id, err := endpoint.TransactionID(resp)
	if err != nil {
		return ReadBinary{}, err
	}
	r := ReadBinary{
		NotModified:   resp.StatusCode == http.StatusNotModified,
		ETag:          endpoint.ETag(resp),
		SessionRef:    endpoint.SessionRef(resp),
		TransactionID: id,
	}
	if r.NotModified {
		return r, nil
	}
	if r.Data, err = endpoint.ReadBytes(resp); err != nil {
		return ReadBinary{}, err
	}
	return r, nil
}

// ReadBuilder reads a sequential data set or a member of a partitioned
// data set.
//
//zosmf:endpoint GET /zosmf/restfiles/ds/{volume}{datasetName}{member}
type ReadBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	// Volume reads the uncataloged data set on the given volume.
	volume      string `endpoint:"path,optional,setter=setReadVolume"`
	datasetName string `endpoint:"path"`
	// Member reads one member of a partitioned data set.
	member string `endpoint:"path,optional,setter=setReadMember"`

	// Search returns only the records containing value.
	search *string `endpoint:"query=search,builder=readSearch"`
	// Regex treats the search value as a regular expression.
	regex bool `endpoint:"optional"`
	// CaseSensitive makes the search match case.
	caseSensitive bool `endpoint:"optional"`
	// MaxReturn limits the number of records a search returns.
	maxReturn *int

	dataType DataType `endpoint:"header=X-IBM-Data-Type,optional,skip_setter,builder=readDataType"`
	// Encoding sets the code page the content is converted from.
	encoding *string

	// IfNoneMatch makes the read conditional on the content having changed
	// since the read that returned etag value.
	ifNoneMatch    *string         `endpoint:"header=If-None-Match"`
	returnEtag     bool            `endpoint:"header=X-IBM-Return-Etag,optional"`
	migratedRecall *MigratedRecall `endpoint:"header=X-IBM-Migrated-Recall"`
	recordRange    *RecordRange    `endpoint:"header=X-IBM-Record-Range"`
	obtainENQ      *Enqueue        `endpoint:"header=X-IBM-Obtain-ENQ"`
	sessionRef     *string         `endpoint:"header=X-IBM-Session-Ref"`
	releaseENQ     bool            `endpoint:"header=X-IBM-Release-ENQ,optional"`
	dsnameEncoding *string         `endpoint:"header=X-IBM-Dsname-Encoding"`
}

// Text reads the content as text, converted to UTF-8.
func (b ReadBuilder[T]) Text() ReadBuilder[Read] {
	n := narrowReadBuilder[Read](b)
	n.dataType = DataTypeText
	return n
}

// Binary reads the content without conversion.
func (b ReadBuilder[T]) Binary() ReadBuilder[ReadBinary] {
	n := narrowReadBuilder[ReadBinary](b)
	n.dataType = DataTypeBinary
	return n
}

// Record reads the content as records, each prefixed by its length.
func (b ReadBuilder[T]) Record() ReadBuilder[ReadBinary] {
	n := narrowReadBuilder[ReadBinary](b)
	n.dataType = DataTypeRecord
	return n
}

func setReadVolume[T endpoint.Target[T]](b ReadBuilder[T], volume string) ReadBuilder[T] {
	b.volume = volumeSegment(volume)
	return b
}

func setReadMember[T endpoint.Target[T]](b ReadBuilder[T], member string) ReadBuilder[T] {
	b.member = memberSegment(member)
	return b
}

func readSearch[T endpoint.Target[T]](r endpoint.Request, b *ReadBuilder[T]) endpoint.Request {
	return restfiles.Search(r, b.search, b.regex, b.caseSensitive, b.maxReturn)
}

func readDataType[T endpoint.Target[T]](r endpoint.Request, b *ReadBuilder[T]) endpoint.Request {
	return restfiles.ReadDataType(r, b.dataType.String(), b.encoding)
}
