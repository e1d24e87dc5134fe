package files

import (
	"net/http"
	"strconv"

	"github.com/wmcgee3/zosmf/endpoint"
)

// DataType selects how z/OSMF converts file content on read and write.
type DataType string

const (
	DataTypeText   DataType = "text"
	DataTypeBinary DataType = "binary"
)

func (d DataType) String() string { return string(d) }

// FileType is the type filter of a list, and the type of a created file.
type FileType string

const (
	FileTypeCharacter FileType = "c"
	FileTypeDirectory FileType = "d"
	FileTypeFIFO      FileType = "p"
	FileTypeFile      FileType = "f"
	FileTypeSocket    FileType = "s"
	FileTypeSymLink   FileType = "l"
)

func (f FileType) String() string { return string(f) }

// Size is a file size with an optional unit suffix.
type Size string

// Bytes, Kilobytes, Megabytes and Gigabytes build sizes for list filters.
func Bytes(n int) Size     { return Size(strconv.Itoa(n)) }
func Kilobytes(n int) Size { return Size(strconv.Itoa(n) + "K") }
func Megabytes(n int) Size { return Size(strconv.Itoa(n) + "M") }
func Gigabytes(n int) Size { return Size(strconv.Itoa(n) + "G") }

func (s Size) String() string { return string(s) }

// Filter is a numeric list filter. A bare value matches exactly; the
// LessThan and GreaterThan forms match a range.
type Filter string

// Exactly matches v.
func Exactly[V int | Size](v V) Filter { return Filter(endpoint.Format(v)) }

// LessThan matches values below v.
func LessThan[V int | Size](v V) Filter { return Filter("-" + endpoint.Format(v)) }

// GreaterThan matches values above v.
func GreaterThan[V int | Size](v V) Filter { return Filter("+" + endpoint.Format(v)) }

func (f Filter) String() string { return string(f) }

// FileSystem limits how far a list descends across mount points.
type FileSystem string

const (
	FileSystemAll  FileSystem = "all"
	FileSystemSame FileSystem = "same"
)

func (f FileSystem) String() string { return string(f) }

// SymLinks selects whether a list follows symbolic links or reports them.
type SymLinks string

const (
	SymLinksFollow SymLinks = "follow"
	SymLinksReport SymLinks = "report"
)

func (s SymLinks) String() string { return string(s) }

// Result is the reply of a request that returns no content.
type Result struct {
	TransactionID string
}

func (Result) TryFromResponse(resp *http.Response) (Result, error) {
	id, err := endpoint.TransactionID(resp)
	if err != nil {
		return Result{}, err
	}
	return Result{TransactionID: id}, nil
}
