package files

import (
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
	"github.com/wmcgee3/zosmf/internal/restfiles"
)

// Read is the content of a file read as text. NotModified is set when an
// If-None-Match etag still matched.
type Read struct {
	Data          string
	NotModified   bool
	ETag          string
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
		TransactionID: id,
	}
	if !r.NotModified {
		r.Data, err = endpoint.ReadText(resp)
	}
	return r, err
}

// ReadBinary is the content of a file read without conversion.
type ReadBinary struct {
	Data          []byte
	NotModified   bool
	ETag          string
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
		TransactionID: id,
	}
	if !r.NotModified {
		r.Data, err = endpoint.ReadBytes(resp)
	}
	return r, err
}

// ReadBuilder reads a z/OS UNIX file.
//
//zosmf:endpoint GET /zosmf/restfiles/fs{pathname}
type ReadBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	pathname string `endpoint:"path"`

	// Search returns only the lines containing value.
	search *string `endpoint:"query=search,builder=readSearch"`
	// Regex treats the search value as a regular expression.
	regex bool `endpoint:"optional"`
	// CaseSensitive makes the search match case.
	caseSensitive bool `endpoint:"optional"`
	// MaxReturn limits the number of lines a search returns.
	maxReturn *int

	dataType DataType `endpoint:"header=X-IBM-Data-Type,optional,skip_setter,builder=readDataType"`
	// Encoding sets the code page the content is converted from.
	encoding *string

	// IfNoneMatch makes the read conditional on the content having changed
	// since the read that returned etag value.
	ifNoneMatch *string `endpoint:"header=If-None-Match"`
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

func readSearch[T endpoint.Target[T]](r endpoint.Request, b *ReadBuilder[T]) endpoint.Request {
	return restfiles.Search(r, b.search, b.regex, b.caseSensitive, b.maxReturn)
}

func readDataType[T endpoint.Target[T]](r endpoint.Request, b *ReadBuilder[T]) endpoint.Request {
	return restfiles.ReadDataType(r, b.dataType.String(), b.encoding)
}
