package files

import (
	"bytes"
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
	"github.com/wmcgee3/zosmf/internal/restfiles"
)

// Write is the reply to a file write.
type Write struct {
	ETag          string
	TransactionID string
}

func (Write) TryFromResponse(resp *http.Response) (Write, error) {
	id, err := endpoint.TransactionID(resp)
	if err != nil {
		return Write{}, err
	}
	return Write{ETag: endpoint.ETag(resp), TransactionID: id}, nil
}

// WriteBuilder replaces the content of a z/OS UNIX file, creating it if
// needed.
//
//zosmf:endpoint PUT /zosmf/restfiles/fs{pathname} target=Write
type WriteBuilder struct {
	base endpoint.Base

	pathname string `endpoint:"path"`

	// IfMatch makes the write conditional on the content still having
	// etag value.
	ifMatch  *string  `endpoint:"header=If-Match"`
	dataType DataType `endpoint:"header=X-IBM-Data-Type,optional,skip_setter,builder=writeDataType"`
	data     []byte   `endpoint:"body,optional,skip_setter,builder=writeBody"`
	// Encoding sets the code page text is converted to.
	encoding *string
	// CRLF marks text lines as ending in CRLF instead of LF.
	crlf bool `endpoint:"optional"`
}

// Text sets the content, written as text.
func (b WriteBuilder) Text(s string) WriteBuilder {
	b.dataType = DataTypeText
	b.data = []byte(s)
	return b
}

// Binary sets the content, written without conversion.
func (b WriteBuilder) Binary(data []byte) WriteBuilder {
	b.dataType = DataTypeBinary
	b.data = bytes.Clone(data)
	return b
}

func writeDataType(r endpoint.Request, b *WriteBuilder) endpoint.Request {
	return restfiles.WriteDataType(r, b.dataType.String(), b.encoding, b.crlf)
}

func writeBody(r endpoint.Request, b *WriteBuilder) endpoint.Request {
	if b.data == nil {
		return r
	}
	return r.WithBody(b.data)
}
