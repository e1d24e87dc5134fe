package datasets

import (
	"bytes"
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
	"github.com/wmcgee3/zosmf/internal/restfiles"
)

// Write is the reply to a data set write.
type Write struct {
	ETag          string
	SessionRef    string
	TransactionID string
}

func (Write) TryFromResponse(resp *http.Response) (Write, error) {
	id, err := endpoint.TransactionID(resp)
	if err != nil {
		return Write{}, err
	}
	return Write{
		ETag:          endpoint.ETag(resp),
		SessionRef:    endpoint.SessionRef(resp),
		TransactionID: id,
	}, nil
}

// WriteBuilder replaces the content of a sequential data set or member.
//
//zosmf:endpoint PUT /zosmf/restfiles/ds/{volume}{datasetName}{member} target=Write
type WriteBuilder struct {
	base endpoint.Base

	// Volume writes the uncataloged data set on the given volume.
	volume      string `endpoint:"path,optional,setter=setWriteVolume"`
	datasetName string `endpoint:"path"`
	// Member writes one member of a partitioned data set, creating it if
	// needed.
	member string `endpoint:"path,optional,setter=setWriteMember"`

	// IfMatch makes the write conditional on the content still having
	// etag value.
	ifMatch  *string  `endpoint:"header=If-Match"`
	dataType DataType `endpoint:"header=X-IBM-Data-Type,optional,skip_setter,builder=writeDataType"`
	data     []byte   `endpoint:"body,optional,skip_setter,builder=writeBody"`
	// Encoding sets the code page text is converted to.
	encoding *string
	// CRLF marks text lines as ending in CRLF instead of LF.
	crlf bool `endpoint:"optional"`

	migratedRecall *MigratedRecall `endpoint:"header=X-IBM-Migrated-Recall"`
	obtainENQ      *Enqueue        `endpoint:"header=X-IBM-Obtain-ENQ"`
	sessionRef     *string         `endpoint:"header=X-IBM-Session-Ref"`
	releaseENQ     bool            `endpoint:"header=X-IBM-Release-ENQ,optional"`
	dsnameEncoding *string         `endpoint:"header=X-IBM-Dsname-Encoding"`
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

// Record sets the content as length-prefixed records.
func (b WriteBuilder) Record(data []byte) WriteBuilder {
	b.dataType = DataTypeRecord
	b.data = bytes.Clone(data)
	return b
}

func setWriteVolume(b WriteBuilder, volume string) WriteBuilder {
	b.volume = volumeSegment(volume)
	return b
}

func setWriteMember(b WriteBuilder, member string) WriteBuilder {
	b.member = memberSegment(member)
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
