package datasets

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
	"github.com/wmcgee3/zosmf/internal/restfiles"
)

// DataType selects how z/OSMF converts data set content on read and write.
type DataType string

const (
	DataTypeText   DataType = "text"
	DataTypeBinary DataType = "binary"
	DataTypeRecord DataType = "record"
)

func (d DataType) String() string { return string(d) }

// MigratedRecall controls what happens when a migrated data set is accessed.
type MigratedRecall string

const (
	RecallWait   MigratedRecall = "wait"
	RecallNoWait MigratedRecall = "nowait"
	RecallError  MigratedRecall = "error"
)

func (m MigratedRecall) String() string { return string(m) }

// Enqueue is the ENQ z/OSMF obtains on the data set for the session.
type Enqueue string

const (
	EnqueueExclusive       Enqueue = "EXCLU"
	EnqueueShared          Enqueue = "SHR"
	EnqueueSharedReadWrite Enqueue = "SHRW"
)

func (q Enqueue) String() string { return string(q) }

// RecordRange selects the records of a read.
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

// Flag is a z/OSMF yes/no attribute. It decodes "YES", "Y", "NO" and "N".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "YES", "Y":
		*f = true
	case "NO", "N", "":
		*f = false
	default:
		return fmt.Errorf("invalid flag %q", s)
	}
	return nil
}

// Result is the reply of endpoints that return nothing but a
// transaction id.
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

// volumeSegment and memberSegment render the optional parts of a data
// set path: "-(VOLSER)/" before the name and "(MEMBER)" after it.
func volumeSegment(volume string) string {
	return "-(" + volume + ")/"
}

func memberSegment(member string) string {
	return "(" + member + ")"
}

// attributesHeader renders X-IBM-Attributes for list requests. names is
// the attribute set sent when only the total row count was requested.
func attributesHeader(r endpoint.Request, attrs, names string, total bool) endpoint.Request {
	switch {
	case attrs == "" && !total:
		return r
	case attrs == "":
		return r.WithHeader("X-IBM-Attributes", names+",total")
	case total:
		return r.WithHeader("X-IBM-Attributes", attrs+",total")
	}
	return r.WithHeader("X-IBM-Attributes", attrs)
}
