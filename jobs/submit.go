package jobs

import (
	"errors"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/wmcgee3/zosmf/endpoint"
)

// Source is the JCL a job is submitted from.
type Source struct {
	file string
	mode string
	data []byte
}

// Dataset submits the JCL in a data set or member, such as
// "IBMUSER.CNTL(IEFBR14)".
func Dataset(name string) Source {
	return Source{file: "//'" + name + "'"}
}

// File submits the JCL in a z/OS UNIX file.
func File(path string) Source {
	return Source{file: path}
}

// Text submits jcl as text.
func Text(jcl string) Source {
	return Source{mode: "TEXT", data: []byte(jcl)}
}

// Binary submits data without conversion.
func Binary(data []byte) Source {
	return Source{mode: "BINARY", data: slices.Clone(data)}
}

// Record submits data as length-prefixed records.
func Record(data []byte) Source {
	return Source{mode: "RECORD", data: slices.Clone(data)}
}

// RecordFormat is the record format of submitted JCL.
type RecordFormat string

const (
	RecordFormatFixed    RecordFormat = "F"
	RecordFormatVariable RecordFormat = "V"
)

func (f RecordFormat) String() string { return string(f) }

// Event is a job state that triggers a notification.
type Event string

const (
	EventActive   Event = "active"
	EventComplete Event = "complete"
	EventReady    Event = "ready"
)

var errNoSource = errors.New("no JCL source")

// SubmitBuilder submits a job.
//
//zosmf:endpoint PUT /zosmf/restjobs/jobs{subsystem} target=Job
type SubmitBuilder struct {
	base endpoint.Base

	subsystem Subsystem `endpoint:"path,optional"`

	// MessageClass sets the class of the job's messages.
	messageClass   *string       `endpoint:"header=X-IBM-Intrdr-Class"`
	recordFormat   *RecordFormat `endpoint:"header=X-IBM-Intrdr-Recfm"`
	recordLength   *int          `endpoint:"header=X-IBM-Intrdr-Lrecl"`
	userCorrelator *string       `endpoint:"header=X-IBM-User-Correlator"`
	// Symbols sets JCL symbols, replacing any set before.
	symbols map[string]string `endpoint:"optional,builder=submitSymbols"`
	source  Source            `endpoint:"body,builder=submitSource"`

	// NotificationURL sets the URL z/OSMF posts to when a notification
	// event occurs.
	notificationURL *string `endpoint:"header=X-IBM-Notification-URL"`
	// NotificationEvents selects the events that trigger a notification.
	notificationEvents []Event `endpoint:"optional,builder=submitEvents"`
	// Encoding sets the code page of the submitted JCL.
	encoding *string `endpoint:"header=X-IBM-Intrdr-File-Encoding"`
}

func submitSymbols(r endpoint.Request, b *SubmitBuilder) endpoint.Request {
	for _, name := range slices.Sorted(maps.Keys(b.symbols)) {
		r = r.WithHeader("X-IBM-JCL-Symbol-"+name, b.symbols[name])
	}
	return r
}

func submitSource(r endpoint.Request, b *SubmitBuilder) endpoint.Request {
	s := b.source
	switch {
	case s.file != "":
		return r.WithJSON(struct {
			File string `json:"file"`
		}{s.file})
	case s.mode == "TEXT":
		return r.WithHeader("Content-Type", "text/plain").
			WithHeader("X-IBM-Intrdr-Mode", s.mode).
			WithBody(s.data)
	case s.mode != "":
		return r.WithHeader("Content-Type", "application/octet-stream").
			WithHeader("X-IBM-Intrdr-Mode", s.mode).
			WithBody(s.data)
	}
	return r.WithError(errNoSource)
}

func submitEvents(r endpoint.Request, b *SubmitBuilder) endpoint.Request {
	if len(b.notificationEvents) == 0 {
		return r
	}
	events := slices.Clone(b.notificationEvents)
	slices.Sort(events)
	events = slices.Compact(events)

	quoted := make([]string, len(events))
	for i, e := range events {
		quoted[i] = strconv.Quote(string(e))
	}
	return r.WithHeader("X-IBM-Notification-Options", `{"events": [`+strings.Join(quoted, ", ")+`]}`)
}
