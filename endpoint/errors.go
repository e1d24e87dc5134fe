package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the layer that failed while finalizing a builder.
type Kind int

const (
	// KindAssembly means the outgoing request could not be built,
	// for example a body that failed to marshal.
	KindAssembly Kind = iota + 1
	// KindTransmission means the call failed on the network or the server
	// answered with a non-2xx status.
	KindTransmission
	// KindDecoding means the server answered but not in the shape the
	// selected decoder expects.
	KindDecoding
	// KindCredential means the stored credential could not be applied.
	KindCredential
	// KindConsumed means the builder was already narrowed or finalized.
	KindConsumed
)

func (k Kind) String() string {
	switch k {
	case KindAssembly:
		return "assembly"
	case KindTransmission:
		return "transmission"
	case KindDecoding:
		return "decoding"
	case KindCredential:
		return "credential"
	case KindConsumed:
		return "consumed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrConsumed is returned when a builder value is used after a narrowing
// method or Build already consumed it.
var ErrConsumed = errors.New("builder already consumed")

// Reply is the error document z/OSMF returns with a failed request.
type Reply struct {
	Category   int      `json:"category"`
	ReturnCode int      `json:"rc"`
	Reason     int      `json:"reason"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
	Stack      string   `json:"stack,omitempty"`
}

// Error is the single error value returned by a failed call.
type Error struct {
	Kind     Kind
	Endpoint string
	Status   int    // HTTP status, when a response was received
	Reply    *Reply // parsed z/OSMF error document, when present
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Endpoint != "" {
		b.WriteString(e.Endpoint)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (status %d)", e.Status)
	}
	switch {
	case e.Reply != nil && e.Reply.Message != "":
		fmt.Fprintf(&b, ": %s (category %d, rc %d, reason %d)",
			e.Reply.Message, e.Reply.Category, e.Reply.ReturnCode, e.Reply.Reason)
	case e.Err != nil:
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf creates an Error of the given kind with a formatted cause.
func Errorf(kind Kind, endpoint, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Endpoint: endpoint,
		Err:      fmt.Errorf(format, args...),
	}
}

// KindOf reports the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// statusError builds the transmission error for a non-2xx response.
// The body is parsed as a z/OSMF error document when possible.
func statusError(endpoint string, status int, body []byte) *Error {
	e := &Error{
		Kind:     KindTransmission,
		Endpoint: endpoint,
		Status:   status,
	}
	var reply Reply
	if len(body) > 0 && json.Unmarshal(body, &reply) == nil && reply.Message != "" {
		e.Reply = &reply
		e.Err = errors.New(reply.Message)
		return e
	}
	text := strings.TrimSpace(string(body))
	if text == "" {
		text = fmt.Sprintf("unexpected status %d", status)
	}
	e.Err = errors.New(text)
	return e
}
