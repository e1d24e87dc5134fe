package endpoint

import (
	"context"
	"errors"
	"io"
	"net/http"
)

// Target is the decoding capability of a response shape. Builders are
// parameterized by their target, so Build is only available for shapes
// that can be decoded.
type Target[T any] interface {
	TryFromResponse(resp *http.Response) (T, error)
}

// StatusAcceptor is implemented by targets that decode some non-2xx
// responses themselves, such as 304 Not Modified for conditional reads.
type StatusAcceptor interface {
	AcceptStatus(status int) bool
}

// maxErrorBody bounds how much of a failed response is read for the
// error document.
const maxErrorBody = 64 << 10

// Finalize consumes the builder lease, sends r and decodes the response
// into T. It returns one *Error naming the layer that failed.
func Finalize[T Target[T]](ctx context.Context, base Base, r Request) (T, error) {
	var zero T
	if base.core == nil {
		return zero, Errorf(KindAssembly, r.Name(), "builder is not bound to a client")
	}
	if base.lease == nil || !base.lease.consume() {
		return zero, &Error{Kind: KindConsumed, Endpoint: r.Name(), Err: ErrConsumed}
	}

	req, err := base.Prepare(ctx, r)
	if err != nil {
		return zero, err
	}
	resp, err := base.core.send(ctx, r.Name(), req)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	if !successful(resp.StatusCode) && !accepts(zero, resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return zero, statusError(r.Name(), resp.StatusCode, body)
	}

	v, err := zero.TryFromResponse(resp)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return zero, err
		}
		base.core.Log().DebugContext(ctx, "response decode failed",
			"endpoint", r.Name(),
			"status", resp.StatusCode,
			"error", err)
		return zero, &Error{Kind: KindDecoding, Endpoint: r.Name(), Status: resp.StatusCode, Err: err}
	}
	return v, nil
}

func successful(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func accepts(target any, status int) bool {
	a, ok := target.(StatusAcceptor)
	return ok && a.AcceptStatus(status)
}
