package endpoint

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Core is the state shared by every builder created from one client.
type Core struct {
	BaseURL      string
	HTTP         *http.Client
	Tokens       *TokenStore
	Logger       *slog.Logger
	Interceptors []Interceptor
}

func (c *Core) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// Log returns the core's logger, or slog.Default when none is set.
func (c *Core) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// send runs the interceptor chain and transmits req.
func (c *Core) send(ctx context.Context, name string, req *http.Request) (*http.Response, error) {
	final := func(ctx context.Context, call *Call) (*http.Response, error) {
		return c.httpClient().Do(call.Request)
	}
	resp, err := chainInterceptors(c.Interceptors, final)(ctx, &Call{Endpoint: name, Request: req})
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			return nil, err
		}
		return nil, &Error{Kind: KindTransmission, Endpoint: name, Err: err}
	}
	return resp, nil
}

// lease is shared by all copies of one builder value. Narrowing or
// finalizing spends it, which makes every copy unusable.
type lease struct {
	spent atomic.Bool
}

func (l *lease) consume() bool {
	return l.spent.CompareAndSwap(false, true)
}

// Base is embedded in every generated builder as the handle to the
// client core.
type Base struct {
	core  *Core
	lease *lease
}

// NewBase binds a fresh builder to core.
func NewBase(core *Core) Base {
	return Base{core: core, lease: new(lease)}
}

// Core returns the client core, or nil for a zero Base.
func (b Base) Core() *Core { return b.core }

// Consumed reports whether the builder holding b was narrowed or finalized.
func (b Base) Consumed() bool {
	return b.lease == nil || b.lease.spent.Load()
}

// Narrow spends b's lease and returns a Base with a fresh one for the
// narrowed builder. Narrowing an already consumed builder yields a Base
// that is consumed as well.
func (b Base) Narrow() Base {
	if b.lease == nil || !b.lease.consume() {
		spent := new(lease)
		spent.spent.Store(true)
		return Base{core: b.core, lease: spent}
	}
	return Base{core: b.core, lease: new(lease)}
}

// Prepare assembles r into a *http.Request with the current credential
// attached, unless r carries its own Authorization header. It does not
// consume the builder.
func (b Base) Prepare(ctx context.Context, r Request) (*http.Request, error) {
	if b.core == nil {
		return nil, Errorf(KindAssembly, r.Name(), "builder is not bound to a client")
	}
	req, err := r.HTTPRequest(ctx, b.core.BaseURL)
	if err != nil {
		return nil, &Error{Kind: KindAssembly, Endpoint: r.Name(), Err: err}
	}
	if b.core.Tokens != nil && !r.HasHeader("Authorization") {
		if token, ok := b.core.Tokens.Current(); ok {
			if err := token.apply(req.Header); err != nil {
				return nil, &Error{Kind: KindCredential, Endpoint: r.Name(), Err: err}
			}
		}
	}
	return req, nil
}
