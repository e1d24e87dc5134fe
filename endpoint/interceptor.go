package endpoint

import (
	"context"
	"net/http"
)

// Call describes one outgoing request as seen by interceptors.
type Call struct {
	// Endpoint is the builder's qualified name, e.g. "datasets.List".
	Endpoint string
	Request  *http.Request
}

// RoundTrip sends a call, or passes it to the next interceptor.
type RoundTrip func(ctx context.Context, call *Call) (*http.Response, error)

// Interceptor wraps the transmission of every finalized request.
//
//	func timing(ctx context.Context, call *endpoint.Call, next endpoint.RoundTrip) (*http.Response, error) {
//	    start := time.Now()
//	    resp, err := next(ctx, call)
//	    log.Printf("%s took %v", call.Endpoint, time.Since(start))
//	    return resp, err
//	}
//
// Interceptors can inspect or modify the request before calling next,
// inspect the response after, or short-circuit by returning an error.
// Credentials are already attached when interceptors run.
type Interceptor func(ctx context.Context, call *Call, next RoundTrip) (*http.Response, error)

// chainInterceptors combines interceptors into one RoundTrip around final.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []Interceptor, final RoundTrip) RoundTrip {
	chain := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		current := interceptors[i]
		next := chain
		chain = func(ctx context.Context, call *Call) (*http.Response, error) {
			return current(ctx, call, next)
		}
	}
	return chain
}
