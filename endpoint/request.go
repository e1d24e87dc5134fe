package endpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// Field is one header or query parameter in insertion order.
type Field struct {
	Key   string
	Value string
}

// Request is an in-progress outgoing request. It is an immutable value:
// every With method returns a modified copy and leaves the receiver as it
// was, so assembly hooks can be composed freely.
//
// Headers and query parameters keep the order in which they were added.
type Request struct {
	name    string
	method  string
	path    string
	headers []Field
	params  []Field
	body    []byte
	hasBody bool
	err     error
}

// NewRequest starts a request for the named endpoint.
func NewRequest(name, method, path string) Request {
	return Request{name: name, method: method, path: path}
}

func (r Request) Name() string   { return r.name }
func (r Request) Method() string { return r.method }
func (r Request) Path() string   { return r.path }

// Headers returns the headers in insertion order.
func (r Request) Headers() []Field { return slices.Clone(r.headers) }

// Params returns the query parameters in insertion order.
func (r Request) Params() []Field { return slices.Clone(r.params) }

// Body returns the request body, or nil when none was set.
func (r Request) Body() []byte { return bytes.Clone(r.body) }

// Err returns the first error recorded while assembling the request.
func (r Request) Err() error { return r.err }

// HasHeader reports whether a header with the given key was added.
func (r Request) HasHeader(key string) bool {
	return slices.ContainsFunc(r.headers, func(f Field) bool {
		return strings.EqualFold(f.Key, key)
	})
}

// WithHeader appends a header.
func (r Request) WithHeader(key, value string) Request {
	r.headers = append(slices.Clip(r.headers), Field{Key: key, Value: value})
	return r
}

// WithQuery appends a query parameter.
func (r Request) WithQuery(key, value string) Request {
	r.params = append(slices.Clip(r.params), Field{Key: key, Value: value})
	return r
}

// WithBody sets a pre-encoded body.
func (r Request) WithBody(data []byte) Request {
	r.body = bytes.Clone(data)
	r.hasBody = true
	return r
}

// WithText sets a text body.
func (r Request) WithText(s string) Request {
	return r.WithBody([]byte(s))
}

// WithJSON sets v, encoded as JSON, as the body and adds a JSON content
// type unless one was already added. An encoding failure is reported when
// the request is finalized.
func (r Request) WithJSON(v any) Request {
	data, err := json.Marshal(v)
	if err != nil {
		return r.WithError(fmt.Errorf("encode body: %w", err))
	}
	if !r.HasHeader("Content-Type") {
		r = r.WithHeader("Content-Type", "application/json")
	}
	return r.WithBody(data)
}

// WithError records err as an assembly failure. Only the first error is
// kept; it is reported when the request is finalized.
func (r Request) WithError(err error) Request {
	if r.err == nil {
		r.err = err
	}
	return r
}

// RawQuery encodes the query parameters in insertion order.
func (r Request) RawQuery() string {
	var b strings.Builder
	for i, p := range r.params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// String renders the request in a stable text form:
// the request line, one header per line, a blank line and the body.
func (r Request) String() string {
	var b strings.Builder
	b.WriteString(r.method)
	b.WriteByte(' ')
	b.WriteString(escapePath(r.path))
	if len(r.params) > 0 {
		b.WriteByte('?')
		b.WriteString(r.RawQuery())
	}
	b.WriteByte('\n')
	for _, h := range r.headers {
		fmt.Fprintf(&b, "%s: %s\n", h.Key, h.Value)
	}
	if r.hasBody {
		b.WriteByte('\n')
		b.Write(r.body)
	}
	return b.String()
}

// HTTPRequest converts r into a *http.Request against baseURL.
func (r Request) HTTPRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	prefix := strings.TrimSuffix(u.Path, "/")
	u.Path = prefix + r.path
	u.RawPath = escapePath(prefix) + escapePath(r.path)
	u.RawQuery = r.RawQuery()

	var body io.Reader
	if r.hasBody {
		body = bytes.NewReader(r.body)
	}
	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for _, h := range r.headers {
		req.Header.Add(h.Key, h.Value)
	}
	return req, nil
}

// escapePath percent-encodes p, keeping the sub-delimiters z/OSMF uses
// in resource names, such as the parentheses around a member name.
func escapePath(p string) string {
	const keep = "/-._~!$&'()*+,;=:@"
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		c := p[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || strings.IndexByte(keep, c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
