// Package zosmftest provides an in-process fake z/OSMF server for tests.
//
// The server records every request in arrival order and answers from a
// route table of canned replies:
//
//	srv := zosmftest.NewServer(t)
//	srv.Handle(http.MethodGet, "/zosmf/restjobs/jobs", zosmftest.JSON(http.StatusOK, jobs))
//	client := zosmf.NewClient(srv.URL, zosmf.WithHTTPClient(srv.Client()))
//	...
//	got := srv.Last()
//	if got.Header.Get("X-IBM-Job-Modify-Version") != "2.0" { ... }
package zosmftest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/gorilla/schema"

	"github.com/wmcgee3/zosmf/endpoint"
)

var queryDecoder = schema.NewDecoder()

func init() {
	queryDecoder.IgnoreUnknownKeys(true)
}

// Reply is a canned response.
type Reply struct {
	Status int
	Header http.Header
	Body   []byte
}

// JSON returns a reply with v encoded as its body.
func JSON(status int, v any) Reply {
	body, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("zosmftest: encode reply: %v", err))
	}
	return Reply{
		Status: status,
		Header: http.Header{"Content-Type": {"application/json"}},
		Body:   body,
	}
}

// Text returns a plain text reply.
func Text(status int, s string) Reply {
	return Reply{
		Status: status,
		Header: http.Header{"Content-Type": {"text/plain"}},
		Body:   []byte(s),
	}
}

// Bytes returns a binary reply.
func Bytes(status int, b []byte) Reply {
	return Reply{
		Status: status,
		Header: http.Header{"Content-Type": {"application/octet-stream"}},
		Body:   b,
	}
}

// Status returns a reply with no body.
func Status(status int) Reply {
	return Reply{Status: status}
}

// Error returns a z/OSMF error document.
func Error(status, category, rc, reason int, message string) Reply {
	return JSON(status, map[string]any{
		"category": category,
		"rc":       rc,
		"reason":   reason,
		"message":  message,
	})
}

// WithHeader returns a copy of r with an additional response header.
func (r Reply) WithHeader(key, value string) Reply {
	h := r.Header.Clone()
	if h == nil {
		h = http.Header{}
	}
	h.Add(key, value)
	r.Header = h
	return r
}

// Request is a recorded incoming request.
type Request struct {
	Method string

	// Path is the escaped request path as sent on the wire.
	Path string

	RawQuery string
	Header   http.Header
	Body     []byte
}

// Query parses the recorded query string.
func (r Request) Query() url.Values {
	v, _ := url.ParseQuery(r.RawQuery)
	return v
}

// DecodeQuery decodes the query string into dst, a pointer to a struct
// whose fields carry `schema:"key"` tags. Unknown keys are ignored.
func (r Request) DecodeQuery(dst any) error {
	return queryDecoder.Decode(dst, r.Query())
}

// URI returns the path and query as the server received them.
func (r Request) URI() string {
	if r.RawQuery == "" {
		return r.Path
	}
	return r.Path + "?" + r.RawQuery
}

type route struct {
	method, path string
	handler      http.HandlerFunc
}

// Server is a fake z/OSMF endpoint backed by httptest.Server.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	routes   []route
	requests []Request
}

// NewServer starts a TLS server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	s := &Server{}
	s.Server = httptest.NewTLSServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers a canned reply for method and escaped path. Later
// registrations for the same route take precedence.
func (s *Server) Handle(method, path string, reply Reply) {
	s.HandleFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
		for k, vs := range reply.Header {
			for _, v := range vs {
				w.Header().Add(k, v)
			}
		}
		if w.Header().Get(endpoint.HeaderTransactionID) == "" {
			w.Header().Set(endpoint.HeaderTransactionID, "TXID"+strconv.Itoa(len(s.Requests())))
		}
		status := reply.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = w.Write(reply.Body)
	})
}

// HandleFunc registers a handler for method and escaped path.
func (s *Server) HandleFunc(method, path string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, route{method: method, path: path, handler: h})
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rec := Request{
		Method:   r.Method,
		Path:     r.URL.EscapedPath(),
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	}

	s.mu.Lock()
	s.requests = append(s.requests, rec)
	var h http.HandlerFunc
	for i := len(s.routes) - 1; i >= 0; i-- {
		if s.routes[i].method == rec.Method && s.routes[i].path == rec.Path {
			h = s.routes[i].handler
			break
		}
	}
	s.mu.Unlock()

	if h == nil {
		reply := Error(http.StatusNotFound, 1, 4, 0, "no route for "+rec.Method+" "+rec.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(reply.Status)
		_, _ = w.Write(reply.Body)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	h(w, r)
}

// Requests returns the recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request. It panics if none was received.
func (s *Server) Last() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		panic("zosmftest: no requests received")
	}
	return s.requests[len(s.requests)-1]
}

// Core returns a client core that talks to the server.
func (s *Server) Core() *endpoint.Core {
	return &endpoint.Core{
		BaseURL: s.URL,
		HTTP:    s.Client(),
		Tokens:  &endpoint.TokenStore{},
	}
}
