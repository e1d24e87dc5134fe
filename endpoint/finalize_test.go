package endpoint

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type echo struct {
	Text string
}

func (echo) TryFromResponse(resp *http.Response) (echo, error) {
	s, err := ReadText(resp)
	return echo{Text: s}, err
}

type payload struct {
	Name string `json:"name"`
}

func (payload) TryFromResponse(resp *http.Response) (payload, error) {
	return DecodeJSON[payload](resp)
}

type cached struct {
	NotModified bool
}

func (cached) TryFromResponse(resp *http.Response) (cached, error) {
	return cached{NotModified: resp.StatusCode == http.StatusNotModified}, nil
}

func (cached) AcceptStatus(status int) bool { return status == http.StatusNotModified }

func newTestCore(t *testing.T, h http.HandlerFunc) *Core {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &Core{BaseURL: srv.URL, HTTP: srv.Client(), Tokens: &TokenStore{}}
}

func TestFinalize(t *testing.T) {
	var gotCookie string
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		w.Write([]byte(r.Method + " " + r.URL.RequestURI()))
	})
	core.Tokens.Replace(&Token{Kind: TokenLTPA2, Value: "tok"})

	r := NewRequest("test.Echo", http.MethodGet, "/zosmf/x").WithQuery("a", "1")
	got, err := Finalize[echo](context.Background(), NewBase(core), r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "GET /zosmf/x?a=1" {
		t.Errorf("Text = %q", got.Text)
	}
	if gotCookie != "LtpaToken2=tok" {
		t.Errorf("Cookie = %q", gotCookie)
	}
}

func TestPrepareKeepsExplicitAuthorization(t *testing.T) {
	core := &Core{BaseURL: "https://zosmf.example.com", Tokens: &TokenStore{}}
	core.Tokens.Replace(&Token{Kind: TokenBearer, Value: "tok"})

	r := NewRequest("test.Login", http.MethodPost, "/zosmf/services/authenticate").
		WithHeader("Authorization", "Basic dXNlcjpwdw==")
	req, err := NewBase(core).Prepare(context.Background(), r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := req.Header.Get("Authorization"); got != "Basic dXNlcjpwdw==" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestFinalizeConsumes(t *testing.T) {
	calls := 0
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})
	base := NewBase(core)
	r := NewRequest("test.Echo", http.MethodGet, "/a")

	if _, err := Finalize[echo](context.Background(), base, r); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	_, err := Finalize[echo](context.Background(), base, r)
	if !errors.Is(err, ErrConsumed) {
		t.Errorf("second finalize error = %v, want ErrConsumed", err)
	}
	if KindOf(err) != KindConsumed {
		t.Errorf("KindOf = %v, want consumed", KindOf(err))
	}
	if calls != 1 {
		t.Errorf("server saw %d calls, want 1", calls)
	}
}

func TestNarrowConsumesPrevious(t *testing.T) {
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {})
	old := NewBase(core)
	copied := old
	narrowed := old.Narrow()

	if !old.Consumed() || !copied.Consumed() {
		t.Error("old builder values should be consumed after narrowing")
	}
	if narrowed.Consumed() {
		t.Fatal("narrowed builder should be usable")
	}
	if again := copied.Narrow(); !again.Consumed() {
		t.Error("narrowing a consumed builder should yield a consumed builder")
	}

	r := NewRequest("test.Echo", http.MethodGet, "/a")
	if _, err := Finalize[echo](context.Background(), old, r); KindOf(err) != KindConsumed {
		t.Errorf("finalize old: %v", err)
	}
	if _, err := Finalize[echo](context.Background(), narrowed, r); err != nil {
		t.Errorf("finalize narrowed: %v", err)
	}
}

func TestFinalizeErrorKinds(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		request    Request
		token      *Token
		wantKind   Kind
		wantStatus int
	}{
		{
			name: "z/OSMF error document",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"category":6,"rc":4,"reason":8,"message":"Dataset not found"}`))
			},
			request:    NewRequest("test.Payload", http.MethodGet, "/a"),
			wantKind:   KindTransmission,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "malformed payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"name":`))
			},
			request:    NewRequest("test.Payload", http.MethodGet, "/a"),
			wantKind:   KindDecoding,
			wantStatus: http.StatusOK,
		},
		{
			name:     "body encode failure",
			handler:  func(w http.ResponseWriter, r *http.Request) {},
			request:  NewRequest("test.Payload", http.MethodPost, "/a").WithJSON(make(chan int)),
			wantKind: KindAssembly,
		},
		{
			name:     "unusable credential",
			handler:  func(w http.ResponseWriter, r *http.Request) {},
			request:  NewRequest("test.Payload", http.MethodGet, "/a"),
			token:    &Token{Kind: TokenBearer, Value: "bad\nvalue"},
			wantKind: KindCredential,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := newTestCore(t, tt.handler)
			core.Tokens.Replace(tt.token)
			_, err := Finalize[payload](context.Background(), NewBase(core), tt.request)
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if e.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", e.Status, tt.wantStatus)
			}
			if e.Endpoint != "test.Payload" {
				t.Errorf("Endpoint = %q", e.Endpoint)
			}
		})
	}
}

func TestFinalizeParsesReply(t *testing.T) {
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"category":1,"rc":8,"reason":12,"message":"ISRZ002 Data set in use","details":["held by JOB1"]}`))
	})
	_, err := Finalize[payload](context.Background(), NewBase(core), NewRequest("test.Payload", http.MethodGet, "/a"))
	var e *Error
	if !errors.As(err, &e) || e.Reply == nil {
		t.Fatalf("error = %v, want reply", err)
	}
	if e.Reply.ReturnCode != 8 || e.Reply.Reason != 12 || len(e.Reply.Details) != 1 {
		t.Errorf("Reply = %+v", e.Reply)
	}
	if !strings.Contains(err.Error(), "ISRZ002 Data set in use") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFinalizeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	core := &Core{BaseURL: srv.URL, HTTP: srv.Client()}
	srv.Close()

	_, err := Finalize[echo](context.Background(), NewBase(core), NewRequest("test.Echo", http.MethodGet, "/a"))
	if KindOf(err) != KindTransmission {
		t.Errorf("KindOf = %v, want transmission (err %v)", KindOf(err), err)
	}
}

func TestFinalizeStatusAcceptor(t *testing.T) {
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	})
	got, err := Finalize[cached](context.Background(), NewBase(core), NewRequest("test.Cached", http.MethodGet, "/a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.NotModified {
		t.Error("expected NotModified")
	}
}

func TestFinalizeUnboundBuilder(t *testing.T) {
	var base Base
	_, err := Finalize[echo](context.Background(), base, NewRequest("test.Echo", http.MethodGet, "/a"))
	if KindOf(err) != KindAssembly {
		t.Errorf("KindOf = %v, want assembly", KindOf(err))
	}
}

func TestInterceptorsWrapTransmission(t *testing.T) {
	var order []string
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "server:"+r.Header.Get("X-Trace"))
	})
	core.Interceptors = []Interceptor{
		func(ctx context.Context, call *Call, next RoundTrip) (*http.Response, error) {
			order = append(order, "outer:"+call.Endpoint)
			call.Request.Header.Set("X-Trace", "on")
			return next(ctx, call)
		},
		func(ctx context.Context, call *Call, next RoundTrip) (*http.Response, error) {
			order = append(order, "inner")
			return next(ctx, call)
		},
	}

	if _, err := Finalize[echo](context.Background(), NewBase(core), NewRequest("test.Echo", http.MethodGet, "/a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"outer:test.Echo", "inner", "server:on"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestInterceptorShortCircuit(t *testing.T) {
	core := newTestCore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("server should not be called")
	})
	denied := errors.New("denied")
	core.Interceptors = []Interceptor{
		func(ctx context.Context, call *Call, next RoundTrip) (*http.Response, error) {
			return nil, denied
		},
	}
	_, err := Finalize[echo](context.Background(), NewBase(core), NewRequest("test.Echo", http.MethodGet, "/a"))
	if !errors.Is(err, denied) || KindOf(err) != KindTransmission {
		t.Errorf("err = %v", err)
	}
}
