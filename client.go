// Package zosmf is a client for the IBM z/OS Management Facility REST
// services.
//
// A Client holds the session shared by every request. The data set, file
// and job services are reached through sub-clients that return fluent
// request builders:
//
//	client := zosmf.NewClient("https://mainframe.example.com")
//	if err := client.Login(ctx, "IBMUSER", password); err != nil {
//		return err
//	}
//	member, err := client.Datasets().Read("SYS1.PARMLIB").Member("IEASYS00").Build(ctx)
package zosmf

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wmcgee3/zosmf/datasets"
	"github.com/wmcgee3/zosmf/endpoint"
	"github.com/wmcgee3/zosmf/files"
	"github.com/wmcgee3/zosmf/jobs"
)

//go:generate go run ./cmd/zosmfgen gen --provider=cue --cue=endpoints.cue --package-name=zosmf

// Client is a z/OSMF client. It is safe for concurrent use; login and
// logout replace the session seen by requests that start afterwards.
type Client struct {
	core *endpoint.Core

	datasets *datasets.Client
	files    *files.Client
	jobs     *jobs.Client
}

// Option configures a Client.
type Option func(*endpoint.Core)

// WithHTTPClient sets the HTTP client requests are sent with.
func WithHTTPClient(c *http.Client) Option {
	return func(core *endpoint.Core) { core.HTTP = c }
}

// WithLogger sets the logger for client diagnostics. The default is
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(core *endpoint.Core) { core.Logger = l }
}

// WithInterceptors adds interceptors around every request. The first one
// added is the outermost.
func WithInterceptors(interceptors ...endpoint.Interceptor) Option {
	return func(core *endpoint.Core) {
		core.Interceptors = append(core.Interceptors, interceptors...)
	}
}

// NewClient returns a client for the z/OSMF instance at baseURL, such as
// "https://mainframe.example.com:443".
func NewClient(baseURL string, opts ...Option) *Client {
	core := &endpoint.Core{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Tokens:  &endpoint.TokenStore{},
	}
	for _, opt := range opts {
		opt(core)
	}
	return &Client{
		core:     core,
		datasets: datasets.New(core),
		files:    files.New(core),
		jobs:     jobs.New(core),
	}
}

// Datasets returns the data set services.
func (c *Client) Datasets() *datasets.Client { return c.datasets }

// Files returns the z/OS UNIX file services.
func (c *Client) Files() *files.Client { return c.files }

// Jobs returns the job services.
func (c *Client) Jobs() *jobs.Client { return c.jobs }

// Login authenticates user and keeps the returned session token for
// later requests.
func (c *Client) Login(ctx context.Context, user, password string) error {
	creds := basicCredentials{user: user, password: password}
	s, err := newAuthenticateBuilder(endpoint.NewBase(c.core), creds).Build(ctx)
	if err != nil {
		return err
	}
	c.core.Tokens.Replace(&s.Token)
	c.core.Log().DebugContext(ctx, "logged in", "user", user, "token", s.Token.Kind)
	return nil
}

// Logout ends the session on the server and forgets its token. The token
// is kept when the server rejects the logout.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := newLogoutBuilder(endpoint.NewBase(c.core)).Build(ctx); err != nil {
		return err
	}
	c.core.Tokens.Replace(nil)
	return nil
}

// SetToken replaces the session with an externally obtained token.
func (c *Client) SetToken(token endpoint.Token) {
	c.core.Tokens.Replace(&token)
}

// Token returns the current session token, if any.
func (c *Client) Token() (endpoint.Token, bool) {
	return c.core.Tokens.Current()
}

// Info gets the z/OSMF version and its installed plug-ins.
func (c *Client) Info(ctx context.Context) (Info, error) {
	return newInfoBuilder(endpoint.NewBase(c.core)).Build(ctx)
}
