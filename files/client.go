// Package files builds requests against the z/OSMF z/OS UNIX file
// services under /zosmf/restfiles/fs.
package files

import (
	"strings"

	"github.com/wmcgee3/zosmf/endpoint"
)

//go:generate go run github.com/wmcgee3/zosmf/cmd/zosmfgen gen .

// Client creates file request builders. Obtain one from
// zosmf.Client.Files.
type Client struct {
	core *endpoint.Core
}

// New returns a Client bound to core.
func New(core *endpoint.Core) *Client {
	return &Client{core: core}
}

// absolute makes p absolute, so "u/ibmuser" and "/u/ibmuser" name the same
// file.
func absolute(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// CreateFile creates an empty file at path.
func (c *Client) CreateFile(path string) CreateBuilder {
	return newCreateBuilder(endpoint.NewBase(c.core), absolute(path), FileTypeFile)
}

// CreateDirectory creates a directory at path.
func (c *Client) CreateDirectory(path string) CreateBuilder {
	return newCreateBuilder(endpoint.NewBase(c.core), absolute(path), FileTypeDirectory)
}

// Delete deletes the file or empty directory at path.
func (c *Client) Delete(path string) DeleteBuilder {
	return newDeleteBuilder(endpoint.NewBase(c.core), absolute(path))
}

// List lists the directory at path.
func (c *Client) List(path string) ListBuilder {
	return newListBuilder(endpoint.NewBase(c.core), absolute(path))
}

// Read reads the file at path as text.
func (c *Client) Read(path string) ReadBuilder[Read] {
	return newReadBuilder[Read](endpoint.NewBase(c.core), absolute(path))
}

// Write replaces the content of the file at path.
func (c *Client) Write(path string) WriteBuilder {
	return newWriteBuilder(endpoint.NewBase(c.core), absolute(path))
}
