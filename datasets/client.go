// Package datasets builds requests against the z/OSMF data set services
// under /zosmf/restfiles/ds.
package datasets

import "github.com/wmcgee3/zosmf/endpoint"

//go:generate go run github.com/wmcgee3/zosmf/cmd/zosmfgen gen .

// Client creates data set request builders. Obtain one from
// zosmf.Client.Datasets.
type Client struct {
	core *endpoint.Core
}

// New returns a Client bound to core.
func New(core *endpoint.Core) *Client {
	return &Client{core: core}
}

// Copy copies the data set from into the data set to.
func (c *Client) Copy(from, to string) CopyBuilder {
	return newCopyBuilder(endpoint.NewBase(c.core), to, from)
}

// Create allocates the data set name.
func (c *Client) Create(name string) CreateBuilder {
	return newCreateBuilder(endpoint.NewBase(c.core), name)
}

// Delete deletes the data set name.
func (c *Client) Delete(name string) DeleteBuilder {
	return newDeleteBuilder(endpoint.NewBase(c.core), name)
}

// List lists the data sets matching pattern by name.
func (c *Client) List(pattern string) ListBuilder[List[Name]] {
	return newListBuilder[List[Name]](endpoint.NewBase(c.core), pattern)
}

// Members lists the members of the partitioned data set name.
func (c *Client) Members(name string) MembersBuilder[List[MemberName]] {
	return newMembersBuilder[List[MemberName]](endpoint.NewBase(c.core), name)
}

// Migrate migrates the data set name to HSM storage.
func (c *Client) Migrate(name string) HSMBuilder {
	return newHSMBuilder(endpoint.NewBase(c.core), name, "hmigrate")
}

// Read reads the data set name as text.
func (c *Client) Read(name string) ReadBuilder[Read] {
	return newReadBuilder[Read](endpoint.NewBase(c.core), name)
}

// Recall recalls the migrated data set name.
func (c *Client) Recall(name string) HSMBuilder {
	return newHSMBuilder(endpoint.NewBase(c.core), name, "hrecall")
}

// Rename renames the data set from to to.
func (c *Client) Rename(from, to string) RenameBuilder {
	return newRenameBuilder(endpoint.NewBase(c.core), to, from)
}

// Write replaces the content of the data set name.
func (c *Client) Write(name string) WriteBuilder {
	return newWriteBuilder(endpoint.NewBase(c.core), name)
}
