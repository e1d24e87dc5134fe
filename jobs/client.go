// Package jobs builds requests against the z/OSMF JES job services under
// /zosmf/restjobs/jobs.
package jobs

import "github.com/wmcgee3/zosmf/endpoint"

//go:generate go run github.com/wmcgee3/zosmf/cmd/zosmfgen gen .

// Client creates job request builders. Obtain one from zosmf.Client.Jobs.
type Client struct {
	core *endpoint.Core
}

// New returns a Client bound to core.
func New(core *endpoint.Core) *Client {
	return &Client{core: core}
}

// Submit submits the JCL in source.
func (c *Client) Submit(source Source) SubmitBuilder {
	return newSubmitBuilder(endpoint.NewBase(c.core), source)
}

// List lists jobs.
func (c *Client) List() ListBuilder[List[Job]] {
	return newListBuilder[List[Job]](endpoint.NewBase(c.core))
}

// Status gets the status of the job id.
func (c *Client) Status(id Identifier) StatusBuilder[Job] {
	return newStatusBuilder[Job](endpoint.NewBase(c.core), id)
}

// Files lists the spool files of the job id.
func (c *Client) Files(id Identifier) FilesBuilder[List[SpoolFile]] {
	return newFilesBuilder[List[SpoolFile]](endpoint.NewBase(c.core), id)
}

// ReadFile reads the spool file of the job id as text.
func (c *Client) ReadFile(id Identifier, file FileID) ReadFileBuilder[FileText] {
	return newReadFileBuilder[FileText](endpoint.NewBase(c.core), id, file)
}

// Purge cancels the job id and purges its output.
func (c *Client) Purge(id Identifier) PurgeBuilder[Feedback] {
	return newPurgeBuilder[Feedback](endpoint.NewBase(c.core), id)
}

// Hold holds the job id.
func (c *Client) Hold(id Identifier) ModifyBuilder[Feedback] {
	return newModifyBuilder[Feedback](endpoint.NewBase(c.core), id, "hold")
}

// Release releases the held job id.
func (c *Client) Release(id Identifier) ModifyBuilder[Feedback] {
	return newModifyBuilder[Feedback](endpoint.NewBase(c.core), id, "release")
}

// Cancel cancels the job id and keeps its output.
func (c *Client) Cancel(id Identifier) ModifyBuilder[Feedback] {
	return newModifyBuilder[Feedback](endpoint.NewBase(c.core), id, "cancel")
}
