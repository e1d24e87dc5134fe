package files

import "github.com/wmcgee3/zosmf/endpoint"

type createRequest struct {
	Type string `json:"type"`
	Mode string `json:"mode,omitempty"`
}

// CreateBuilder creates a z/OS UNIX file or directory.
//
//zosmf:endpoint POST /zosmf/restfiles/fs{pathname} target=Result
type CreateBuilder struct {
	base endpoint.Base

	pathname string   `endpoint:"path"`
	fileType FileType `endpoint:"body,builder=createBody"`
	// Mode sets the permission bits in "rwxr-x---" form.
	mode *string
}

func createBody(r endpoint.Request, b *CreateBuilder) endpoint.Request {
	body := createRequest{Type: "file"}
	if b.fileType == FileTypeDirectory {
		body.Type = "directory"
	}
	if b.mode != nil {
		body.Mode = *b.mode
	}
	return r.WithJSON(body)
}
