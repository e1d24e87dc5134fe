package files

import "github.com/wmcgee3/zosmf/endpoint"

// DeleteBuilder deletes a z/OS UNIX file or directory.
//
//zosmf:endpoint DELETE /zosmf/restfiles/fs{pathname} target=Result
type DeleteBuilder struct {
	base endpoint.Base

	pathname string `endpoint:"path"`
	// Recursive deletes a directory together with everything in it.
	recursive bool `endpoint:"header=X-IBM-Option,optional,builder=deleteRecursive"`
}

func deleteRecursive(r endpoint.Request, b *DeleteBuilder) endpoint.Request {
	if !b.recursive {
		return r
	}
	return r.WithHeader("X-IBM-Option", "recursive")
}
