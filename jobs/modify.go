package jobs

import "github.com/wmcgee3/zosmf/endpoint"

// X-IBM-Job-Modify-Version values. Version 2.0 waits for the change and
// replies with Feedback; 1.0 returns as soon as the request is queued.
const (
	modifySynchronous  = "2.0"
	modifyAsynchronous = "1.0"
)

func modifyVersion(asynchronous bool) string {
	if asynchronous {
		return modifyAsynchronous
	}
	return modifySynchronous
}

// PurgeBuilder cancels a job and purges its output.
//
//zosmf:endpoint DELETE /zosmf/restjobs/jobs{subsystem}/{identifier}
type PurgeBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	subsystem    Subsystem  `endpoint:"path,optional"`
	identifier   Identifier `endpoint:"path"`
	asynchronous bool       `endpoint:"header=X-IBM-Job-Modify-Version,optional,skip_setter,builder=purgeVersion"`
}

// Asynchronous returns as soon as the purge is queued.
func (b PurgeBuilder[T]) Asynchronous() PurgeBuilder[endpoint.None] {
	n := narrowPurgeBuilder[endpoint.None](b)
	n.asynchronous = true
	return n
}

func purgeVersion[T endpoint.Target[T]](r endpoint.Request, b *PurgeBuilder[T]) endpoint.Request {
	return r.WithHeader("X-IBM-Job-Modify-Version", modifyVersion(b.asynchronous))
}

// ModifyBuilder holds, releases or cancels a job.
//
//zosmf:endpoint PUT /zosmf/restjobs/jobs{subsystem}/{identifier}
type ModifyBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	subsystem    Subsystem  `endpoint:"path,optional"`
	identifier   Identifier `endpoint:"path"`
	action       string     `endpoint:"inert"`
	asynchronous bool       `endpoint:"body,optional,skip_setter,builder=modifyBody"`
}

// Asynchronous returns as soon as the change is queued.
func (b ModifyBuilder[T]) Asynchronous() ModifyBuilder[endpoint.None] {
	n := narrowModifyBuilder[endpoint.None](b)
	n.asynchronous = true
	return n
}

func modifyBody[T endpoint.Target[T]](r endpoint.Request, b *ModifyBuilder[T]) endpoint.Request {
	return r.WithJSON(struct {
		Request string `json:"request"`
		Version string `json:"version"`
	}{b.action, modifyVersion(b.asynchronous)})
}
