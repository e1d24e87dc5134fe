package jobs

import "github.com/wmcgee3/zosmf/endpoint"

// ListBuilder lists jobs. Without filters z/OSMF lists the jobs owned by
// the authenticated user.
//
//zosmf:endpoint GET /zosmf/restjobs/jobs{subsystem}
type ListBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	subsystem Subsystem `endpoint:"path,optional"`

	// Owner lists the jobs of user, or of every user for "*".
	owner *string `endpoint:"query=owner"`
	// Prefix lists the jobs whose name starts with prefix. It may contain
	// wildcards.
	prefix         *string `endpoint:"query=prefix"`
	jobID          *string `endpoint:"query=jobid"`
	maxJobs        *int    `endpoint:"query=max-jobs"`
	userCorrelator *string `endpoint:"query=user-correlator"`
	execData       bool    `endpoint:"query=exec-data,optional,skip_setter,builder=listExecData"`

	// ActiveOnly lists only jobs that are running.
	activeOnly bool `endpoint:"query=status,optional,builder=listActiveOnly"`
}

// ExecData lists jobs with their execution data.
func (b ListBuilder[T]) ExecData() ListBuilder[List[JobDetail]] {
	n := narrowListBuilder[List[JobDetail]](b)
	n.execData = true
	return n
}

func listExecData[T endpoint.Target[T]](r endpoint.Request, b *ListBuilder[T]) endpoint.Request {
	return flag(r, "exec-data", b.execData)
}

func listActiveOnly[T endpoint.Target[T]](r endpoint.Request, b *ListBuilder[T]) endpoint.Request {
	if !b.activeOnly {
		return r
	}
	return r.WithQuery("status", "active")
}

// flag adds key=Y when set.
func flag(r endpoint.Request, key string, set bool) endpoint.Request {
	if !set {
		return r
	}
	return r.WithQuery(key, "Y")
}
