package jobs

import "github.com/wmcgee3/zosmf/endpoint"

// StatusBuilder gets the status of one job.
//
// ExecData and StepData may be combined in either order; both lead to a
// JobDetail and assemble the same request. Either may be called on any
// shape, and calling one again has no further effect.
//
//zosmf:endpoint GET /zosmf/restjobs/jobs{subsystem}/{identifier}
type StatusBuilder[T endpoint.Target[T]] struct {
	base endpoint.Base

	subsystem  Subsystem  `endpoint:"path,optional"`
	identifier Identifier `endpoint:"path"`
	execData   bool       `endpoint:"query=exec-data,optional,skip_setter,builder=statusExecData"`
	stepData   bool       `endpoint:"query=step-data,optional,skip_setter,builder=statusStepData"`
}

// ExecData includes the execution data of the job.
func (b StatusBuilder[T]) ExecData() StatusBuilder[JobDetail] {
	n := narrowStatusBuilder[JobDetail](b)
	n.execData = true
	return n
}

// StepData includes the steps of the job.
func (b StatusBuilder[T]) StepData() StatusBuilder[JobDetail] {
	n := narrowStatusBuilder[JobDetail](b)
	n.stepData = true
	return n
}

func statusExecData[T endpoint.Target[T]](r endpoint.Request, b *StatusBuilder[T]) endpoint.Request {
	return flag(r, "exec-data", b.execData)
}

func statusStepData[T endpoint.Target[T]](r endpoint.Request, b *StatusBuilder[T]) endpoint.Request {
	return flag(r, "step-data", b.stepData)
}
