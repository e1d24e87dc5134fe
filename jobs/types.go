package jobs

import (
	"net/http"

	"github.com/wmcgee3/zosmf/endpoint"
)

// Identifier names a job, either by name and id or by its correlator.
type Identifier string

// NameID identifies a job by its name and JES id.
func NameID(name, id string) Identifier {
	return Identifier(name + "/" + id)
}

// Correlator identifies a job by its job correlator.
func Correlator(correlator string) Identifier {
	return Identifier(correlator)
}

func (i Identifier) String() string { return string(i) }

// Subsystem routes a request to a secondary JES subsystem. The zero value
// is the primary subsystem.
type Subsystem string

// String renders s as its path segment, "/-NAME", or nothing for the
// primary subsystem.
func (s Subsystem) String() string {
	if s == "" {
		return ""
	}
	return "/-" + string(s)
}

// Status is the queue a job is on.
type Status string

const (
	StatusInput  Status = "INPUT"
	StatusActive Status = "ACTIVE"
	StatusOutput Status = "OUTPUT"
)

// Type is the kind of address space a job runs in.
type Type string

const (
	TypeJob         Type = "JOB"
	TypeStartedTask Type = "STC"
	TypeTSOUser     Type = "TSU"
)

// Job is the status of a job.
type Job struct {
	ID               string  `json:"jobid"`
	Name             string  `json:"jobname"`
	Subsystem        string  `json:"subsystem,omitempty"`
	Owner            string  `json:"owner"`
	Status           Status  `json:"status,omitempty"`
	Type             Type    `json:"type,omitempty"`
	Class            string  `json:"class"`
	ReturnCode       *string `json:"retcode"`
	URL              string  `json:"url"`
	FilesURL         string  `json:"files-url"`
	Correlator       string  `json:"job-correlator,omitempty"`
	Phase            int     `json:"phase"`
	PhaseName        string  `json:"phase-name"`
	ReasonNotRunning string  `json:"reason-not-running,omitempty"`
}

// Identifier returns the name and id of j.
func (j Job) Identifier() Identifier {
	return NameID(j.Name, j.ID)
}

func (Job) TryFromResponse(resp *http.Response) (Job, error) {
	return endpoint.DecodeJSON[Job](resp)
}

// JobDetail is the status of a job with its execution and step data.
// Fields that were not requested are empty: Steps stays nil unless step
// data was asked for, and the Exec fields stay empty without exec data.
type JobDetail struct {
	Job

	ExecSystem    string `json:"exec-system,omitempty"`
	ExecMember    string `json:"exec-member,omitempty"`
	ExecSubmitted string `json:"exec-submitted,omitempty"`
	ExecStarted   string `json:"exec-started,omitempty"`
	ExecEnded     string `json:"exec-ended,omitempty"`
	Steps         []Step `json:"step-data,omitempty"`
}

func (JobDetail) TryFromResponse(resp *http.Response) (JobDetail, error) {
	return endpoint.DecodeJSON[JobDetail](resp)
}

// Step is one step of a job.
type Step struct {
	Active          bool   `json:"active"`
	SMFID           string `json:"smfid"`
	Number          int    `json:"step-number"`
	SelectedTime    string `json:"selected-time,omitempty"`
	Owner           string `json:"owner"`
	ProgramName     string `json:"program-name"`
	Name            string `json:"step-name"`
	PathName        string `json:"path-name,omitempty"`
	SubstepNumber   *int   `json:"substep-number,omitempty"`
	EndTime         string `json:"end-time,omitempty"`
	ProcStepName    string `json:"proc-step-name"`
	CompletionCode  string `json:"completion,omitempty"`
	AbendReasonCode string `json:"abend-reason-code,omitempty"`
}

// List is a list of jobs.
type List[T any] struct {
	Items []T
}

func (List[T]) TryFromResponse(resp *http.Response) (List[T], error) {
	items, err := endpoint.DecodeJSON[[]T](resp)
	if err != nil {
		return List[T]{}, err
	}
	return List[T]{Items: items}, nil
}

// Feedback is the reply to a synchronous job modification.
type Feedback struct {
	ID           string `json:"jobid"`
	Name         string `json:"jobname"`
	OriginalID   string `json:"original-jobid,omitempty"`
	Owner        string `json:"owner"`
	Member       string `json:"member"`
	SystemName   string `json:"sysname"`
	Correlator   string `json:"job-correlator"`
	Status       string `json:"status"`
	InternalCode string `json:"internal-code,omitempty"`
	Message      string `json:"message,omitempty"`
}

func (Feedback) TryFromResponse(resp *http.Response) (Feedback, error) {
	return endpoint.DecodeJSON[Feedback](resp)
}
