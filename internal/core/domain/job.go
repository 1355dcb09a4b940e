package domain

import (
	"strings"
	"time"
)

// Job is the physical counterpart of a non-Input Action: one external process
// invocation. Jobs are created once per distinct (Action, ToolChain) pair and
// immutable after construction.
type Job struct {
	Kind       ActionKind
	Executable string
	Args       []string
	Inputs     *JobList
	Output     *CommandOutput
	Condition  Condition

	// PreviousBuildTime is the modification time of the newest pre-existing
	// primary output, used as the estimate of when this Job last ran. Zero
	// when no previous output exists.
	PreviousBuildTime time.Time
}

// PrintableName names the Job for logs and telemetry vertices.
func (j *Job) PrintableName() string {
	if base := j.Output.BaseInput(); base != "" {
		return j.Kind.String() + " " + base
	}
	if p := j.Output.PrimaryPath(); p != "" {
		return j.Kind.String() + " " + p
	}
	return j.Kind.String()
}

// String renders the full command line, as printed in dry-run mode.
func (j *Job) String() string {
	var b strings.Builder
	b.WriteString(j.Executable)
	for _, a := range j.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	return b.String()
}

// JobList is an ordered collection of Jobs. OwnsJobs mirrors the owning
// Action's OwnsInputs flag: a list referencing Jobs that are also reachable
// through another parent holds them non-owning.
type JobList struct {
	OwnsJobs bool

	jobs []*Job
}

// NewJobList creates an owning, empty JobList.
func NewJobList() *JobList {
	return &JobList{OwnsJobs: true}
}

// Add appends a Job to the list.
func (l *JobList) Add(j *Job) {
	l.jobs = append(l.jobs, j)
}

// Jobs returns the Jobs in insertion order.
func (l *JobList) Jobs() []*Job {
	return l.jobs
}

// Len returns the number of Jobs in the list.
func (l *JobList) Len() int {
	return len(l.jobs)
}
