package domain

import "time"

// BuildRecord is the persisted record of one Job's last successful run, used
// by the content-stamp rebuild policy to decide whether a Job whose condition
// is ConditionCheckDependencies can be skipped.
type BuildRecord struct {
	Output    string    `json:"output,omitzero"`
	InputHash string    `json:"input_hash,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}

// ProcessResult reports how an external tool process ended. Crashed is set
// when the process terminated abnormally rather than exiting, which callers
// must be able to tell apart from an ordinary nonzero exit.
type ProcessResult struct {
	ExitCode int
	Crashed  bool
}
