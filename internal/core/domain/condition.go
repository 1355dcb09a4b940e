package domain

// Condition is the per-Job rerun policy decided at Job construction time.
type Condition int

const (
	// ConditionAlways runs the Job unconditionally.
	ConditionAlways Condition = iota
	// ConditionRunWithoutCascading runs the Job, but a failure does not
	// prevent dependent Jobs from starting.
	ConditionRunWithoutCascading
	// ConditionCheckDependencies defers the rerun decision to the rebuild
	// policy: the input looked unchanged by timestamp, so a finer-grained
	// check decides whether the Job can be skipped.
	ConditionCheckDependencies
)

// String returns the condition name used in dry-run output.
func (c Condition) String() string {
	switch c {
	case ConditionAlways:
		return "always"
	case ConditionRunWithoutCascading:
		return "run-without-cascading"
	case ConditionCheckDependencies:
		return "check-dependencies"
	}
	return "unknown"
}
