package ports

import "time"

// FileStat abstracts filesystem timestamp queries so the incremental
// condition can be tested with deterministic clocks instead of real files.
//
//go:generate go run go.uber.org/mock/mockgen -source=stat.go -destination=mocks/mock_stat.go -package=mocks
type FileStat interface {
	// ModTime returns the modification time of path. The boolean is false
	// when the file does not exist.
	ModTime(path string) (time.Time, bool)
}

// RebuildPolicy answers whether a Job whose condition is
// ConditionCheckDependencies really needs to run.
type RebuildPolicy interface {
	// ShouldRebuild reports whether the Job's inputs changed since its
	// outputs were produced. Implementations err on the side of true.
	ShouldRebuild(baseInput, output string) bool

	// Commit records that the Job ran successfully, so the next run can
	// answer ShouldRebuild from the new state.
	Commit(baseInput, output string) error
}
