// Package compilation executes the Job graph: it owns the top-level Job list,
// the parallelism budget, and the temp-file ledger, and returns the aggregate
// build result.
package compilation

import (
	"context"
	"os"
	"sync"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
	"go.trai.ch/zerr"
)

// CrashExitCode is the distinguished result code reported when any tool
// process terminated abnormally instead of exiting. Callers use it to tell
// "the tool disagreed with the input" apart from "the tool itself broke".
const CrashExitCode = -2

// JobStatus represents the execution status of a Job.
type JobStatus string

const (
	// StatusPending indicates the Job is waiting to be executed.
	StatusPending JobStatus = "Pending"
	// StatusRunning indicates the Job is currently executing.
	StatusRunning JobStatus = "Running"
	// StatusCompleted indicates the Job finished successfully.
	StatusCompleted JobStatus = "Completed"
	// StatusFailed indicates the Job's process exited nonzero or crashed.
	StatusFailed JobStatus = "Failed"
	// StatusCached indicates the Job was skipped because its outputs were
	// up to date.
	StatusCached JobStatus = "Cached"
	// StatusSkipped indicates the Job never started because a Job it
	// depends on failed.
	StatusSkipped JobStatus = "Skipped"
)

// Result is the aggregate outcome of one Perform call. Code follows the exit
// code contract: 0 on full success, the first failing Job's exit code on an
// ordinary failure, CrashExitCode when any process died abnormally. Err is
// reserved for driver-side failures such as a cancelled context.
type Result struct {
	Code    int
	Crashed bool
	Err     error
}

// Options configures a Compilation.
type Options struct {
	// Parallelism is the maximum number of concurrently in-flight Jobs.
	// Values below 1 are treated as 1.
	Parallelism int
	// SaveTemps keeps the ledger's temporary files after the build.
	SaveTemps bool
	// DryRun prints each Job's command line instead of executing it.
	DryRun bool
}

// Compilation executes a Job graph.
type Compilation struct {
	executor  ports.Executor
	logger    ports.Logger
	telemetry ports.Telemetry
	policy    ports.RebuildPolicy

	jobs   *domain.JobList
	ledger *Ledger
	opts   Options

	mu       sync.RWMutex
	statuses map[*domain.Job]JobStatus
}

// New creates a Compilation over the given top-level Job list. The ledger is
// the temp-file ledger the Job builder registered intermediates with.
func New(
	executor ports.Executor,
	logger ports.Logger,
	telemetry ports.Telemetry,
	policy ports.RebuildPolicy,
	jobs *domain.JobList,
	ledger *Ledger,
	opts Options,
) *Compilation {
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	return &Compilation{
		executor:  executor,
		logger:    logger,
		telemetry: telemetry,
		policy:    policy,
		jobs:      jobs,
		ledger:    ledger,
		opts:      opts,
		statuses:  make(map[*domain.Job]JobStatus),
	}
}

// Status returns the recorded status of a Job.
func (c *Compilation) Status(j *domain.Job) JobStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statuses[j]
}

func (c *Compilation) setStatus(j *domain.Job, s JobStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statuses[j] = s
}

// Perform executes the Job graph. A Job starts only after every Job in its
// input set has completed; at most Options.Parallelism Jobs are in flight at
// once. Temporary files are cleaned up on every exit path.
func (c *Compilation) Perform(ctx context.Context) Result {
	defer c.cleanupTempFiles()

	state := c.newRunState(ctx)

	for !state.isDone() {
		state.schedule()

		if state.isDone() {
			break
		}

		if state.ctx.Err() != nil && state.active == 0 {
			break
		}

		select {
		case res := <-state.resultsCh:
			state.handleResult(res)
		case <-state.ctx.Done():
		}
	}

	result := Result{Code: state.firstFailCode, Crashed: state.crashed}
	if state.crashed {
		result.Code = CrashExitCode
	}
	if err := state.ctx.Err(); err != nil {
		result.Err = err
		if result.Code == 0 {
			result.Code = 1
		}
	}
	return result
}

func (c *Compilation) cleanupTempFiles() {
	if c.opts.SaveTemps {
		return
	}
	for _, path := range c.ledger.Paths() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			c.logger.Debug("failed to remove temporary file", "path", path, "error", err)
		}
	}
}

type jobResult struct {
	job     *domain.Job
	process domain.ProcessResult
	err     error
}

type runState struct {
	c   *Compilation
	ctx context.Context

	inDegree   map[*domain.Job]int
	dependents map[*domain.Job][]*domain.Job
	ready      []*domain.Job
	active     int
	resultsCh  chan jobResult

	firstFailCode int
	crashed       bool
}

func (c *Compilation) newRunState(ctx context.Context) *runState {
	all := collectJobs(c.jobs)

	inDegree := make(map[*domain.Job]int, len(all))
	dependents := make(map[*domain.Job][]*domain.Job, len(all))
	for _, j := range all {
		inDegree[j] = j.Inputs.Len()
		for _, in := range j.Inputs.Jobs() {
			dependents[in] = append(dependents[in], j)
		}
		c.setStatus(j, StatusPending)
	}

	var ready []*domain.Job
	for _, j := range all {
		if inDegree[j] == 0 {
			ready = append(ready, j)
		}
	}

	return &runState{
		c:          c,
		ctx:        ctx,
		inDegree:   inDegree,
		dependents: dependents,
		ready:      ready,
		resultsCh:  make(chan jobResult, c.opts.Parallelism),
	}
}

// collectJobs flattens the Job DAG into a deduplicated list. Diamond-shared
// Jobs appear exactly once regardless of how many JobLists reference them.
func collectJobs(top *domain.JobList) []*domain.Job {
	var all []*domain.Job
	seen := make(map[*domain.Job]bool)

	var visit func(j *domain.Job)
	visit = func(j *domain.Job) {
		if seen[j] {
			return
		}
		seen[j] = true
		for _, in := range j.Inputs.Jobs() {
			visit(in)
		}
		all = append(all, j)
	}

	for _, j := range top.Jobs() {
		visit(j)
	}
	return all
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.c.opts.Parallelism && state.ctx.Err() == nil {
		job := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.c.setStatus(job, StatusRunning)

		go func(j *domain.Job) {
			process, err := state.c.runJob(state.ctx, j)
			state.resultsCh <- jobResult{job: j, process: process, err: err}
		}(job)
	}
}

// runJob runs a single Job, honoring its condition and the dry-run flag.
func (c *Compilation) runJob(ctx context.Context, job *domain.Job) (domain.ProcessResult, error) {
	if c.opts.DryRun {
		c.logger.Info(job.String())
		return domain.ProcessResult{}, nil
	}

	base := job.Output.BaseInput()
	primary := job.Output.PrimaryPath()

	if job.Condition == domain.ConditionCheckDependencies && !c.policy.ShouldRebuild(base, primary) {
		c.setStatus(job, StatusCached)
		_, v := c.telemetry.Record(ctx, job.PrintableName())
		v.Cached()
		return domain.ProcessResult{}, nil
	}

	vctx, v := c.telemetry.Record(ctx, job.PrintableName())
	c.logger.Debug("running job", "job", job.PrintableName(), "executable", job.Executable)

	process, err := c.executor.Execute(vctx, job, v.Stdout(), v.Stderr())
	switch {
	case err != nil:
		v.Complete(err)
	case process.ExitCode != 0 || process.Crashed:
		v.Complete(zerr.With(zerr.New("job failed"), "exit_code", process.ExitCode))
	default:
		v.Complete(nil)
		if commitErr := c.policy.Commit(base, primary); commitErr != nil {
			c.logger.Debug("failed to commit build record", "job", job.PrintableName(), "error", commitErr)
		}
	}
	return process, err
}

func (state *runState) handleResult(res jobResult) {
	state.active--

	failed := res.err != nil || res.process.Crashed || res.process.ExitCode != 0
	if !failed {
		if state.c.Status(res.job) != StatusCached {
			state.c.setStatus(res.job, StatusCompleted)
		}
		state.release(res.job)
		return
	}

	state.c.setStatus(res.job, StatusFailed)
	state.recordFailure(res)

	if res.job.Condition == domain.ConditionRunWithoutCascading {
		// The Job is configured to tolerate partial failure: dependents
		// may still start.
		state.release(res.job)
		return
	}
	state.skipDependents(res.job)
}

// release unblocks the Jobs waiting on the finished Job.
func (state *runState) release(job *domain.Job) {
	for _, dep := range state.dependents[job] {
		state.inDegree[dep]--
		if state.inDegree[dep] == 0 && state.c.Status(dep) == StatusPending {
			state.ready = append(state.ready, dep)
		}
	}
}

// recordFailure keeps the first observed failure's exit code; a crash anywhere
// dominates the final result.
func (state *runState) recordFailure(res jobResult) {
	if res.process.Crashed {
		state.crashed = true
	}
	if state.firstFailCode == 0 && res.process.ExitCode != 0 {
		state.firstFailCode = res.process.ExitCode
	}
	if res.err != nil {
		if state.firstFailCode == 0 {
			state.firstFailCode = 1
		}
		state.c.logger.Error(zerr.With(zerr.Wrap(res.err, "job execution failed"), "job", res.job.PrintableName()))
	}
}

// skipDependents marks every Job transitively depending on the failed Job as
// skipped so it never becomes ready. Independent branches keep running to
// surface additional diagnostics.
func (state *runState) skipDependents(job *domain.Job) {
	for _, dep := range state.dependents[job] {
		if state.c.Status(dep) == StatusSkipped {
			continue
		}
		if state.c.Status(dep) == StatusPending {
			state.c.setStatus(dep, StatusSkipped)
			state.skipDependents(dep)
		}
	}
}
