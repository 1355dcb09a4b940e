// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates an Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs the Job's executable with its argument vector.
//
// A nonzero exit is reported through the result, not the error return. A
// process that terminated on a signal, and a process that could not be
// spawned at all, both report Crashed: upstream tooling treats "the tool
// disagreed with the input" and "the tool itself broke" differently.
func (e *Executor) Execute(ctx context.Context, job *domain.Job, stdout, stderr io.Writer) (domain.ProcessResult, error) {
	cmd := exec.CommandContext(ctx, job.Executable, job.Args...) //nolint:gosec // tool-constructed invocation
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return domain.ProcessResult{ExitCode: 0}, nil
	}

	if ctx.Err() != nil {
		return domain.ProcessResult{}, ctx.Err()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.ProcessState.Exited() {
			// Terminated by a signal rather than exiting.
			e.logger.Debug("tool crashed", "executable", job.Executable, "state", exitErr.ProcessState.String())
			return domain.ProcessResult{ExitCode: exitErr.ExitCode(), Crashed: true}, nil
		}
		return domain.ProcessResult{ExitCode: exitErr.ExitCode()}, nil
	}

	// The process never started (missing executable, permissions).
	e.logger.Debug("failed to spawn tool", "executable", job.Executable, "error", err)
	return domain.ProcessResult{ExitCode: -1, Crashed: true}, nil
}

var _ ports.Executor = (*Executor)(nil)
