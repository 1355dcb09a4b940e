package shell_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otto/internal/adapters/shell"
	"go.trai.ch/otto/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(error)          {}

func shellJob(args ...string) *domain.Job {
	return &domain.Job{
		Kind:       domain.ActionCompile,
		Executable: "sh",
		Args:       args,
		Inputs:     domain.NewJobList(),
		Output:     domain.NewCommandOutput(domain.TypeObject),
	}
}

func TestExecute_SuccessfulProcess(t *testing.T) {
	e := shell.NewExecutor(nopLogger{})

	var stdout bytes.Buffer
	res, err := e.Execute(context.Background(), shellJob("-c", "echo built"), &stdout, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.False(t, res.Crashed)
	assert.Equal(t, "built\n", stdout.String())
}

func TestExecute_NonzeroExitIsNotAnError(t *testing.T) {
	e := shell.NewExecutor(nopLogger{})

	res, err := e.Execute(context.Background(), shellJob("-c", "exit 7"), io.Discard, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, 7, res.ExitCode)
	assert.False(t, res.Crashed)
}

func TestExecute_MissingExecutableCrashes(t *testing.T) {
	e := shell.NewExecutor(nopLogger{})

	job := shellJob()
	job.Executable = "definitely-not-a-real-tool"
	res, err := e.Execute(context.Background(), job, io.Discard, io.Discard)

	require.NoError(t, err)
	assert.True(t, res.Crashed)
	assert.Equal(t, -1, res.ExitCode)
}

func TestExecute_SignalledProcessCrashes(t *testing.T) {
	e := shell.NewExecutor(nopLogger{})

	res, err := e.Execute(context.Background(), shellJob("-c", "kill -KILL $$"), io.Discard, io.Discard)

	require.NoError(t, err)
	assert.True(t, res.Crashed)
}

func TestExecute_CancelledContextReturnsError(t *testing.T) {
	e := shell.NewExecutor(nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Execute(ctx, shellJob("-c", "sleep 5"), io.Discard, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}
