package ports

import (
	"context"
	"io"

	"go.trai.ch/otto/internal/core/domain"
)

// Executor runs one Job as an external process.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the Job's executable with its argument vector, streaming
	// the process output to stdout and stderr.
	//
	// An ordinary nonzero exit is not an error: it is reported through the
	// result's ExitCode. Crashed is set when the process terminated
	// abnormally (or could not be started at all). The error return is
	// reserved for driver-side failures such as a cancelled context.
	Execute(ctx context.Context, job *domain.Job, stdout, stderr io.Writer) (domain.ProcessResult, error)
}
