package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records per-Job execution progress.
type Telemetry interface {
	// Record starts a vertex for one Job execution.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded Job execution.
type Vertex interface {
	// Stdout returns the writer capturing the tool's standard output.
	Stdout() io.Writer

	// Stderr returns the writer capturing the tool's error output.
	Stderr() io.Writer

	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)

	// Cached marks the vertex as skipped because its outputs were up to
	// date.
	Cached()
}
