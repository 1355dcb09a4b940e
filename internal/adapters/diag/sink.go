// Package diag implements the diagnostics sink consumed by the engine's
// construction phases.
package diag

import (
	"sync/atomic"

	"go.trai.ch/otto/internal/core/ports"
	"go.trai.ch/zerr"
)

// Sink implements ports.Diagnostics on top of the driver logger. It is safe
// for concurrent use; one Sink is created per driver invocation so the
// had-error state never leaks across builds.
type Sink struct {
	logger ports.Logger
	errors atomic.Int64
}

// NewSink creates a Sink reporting through the given logger.
func NewSink(logger ports.Logger) *Sink {
	return &Sink{logger: logger}
}

// ReportError records an error with key/value metadata.
func (s *Sink) ReportError(msg string, kv ...any) {
	s.errors.Add(1)
	err := zerr.New(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			err = zerr.With(err, key, kv[i+1])
		}
	}
	s.logger.Error(err)
}

// HadAnyError reports whether any error was recorded.
func (s *Sink) HadAnyError() bool {
	return s.errors.Load() > 0
}

// ErrorCount returns the number of recorded errors.
func (s *Sink) ErrorCount() int {
	return int(s.errors.Load())
}

var _ ports.Diagnostics = (*Sink)(nil)
