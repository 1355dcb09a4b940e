package diag_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/otto/internal/adapters/diag"
)

type countingLogger struct {
	mu     sync.Mutex
	errors []error
}

func (l *countingLogger) Debug(string, ...any) {}
func (l *countingLogger) Info(string, ...any)  {}

func (l *countingLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, err)
}

func TestSink_StartsClean(t *testing.T) {
	s := diag.NewSink(&countingLogger{})

	assert.False(t, s.HadAnyError())
	assert.Equal(t, 0, s.ErrorCount())
}

func TestSink_CountsAndForwardsErrors(t *testing.T) {
	log := &countingLogger{}
	s := diag.NewSink(log)

	s.ReportError("no such file", "path", "a.ot")
	s.ReportError("unknown input type", "path", "b.xyz", "extension", "xyz")

	assert.True(t, s.HadAnyError())
	assert.Equal(t, 2, s.ErrorCount())
	assert.Len(t, log.errors, 2)
	assert.Contains(t, log.errors[0].Error(), "no such file")
}

func TestSink_ConcurrentReports(t *testing.T) {
	s := diag.NewSink(&countingLogger{})

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			s.ReportError("boom")
		})
	}
	wg.Wait()

	assert.Equal(t, 20, s.ErrorCount())
}
