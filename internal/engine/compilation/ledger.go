package compilation

import "sync"

// Ledger tracks temporary files created while the Job graph is built. Every
// recorded path is deleted when Perform returns, on every exit path, unless
// the caller opted into keeping intermediates. The ledger lives for one
// driver invocation and is never persisted.
type Ledger struct {
	mu    sync.Mutex
	paths []string
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddTempFile records a path for deletion after the build.
func (l *Ledger) AddTempFile(path string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, path)
}

// Paths returns a snapshot of the recorded paths.
func (l *Ledger) Paths() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.paths))
	copy(out, l.paths)
	return out
}
