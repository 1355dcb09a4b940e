// Package toolchain implements the reference ToolChain: extension
// classification, tool selection, and argument-vector assembly for the otto
// frontend, the system linker driver, and the debug-symbol extractor.
package toolchain

import (
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cache holds one Chain per normalized target triple. It is scoped to a
// single driver run and injected into the engine, so tests can substitute a
// fake ToolChain. The graph-building pass fills it single-threaded; executing
// Jobs may query chain properties concurrently, which only takes the read
// lock.
type Cache struct {
	mu     sync.RWMutex
	chains map[string]*Chain
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{chains: make(map[string]*Chain)}
}

// Get returns the Chain for the triple, constructing it on first use. The
// empty triple selects the host. An unsupported architecture or operating
// system is a fatal configuration error, not a recoverable one.
func (c *Cache) Get(triple string) (*Chain, error) {
	norm, err := normalizeTriple(triple)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	chain, ok := c.chains[norm.String()]
	c.mu.RUnlock()
	if ok {
		return chain, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if chain, ok := c.chains[norm.String()]; ok {
		return chain, nil
	}
	chain = newChain(norm)
	c.chains[norm.String()] = chain
	return chain, nil
}

// triple is a parsed, normalized target triple.
type triple struct {
	Arch   string
	Vendor string
	OS     string
	ABI    string
}

func (t triple) String() string {
	s := t.Arch + "-" + t.Vendor + "-" + t.OS
	if t.ABI != "" {
		s += "-" + t.ABI
	}
	return s
}

// normalizeTriple parses arch-vendor-os[-abi], canonicalizing architecture
// aliases and stripping OS version suffixes.
func normalizeTriple(s string) (triple, error) {
	if s == "" {
		s = hostTriple()
	}

	parts := strings.Split(s, "-")
	if len(parts) < 3 {
		return triple{}, zerr.With(domain.ErrUnsupportedTarget, "triple", s)
	}

	t := triple{Arch: parts[0], Vendor: parts[1], OS: strings.TrimRight(parts[2], "0123456789.")}
	if len(parts) > 3 {
		t.ABI = parts[3]
	}

	switch t.Arch {
	case "arm64":
		t.Arch = "aarch64"
	case "amd64":
		t.Arch = "x86_64"
	}

	switch t.Arch {
	case "x86_64", "aarch64":
	default:
		return triple{}, zerr.With(zerr.With(domain.ErrUnsupportedTarget, "triple", s), "arch", t.Arch)
	}

	switch t.OS {
	case "linux", "darwin":
	default:
		return triple{}, zerr.With(zerr.With(domain.ErrUnsupportedTarget, "triple", s), "os", t.OS)
	}

	return t, nil
}

// hostTriple synthesizes the triple of the machine the driver runs on.
func hostTriple() string {
	vendor := "unknown"
	if runtime.GOOS == "darwin" {
		vendor = "apple"
	}
	return runtime.GOARCH + "-" + vendor + "-" + runtime.GOOS
}
