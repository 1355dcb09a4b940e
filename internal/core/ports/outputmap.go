package ports

import "go.trai.ch/otto/internal/core/domain"

// OutputFileMap is the optional user-supplied table of explicit output paths.
// It is consulted, never mutated, during Job construction.
//
//go:generate go run go.uber.org/mock/mockgen -source=outputmap.go -destination=mocks/mock_outputmap.go -package=mocks
type OutputFileMap interface {
	// Lookup returns the explicit path for (baseInput, kind), if any.
	Lookup(baseInput string, kind domain.FileType) (string, bool)
}
