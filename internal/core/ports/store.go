package ports

import "go.trai.ch/otto/internal/core/domain"

// BuildRecordStore stores and retrieves per-output build records for the
// content-stamp rebuild policy. It lives for one driver process; nothing else
// in the driver persists state across runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the record for a primary output path.
	// Returns nil, nil if not found.
	Get(output string) (*domain.BuildRecord, error)

	// Put stores the record.
	Put(record domain.BuildRecord) error
}
