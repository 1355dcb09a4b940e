package fsx

import (
	"time"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
)

// StampPolicy implements ports.RebuildPolicy by comparing the input's content
// stamp against the record of the last successful run. Timestamps already
// filtered the obvious cases; this answers "did the input really change" when
// the mtimes say it did not.
type StampPolicy struct {
	hasher *Hasher
	store  ports.BuildRecordStore
}

// NewStampPolicy creates a StampPolicy over the given record store.
func NewStampPolicy(hasher *Hasher, store ports.BuildRecordStore) *StampPolicy {
	return &StampPolicy{hasher: hasher, store: store}
}

// ShouldRebuild reports whether the job's input changed since output was last
// produced. Any doubt (missing record, unreadable input) means rebuild.
func (p *StampPolicy) ShouldRebuild(baseInput, output string) bool {
	if baseInput == "" || output == "" {
		return true
	}
	record, err := p.store.Get(output)
	if err != nil || record == nil {
		return true
	}
	stamp, err := p.hasher.ComputeFileHash(baseInput)
	if err != nil {
		return true
	}
	return stamp != record.InputHash
}

// Commit records the input stamp after a successful run.
func (p *StampPolicy) Commit(baseInput, output string) error {
	if baseInput == "" || output == "" {
		return nil
	}
	stamp, err := p.hasher.ComputeFileHash(baseInput)
	if err != nil {
		return err
	}
	return p.store.Put(domain.BuildRecord{
		Output:    output,
		InputHash: stamp,
		Timestamp: time.Now(),
	})
}

var _ ports.RebuildPolicy = (*StampPolicy)(nil)
