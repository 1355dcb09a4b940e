package fsx

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
	"go.trai.ch/zerr"
)

// RecordStore implements ports.BuildRecordStore using a flat JSON file keyed
// by primary output path.
type RecordStore struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildRecord
}

// NewRecordStore creates a store backed by the file at the given path.
func NewRecordStore(path string) (*RecordStore, error) {
	s := &RecordStore{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildRecord),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *RecordStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read build record store")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal build record store")
	}

	return nil
}

func (s *RecordStore) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build record store")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.Wrap(err, "failed to create directory for build record store")
		}
	}

	//nolint:gosec // path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write build record store")
	}

	return nil
}

// Get retrieves the record for a primary output path.
func (s *RecordStore) Get(output string) (*domain.BuildRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.cache[output]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record.
func (s *RecordStore) Put(record domain.BuildRecord) error {
	s.mu.Lock()
	s.cache[record.Output] = record
	s.mu.Unlock()

	return s.save()
}

var _ ports.BuildRecordStore = (*RecordStore)(nil)
