// Package fsx implements the filesystem-facing adapters: timestamp queries,
// content stamping, and the build-record store behind the content-stamp
// rebuild policy.
package fsx

import (
	"os"
	"time"

	"go.trai.ch/otto/internal/core/ports"
)

// Stat implements ports.FileStat against the real filesystem.
type Stat struct{}

// NewStat creates a Stat.
func NewStat() *Stat {
	return &Stat{}
}

// ModTime returns path's modification time; false when it does not exist.
func (s *Stat) ModTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

var _ ports.FileStat = (*Stat)(nil)
