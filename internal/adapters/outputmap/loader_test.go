package outputmap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otto/internal/adapters/outputmap"
	"go.trai.ch/otto/internal/core/domain"
)

const sampleMap = `
a.ot:
  object: build/a.o
  module: build/a.otm
  dependencies: build/a.d
b.ot:
  object: build/b.o
"":
  module: build/merged.otm
`

func TestParse_LookupPerInputAndKind(t *testing.T) {
	m, err := outputmap.Parse([]byte(sampleMap))
	require.NoError(t, err)

	path, ok := m.Lookup("a.ot", domain.TypeObject)
	require.True(t, ok)
	assert.Equal(t, "build/a.o", path)

	path, ok = m.Lookup("a.ot", domain.TypeModule)
	require.True(t, ok)
	assert.Equal(t, "build/a.otm", path)

	path, ok = m.Lookup("b.ot", domain.TypeObject)
	require.True(t, ok)
	assert.Equal(t, "build/b.o", path)

	// The empty-string record carries outputs with no associated input.
	path, ok = m.Lookup("", domain.TypeModule)
	require.True(t, ok)
	assert.Equal(t, "build/merged.otm", path)
}

func TestParse_AbsentEntriesMiss(t *testing.T) {
	m, err := outputmap.Parse([]byte(sampleMap))
	require.NoError(t, err)

	_, ok := m.Lookup("c.ot", domain.TypeObject)
	assert.False(t, ok)
	_, ok = m.Lookup("b.ot", domain.TypeModule)
	assert.False(t, ok)
}

func TestParse_RejectsUnknownKinds(t *testing.T) {
	_, err := outputmap.Parse([]byte("a.ot:\n  gibberish: x\n"))
	assert.Error(t, err)
}

func TestParse_RejectsMalformedYAML(t *testing.T) {
	_, err := outputmap.Parse([]byte("a.ot: [unclosed"))
	assert.Error(t, err)
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleMap), 0o644))

	m, err := outputmap.Load(path)
	require.NoError(t, err)

	got, ok := m.Lookup("a.ot", domain.TypeDeps)
	require.True(t, ok)
	assert.Equal(t, "build/a.d", got)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := outputmap.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
