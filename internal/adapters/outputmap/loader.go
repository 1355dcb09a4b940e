// Package outputmap loads the optional user-supplied output file map: a
// record-oriented YAML table mapping (input file, output kind) to an explicit
// output path. The driver consults it and never mutates it.
package outputmap

import (
	"os"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Map implements ports.OutputFileMap.
type Map struct {
	entries map[string]map[domain.FileType]string
}

// mapFile is the on-disk structure: one record per input file, each mapping
// output-kind names to paths. The empty-string record supplies paths for
// outputs with no associated input.
type mapFile map[string]map[string]string

// Load reads an output file map from path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read output file map")
	}
	return Parse(data)
}

// Parse parses output file map records from raw YAML.
func Parse(data []byte) (*Map, error) {
	var raw mapFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, "failed to parse output file map")
	}

	m := &Map{entries: make(map[string]map[domain.FileType]string, len(raw))}
	for input, kinds := range raw {
		record := make(map[domain.FileType]string, len(kinds))
		for name, outPath := range kinds {
			kind, ok := kindFromName(name)
			if !ok {
				return nil, zerr.With(zerr.With(zerr.New("unknown output kind in output file map"), "kind", name), "input", input)
			}
			record[kind] = outPath
		}
		m.entries[input] = record
	}
	return m, nil
}

// Lookup returns the explicit path for (baseInput, kind), if present.
func (m *Map) Lookup(baseInput string, kind domain.FileType) (string, bool) {
	record, ok := m.entries[baseInput]
	if !ok {
		return "", false
	}
	path, ok := record[kind]
	return path, ok
}

// kindFromName maps the record key names onto file types. The names mirror
// FileType.String().
func kindFromName(name string) (domain.FileType, bool) {
	switch name {
	case "object":
		return domain.TypeObject, true
	case "assembly":
		return domain.TypeAssembly, true
	case "module":
		return domain.TypeModule, true
	case "module-doc":
		return domain.TypeModuleDoc, true
	case "header":
		return domain.TypeHeader, true
	case "dependencies":
		return domain.TypeDeps, true
	case "diagnostics":
		return domain.TypeDiagnostics, true
	case "image":
		return domain.TypeImage, true
	case "debug-symbols":
		return domain.TypeDebugSymbols, true
	}
	return domain.TypeInvalid, false
}

var _ ports.OutputFileMap = (*Map)(nil)
