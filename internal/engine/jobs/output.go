package jobs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/zerr"
)

// outputFilename derives the primary output path for an action. The rules
// apply in priority order; the first match wins:
//
//  1. an explicit output-file-map entry for (base input, output kind)
//  2. a kind-specific command-line override (module path, header path)
//  3. at top level, the single explicit output path, with a standard-output
//     fallback for textual outputs
//  4. kind-specific synthesis (merged module, debug symbols, linked image,
//     or <stem>.<suffix>)
//  5. below top level, a fresh unique temporary file
//
// The boolean reports whether rule 5 allocated a temporary file.
func (b *Builder) outputFilename(
	a *domain.Action,
	inputJobs *domain.JobList,
	base string,
	atTopLevel bool,
) (string, bool, error) {
	// 1. Explicit output file map entry.
	if b.outputMap != nil {
		if p, ok := b.outputMap.Lookup(base, a.Type); ok {
			return p, false, nil
		}
	}

	// 2. Kind-specific command-line override.
	if a.Type == domain.TypeModule && b.info.ModuleOutputPath != "" {
		return b.info.ModuleOutputPath, false, nil
	}
	if a.Type == domain.TypeHeader && b.info.HeaderOutputPath != "" {
		return b.info.HeaderOutputPath, false, nil
	}

	// 3. The single explicit total-output path claims the action producing
	// the invocation's requested top-level output kind.
	if atTopLevel && a.Type == b.topLevelOutputType() {
		if b.info.OutputPath != "" {
			return b.info.OutputPath, false, nil
		}
		if a.Type.IsTextual() {
			return "-", false, nil
		}
	}

	// 4. Kind-specific synthesis.
	switch a.Kind {
	case domain.ActionMergeModule:
		name := b.info.ModuleName + "." + domain.TypeModule.Suffix()
		if b.info.OutputPath != "" && b.info.OutputPath != "-" {
			return filepath.Join(filepath.Dir(b.info.OutputPath), name), false, nil
		}
		return name, false, nil

	case domain.ActionGenerateDebugSymbols:
		linked := ""
		if inputJobs.Len() > 0 {
			linked = inputJobs.Jobs()[0].Output.PrimaryPath()
		}
		return linked + "." + domain.TypeDebugSymbols.Suffix(), false, nil

	case domain.ActionLink:
		name := b.info.ModuleName
		if b.info.ModuleNameIsFallback && base != "" {
			name = stem(base)
		}
		if b.info.LinkKind == domain.LinkDynamicLibrary {
			return "lib" + name + b.chain.SharedLibrarySuffix(), false, nil
		}
		return name, false, nil

	case domain.ActionInput, domain.ActionCompile, domain.ActionREPL:
		// Fall through to the generic rules below.
	}

	if atTopLevel {
		name := b.info.ModuleName
		if base != "" {
			name = stem(base)
		}
		return name + "." + a.Type.Suffix(), false, nil
	}

	// 5. Purely intermediate artifact: allocate a fresh temporary file.
	path, err := b.allocateTempFile(base, a.Type)
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// topLevelOutputType is the artifact type the invocation's explicit output
// path refers to: the linked image when linking, the per-compile output
// otherwise.
func (b *Builder) topLevelOutputType() domain.FileType {
	if b.info.ShouldLink() {
		return domain.TypeImage
	}
	if b.info.Mode == domain.ModeImmediate {
		return domain.TypeNothing
	}
	return b.info.CompileOutputType
}

// allocateTempFile creates a unique temporary file with the right suffix and
// registers it with the compilation's temp-file ledger. Failure to allocate
// is a hard error.
func (b *Builder) allocateTempFile(base string, t domain.FileType) (string, error) {
	pattern := "otto-*"
	if base != "" {
		pattern = "otto-" + stem(base) + "-*"
	}
	if s := t.Suffix(); s != "" {
		pattern += "." + s
	}

	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempFileAllocation.Error()), "type", t.String())
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrTempFileAllocation.Error()), "path", path)
	}

	if !b.saveTemps {
		b.ledger.AddTempFile(path)
	}
	return path, nil
}

// stem returns the file name without directory or extension.
func stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// replaceSuffix swaps a path's extension for the given suffix.
func replaceSuffix(path, suffix string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + suffix
}
