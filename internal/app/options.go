package app

import (
	"path/filepath"
	"strings"

	"go.trai.ch/otto/internal/core/domain"
)

// Options is the CLI-facing description of one driver invocation.
type Options struct {
	Inputs []string
	Target string

	ModuleName        string
	OutputPath        string
	ModuleOutputPath  string
	HeaderOutputPath  string
	OutputFileMapPath string

	CompileOnly  bool
	EmitAssembly bool
	EmitModule   bool
	EmitLibrary  bool
	WholeModule  bool
	REPL         bool
	DebugInfo    bool
	Incremental  bool

	NumThreads int
	Jobs       int
	SaveTemps  bool
	DryRun     bool
	Progress   bool

	// ExtraArgs are passed through verbatim to every tool invocation.
	ExtraArgs []string
}

// computeOutputInfo derives the invocation-wide output descriptor from the
// command-line options.
func computeOutputInfo(opts Options) *domain.OutputInfo {
	info := &domain.OutputInfo{
		Mode:              domain.ModeStandard,
		CompileOutputType: domain.TypeObject,
		LinkKind:          domain.LinkExecutable,

		ShouldEmitModule:        opts.EmitModule || opts.EmitLibrary,
		ShouldGenerateHeader:    opts.HeaderOutputPath != "",
		ShouldTrackDependencies: opts.Incremental,
		SerializeDiagnostics:    opts.Incremental,
		GenerateDebugInfo:       opts.DebugInfo,

		OutputPath:       opts.OutputPath,
		ModuleOutputPath: opts.ModuleOutputPath,
		HeaderOutputPath: opts.HeaderOutputPath,
		NumThreads:       opts.NumThreads,
	}

	switch {
	case opts.REPL:
		info.Mode = domain.ModeImmediate
	case opts.WholeModule:
		info.Mode = domain.ModeSingleCompile
	}

	if opts.EmitAssembly {
		info.CompileOutputType = domain.TypeAssembly
	}

	switch {
	case opts.REPL, opts.CompileOnly, opts.EmitAssembly:
		info.LinkKind = domain.LinkNone
	case opts.EmitLibrary:
		info.LinkKind = domain.LinkDynamicLibrary
	}

	info.ModuleName = opts.ModuleName
	if info.ModuleName == "" {
		info.ModuleName = fallbackModuleName(opts)
		info.ModuleNameIsFallback = true
	}

	return info
}

// fallbackModuleName synthesizes a module name from the explicit output path,
// the first input, or the last-resort default.
func fallbackModuleName(opts Options) string {
	if opts.OutputPath != "" && opts.OutputPath != "-" {
		if name := stem(opts.OutputPath); name != "" {
			return name
		}
	}
	if len(opts.Inputs) > 0 {
		if name := stem(opts.Inputs[0]); name != "" {
			return name
		}
	}
	return "main"
}

func stem(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
