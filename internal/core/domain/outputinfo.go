package domain

// CompileMode selects how source inputs map onto compile steps.
type CompileMode int

const (
	// ModeStandard runs one compile invocation per source file.
	ModeStandard CompileMode = iota
	// ModeSingleCompile compiles all sources in one whole-module invocation.
	ModeSingleCompile
	// ModeImmediate is the interactive REPL; it takes no file inputs and
	// produces no on-disk top-level output.
	ModeImmediate
)

// String returns the mode name used in diagnostics.
func (m CompileMode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeSingleCompile:
		return "single-compile"
	case ModeImmediate:
		return "immediate"
	}
	return "unknown"
}

// LinkKind selects the kind of image a link step produces.
type LinkKind int

const (
	// LinkNone requests no linking.
	LinkNone LinkKind = iota
	// LinkExecutable links an executable image.
	LinkExecutable
	// LinkDynamicLibrary links a shared library.
	LinkDynamicLibrary
)

// OutputInfo describes the requested outputs of one driver invocation. It is
// computed from the command line before graph construction and read-only
// afterwards.
type OutputInfo struct {
	Mode     CompileMode
	LinkKind LinkKind

	// CompileOutputType is the artifact type each compile step produces.
	CompileOutputType FileType

	ShouldEmitModule      bool
	ShouldGenerateHeader  bool
	ShouldTrackDependencies bool
	SerializeDiagnostics  bool
	GenerateDebugInfo     bool

	// ModuleName names the module being built. ModuleNameIsFallback is set
	// when the name was synthesized rather than given explicitly, in which
	// case linked-image naming falls back to the first input's stem.
	ModuleName           string
	ModuleNameIsFallback bool

	// OutputPath is the single explicit total-output path (-o), if any.
	OutputPath string
	// ModuleOutputPath and HeaderOutputPath are kind-specific overrides.
	ModuleOutputPath string
	HeaderOutputPath string

	// NumThreads enables multi-threaded whole-module compilation when > 0,
	// in which case the single compile Job carries one primary output per
	// source input.
	NumThreads int
}

// ShouldLink reports whether a link step was requested.
func (i *OutputInfo) ShouldLink() bool {
	return i.LinkKind != LinkNone
}
