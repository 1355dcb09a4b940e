package domain

import "go.trai.ch/zerr"

var (
	// ErrNoInputFiles is returned when a batch-mode invocation has nothing
	// to compile.
	ErrNoInputFiles = zerr.New("no input files")

	// ErrREPLTakesNoInputs is returned when immediate mode is requested
	// together with input files.
	ErrREPLTakesNoInputs = zerr.New("REPL mode requires no input files")

	// ErrUnknownInputType is returned for an input file whose extension the
	// ToolChain does not recognize.
	ErrUnknownInputType = zerr.New("unknown input file type")

	// ErrAmbiguousOutput is returned when a single explicit output path was
	// given but multiple top-level outputs would be produced.
	ErrAmbiguousOutput = zerr.New("cannot specify a single output path for multiple outputs")

	// ErrNoToolForAction is returned when the ToolChain has no Tool for an
	// action kind.
	ErrNoToolForAction = zerr.New("no tool available for action")

	// ErrUnsupportedTarget is returned for a target triple whose
	// architecture or operating system is not supported. It is fatal:
	// graph construction does not continue past it.
	ErrUnsupportedTarget = zerr.New("unsupported target")

	// ErrTempFileAllocation is returned when an intermediate output could
	// not be given a temporary path.
	ErrTempFileAllocation = zerr.New("failed to allocate temporary output")

	// ErrBuildFailed wraps a nonzero overall build result at the CLI
	// boundary so main can map it to an exit code without re-logging.
	ErrBuildFailed = zerr.New("build failed")
)
