// Package domain contains the core data model for the compilation driver:
// the Action graph, the Job graph, and the output descriptions shared by both.
package domain

// FileType tags the kind of artifact an input is or an Action produces.
type FileType int

const (
	// TypeNothing marks an Action that produces no on-disk artifact.
	TypeNothing FileType = iota
	// TypeSource is an otto source file.
	TypeSource
	// TypeObject is compiled object code.
	TypeObject
	// TypeAssembly is textual assembly output.
	TypeAssembly
	// TypeModule is a binary module file.
	TypeModule
	// TypeModuleDoc is the documentation companion of a module file.
	TypeModuleDoc
	// TypeHeader is a generated interface header.
	TypeHeader
	// TypeDeps is a dependency information file.
	TypeDeps
	// TypeDiagnostics is a serialized diagnostics file.
	TypeDiagnostics
	// TypeImage is a linked image (executable or library).
	TypeImage
	// TypeDebugSymbols is an extracted debug-symbol bundle.
	TypeDebugSymbols
	// TypeInvalid marks an input whose extension is not recognized.
	TypeInvalid
)

// Suffix returns the canonical file suffix for the type, without the leading
// dot. Image suffixes are platform-dependent and owned by the ToolChain, so
// TypeImage returns the empty string here.
func (t FileType) Suffix() string {
	switch t {
	case TypeSource:
		return "ot"
	case TypeObject:
		return "o"
	case TypeAssembly:
		return "s"
	case TypeModule:
		return "otm"
	case TypeModuleDoc:
		return "otdoc"
	case TypeHeader:
		return "h"
	case TypeDeps:
		return "d"
	case TypeDiagnostics:
		return "dia"
	case TypeDebugSymbols:
		return "dSYM"
	case TypeNothing, TypeImage, TypeInvalid:
		return ""
	}
	return ""
}

// IsTextual reports whether the type is a text format that can meaningfully be
// written to standard output when no explicit output path was requested.
func (t FileType) IsTextual() bool {
	switch t {
	case TypeAssembly, TypeDeps:
		return true
	default:
		return false
	}
}

// IsPartOfCompilation reports whether a file of this type is accepted as an
// input to a compile step.
func (t FileType) IsPartOfCompilation() bool {
	return t == TypeSource
}

// IsLinkerInput reports whether a file of this type can be handed to the
// linker directly instead of being compiled first.
func (t FileType) IsLinkerInput() bool {
	return t == TypeObject || t == TypeModule
}

// String returns a short human-readable name used in diagnostics and logs.
func (t FileType) String() string {
	switch t {
	case TypeNothing:
		return "none"
	case TypeSource:
		return "source"
	case TypeObject:
		return "object"
	case TypeAssembly:
		return "assembly"
	case TypeModule:
		return "module"
	case TypeModuleDoc:
		return "module-doc"
	case TypeHeader:
		return "header"
	case TypeDeps:
		return "dependencies"
	case TypeDiagnostics:
		return "diagnostics"
	case TypeImage:
		return "image"
	case TypeDebugSymbols:
		return "debug-symbols"
	case TypeInvalid:
		return "invalid"
	}
	return "unknown"
}
