package toolchain

import (
	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
	"go.trai.ch/zerr"
)

// Chain is the ToolChain for one normalized target triple. Immutable after
// construction, safe for concurrent reads.
type Chain struct {
	target triple

	frontend ports.Tool
	linker   ports.Tool
	dsym     ports.Tool
}

func newChain(t triple) *Chain {
	c := &Chain{target: t}
	c.frontend = &frontendTool{chain: c}
	c.linker = &linkerTool{chain: c}
	c.dsym = &dsymTool{chain: c}
	return c
}

// Triple returns the normalized target triple.
func (c *Chain) Triple() string {
	return c.target.String()
}

// LookupTypeForExtension classifies a filename extension into a file type.
func (c *Chain) LookupTypeForExtension(ext string) domain.FileType {
	switch ext {
	case "ot":
		return domain.TypeSource
	case "o":
		return domain.TypeObject
	case "otm":
		return domain.TypeModule
	default:
		return domain.TypeInvalid
	}
}

// SelectTool returns the Tool responsible for the action's kind. Input
// actions have no tool; asking for one is a construction failure.
func (c *Chain) SelectTool(action *domain.Action) (ports.Tool, error) {
	switch action.Kind {
	case domain.ActionCompile, domain.ActionMergeModule, domain.ActionREPL:
		return c.frontend, nil
	case domain.ActionLink:
		return c.linker, nil
	case domain.ActionGenerateDebugSymbols:
		return c.dsym, nil
	case domain.ActionInput:
	}
	return nil, zerr.With(zerr.With(domain.ErrNoToolForAction, "action", action.Kind.String()), "triple", c.Triple())
}

// SharedLibrarySuffix returns the platform shared-library suffix.
func (c *Chain) SharedLibrarySuffix() string {
	if c.target.OS == "darwin" {
		return ".dylib"
	}
	return ".so"
}

var _ ports.ToolChain = (*Chain)(nil)
