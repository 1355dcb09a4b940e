package toolchain

import (
	"strconv"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
	"go.trai.ch/zerr"
)

// frontendTool drives the otto frontend for compile, module-merge, and REPL
// steps.
type frontendTool struct {
	chain *Chain
}

func (t *frontendTool) Name() string { return "ottoc" }

func (t *frontendTool) ConstructJob(req ports.ToolJobRequest) (*domain.Job, error) {
	args := []string{"-frontend"}

	switch req.Action.Kind {
	case domain.ActionCompile:
		args = append(args, "-c")
		if req.Info.Mode == domain.ModeSingleCompile && req.Info.NumThreads > 0 {
			args = append(args, "-num-threads", strconv.Itoa(req.Info.NumThreads))
		}
		args = append(args, req.BaseInputs...)

	case domain.ActionMergeModule:
		args = append(args, "-merge-modules")
		for _, in := range req.Inputs.Jobs() {
			if p := in.Output.AdditionalPath(domain.TypeModule); p != "" {
				args = append(args, p)
				continue
			}
			args = append(args, in.Output.PrimaryPath())
		}
		args = append(args, req.BaseInputs...)

	case domain.ActionREPL:
		args = append(args, "-repl")

	case domain.ActionInput, domain.ActionLink, domain.ActionGenerateDebugSymbols:
		return nil, zerr.With(zerr.With(domain.ErrNoToolForAction, "tool", t.Name()), "action", req.Action.Kind.String())
	}

	args = append(args, "-module-name", req.Info.ModuleName, "-target", t.chain.Triple())

	if req.Info.GenerateDebugInfo {
		args = append(args, "-g")
	}
	if p := req.Output.AdditionalPath(domain.TypeModule); p != "" {
		args = append(args, "-emit-module-path", p)
	}
	if p := req.Output.AdditionalPath(domain.TypeModuleDoc); p != "" {
		args = append(args, "-emit-module-doc-path", p)
	}
	if p := req.Output.AdditionalPath(domain.TypeHeader); p != "" {
		args = append(args, "-emit-header-path", p)
	}
	if p := req.Output.AdditionalPath(domain.TypeDeps); p != "" {
		args = append(args, "-emit-dependencies-path", p)
	}
	if p := req.Output.AdditionalPath(domain.TypeDiagnostics); p != "" {
		args = append(args, "-serialize-diagnostics-path", p)
	}

	args = append(args, req.Args...)

	for _, primary := range req.Output.Primaries {
		if primary.Path != "" {
			args = append(args, "-o", primary.Path)
		}
	}

	return &domain.Job{
		Kind:       req.Action.Kind,
		Executable: "ottoc",
		Args:       args,
		Inputs:     req.Inputs,
		Output:     req.Output,
	}, nil
}

// linkerTool links objects into an image via the system clang driver. Module
// inputs are dependency edges only; they do not appear on the link line.
type linkerTool struct {
	chain *Chain
}

func (t *linkerTool) Name() string { return "linker" }

func (t *linkerTool) ConstructJob(req ports.ToolJobRequest) (*domain.Job, error) {
	var args []string

	for _, in := range req.Inputs.Jobs() {
		if in.Output.Type != domain.TypeObject {
			continue
		}
		for _, primary := range in.Output.Primaries {
			args = append(args, primary.Path)
		}
	}
	args = append(args, req.BaseInputs...)

	if req.Info.LinkKind == domain.LinkDynamicLibrary {
		args = append(args, "-shared")
	}
	if req.Info.GenerateDebugInfo {
		args = append(args, "-g")
	}
	args = append(args, "-target", t.chain.Triple())
	args = append(args, req.Args...)
	args = append(args, "-o", req.Output.PrimaryPath())

	return &domain.Job{
		Kind:       req.Action.Kind,
		Executable: "clang",
		Args:       args,
		Inputs:     req.Inputs,
		Output:     req.Output,
	}, nil
}

// dsymTool extracts debug symbols from a linked image.
type dsymTool struct {
	chain *Chain
}

func (t *dsymTool) Name() string { return "dsymutil" }

func (t *dsymTool) ConstructJob(req ports.ToolJobRequest) (*domain.Job, error) {
	if req.Inputs.Len() == 0 {
		return nil, zerr.With(zerr.New("debug-symbol extraction requires a linked input"), "tool", t.Name())
	}

	linked := req.Inputs.Jobs()[0].Output.PrimaryPath()
	args := []string{linked, "-o", req.Output.PrimaryPath()}

	return &domain.Job{
		Kind:       req.Action.Kind,
		Executable: "dsymutil",
		Args:       args,
		Inputs:     req.Inputs,
		Output:     req.Output,
	}, nil
}
