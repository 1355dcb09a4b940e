// Package plan builds the Action graph: the DAG of conceptual build steps
// derived from the compiler mode, the input list, and the requested outputs.
package plan

import (
	"path/filepath"
	"strings"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
)

// BuildActions converts the invocation into a list of top-level Actions.
// Construction errors are reported through diags; callers must poll
// Diagnostics.HadAnyError before moving on to Job construction. A nil or
// empty result with errors recorded means the phase failed closed.
func BuildActions(
	chain ports.ToolChain,
	diags ports.Diagnostics,
	info *domain.OutputInfo,
	inputs []string,
) []*domain.Action {
	if info.Mode == domain.ModeImmediate {
		if len(inputs) > 0 {
			diags.ReportError(domain.ErrREPLTakesNoInputs.Error(), "inputs", len(inputs))
			return nil
		}
		return []*domain.Action{domain.NewREPLAction()}
	}

	if len(inputs) == 0 {
		diags.ReportError(domain.ErrNoInputFiles.Error(), "mode", info.Mode.String())
		return nil
	}

	compiles, linkerInputs, moduleInputs := classifyInputs(chain, diags, info, inputs)

	// Fail closed: when every compilable input errored out, no downstream
	// action is built at all.
	if len(compiles) == 0 && diags.HadAnyError() {
		return nil
	}
	if len(compiles) == 0 && len(linkerInputs) == 0 {
		diags.ReportError(domain.ErrNoInputFiles.Error(), "mode", info.Mode.String())
		return nil
	}

	var merge *domain.Action
	if info.ShouldEmitModule && len(compiles)+len(moduleInputs) > 1 {
		merge = domain.NewMergeModuleAction(append(append([]*domain.Action{}, compiles...), moduleInputs...))
	}

	var top []*domain.Action
	if info.ShouldLink() {
		linkInputs := append(append([]*domain.Action{}, compiles...), linkerInputs...)
		link := domain.NewLinkAction(linkInputs)
		if merge != nil {
			// The merge's children are now also reachable through the
			// link action, so the merge no longer owns them.
			merge.OwnsInputs = false
			if info.GenerateDebugInfo {
				// The module timestamp has to flow into the
				// debug-info step.
				link.Inputs = append(link.Inputs, merge)
			} else {
				top = append(top, merge)
			}
		}
		top = append(top, link)
		if info.GenerateDebugInfo {
			top = append(top, domain.NewGenerateDebugSymbolsAction(link))
		}
	} else {
		top = append(top, compiles...)
		if merge != nil {
			top = append(top, merge)
		}
	}

	return top
}

// classifyInputs maps each input file onto the action shape its type demands.
// Unrecognized inputs are reported and skipped; classification continues for
// the remaining inputs.
func classifyInputs(
	chain ports.ToolChain,
	diags ports.Diagnostics,
	info *domain.OutputInfo,
	inputs []string,
) (compiles, linkerInputs, moduleInputs []*domain.Action) {
	var compilable []*domain.Action

	for _, in := range inputs {
		ext := strings.TrimPrefix(filepath.Ext(in), ".")
		t := chain.LookupTypeForExtension(ext)

		switch {
		case t.IsPartOfCompilation():
			compilable = append(compilable, domain.NewInputAction(in, t))

		case t.IsLinkerInput():
			if !info.ShouldLink() && !(info.ShouldEmitModule && t == domain.TypeModule) {
				diags.ReportError("input is only valid when linking or merging a module", "path", in, "type", t.String())
				continue
			}
			input := domain.NewInputAction(in, t)
			if t == domain.TypeModule && info.ShouldEmitModule {
				moduleInputs = append(moduleInputs, input)
			}
			if info.ShouldLink() {
				linkerInputs = append(linkerInputs, input)
			}

		default:
			diags.ReportError(domain.ErrUnknownInputType.Error(), "path", in, "extension", ext)
		}
	}

	switch info.Mode {
	case domain.ModeStandard:
		for _, input := range compilable {
			compiles = append(compiles, domain.NewCompileAction([]*domain.Action{input}, info.CompileOutputType))
		}
	case domain.ModeSingleCompile:
		if len(compilable) > 0 {
			compiles = append(compiles, domain.NewCompileAction(compilable, info.CompileOutputType))
		}
	case domain.ModeImmediate:
		// Handled before classification.
	}

	return compiles, linkerInputs, moduleInputs
}
