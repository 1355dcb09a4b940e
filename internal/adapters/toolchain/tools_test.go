package toolchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otto/internal/adapters/toolchain"
	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
)

func linuxChain(t *testing.T) *toolchain.Chain {
	t.Helper()
	chain, err := toolchain.NewCache().Get("x86_64-unknown-linux-gnu")
	require.NoError(t, err)
	return chain
}

func TestFrontendTool_CompileArguments(t *testing.T) {
	chain := linuxChain(t)
	action := domain.NewCompileAction(nil, domain.TypeObject)
	tool, err := chain.SelectTool(action)
	require.NoError(t, err)

	out := domain.NewCommandOutput(domain.TypeObject)
	out.AddPrimary("a.o", "a.ot")

	job, err := tool.ConstructJob(ports.ToolJobRequest{
		Action:     action,
		Inputs:     domain.NewJobList(),
		Output:     out,
		BaseInputs: []string{"a.ot"},
		Args:       []string{"-Onone"},
		Info: &domain.OutputInfo{
			Mode:              domain.ModeStandard,
			CompileOutputType: domain.TypeObject,
			ModuleName:        "demo",
			GenerateDebugInfo: true,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ottoc", job.Executable)
	assert.Equal(t, []string{
		"-frontend", "-c", "a.ot",
		"-module-name", "demo",
		"-target", "x86_64-unknown-linux-gnu",
		"-g",
		"-Onone",
		"-o", "a.o",
	}, job.Args)
}

func TestFrontendTool_EmitsAuxiliaryPaths(t *testing.T) {
	chain := linuxChain(t)
	action := domain.NewCompileAction(nil, domain.TypeObject)
	tool, err := chain.SelectTool(action)
	require.NoError(t, err)

	out := domain.NewCommandOutput(domain.TypeObject)
	out.AddPrimary("a.o", "a.ot")
	out.SetAdditional(domain.TypeModule, "a.otm")
	out.SetAdditional(domain.TypeDeps, "a.d")
	out.SetAdditional(domain.TypeDiagnostics, "a.dia")

	job, err := tool.ConstructJob(ports.ToolJobRequest{
		Action:     action,
		Inputs:     domain.NewJobList(),
		Output:     out,
		BaseInputs: []string{"a.ot"},
		Info:       &domain.OutputInfo{ModuleName: "demo"},
	})
	require.NoError(t, err)

	assert.Contains(t, job.Args, "-emit-module-path")
	assert.Contains(t, job.Args, "a.otm")
	assert.Contains(t, job.Args, "-emit-dependencies-path")
	assert.Contains(t, job.Args, "a.d")
	assert.Contains(t, job.Args, "-serialize-diagnostics-path")
	assert.Contains(t, job.Args, "a.dia")
}

func TestFrontendTool_RejectsLinkActions(t *testing.T) {
	chain := linuxChain(t)
	compileAction := domain.NewCompileAction(nil, domain.TypeObject)
	tool, err := chain.SelectTool(compileAction)
	require.NoError(t, err)

	_, err = tool.ConstructJob(ports.ToolJobRequest{
		Action: domain.NewLinkAction(nil),
		Inputs: domain.NewJobList(),
		Output: domain.NewCommandOutput(domain.TypeImage),
		Info:   &domain.OutputInfo{ModuleName: "demo"},
	})
	assert.ErrorIs(t, err, domain.ErrNoToolForAction)
}

func TestLinkerTool_LinksObjectsOnly(t *testing.T) {
	chain := linuxChain(t)
	action := domain.NewLinkAction(nil)
	tool, err := chain.SelectTool(action)
	require.NoError(t, err)

	objOut := domain.NewCommandOutput(domain.TypeObject)
	objOut.AddPrimary("a.o", "a.ot")
	objJob := &domain.Job{Kind: domain.ActionCompile, Inputs: domain.NewJobList(), Output: objOut}

	// Module merges feed the link for ordering only; they must not appear
	// on the link line.
	modOut := domain.NewCommandOutput(domain.TypeModule)
	modOut.AddPrimary("demo.otm", "")
	modJob := &domain.Job{Kind: domain.ActionMergeModule, Inputs: domain.NewJobList(), Output: modOut}

	inputs := domain.NewJobList()
	inputs.Add(objJob)
	inputs.Add(modJob)

	out := domain.NewCommandOutput(domain.TypeImage)
	out.AddPrimary("demo", "a.ot")

	job, err := tool.ConstructJob(ports.ToolJobRequest{
		Action:     action,
		Inputs:     inputs,
		Output:     out,
		BaseInputs: []string{"extra.o"},
		Info:       &domain.OutputInfo{LinkKind: domain.LinkExecutable, ModuleName: "demo"},
	})
	require.NoError(t, err)

	assert.Equal(t, "clang", job.Executable)
	assert.Equal(t, []string{
		"a.o", "extra.o",
		"-target", "x86_64-unknown-linux-gnu",
		"-o", "demo",
	}, job.Args)
}

func TestLinkerTool_SharedLibraryFlag(t *testing.T) {
	chain := linuxChain(t)
	action := domain.NewLinkAction(nil)
	tool, err := chain.SelectTool(action)
	require.NoError(t, err)

	out := domain.NewCommandOutput(domain.TypeImage)
	out.AddPrimary("libdemo.so", "a.ot")

	job, err := tool.ConstructJob(ports.ToolJobRequest{
		Action: action,
		Inputs: domain.NewJobList(),
		Output: out,
		Info:   &domain.OutputInfo{LinkKind: domain.LinkDynamicLibrary, ModuleName: "demo"},
	})
	require.NoError(t, err)

	assert.Contains(t, job.Args, "-shared")
}

func TestDsymTool_ReadsTheLinkedImage(t *testing.T) {
	chain := linuxChain(t)
	linkOut := domain.NewCommandOutput(domain.TypeImage)
	linkOut.AddPrimary("demo", "a.ot")
	linkJob := &domain.Job{Kind: domain.ActionLink, Inputs: domain.NewJobList(), Output: linkOut}

	linkAction := domain.NewLinkAction(nil)
	action := domain.NewGenerateDebugSymbolsAction(linkAction)
	tool, err := chain.SelectTool(action)
	require.NoError(t, err)

	inputs := domain.NewJobList()
	inputs.Add(linkJob)

	out := domain.NewCommandOutput(domain.TypeDebugSymbols)
	out.AddPrimary("demo.dSYM", "a.ot")

	job, err := tool.ConstructJob(ports.ToolJobRequest{
		Action: action,
		Inputs: inputs,
		Output: out,
		Info:   &domain.OutputInfo{ModuleName: "demo"},
	})
	require.NoError(t, err)

	assert.Equal(t, "dsymutil", job.Executable)
	assert.Equal(t, []string{"demo", "-o", "demo.dSYM"}, job.Args)
}
