package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/otto/internal/core/domain"
)

func TestFileType_SuffixRoundTrip(t *testing.T) {
	cases := map[domain.FileType]string{
		domain.TypeSource:       "ot",
		domain.TypeObject:       "o",
		domain.TypeAssembly:     "s",
		domain.TypeModule:       "otm",
		domain.TypeModuleDoc:    "otdoc",
		domain.TypeHeader:       "h",
		domain.TypeDeps:         "d",
		domain.TypeDiagnostics:  "dia",
		domain.TypeDebugSymbols: "dSYM",
		domain.TypeImage:        "",
		domain.TypeNothing:      "",
	}
	for ft, want := range cases {
		assert.Equal(t, want, ft.Suffix(), "type %v", ft)
	}
}

func TestFileType_Classification(t *testing.T) {
	assert.True(t, domain.TypeSource.IsPartOfCompilation())
	assert.False(t, domain.TypeObject.IsPartOfCompilation())

	assert.True(t, domain.TypeObject.IsLinkerInput())
	assert.True(t, domain.TypeModule.IsLinkerInput())
	assert.False(t, domain.TypeSource.IsLinkerInput())

	assert.True(t, domain.TypeAssembly.IsTextual())
	assert.True(t, domain.TypeDeps.IsTextual())
	assert.False(t, domain.TypeObject.IsTextual())
}

func TestJob_PrintableNamePrefersBaseInput(t *testing.T) {
	out := domain.NewCommandOutput(domain.TypeObject)
	out.AddPrimary("a.o", "a.ot")
	j := &domain.Job{Kind: domain.ActionCompile, Output: out}
	assert.Equal(t, "compile a.ot", j.PrintableName())

	linkOut := domain.NewCommandOutput(domain.TypeImage)
	linkOut.AddPrimary("demo", "")
	link := &domain.Job{Kind: domain.ActionLink, Output: linkOut}
	assert.Equal(t, "link demo", link.PrintableName())
}

func TestJob_StringRendersCommandLine(t *testing.T) {
	j := &domain.Job{
		Executable: "ottoc",
		Args:       []string{"-frontend", "-c", "a.ot", "-o", "a.o"},
		Output:     domain.NewCommandOutput(domain.TypeObject),
	}
	assert.Equal(t, "ottoc -frontend -c a.ot -o a.o", j.String())
}

func TestCommandOutput_AdditionalPaths(t *testing.T) {
	out := domain.NewCommandOutput(domain.TypeObject)
	out.AddPrimary("a.o", "a.ot")
	out.SetAdditional(domain.TypeModule, "a.otm")

	assert.Equal(t, "a.o", out.PrimaryPath())
	assert.Equal(t, "a.ot", out.BaseInput())
	assert.Equal(t, "a.otm", out.AdditionalPath(domain.TypeModule))
	assert.Empty(t, out.AdditionalPath(domain.TypeHeader))
}

func TestActionConstructors_Ownership(t *testing.T) {
	in := domain.NewInputAction("a.ot", domain.TypeSource)
	compile := domain.NewCompileAction([]*domain.Action{in}, domain.TypeObject)
	link := domain.NewLinkAction([]*domain.Action{compile})
	dsym := domain.NewGenerateDebugSymbolsAction(link)

	assert.True(t, compile.OwnsInputs)
	assert.True(t, link.OwnsInputs)
	assert.False(t, dsym.OwnsInputs)
	assert.Equal(t, domain.TypeDebugSymbols, dsym.Type)
}
