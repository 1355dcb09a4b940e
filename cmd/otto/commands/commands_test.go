package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/otto/cmd/otto/commands"
	"go.trai.ch/otto/internal/adapters/fsx"
	"go.trai.ch/otto/internal/adapters/logger"
	"go.trai.ch/otto/internal/adapters/shell"
	"go.trai.ch/otto/internal/adapters/telemetry"
	"go.trai.ch/otto/internal/adapters/toolchain"
	"go.trai.ch/otto/internal/app"
)

func newTestCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()

	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	store, err := fsx.NewRecordStore(filepath.Join(t.TempDir(), "records.json"))
	require.NoError(t, err)

	a := app.New(
		toolchain.NewCache(),
		shell.NewExecutor(log),
		fsx.NewStat(),
		fsx.NewStampPolicy(fsx.NewHasher(), store),
		telemetry.NewNoOp(),
		log,
	)
	return commands.New(a, log), &buf
}

func TestBuildCommand_NoArgsShowsHelp(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.SetArgs([]string{"build"})

	err := cli.Execute(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0, cli.ExitCode())
}

func TestBuildCommand_DryRun(t *testing.T) {
	cli, buf := newTestCLI(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "main.ot")
	require.NoError(t, os.WriteFile(src, []byte("func main() {}\n"), 0o644))

	cli.SetArgs([]string{
		"build", src,
		"--target", "x86_64-unknown-linux-gnu",
		"--output", filepath.Join(dir, "demo"),
		"--dry-run",
	})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, cli.ExitCode())
	assert.Contains(t, buf.String(), "ottoc")
}

func TestBuildCommand_MissingInputSetsExitCode(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.SetArgs([]string{
		"build", filepath.Join(t.TempDir(), "absent.ot"),
		"--target", "x86_64-unknown-linux-gnu",
	})

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, cli.ExitCode())
}

func TestVersionCommand(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.SetArgs([]string{"version"})

	// version writes to the process stdout; capture it.
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	execErr := cli.Execute(context.Background())

	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	require.NoError(t, execErr)
	assert.Contains(t, string(out), "otto version")
}
