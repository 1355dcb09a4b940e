// Package commands implements the CLI commands for the otto compiler driver.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/otto/internal/app"
	"go.trai.ch/otto/internal/build"
	"go.trai.ch/otto/internal/core/ports"
)

// CLI represents the command line interface for otto.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command

	// exitCode is the process exit code of the last executed build. Zero
	// until a build command runs.
	exitCode int
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "otto",
		Short:         "The otto compiler driver",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Emit per-job debug output")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newREPLCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code of the last executed build command.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

func (c *CLI) applyVerbose(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return
	}
	if v, ok := c.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(true)
	}
}
