package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/otto/internal/app"
	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newREPLCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive otto session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyVerbose(cmd)

			opts.REPL = true
			opts.Jobs = 1

			result, err := c.app.Build(cmd.Context(), opts)
			c.exitCode = result.Code
			if err != nil {
				return err
			}
			if result.Code != 0 {
				return zerr.With(domain.ErrBuildFailed, "code", result.Code)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Target, "target", "", "Target triple (defaults to the host)")
	cmd.Flags().StringVar(&opts.ModuleName, "module-name", "", "Name of the REPL module")

	return cmd
}
