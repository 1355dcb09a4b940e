package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/otto/internal/app"
	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "build [inputs...]",
		Short: "Compile and link otto sources",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			c.applyVerbose(cmd)

			opts.Inputs = args
			if opts.Jobs <= 0 {
				opts.Jobs = 1
			}

			result, err := c.app.Build(cmd.Context(), opts)
			c.exitCode = result.Code
			if err != nil {
				return err
			}
			if result.Code != 0 {
				return zerr.With(zerr.With(domain.ErrBuildFailed, "code", result.Code), "crashed", result.Crashed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Target, "target", "", "Target triple, e.g. x86_64-unknown-linux-gnu (defaults to the host)")
	cmd.Flags().StringVar(&opts.ModuleName, "module-name", "", "Name of the module being built")
	cmd.Flags().StringVarP(&opts.OutputPath, "output", "o", "", "Write output to this path ('-' for stdout where textual)")
	cmd.Flags().StringVar(&opts.ModuleOutputPath, "emit-module-path", "", "Write the merged module file to this path")
	cmd.Flags().StringVar(&opts.HeaderOutputPath, "emit-header-path", "", "Write the generated header to this path")
	cmd.Flags().StringVar(&opts.OutputFileMapPath, "output-file-map", "", "YAML map from inputs to per-kind output paths")

	cmd.Flags().BoolVarP(&opts.CompileOnly, "compile-only", "c", false, "Compile without linking")
	cmd.Flags().BoolVarP(&opts.EmitAssembly, "emit-assembly", "S", false, "Emit assembly instead of objects")
	cmd.Flags().BoolVar(&opts.EmitModule, "emit-module", false, "Emit a merged module file")
	cmd.Flags().BoolVar(&opts.EmitLibrary, "emit-library", false, "Link a shared library instead of an executable")
	cmd.Flags().BoolVar(&opts.WholeModule, "whole-module", false, "Compile all sources in a single frontend invocation")
	cmd.Flags().BoolVarP(&opts.DebugInfo, "debug-info", "g", false, "Generate debug information")
	cmd.Flags().BoolVar(&opts.Incremental, "incremental", false, "Track dependencies and skip up-to-date jobs")

	cmd.Flags().IntVar(&opts.NumThreads, "num-threads", 0, "Frontend threads in whole-module mode")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", 1, "Maximum concurrent jobs")
	cmd.Flags().BoolVar(&opts.SaveTemps, "save-temps", false, "Keep temporary output files")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print jobs without executing them")
	cmd.Flags().BoolVar(&opts.Progress, "progress", false, "Render live per-job progress")

	cmd.Flags().StringArrayVar(&opts.ExtraArgs, "Xtool", nil, "Pass an extra argument through to every tool")

	return cmd
}
