// Package app implements the application layer of the otto driver: one Build
// call takes an invocation from the CLI through input classification, Action
// and Job graph construction, and Job execution.
package app

import (
	"context"
	"os"
	"runtime"

	"go.trai.ch/otto/internal/adapters/diag"
	"go.trai.ch/otto/internal/adapters/outputmap"
	"go.trai.ch/otto/internal/adapters/telemetry/progrock"
	"go.trai.ch/otto/internal/adapters/toolchain"
	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
	"go.trai.ch/otto/internal/engine/compilation"
	"go.trai.ch/otto/internal/engine/jobs"
	"go.trai.ch/otto/internal/engine/plan"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App holds the process-lifetime collaborators of the driver. Everything
// scoped to one invocation (diagnostics sink, temp-file ledger, job cache) is
// created inside Build.
type App struct {
	chains    *toolchain.Cache
	executor  ports.Executor
	stat      ports.FileStat
	policy    ports.RebuildPolicy
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates an App.
func New(
	chains *toolchain.Cache,
	executor ports.Executor,
	stat ports.FileStat,
	policy ports.RebuildPolicy,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		chains:    chains,
		executor:  executor,
		stat:      stat,
		policy:    policy,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Build runs one driver invocation. Construction-time errors abort before any
// process is spawned and surface as a non-nil error with Result.Code 1. An
// execution failure surfaces through Result.Code alone.
func (a *App) Build(ctx context.Context, opts Options) (compilation.Result, error) {
	diags := diag.NewSink(a.logger)

	if !opts.REPL {
		a.verifyInputsExist(ctx, diags, opts.Inputs)
		if diags.HadAnyError() {
			return configError(), zerr.Wrap(domain.ErrBuildFailed, "missing input files")
		}
	}

	chain, err := a.chains.Get(opts.Target)
	if err != nil {
		// Unsupported targets are fatal; construction does not continue.
		return configError(), err
	}

	info := computeOutputInfo(opts)

	actions := plan.BuildActions(chain, diags, info, opts.Inputs)
	if diags.HadAnyError() {
		return configError(), zerr.With(zerr.Wrap(domain.ErrBuildFailed, "action graph construction failed"), "errors", diags.ErrorCount())
	}

	var fileMap ports.OutputFileMap
	if opts.OutputFileMapPath != "" {
		fileMap, err = outputmap.Load(opts.OutputFileMapPath)
		if err != nil {
			return configError(), err
		}
	}

	ledger := compilation.NewLedger()
	builder := jobs.NewBuilder(chain, diags, a.stat, fileMap, ledger, info, opts.ExtraArgs, opts.SaveTemps)
	jobList := builder.BuildJobs(actions)
	if jobList == nil || diags.HadAnyError() {
		// No Job may run; drop anything the failed pass already allocated.
		removeAll(ledger.Paths())
		return configError(), zerr.With(zerr.Wrap(domain.ErrBuildFailed, "job graph construction failed"), "errors", diags.ErrorCount())
	}

	telemetry := a.telemetry
	if opts.Progress {
		recorder := progrock.New()
		defer recorder.Close() //nolint:errcheck // best effort flush
		telemetry = recorder
	}

	comp := compilation.New(a.executor, a.logger, telemetry, a.policy, jobList, ledger, compilation.Options{
		Parallelism: opts.Jobs,
		SaveTemps:   opts.SaveTemps,
		DryRun:      opts.DryRun,
	})
	result := comp.Perform(ctx)
	if result.Err != nil {
		return result, zerr.Wrap(result.Err, "build interrupted")
	}
	return result, nil
}

// verifyInputsExist stats every input concurrently and reports the missing
// ones, so the user sees all of them at once instead of one per run.
func (a *App) verifyInputsExist(ctx context.Context, diags ports.Diagnostics, inputs []string) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, in := range inputs {
		g.Go(func() error {
			if _, ok := a.stat.ModTime(in); !ok {
				diags.ReportError("no such file", "path", in)
			}
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers only report diagnostics
}

func configError() compilation.Result {
	return compilation.Result{Code: 1}
}

func removeAll(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p) //nolint:errcheck // best effort cleanup
	}
}
