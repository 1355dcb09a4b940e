// Package jobs builds the Job graph: it walks the Action DAG bottom-up and
// produces one external-process invocation per compilation-relevant Action,
// memoized so diamond-shared sub-actions yield exactly one Job.
package jobs

import (
	"os"

	"go.trai.ch/otto/internal/core/domain"
	"go.trai.ch/otto/internal/core/ports"
	"go.trai.ch/otto/internal/engine/compilation"
	"go.trai.ch/zerr"
)

// cacheKey memoizes Jobs by (Action identity, ToolChain identity) within one
// Job-graph build pass. The cache is not shared across builds.
type cacheKey struct {
	action *domain.Action
	chain  ports.ToolChain
}

// Builder constructs the Job graph for one driver invocation.
type Builder struct {
	chain     ports.ToolChain
	diags     ports.Diagnostics
	stat      ports.FileStat
	outputMap ports.OutputFileMap
	ledger    *compilation.Ledger
	info      *domain.OutputInfo

	// args are global pass-through arguments handed to every Tool.
	args      []string
	saveTemps bool
}

// NewBuilder creates a Builder. outputMap may be nil when no output file map
// was supplied.
func NewBuilder(
	chain ports.ToolChain,
	diags ports.Diagnostics,
	stat ports.FileStat,
	outputMap ports.OutputFileMap,
	ledger *compilation.Ledger,
	info *domain.OutputInfo,
	args []string,
	saveTemps bool,
) *Builder {
	return &Builder{
		chain:     chain,
		diags:     diags,
		stat:      stat,
		outputMap: outputMap,
		ledger:    ledger,
		info:      info,
		args:      args,
		saveTemps: saveTemps,
	}
}

// BuildJobs builds the Jobs for the given top-level Actions. Errors are
// reported through the diagnostics sink; a nil result means the phase failed
// and no Job may be executed.
func (b *Builder) BuildJobs(top []*domain.Action) *domain.JobList {
	if b.info.OutputPath != "" && b.info.OutputPath != "-" {
		eligible := 0
		for _, a := range top {
			if a.Type != domain.TypeNothing && a.Type == b.topLevelOutputType() {
				eligible++
			}
		}
		if eligible > 1 {
			b.diags.ReportError(domain.ErrAmbiguousOutput.Error(), "output", b.info.OutputPath, "candidates", eligible)
			return nil
		}
	}

	cache := make(map[cacheKey]*domain.Job)
	list := domain.NewJobList()
	for _, a := range top {
		if a.Kind == domain.ActionInput {
			continue
		}
		j, err := b.JobForAction(a, true, cache)
		if err != nil {
			b.diags.ReportError(err.Error(), "action", a.Kind.String())
			return nil
		}
		list.Add(j)
	}

	if b.diags.HadAnyError() {
		return nil
	}
	return list
}

// JobForAction returns the Job for a non-Input Action, creating it on first
// use and returning the memoized Job on every later one.
func (b *Builder) JobForAction(a *domain.Action, atTopLevel bool, cache map[cacheKey]*domain.Job) (*domain.Job, error) {
	key := cacheKey{action: a, chain: b.chain}
	if j, ok := cache[key]; ok {
		return j, nil
	}

	inputJobs := domain.NewJobList()
	inputJobs.OwnsJobs = a.OwnsInputs
	var baseInputs []string
	for _, in := range a.Inputs {
		if in.Kind == domain.ActionInput {
			baseInputs = append(baseInputs, in.Path)
			continue
		}
		sub, err := b.JobForAction(in, false, cache)
		if err != nil {
			return nil, err
		}
		inputJobs.Add(sub)
	}

	tool, err := b.chain.SelectTool(a)
	if err != nil {
		return nil, err
	}

	output, tempPrimary, err := b.computeOutput(a, inputJobs, baseInputs, atTopLevel)
	if err != nil {
		return nil, err
	}

	job, err := tool.ConstructJob(ports.ToolJobRequest{
		Action:     a,
		Inputs:     inputJobs,
		Output:     output,
		BaseInputs: baseInputs,
		Args:       b.args,
		Info:       b.info,
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "tool failed to construct job"), "tool", tool.Name())
	}

	b.applyCondition(job, baseInputs, tempPrimary)

	cache[key] = job
	return job, nil
}

// computeOutput derives the CommandOutput for an action: the primary output
// path(s) plus the auxiliary outputs the flags ask for. tempPrimary reports
// whether the primary output was freshly allocated as a temporary file.
func (b *Builder) computeOutput(
	a *domain.Action,
	inputJobs *domain.JobList,
	baseInputs []string,
	atTopLevel bool,
) (*domain.CommandOutput, bool, error) {
	output := domain.NewCommandOutput(a.Type)

	base := b.baseInputFor(inputJobs, baseInputs)

	tempPrimary := false
	switch {
	case a.Type == domain.TypeNothing:
		// No on-disk primary output (REPL).

	case a.Kind == domain.ActionCompile && b.info.Mode == domain.ModeSingleCompile && b.info.NumThreads > 0:
		// Multi-threaded whole-module compiles emit one primary output
		// per source input.
		for _, bi := range baseInputs {
			path, temp, err := b.outputFilename(a, inputJobs, bi, atTopLevel)
			if err != nil {
				return nil, false, err
			}
			tempPrimary = tempPrimary || temp
			output.AddPrimary(path, bi)
		}

	default:
		path, temp, err := b.outputFilename(a, inputJobs, base, atTopLevel)
		if err != nil {
			return nil, false, err
		}
		tempPrimary = temp
		output.AddPrimary(path, base)
	}

	b.attachAuxiliaryOutputs(a, output, base)
	return output, tempPrimary, nil
}

// baseInputFor picks the base input an output is derived from: the first
// direct Input child, or the first input Job's own base input.
func (b *Builder) baseInputFor(inputJobs *domain.JobList, baseInputs []string) string {
	if len(baseInputs) > 0 {
		return baseInputs[0]
	}
	if inputJobs.Len() > 0 {
		j := inputJobs.Jobs()[0]
		if base := j.Output.BaseInput(); base != "" {
			return base
		}
		return j.Output.PrimaryPath()
	}
	return ""
}

// attachAuxiliaryOutputs adds the flag-driven auxiliary outputs, each
// independently overridable through the output file map.
func (b *Builder) attachAuxiliaryOutputs(a *domain.Action, output *domain.CommandOutput, base string) {
	primary := output.PrimaryPath()

	if b.info.ShouldEmitModule && a.Kind == domain.ActionCompile && primary != "" && primary != "-" {
		modulePath := b.overrideOr(base, domain.TypeModule, replaceSuffix(primary, domain.TypeModule.Suffix()))
		output.SetAdditional(domain.TypeModule, modulePath)
	}

	// The module-doc path always derives from the module path with the doc
	// suffix substituted, unless explicitly overridden.
	if modulePath := b.modulePathFor(a, output); modulePath != "" {
		docPath := b.overrideOr(base, domain.TypeModuleDoc, replaceSuffix(modulePath, domain.TypeModuleDoc.Suffix()))
		output.SetAdditional(domain.TypeModuleDoc, docPath)
	}

	if b.info.ShouldGenerateHeader && a.Kind == domain.ActionMergeModule {
		header := b.info.HeaderOutputPath
		if header == "" {
			header = b.info.ModuleName + "." + domain.TypeHeader.Suffix()
		}
		output.SetAdditional(domain.TypeHeader, b.overrideOr(base, domain.TypeHeader, header))
	}

	if b.info.ShouldTrackDependencies && a.Kind == domain.ActionCompile && primary != "" && primary != "-" {
		depsPath := b.overrideOr(base, domain.TypeDeps, replaceSuffix(primary, domain.TypeDeps.Suffix()))
		output.SetAdditional(domain.TypeDeps, depsPath)
	}

	if b.info.SerializeDiagnostics && (a.Kind == domain.ActionCompile || a.Kind == domain.ActionMergeModule) && primary != "" && primary != "-" {
		diaPath := b.overrideOr(base, domain.TypeDiagnostics, replaceSuffix(primary, domain.TypeDiagnostics.Suffix()))
		output.SetAdditional(domain.TypeDiagnostics, diaPath)

		// Delete any stale diagnostics file now, so a missing file after
		// the build reliably means this run did not happen.
		if err := os.Remove(diaPath); err != nil && !os.IsNotExist(err) {
			b.diags.ReportError("failed to remove stale diagnostics file", "path", diaPath, "error", err.Error())
		}
		if !b.saveTemps {
			b.ledger.AddTempFile(diaPath)
		}
	}
}

// modulePathFor returns the path of the module file this action produces, if
// any: the primary output of a merge, or the module auxiliary of a compile.
func (b *Builder) modulePathFor(a *domain.Action, output *domain.CommandOutput) string {
	if a.Kind == domain.ActionMergeModule {
		return output.PrimaryPath()
	}
	return output.AdditionalPath(domain.TypeModule)
}

// overrideOr consults the output file map for (base, kind) and falls back to
// the synthesized path.
func (b *Builder) overrideOr(base string, kind domain.FileType, fallback string) string {
	if b.outputMap != nil {
		if p, ok := b.outputMap.Lookup(base, kind); ok {
			return p
		}
	}
	return fallback
}

// applyCondition decides the Job's incremental condition: with exactly one
// direct input, a tracked dependency file, and an input no newer than the
// pre-existing primary output, the rerun decision is deferred to the
// dependency check. A freshly allocated temporary primary never counts as a
// pre-existing output.
func (b *Builder) applyCondition(job *domain.Job, baseInputs []string, tempPrimary bool) {
	job.Condition = domain.ConditionAlways

	if len(baseInputs) != 1 || tempPrimary {
		return
	}
	if job.Output.AdditionalPath(domain.TypeDeps) == "" {
		return
	}

	inTime, ok := b.stat.ModTime(baseInputs[0])
	if !ok {
		return
	}
	outTime, ok := b.stat.ModTime(job.Output.PrimaryPath())
	if !ok {
		return
	}
	job.PreviousBuildTime = outTime
	if !inTime.After(outTime) {
		job.Condition = domain.ConditionCheckDependencies
	}
}
