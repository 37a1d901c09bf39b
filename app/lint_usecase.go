package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ludo-technologies/jsvet/domain"
	"github.com/ludo-technologies/jsvet/internal/result"
	"github.com/ludo-technologies/jsvet/internal/rule"
	"github.com/ludo-technologies/jsvet/service"
)

// LintUseCase orchestrates one lint run: rule and reporter loading, file
// collection, analysis, reporting and the final threshold gate.
type LintUseCase struct {
	loader     domain.RuleLoader
	fileHelper *FileHelper
	progress   domain.ProgressManager
	stdout     io.Writer
	stderr     io.Writer
}

// NewLintUseCase creates a lint use case writing to the process streams
func NewLintUseCase(loader domain.RuleLoader) *LintUseCase {
	return &LintUseCase{
		loader:     loader,
		fileHelper: NewFileHelper(),
		progress:   service.NewProgressManager(service.IsInteractiveEnvironment()),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// NewLintUseCaseWithIO creates a lint use case with injected streams and
// progress manager
func NewLintUseCaseWithIO(loader domain.RuleLoader, pm domain.ProgressManager, stdout, stderr io.Writer) *LintUseCase {
	return &LintUseCase{
		loader:     loader,
		fileHelper: NewFileHelper(),
		progress:   pm,
		stdout:     stdout,
		stderr:     stderr,
	}
}

// Execute runs the full lint pipeline and returns the process exit code. A
// non-nil error accompanies every code except success, threshold failure and
// compilation errors, which speak through the code alone.
func (u *LintUseCase) Execute(ctx context.Context, req domain.LintRequest) (int, error) {
	rules, code, err := u.loadRules(req.RulePaths)
	if err != nil {
		return code, err
	}

	reporters, err := u.resolveReporters(req)
	if err != nil {
		return domain.ExitReporterNotFound, err
	}

	if req.ListEnabledRules {
		u.printEnabledRules(rules)
	}

	files, err := ResolveFilePaths(u.fileHelper, req.Paths, req.Recursive, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return domain.ExitErrorWhileProcessing, domain.NewProcessingError("failed to collect source files", err)
	}
	if len(files) == 0 {
		return domain.ExitErrorWhileProcessing, domain.NewInvalidInputError("no source files found", nil)
	}

	collector := result.NewCollector()
	engine := service.NewEngineWithProgress(collector, u.progress, req.Jobs)
	if err := engine.Run(ctx, files, rules); err != nil {
		return domain.ExitErrorWhileProcessing, domain.NewProcessingError("analysis failed", err)
	}

	results := collector.BuildResults(!req.AllowDuplicatedViolations)

	if code, err := u.report(results, reporters, req.OutputPath); err != nil {
		return code, err
	}

	return u.gate(results, req.Thresholds), nil
}

// loadRules loads every configured rule artifact into a registry and
// returns the deduplicated rule set
func (u *LintUseCase) loadRules(paths []string) ([]domain.Rule, int, error) {
	registry := rule.NewRegistry()
	for _, path := range paths {
		loaded, err := u.loader.LoadRules(path)
		if err != nil {
			return nil, domain.ExitRuleNotFound, err
		}
		registry.RegisterAll(loaded)
	}

	if registry.Count() == 0 {
		return nil, domain.ExitRuleNotFound, domain.NewNoRulesLoadedError()
	}
	return registry.Rules(), domain.ExitSuccess, nil
}

// resolveReporters registers built-in and plugin reporters and resolves the
// requested format names in output order
func (u *LintUseCase) resolveReporters(req domain.LintRequest) ([]domain.Reporter, error) {
	registry := service.NewReporterRegistry()
	registry.RegisterAll(service.BuiltinReporters())

	for _, path := range req.ReporterPaths {
		loaded, err := u.loader.LoadReporters(path)
		if err != nil {
			return nil, err
		}
		registry.RegisterAll(loaded)
	}

	return registry.Resolve(req.Reporters)
}

// printEnabledRules lists the loaded rules on stdout
func (u *LintUseCase) printEnabledRules(rules []domain.Rule) {
	fmt.Fprintln(u.stdout, "Enabled rules:")
	for _, r := range rules {
		fmt.Fprintf(u.stdout, "- %s\n", r.Name())
	}
}

// report renders the results through every resolved reporter. Reporting
// aborts on the first failure; reports already written stay on disk.
func (u *LintUseCase) report(results domain.Results, reporters []domain.Reporter, outputPath string) (int, error) {
	resolver := service.NewOutputResolverWithStdout(outputPath, u.stdout)

	for _, reporter := range reporters {
		w, err := resolver.Resolve(reporter.Name())
		if err != nil {
			return domain.ExitErrorWhileReporting, err
		}

		err = reporter.Report(results, w)
		if closeErr := w.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return domain.ExitErrorWhileReporting, domain.NewReportingError(reporter.Name(), err)
		}
	}
	return domain.ExitSuccess, nil
}

// gate evaluates the results against the thresholds and prints the
// diagnostic when the run fails
func (u *LintUseCase) gate(results domain.Results, thresholds domain.Thresholds) int {
	g := service.NewThresholdGate(thresholds)
	code := g.Evaluate(results)

	switch code {
	case domain.ExitViolationsExceedThreshold:
		fmt.Fprintln(u.stderr, "violations exceed threshold")
		fmt.Fprintln(u.stderr, g.Diagnostic(results))
	case domain.ExitCompilationErrors:
		fmt.Fprintln(u.stderr, "one or more source files could not be analyzed")
	}
	return code
}
