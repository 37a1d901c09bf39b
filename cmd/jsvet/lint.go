package main

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/jsvet/app"
	"github.com/ludo-technologies/jsvet/domain"
	"github.com/ludo-technologies/jsvet/internal/config"
	"github.com/ludo-technologies/jsvet/internal/plugin"
	"github.com/ludo-technologies/jsvet/internal/rule"
	"github.com/ludo-technologies/jsvet/service"
	"github.com/spf13/cobra"
)

var (
	lintRulePaths     []string
	lintReporterPaths []string
	lintReports       []string
	lintOutputPath    string
	lintMaxP1         int
	lintMaxP2         int
	lintMaxP3         int
	lintAllowDup      bool
	lintListRules     bool
	lintNoRecursive   bool
	lintExclude       []string
	lintJobs          int
	lintConfigPath    string
)

func lintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [path...]",
		Short: "Lint JavaScript/TypeScript sources",
		Long: `Apply the loaded rules to the given files or directories and render
the findings through the selected reporters.

Exit codes:
  0 - No failure
  1 - Rules could not be loaded
  2 - A requested reporter does not exist
  3 - Error while processing sources
  4 - Error while writing reports
  5 - Violations exceed a threshold
  6 - One or more sources could not be analyzed

Examples:
  # Lint a directory with the built-in rules
  jsvet lint src/

  # Fail CI on any priority 1 or 2 violation
  jsvet lint --max-p1 0 --max-p2 0 src/

  # Write JSON and HTML reports next to each other
  jsvet lint --report json --report html -o reports/jsvet.txt src/

  # Load an extra rule plugin
  jsvet lint --rule-path builtin --rule-path ./rules/custom.so src/`,
		RunE:          runLint,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringSliceVar(&lintRulePaths, "rule-path", nil,
		"Rule artifacts to load ('builtin' selects the compiled-in rules)")
	cmd.Flags().StringSliceVar(&lintReporterPaths, "reporter-path", nil,
		"Additional reporter artifacts to load")
	cmd.Flags().StringSliceVar(&lintReports, "report", nil,
		"Report formats to emit: text, json, xml, yaml, html")
	cmd.Flags().StringVarP(&lintOutputPath, "output", "o", "",
		"Report path template; the extension is replaced per format (default stdout)")
	cmd.Flags().IntVar(&lintMaxP1, "max-p1", config.DefaultMaxPriority1,
		"Maximum priority 1 violations before failing (negative = unlimited)")
	cmd.Flags().IntVar(&lintMaxP2, "max-p2", config.DefaultMaxPriority2,
		"Maximum priority 2 violations before failing (negative = unlimited)")
	cmd.Flags().IntVar(&lintMaxP3, "max-p3", config.DefaultMaxPriority3,
		"Maximum priority 3 violations before failing (negative = unlimited)")
	cmd.Flags().BoolVar(&lintAllowDup, "allow-duplicated-violations", false,
		"Keep duplicate findings instead of deduplicating them")
	cmd.Flags().BoolVar(&lintListRules, "list-enabled-rules", false,
		"List the enabled rules before analysis")
	cmd.Flags().BoolVar(&lintNoRecursive, "no-recursive", false,
		"Do not descend into subdirectories")
	cmd.Flags().StringSliceVar(&lintExclude, "exclude", nil,
		"Gitignore-style patterns to exclude from analysis")
	cmd.Flags().IntVar(&lintJobs, "jobs", 0,
		"Number of files analyzed concurrently (0 = one per CPU)")
	cmd.Flags().StringVarP(&lintConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runLint(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no paths specified")
	}

	cfg, err := config.LoadConfigWithTarget(lintConfigPath, args[0])
	if err != nil {
		return &LintExitError{
			Code:    domain.ExitErrorWhileProcessing,
			Message: fmt.Sprintf("failed to load configuration: %v", err),
		}
	}

	req := buildLintRequest(cmd, cfg, args)

	loader := plugin.NewLoader(rule.Builtins(), service.BuiltinReporters())
	useCase := app.NewLintUseCase(loader)

	code, err := useCase.Execute(context.Background(), req)
	if code == domain.ExitSuccess {
		return nil
	}

	message := ""
	if err != nil {
		message = err.Error()
	}
	return &LintExitError{Code: code, Message: message}
}

// buildLintRequest merges the configuration file with the flags; flags
// explicitly set on the command line win.
func buildLintRequest(cmd *cobra.Command, cfg *config.Config, args []string) domain.LintRequest {
	req := domain.LintRequest{
		Paths:                     args,
		RulePaths:                 cfg.Rules.Paths,
		ReporterPaths:             cfg.Reporters.Paths,
		Reporters:                 cfg.Reporters.Names,
		OutputPath:                cfg.Reporters.OutputPath,
		AllowDuplicatedViolations: cfg.Results.AllowDuplicatedViolations,
		ListEnabledRules:          lintListRules,
		Recursive:                 cfg.Analysis.Recursive,
		IncludePatterns:           cfg.Analysis.IncludePatterns,
		ExcludePatterns:           cfg.Analysis.ExcludePatterns,
		Jobs:                      cfg.Performance.Jobs,
		ConfigPath:                lintConfigPath,
		Thresholds: domain.Thresholds{
			MaxP1: cfg.Thresholds.MaxP1,
			MaxP2: cfg.Thresholds.MaxP2,
			MaxP3: cfg.Thresholds.MaxP3,
		},
	}

	if cmd.Flags().Changed("rule-path") {
		req.RulePaths = lintRulePaths
	}
	if cmd.Flags().Changed("reporter-path") {
		req.ReporterPaths = lintReporterPaths
	}
	if cmd.Flags().Changed("report") {
		req.Reporters = lintReports
	}
	if cmd.Flags().Changed("output") {
		req.OutputPath = lintOutputPath
	}
	if cmd.Flags().Changed("max-p1") {
		req.Thresholds.MaxP1 = lintMaxP1
	}
	if cmd.Flags().Changed("max-p2") {
		req.Thresholds.MaxP2 = lintMaxP2
	}
	if cmd.Flags().Changed("max-p3") {
		req.Thresholds.MaxP3 = lintMaxP3
	}
	if cmd.Flags().Changed("allow-duplicated-violations") {
		req.AllowDuplicatedViolations = lintAllowDup
	}
	if cmd.Flags().Changed("no-recursive") {
		req.Recursive = !lintNoRecursive
	}
	if cmd.Flags().Changed("exclude") {
		req.ExcludePatterns = lintExclude
	}
	if cmd.Flags().Changed("jobs") {
		req.Jobs = lintJobs
	}

	return req
}
