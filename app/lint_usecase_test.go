package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ludo-technologies/jsvet/domain"
	"github.com/ludo-technologies/jsvet/internal/rule"
	"github.com/ludo-technologies/jsvet/service"
)

// stubLoader serves canned rules and reporters per path
type stubLoader struct {
	rules     map[string][]domain.Rule
	reporters map[string][]domain.Reporter
	err       error
}

func (l *stubLoader) LoadRules(path string) ([]domain.Rule, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.rules[path], nil
}

func (l *stubLoader) LoadReporters(path string) ([]domain.Reporter, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.reporters[path], nil
}

type failingReporter struct{}

func (failingReporter) Name() string { return "failing" }

func (failingReporter) Report(_ domain.Results, _ io.Writer) error {
	return errors.New("render failed")
}

func newTestUseCase(loader domain.RuleLoader) (*LintUseCase, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return NewLintUseCaseWithIO(loader, &service.NoOpProgressManager{}, stdout, stderr), stdout, stderr
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}
	return path
}

func baseRequest(paths ...string) domain.LintRequest {
	return domain.LintRequest{
		Paths:      paths,
		RulePaths:  []string{"builtin"},
		Reporters:  []string{"text"},
		Thresholds: domain.UnlimitedThresholds(),
		Recursive:  true,
	}
}

func builtinStubLoader() *stubLoader {
	return &stubLoader{
		rules: map[string][]domain.Rule{"builtin": rule.Builtins()},
	}
}

func TestLintUseCase_ZeroRules(t *testing.T) {
	useCase, _, _ := newTestUseCase(&stubLoader{})
	req := baseRequest("ignored")
	req.RulePaths = nil

	code, err := useCase.Execute(context.Background(), req)
	if code != domain.ExitRuleNotFound {
		t.Errorf("Expected exit code %d, got %d", domain.ExitRuleNotFound, code)
	}
	if err == nil || !strings.Contains(err.Error(), "no rule loaded") {
		t.Errorf("Expected 'no rule loaded' error, got %v", err)
	}
}

func TestLintUseCase_RuleLoadFailure(t *testing.T) {
	useCase, _, _ := newTestUseCase(&stubLoader{err: errors.New("dlopen failed")})

	code, err := useCase.Execute(context.Background(), baseRequest("ignored"))
	if code != domain.ExitRuleNotFound {
		t.Errorf("Expected exit code %d, got %d", domain.ExitRuleNotFound, code)
	}
	if err == nil {
		t.Error("Expected error from failing loader")
	}
}

func TestLintUseCase_UnknownReporter(t *testing.T) {
	useCase, _, _ := newTestUseCase(builtinStubLoader())
	req := baseRequest("ignored")
	req.Reporters = []string{"pdf"}

	code, err := useCase.Execute(context.Background(), req)
	if code != domain.ExitReporterNotFound {
		t.Errorf("Expected exit code %d, got %d", domain.ExitReporterNotFound, code)
	}
	if err == nil || !strings.Contains(err.Error(), "cannot find reporter: pdf") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLintUseCase_NoSourceFiles(t *testing.T) {
	useCase, _, _ := newTestUseCase(builtinStubLoader())

	code, err := useCase.Execute(context.Background(), baseRequest(t.TempDir()))
	if code != domain.ExitErrorWhileProcessing {
		t.Errorf("Expected exit code %d, got %d", domain.ExitErrorWhileProcessing, code)
	}
	if err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestLintUseCase_CleanRun(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "clean.js", "const x = 1;\n")

	useCase, stdout, _ := newTestUseCase(builtinStubLoader())

	code, err := useCase.Execute(context.Background(), baseRequest(dir))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != domain.ExitSuccess {
		t.Errorf("Expected exit code %d, got %d", domain.ExitSuccess, code)
	}
	if !strings.Contains(stdout.String(), "No violations found.") {
		t.Errorf("Expected clean text report on stdout, got:\n%s", stdout.String())
	}
}

func TestLintUseCase_ThresholdFailure(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bad.js", "with (obj) { f(); }\n")

	useCase, _, stderr := newTestUseCase(builtinStubLoader())
	req := baseRequest(dir)
	req.Thresholds = domain.Thresholds{MaxP1: 0, MaxP2: 10, MaxP3: 20}

	code, err := useCase.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != domain.ExitViolationsExceedThreshold {
		t.Errorf("Expected exit code %d, got %d", domain.ExitViolationsExceedThreshold, code)
	}
	if !strings.Contains(stderr.String(), "violations exceed threshold") {
		t.Errorf("Expected threshold message on stderr, got:\n%s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "P1=1[0]") {
		t.Errorf("Expected per-priority diagnostic on stderr, got:\n%s", stderr.String())
	}
}

func TestLintUseCase_UnparsableSource(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "broken.js", "function f( {\n")

	useCase, _, stderr := newTestUseCase(builtinStubLoader())

	code, err := useCase.Execute(context.Background(), baseRequest(dir))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != domain.ExitCompilationErrors {
		t.Errorf("Expected exit code %d, got %d", domain.ExitCompilationErrors, code)
	}
	if stderr.Len() == 0 {
		t.Error("Expected diagnostic on stderr")
	}
}

func TestLintUseCase_Deduplication(t *testing.T) {
	dir := t.TempDir()
	// Linting the same file twice records the same finding twice
	file := writeSource(t, dir, "dup.js", "debugger;\n")

	useCase, stdout, _ := newTestUseCase(builtinStubLoader())
	req := baseRequest(file, file)
	req.Thresholds = domain.UnlimitedThresholds()

	code, err := useCase.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != domain.ExitSuccess {
		t.Errorf("Expected exit code %d, got %d", domain.ExitSuccess, code)
	}
	if !strings.Contains(stdout.String(), "Total violations: 1") {
		t.Errorf("Expected deduplicated count, got:\n%s", stdout.String())
	}
}

func TestLintUseCase_AllowDuplicatedViolations(t *testing.T) {
	dir := t.TempDir()
	file := writeSource(t, dir, "dup.js", "debugger;\n")

	useCase, stdout, _ := newTestUseCase(builtinStubLoader())
	req := baseRequest(file, file)
	req.AllowDuplicatedViolations = true

	if _, err := useCase.Execute(context.Background(), req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Total violations: 2") {
		t.Errorf("Expected raw count, got:\n%s", stdout.String())
	}
}

func TestLintUseCase_WritesDerivedReports(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeSource(t, srcDir, "app.js", "debugger;\n")

	useCase, _, _ := newTestUseCase(builtinStubLoader())
	req := baseRequest(srcDir)
	req.Reporters = []string{"json", "html"}
	req.OutputPath = filepath.Join(outDir, "report.txt")

	code, err := useCase.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if code != domain.ExitSuccess {
		t.Errorf("Expected exit code %d, got %d", domain.ExitSuccess, code)
	}

	for _, name := range []string{"report.json", "report.html"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected report file %s: %v", name, err)
		}
	}
}

func TestLintUseCase_ReportingFailureKeepsEarlierReports(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeSource(t, srcDir, "app.js", "const x = 1;\n")

	loader := builtinStubLoader()
	loader.reporters = map[string][]domain.Reporter{
		"stub": {failingReporter{}},
	}

	useCase, _, _ := newTestUseCase(loader)
	req := baseRequest(srcDir)
	req.ReporterPaths = []string{"stub"}
	req.Reporters = []string{"json", "failing"}
	req.OutputPath = filepath.Join(outDir, "report.txt")

	code, err := useCase.Execute(context.Background(), req)
	if code != domain.ExitErrorWhileReporting {
		t.Errorf("Expected exit code %d, got %d", domain.ExitErrorWhileReporting, code)
	}
	if err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("Unexpected error: %v", err)
	}

	// The JSON report succeeded before the failure and stays on disk
	if _, err := os.Stat(filepath.Join(outDir, "report.json")); err != nil {
		t.Errorf("Expected earlier report to survive: %v", err)
	}
}

func TestLintUseCase_ListEnabledRules(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "clean.js", "const x = 1;\n")

	useCase, stdout, _ := newTestUseCase(builtinStubLoader())
	req := baseRequest(dir)
	req.ListEnabledRules = true

	if _, err := useCase.Execute(context.Background(), req); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := stdout.String()
	if !strings.Contains(out, "Enabled rules:") {
		t.Errorf("Expected rule listing, got:\n%s", out)
	}
	if !strings.Contains(out, "- no-debugger") {
		t.Errorf("Expected rule names in listing, got:\n%s", out)
	}
}
