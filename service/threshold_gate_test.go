package service

import (
	"strings"
	"testing"

	"github.com/ludo-technologies/jsvet/domain"
)

// fakeResults is a canned results view for service tests
type fakeResults struct {
	violations []domain.Violation
	hasErrors  bool
}

func (r fakeResults) NumberOfViolations() int { return len(r.violations) }

func (r fakeResults) NumberOfViolationsWithPriority(priority int) int {
	count := 0
	for _, v := range r.violations {
		if v.Priority == priority {
			count++
		}
	}
	return count
}

func (r fakeResults) AllViolations() []domain.Violation { return r.violations }

func (r fakeResults) HasErrors() bool { return r.hasErrors }

func violationsWithPriorities(priorities ...int) []domain.Violation {
	out := make([]domain.Violation, 0, len(priorities))
	for i, p := range priorities {
		out = append(out, domain.Violation{
			RuleID:   "test-rule",
			Priority: p,
			Location: domain.SourceLocation{FilePath: "a.js", StartLine: i + 1, StartColumn: 1},
			Message:  "test",
		})
	}
	return out
}

func TestThresholdGate_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		thresholds domain.Thresholds
		results    fakeResults
		expected   int
	}{
		{
			name:       "clean run",
			thresholds: domain.Thresholds{MaxP1: 0, MaxP2: 10, MaxP3: 20},
			results:    fakeResults{},
			expected:   domain.ExitSuccess,
		},
		{
			name:       "count equal to ceiling passes",
			thresholds: domain.Thresholds{MaxP1: 0, MaxP2: 2, MaxP3: 20},
			results:    fakeResults{violations: violationsWithPriorities(2, 2)},
			expected:   domain.ExitSuccess,
		},
		{
			name:       "count above ceiling fails",
			thresholds: domain.Thresholds{MaxP1: 0, MaxP2: 2, MaxP3: 20},
			results:    fakeResults{violations: violationsWithPriorities(2, 2, 2)},
			expected:   domain.ExitViolationsExceedThreshold,
		},
		{
			name:       "zero ceiling fails on single violation",
			thresholds: domain.Thresholds{MaxP1: 0, MaxP2: 10, MaxP3: 20},
			results:    fakeResults{violations: violationsWithPriorities(1)},
			expected:   domain.ExitViolationsExceedThreshold,
		},
		{
			name:       "negative ceiling never fails",
			thresholds: domain.Thresholds{MaxP1: -1, MaxP2: -1, MaxP3: -1},
			results:    fakeResults{violations: violationsWithPriorities(1, 1, 2, 3)},
			expected:   domain.ExitSuccess,
		},
		{
			name:       "hard errors dominate thresholds",
			thresholds: domain.Thresholds{MaxP1: 0, MaxP2: 0, MaxP3: 0},
			results:    fakeResults{violations: violationsWithPriorities(1), hasErrors: true},
			expected:   domain.ExitCompilationErrors,
		},
		{
			name:       "hard errors dominate a passing run",
			thresholds: domain.Thresholds{MaxP1: -1, MaxP2: -1, MaxP3: -1},
			results:    fakeResults{hasErrors: true},
			expected:   domain.ExitCompilationErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewThresholdGate(tt.thresholds)
			if got := gate.Evaluate(tt.results); got != tt.expected {
				t.Errorf("Expected exit code %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestThresholdGate_Diagnostic(t *testing.T) {
	gate := NewThresholdGate(domain.Thresholds{MaxP1: 0, MaxP2: 10, MaxP3: -1})
	results := fakeResults{violations: violationsWithPriorities(1, 2, 2, 3)}

	got := strings.TrimSpace(gate.Diagnostic(results))
	expected := "P1=1[0] P2=2[10] P3=1[-]"
	if got != expected {
		t.Errorf("Expected '%s', got '%s'", expected, got)
	}
}

func TestThresholdGate_DiagnosticShowsAllPriorities(t *testing.T) {
	gate := NewThresholdGate(domain.Thresholds{MaxP1: 0, MaxP2: 0, MaxP3: 0})
	diag := gate.Diagnostic(fakeResults{})

	for _, part := range []string{"P1=", "P2=", "P3="} {
		if !strings.Contains(diag, part) {
			t.Errorf("Diagnostic missing %s: %s", part, diag)
		}
	}
}
