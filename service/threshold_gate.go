package service

import (
	"fmt"

	"github.com/ludo-technologies/jsvet/domain"
)

// ThresholdGate computes the process outcome from a final results view and
// the configured per-priority ceilings. It is a pure decision: hard
// analyzer errors dominate, then threshold breaches, then success.
type ThresholdGate struct {
	thresholds domain.Thresholds
}

// NewThresholdGate creates a gate for the given thresholds
func NewThresholdGate(thresholds domain.Thresholds) *ThresholdGate {
	return &ThresholdGate{thresholds: thresholds}
}

// Evaluate returns the exit code for the results view
func (g *ThresholdGate) Evaluate(results domain.Results) int {
	if results.HasErrors() {
		return domain.ExitCompilationErrors
	}
	if g.exceeded(results) {
		return domain.ExitViolationsExceedThreshold
	}
	return domain.ExitSuccess
}

// exceeded reports whether any priority count is strictly greater than its
// ceiling. Equality to the ceiling passes.
func (g *ThresholdGate) exceeded(results domain.Results) bool {
	for _, priority := range []int{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		limit, ok := g.thresholds.Limit(priority)
		if !ok {
			continue
		}
		if results.NumberOfViolationsWithPriority(priority) > limit {
			return true
		}
	}
	return false
}

// Diagnostic formats the threshold breach message. It always shows the
// count and ceiling for all three priorities so the operator sees the
// complete picture in one line.
func (g *ThresholdGate) Diagnostic(results domain.Results) string {
	parts := ""
	for _, priority := range []int{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow} {
		count := results.NumberOfViolationsWithPriority(priority)
		limit, ok := g.thresholds.Limit(priority)
		if ok {
			parts += fmt.Sprintf("P%d=%d[%d] ", priority, count, limit)
		} else {
			parts += fmt.Sprintf("P%d=%d[-] ", priority, count)
		}
	}
	return parts
}
