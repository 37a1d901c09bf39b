// Package service contains the built-in reporters, the analysis engine,
// and the reporting/gating infrastructure around a lint run.
package service

import (
	"time"

	"github.com/ludo-technologies/jsvet/domain"
	"github.com/ludo-technologies/jsvet/internal/version"
)

// ReportSummary aggregates the per-priority counts of a results view
type ReportSummary struct {
	TotalViolations   int  `json:"total_violations" yaml:"total_violations"`
	Priority1         int  `json:"priority_1" yaml:"priority_1"`
	Priority2         int  `json:"priority_2" yaml:"priority_2"`
	Priority3         int  `json:"priority_3" yaml:"priority_3"`
	HasAnalyzerErrors bool `json:"has_analyzer_errors" yaml:"has_analyzer_errors"`
}

// ReportPayload is the serializable form of a results view shared by the
// structured reporters
type ReportPayload struct {
	Version     string             `json:"version" yaml:"version"`
	GeneratedAt string             `json:"generated_at" yaml:"generated_at"`
	Summary     ReportSummary      `json:"summary" yaml:"summary"`
	Violations  []domain.Violation `json:"violations" yaml:"violations"`
}

// NewReportSummary builds the summary block from a results view
func NewReportSummary(results domain.Results) ReportSummary {
	return ReportSummary{
		TotalViolations:   results.NumberOfViolations(),
		Priority1:         results.NumberOfViolationsWithPriority(domain.PriorityHigh),
		Priority2:         results.NumberOfViolationsWithPriority(domain.PriorityMedium),
		Priority3:         results.NumberOfViolationsWithPriority(domain.PriorityLow),
		HasAnalyzerErrors: results.HasErrors(),
	}
}

// NewReportPayload builds the full payload from a results view
func NewReportPayload(results domain.Results) ReportPayload {
	return ReportPayload{
		Version:     version.Version,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Summary:     NewReportSummary(results),
		Violations:  results.AllViolations(),
	}
}
