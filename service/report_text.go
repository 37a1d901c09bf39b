package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/ludo-technologies/jsvet/domain"
)

// TextReporter renders a results view as human-readable plain text
type TextReporter struct{}

// NewTextReporter creates a new text reporter
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// Name returns the format name
func (r *TextReporter) Name() string {
	return "text"
}

// Report writes the text report. The report is rendered in memory first so
// a stream failure surfaces from exactly one place.
func (r *TextReporter) Report(results domain.Results, w io.Writer) error {
	payload := NewReportPayload(results)

	var b strings.Builder
	fmt.Fprintf(&b, "\n=== jsvet Lint Report ===\n\n")
	fmt.Fprintf(&b, "Generated: %s\n", payload.GeneratedAt)
	fmt.Fprintf(&b, "Version: %s\n\n", payload.Version)

	fmt.Fprintf(&b, "Summary:\n")
	fmt.Fprintf(&b, "  Total violations: %d\n", payload.Summary.TotalViolations)
	fmt.Fprintf(&b, "  Priority 1: %d\n", payload.Summary.Priority1)
	fmt.Fprintf(&b, "  Priority 2: %d\n", payload.Summary.Priority2)
	fmt.Fprintf(&b, "  Priority 3: %d\n", payload.Summary.Priority3)
	if payload.Summary.HasAnalyzerErrors {
		fmt.Fprintf(&b, "  Analyzer errors: yes\n")
	}
	fmt.Fprintf(&b, "\n")

	for _, v := range payload.Violations {
		fmt.Fprintf(&b, "%s:%d:%d: %s [%s|P%d]\n",
			v.Location.FilePath, v.Location.StartLine, v.Location.StartColumn,
			v.Message, v.RuleID, v.Priority)
	}

	if len(payload.Violations) == 0 {
		fmt.Fprintf(&b, "No violations found.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
