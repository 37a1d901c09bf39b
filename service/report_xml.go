package service

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ludo-technologies/jsvet/domain"
)

// XMLReporter renders a results view as XML
type XMLReporter struct{}

// NewXMLReporter creates a new XML reporter
func NewXMLReporter() *XMLReporter {
	return &XMLReporter{}
}

// Name returns the format name
func (r *XMLReporter) Name() string {
	return "xml"
}

type xmlViolation struct {
	Rule        string `xml:"rule,attr"`
	Priority    int    `xml:"priority,attr"`
	Path        string `xml:"path,attr"`
	StartLine   int    `xml:"startLine,attr"`
	StartColumn int    `xml:"startColumn,attr"`
	EndLine     int    `xml:"endLine,attr"`
	EndColumn   int    `xml:"endColumn,attr"`
	Message     string `xml:",chardata"`
}

type xmlSummary struct {
	TotalViolations   int  `xml:"totalViolations"`
	Priority1         int  `xml:"priority1"`
	Priority2         int  `xml:"priority2"`
	Priority3         int  `xml:"priority3"`
	HasAnalyzerErrors bool `xml:"hasAnalyzerErrors"`
}

type xmlReport struct {
	XMLName     xml.Name       `xml:"jsvet"`
	Version     string         `xml:"version,attr"`
	GeneratedAt string         `xml:"generatedAt,attr"`
	Summary     xmlSummary     `xml:"summary"`
	Violations  []xmlViolation `xml:"violations>violation"`
}

// Report writes the XML report
func (r *XMLReporter) Report(results domain.Results, w io.Writer) error {
	payload := NewReportPayload(results)

	report := xmlReport{
		Version:     payload.Version,
		GeneratedAt: payload.GeneratedAt,
		Summary: xmlSummary{
			TotalViolations:   payload.Summary.TotalViolations,
			Priority1:         payload.Summary.Priority1,
			Priority2:         payload.Summary.Priority2,
			Priority3:         payload.Summary.Priority3,
			HasAnalyzerErrors: payload.Summary.HasAnalyzerErrors,
		},
		Violations: make([]xmlViolation, 0, len(payload.Violations)),
	}
	for _, v := range payload.Violations {
		report.Violations = append(report.Violations, xmlViolation{
			Rule:        v.RuleID,
			Priority:    v.Priority,
			Path:        v.Location.FilePath,
			StartLine:   v.Location.StartLine,
			StartColumn: v.Location.StartColumn,
			EndLine:     v.Location.EndLine,
			EndColumn:   v.Location.EndColumn,
			Message:     v.Message,
		})
	}

	if _, err := fmt.Fprint(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
