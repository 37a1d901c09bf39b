package service

import (
	"html/template"
	"io"

	"github.com/ludo-technologies/jsvet/domain"
)

// HTMLReporter renders a results view as a standalone HTML page
type HTMLReporter struct {
	tmpl *template.Template
}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{
		tmpl: template.Must(template.New("report").Parse(htmlReportTemplate)),
	}
}

// Name returns the format name
func (r *HTMLReporter) Name() string {
	return "html"
}

// Report writes the HTML report
func (r *HTMLReporter) Report(results domain.Results, w io.Writer) error {
	return r.tmpl.Execute(w, NewReportPayload(results))
}

const htmlReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>jsvet Lint Report</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; margin: 2rem; color: #1a1a2e; }
  h1 { font-size: 1.4rem; }
  .summary { margin: 1rem 0; }
  .summary span { display: inline-block; margin-right: 1.5rem; }
  .errors { color: #c0392b; font-weight: 600; }
  table { border-collapse: collapse; width: 100%; }
  th, td { text-align: left; padding: 0.4rem 0.8rem; border-bottom: 1px solid #ddd; }
  th { background: #f4f4f8; }
  .p1 { color: #c0392b; }
  .p2 { color: #d68910; }
  .p3 { color: #2471a3; }
</style>
</head>
<body>
<h1>jsvet Lint Report</h1>
<p>Generated {{.GeneratedAt}} by jsvet {{.Version}}</p>
<div class="summary">
  <span>Total: {{.Summary.TotalViolations}}</span>
  <span class="p1">P1: {{.Summary.Priority1}}</span>
  <span class="p2">P2: {{.Summary.Priority2}}</span>
  <span class="p3">P3: {{.Summary.Priority3}}</span>
  {{if .Summary.HasAnalyzerErrors}}<span class="errors">analyzer errors</span>{{end}}
</div>
<table>
  <tr><th>Location</th><th>Rule</th><th>Priority</th><th>Message</th></tr>
  {{range .Violations}}
  <tr>
    <td>{{.Location.FilePath}}:{{.Location.StartLine}}:{{.Location.StartColumn}}</td>
    <td>{{.RuleID}}</td>
    <td class="p{{.Priority}}">P{{.Priority}}</td>
    <td>{{.Message}}</td>
  </tr>
  {{end}}
</table>
</body>
</html>
`
