package service

import (
	"encoding/json"
	"io"

	"github.com/ludo-technologies/jsvet/domain"
)

// JSONReporter renders a results view as indented JSON
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Name returns the format name
func (r *JSONReporter) Name() string {
	return "json"
}

// Report writes the JSON report
func (r *JSONReporter) Report(results domain.Results, w io.Writer) error {
	return WriteJSON(w, NewReportPayload(results))
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
