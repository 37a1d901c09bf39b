package service

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/jsvet/domain"
)

// YAMLReporter renders a results view as YAML
type YAMLReporter struct{}

// NewYAMLReporter creates a new YAML reporter
func NewYAMLReporter() *YAMLReporter {
	return &YAMLReporter{}
}

// Name returns the format name
func (r *YAMLReporter) Name() string {
	return "yaml"
}

// Report writes the YAML report
func (r *YAMLReporter) Report(results domain.Results, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	encoder.SetIndent(2)
	return encoder.Encode(NewReportPayload(results))
}
