package service

import (
	"sort"

	"github.com/ludo-technologies/jsvet/domain"
)

// BuiltinReporters returns the compiled-in reporter set
func BuiltinReporters() []domain.Reporter {
	return []domain.Reporter{
		NewTextReporter(),
		NewJSONReporter(),
		NewXMLReporter(),
		NewYAMLReporter(),
		NewHTMLReporter(),
	}
}

// ReporterRegistry accumulates named output-format handlers loaded from
// plugin artifacts. Last registration for a format name wins, matching the
// rule registry policy.
type ReporterRegistry struct {
	reporters map[string]domain.Reporter
}

// NewReporterRegistry creates an empty reporter registry
func NewReporterRegistry() *ReporterRegistry {
	return &ReporterRegistry{reporters: make(map[string]domain.Reporter)}
}

// Register adds a reporter, replacing any reporter with the same name
func (r *ReporterRegistry) Register(reporter domain.Reporter) {
	r.reporters[reporter.Name()] = reporter
}

// RegisterAll registers every reporter in the slice
func (r *ReporterRegistry) RegisterAll(reporters []domain.Reporter) {
	for _, reporter := range reporters {
		r.Register(reporter)
	}
}

// Get returns the reporter registered under name
func (r *ReporterRegistry) Get(name string) (domain.Reporter, bool) {
	reporter, ok := r.reporters[name]
	return reporter, ok
}

// Count returns the number of registered reporters
func (r *ReporterRegistry) Count() int {
	return len(r.reporters)
}

// Names returns the registered format names sorted alphabetically
func (r *ReporterRegistry) Names() []string {
	names := make([]string, 0, len(r.reporters))
	for name := range r.reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up every requested name, preserving the requested order.
// The first unresolved name fails the whole resolution, so a misconfigured
// reporter is caught before any analysis work is spent.
func (r *ReporterRegistry) Resolve(names []string) ([]domain.Reporter, error) {
	resolved := make([]domain.Reporter, 0, len(names))
	for _, name := range names {
		reporter, ok := r.reporters[name]
		if !ok {
			return nil, domain.NewReporterNotFoundError(name)
		}
		resolved = append(resolved, reporter)
	}
	return resolved, nil
}
