// Package rule holds the rule registry and the built-in rule set.
package rule

import (
	"sort"

	"github.com/ludo-technologies/jsvet/domain"
)

// Registry accumulates rule definitions loaded from plugin artifacts.
// Registration for an already-registered name replaces the earlier rule
// (last registration wins).
type Registry struct {
	rules map[string]domain.Rule
}

// NewRegistry creates an empty rule registry
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]domain.Rule)}
}

// Register adds a rule to the registry, replacing any rule already
// registered under the same name
func (r *Registry) Register(rule domain.Rule) {
	r.rules[rule.Name()] = rule
}

// RegisterAll registers every rule in the slice
func (r *Registry) RegisterAll(rules []domain.Rule) {
	for _, rule := range rules {
		r.Register(rule)
	}
}

// Get returns the rule registered under name
func (r *Registry) Get(name string) (domain.Rule, bool) {
	rule, ok := r.rules[name]
	return rule, ok
}

// Count returns the number of registered rules
func (r *Registry) Count() int {
	return len(r.rules)
}

// Names returns the registered rule names sorted alphabetically
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rules returns the registered rules ordered by name, so analysis output
// is deterministic across runs
func (r *Registry) Rules() []domain.Rule {
	names := r.Names()
	rules := make([]domain.Rule, 0, len(names))
	for _, name := range names {
		rules = append(rules, r.rules[name])
	}
	return rules
}
