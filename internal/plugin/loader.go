// Package plugin loads rule and reporter artifacts from filesystem paths.
//
// Two artifact kinds exist: the reserved path "builtin" resolves to the
// sets compiled into the binary, and any other path is opened as a Go
// plugin shared object exporting Rules/Reporters constructor symbols.
// Loading is atomic per path: any failure reports the path and registers
// nothing from it.
package plugin

import (
	"errors"
	"plugin"

	"github.com/ludo-technologies/jsvet/domain"
)

// BuiltinPath is the reserved artifact path for the compiled-in sets
const BuiltinPath = "builtin"

// Symbol names looked up in plugin shared objects
const (
	rulesSymbol     = "Rules"
	reportersSymbol = "Reporters"
)

// Loader implements domain.RuleLoader over Go plugin shared objects
type Loader struct {
	builtinRules     []domain.Rule
	builtinReporters []domain.Reporter
}

// NewLoader creates a loader with the given compiled-in sets
func NewLoader(builtinRules []domain.Rule, builtinReporters []domain.Reporter) *Loader {
	return &Loader{
		builtinRules:     builtinRules,
		builtinReporters: builtinReporters,
	}
}

// LoadRules loads the rules contained in the artifact at path
func (l *Loader) LoadRules(path string) ([]domain.Rule, error) {
	if path == BuiltinPath {
		return l.builtinRules, nil
	}

	sym, err := open(path, rulesSymbol)
	if err != nil {
		return nil, err
	}
	ctor, ok := sym.(func() []domain.Rule)
	if !ok {
		return nil, domain.NewPluginLoadError(path, errors.New("symbol Rules is not func() []domain.Rule"))
	}
	return ctor(), nil
}

// LoadReporters loads the reporters contained in the artifact at path
func (l *Loader) LoadReporters(path string) ([]domain.Reporter, error) {
	if path == BuiltinPath {
		return l.builtinReporters, nil
	}

	sym, err := open(path, reportersSymbol)
	if err != nil {
		return nil, err
	}
	ctor, ok := sym.(func() []domain.Reporter)
	if !ok {
		return nil, domain.NewPluginLoadError(path, errors.New("symbol Reporters is not func() []domain.Reporter"))
	}
	return ctor(), nil
}

// open opens the shared object and looks up one symbol
func open(path, symbol string) (plugin.Symbol, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, domain.NewPluginLoadError(path, err)
	}
	sym, err := p.Lookup(symbol)
	if err != nil {
		return nil, domain.NewPluginLoadError(path, err)
	}
	return sym, nil
}
