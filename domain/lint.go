package domain

import (
	"context"
	"io"
)

// Results is a read-only view over recorded violations. It comes in two
// variants built from the same backing log: a raw view that preserves
// duplicates, and a unique view that deduplicates by violation identity.
// A Results view is a snapshot; it never changes after construction.
type Results interface {
	// NumberOfViolations returns the total violation count
	NumberOfViolations() int

	// NumberOfViolationsWithPriority returns the count at the given priority
	NumberOfViolationsWithPriority(priority int) int

	// AllViolations returns the violations in order
	AllViolations() []Violation

	// HasErrors reports whether any hard analysis error was recorded
	HasErrors() bool
}

// Rule is a named check applied to a parsed source file
type Rule interface {
	// Name returns the unique rule identifier
	Name() string

	// Priority returns the severity tier of violations this rule produces
	Priority() int

	// Apply runs the rule against one file and returns its violations
	Apply(file *SourceFile) []Violation
}

// Reporter renders a Results view to a stream. The format name doubles as
// the file extension when reports are written to derived output paths.
type Reporter interface {
	// Name returns the format name (text, json, xml, ...)
	Name() string

	// Report writes a complete formatted report for the given results.
	// Implementations must treat results as read-only and must not retain
	// it beyond the call.
	Report(results Results, w io.Writer) error
}

// SourceFile is the parsed input handed to rules
type SourceFile struct {
	// Path is the file path as passed to the analysis
	Path string

	// Source is the raw file content
	Source []byte

	// AST is the parsed syntax tree, nil when parsing failed
	AST ASTNode
}

// ASTNode abstracts the parser's tree so rules stay decoupled from the
// parsing technology
type ASTNode interface {
	// Kind returns the node kind
	Kind() string

	// Walk traverses the subtree depth-first; returning false from the
	// visitor stops descent into that branch
	Walk(visitor func(ASTNode) bool)

	// Children returns the named child nodes in source order
	Children() []ASTNode

	// Span returns the node's source location
	Span() SourceLocation

	// Text returns the source text covered by the node
	Text() string
}

// Thresholds holds the per-priority violation ceilings. A negative value
// means unlimited for that priority.
type Thresholds struct {
	MaxP1 int `json:"max_p1" yaml:"max_p1"`
	MaxP2 int `json:"max_p2" yaml:"max_p2"`
	MaxP3 int `json:"max_p3" yaml:"max_p3"`
}

// UnlimitedThresholds returns thresholds that never fail
func UnlimitedThresholds() Thresholds {
	return Thresholds{MaxP1: -1, MaxP2: -1, MaxP3: -1}
}

// Limit returns the ceiling for the given priority and whether one is set
func (t Thresholds) Limit(priority int) (int, bool) {
	var max int
	switch priority {
	case PriorityHigh:
		max = t.MaxP1
	case PriorityMedium:
		max = t.MaxP2
	case PriorityLow:
		max = t.MaxP3
	default:
		return 0, false
	}
	if max < 0 {
		return 0, false
	}
	return max, true
}

// LintRequest carries the full configuration for one lint run
type LintRequest struct {
	// Paths are the input files or directories to analyze
	Paths []string

	// RulePaths are the rule plugin artifacts to load
	RulePaths []string

	// ReporterPaths are additional reporter plugin artifacts to load
	ReporterPaths []string

	// Reporters are the requested report format names, in output order
	Reporters []string

	// OutputPath is the report path template; empty means stdout
	OutputPath string

	// Thresholds are the per-priority ceilings
	Thresholds Thresholds

	// AllowDuplicatedViolations selects the raw results view
	AllowDuplicatedViolations bool

	// ListEnabledRules prints the enabled rules before analysis
	ListEnabledRules bool

	// Analysis options
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	// Jobs is the analysis concurrency; 0 means one per CPU
	Jobs int

	// ConfigPath is the configuration file used, if any
	ConfigPath string
}

// AnalysisEngine traverses source files and records findings into the
// collector owned by the caller
type AnalysisEngine interface {
	// Run analyzes the given files with the given rules. Per-file failures
	// are recorded as hard errors; a returned error means the whole
	// processing phase failed.
	Run(ctx context.Context, files []string, rules []Rule) error
}

// RuleLoader loads rules and reporters from plugin artifacts
type RuleLoader interface {
	// LoadRules loads the rules contained in the artifact at path
	LoadRules(path string) ([]Rule, error)

	// LoadReporters loads the reporters contained in the artifact at path
	LoadReporters(path string) ([]Reporter, error)
}

// ProgressManager manages progress reporting during analysis
type ProgressManager interface {
	// StartTask begins a progress task with a description and total count
	StartTask(description string, total int) TaskProgress

	// IsInteractive returns true if progress is actually displayed
	IsInteractive() bool

	// Close cleans up all tasks
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	// Increment adds n to the current progress
	Increment(n int)

	// Describe updates the current item description
	Describe(description string)

	// Complete marks the task as finished
	Complete()
}
