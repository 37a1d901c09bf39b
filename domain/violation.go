package domain

import "fmt"

// Priority levels for violations. Priority 1 is the most severe.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// SourceLocation identifies a region of source code
type SourceLocation struct {
	FilePath    string `json:"file_path" yaml:"file_path"`
	StartLine   int    `json:"start_line" yaml:"start_line"`
	StartColumn int    `json:"start_column" yaml:"start_column"`
	EndLine     int    `json:"end_line" yaml:"end_line"`
	EndColumn   int    `json:"end_column" yaml:"end_column"`
}

// String returns a string representation of the location
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.FilePath, l.StartLine, l.StartColumn)
}

// Violation represents a single issue discovered by a rule.
// It is immutable once constructed.
type Violation struct {
	// RuleID is the name of the rule that produced this violation
	RuleID string `json:"rule_id" yaml:"rule_id"`

	// Priority is the severity tier: 1 (most severe) to 3 (least)
	Priority int `json:"priority" yaml:"priority"`

	// Location is where the issue was found
	Location SourceLocation `json:"location" yaml:"location"`

	// Message is the human-readable description
	Message string `json:"message" yaml:"message"`
}

// violationKey is the identity of a violation for deduplication purposes.
// Two violations with the same key are the same finding regardless of
// detection order.
type violationKey struct {
	ruleID    string
	filePath  string
	startLine int
	startCol  int
	message   string
}

// Key returns the deduplication identity of the violation
func (v Violation) Key() any {
	return violationKey{
		ruleID:    v.RuleID,
		filePath:  v.Location.FilePath,
		startLine: v.Location.StartLine,
		startCol:  v.Location.StartColumn,
		message:   v.Message,
	}
}

// String returns a string representation of the violation
func (v Violation) String() string {
	return fmt.Sprintf("%s: %s [%s|P%d]", v.Location, v.Message, v.RuleID, v.Priority)
}
