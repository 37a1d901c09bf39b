package rule

import (
	"fmt"
	"strings"

	"github.com/ludo-technologies/jsvet/domain"
)

// Builtins returns the compiled-in rule set
func Builtins() []domain.Rule {
	return []domain.Rule{
		NoDebugger{},
		NoWith{},
		NoEval{},
		NoEmptyCatch{},
		NoDuplicateCase{},
	}
}

// matchKind collects violations for every node of the given kind
func matchKind(file *domain.SourceFile, kind string, fn func(domain.ASTNode) *domain.Violation) []domain.Violation {
	if file == nil || file.AST == nil {
		return nil
	}
	var violations []domain.Violation
	file.AST.Walk(func(n domain.ASTNode) bool {
		if n.Kind() == kind {
			if v := fn(n); v != nil {
				violations = append(violations, *v)
			}
		}
		return true
	})
	return violations
}

// NoDebugger flags debugger statements left in the source
type NoDebugger struct{}

// Name returns the rule identifier
func (NoDebugger) Name() string { return "no-debugger" }

// Priority returns the severity tier
func (NoDebugger) Priority() int { return domain.PriorityMedium }

// Apply runs the rule against one file
func (r NoDebugger) Apply(file *domain.SourceFile) []domain.Violation {
	return matchKind(file, "debugger_statement", func(n domain.ASTNode) *domain.Violation {
		return &domain.Violation{
			RuleID:   r.Name(),
			Priority: r.Priority(),
			Location: n.Span(),
			Message:  "debugger statement",
		}
	})
}

// NoWith flags with statements, which defeat static scoping
type NoWith struct{}

// Name returns the rule identifier
func (NoWith) Name() string { return "no-with" }

// Priority returns the severity tier
func (NoWith) Priority() int { return domain.PriorityHigh }

// Apply runs the rule against one file
func (r NoWith) Apply(file *domain.SourceFile) []domain.Violation {
	return matchKind(file, "with_statement", func(n domain.ASTNode) *domain.Violation {
		return &domain.Violation{
			RuleID:   r.Name(),
			Priority: r.Priority(),
			Location: n.Span(),
			Message:  "with statement",
		}
	})
}

// NoEval flags direct calls to eval
type NoEval struct{}

// Name returns the rule identifier
func (NoEval) Name() string { return "no-eval" }

// Priority returns the severity tier
func (NoEval) Priority() int { return domain.PriorityMedium }

// Apply runs the rule against one file
func (r NoEval) Apply(file *domain.SourceFile) []domain.Violation {
	return matchKind(file, "call_expression", func(n domain.ASTNode) *domain.Violation {
		children := n.Children()
		if len(children) == 0 {
			return nil
		}
		callee := children[0]
		if callee.Kind() != "identifier" || callee.Text() != "eval" {
			return nil
		}
		return &domain.Violation{
			RuleID:   r.Name(),
			Priority: r.Priority(),
			Location: n.Span(),
			Message:  "eval call",
		}
	})
}

// NoEmptyCatch flags catch clauses whose body contains no statements
type NoEmptyCatch struct{}

// Name returns the rule identifier
func (NoEmptyCatch) Name() string { return "no-empty-catch" }

// Priority returns the severity tier
func (NoEmptyCatch) Priority() int { return domain.PriorityLow }

// Apply runs the rule against one file
func (r NoEmptyCatch) Apply(file *domain.SourceFile) []domain.Violation {
	return matchKind(file, "catch_clause", func(n domain.ASTNode) *domain.Violation {
		for _, c := range n.Children() {
			if c.Kind() == "statement_block" {
				if len(c.Children()) == 0 {
					return &domain.Violation{
						RuleID:   r.Name(),
						Priority: r.Priority(),
						Location: n.Span(),
						Message:  "empty catch block",
					}
				}
				return nil
			}
		}
		return nil
	})
}

// NoDuplicateCase flags switch statements with duplicated case expressions
type NoDuplicateCase struct{}

// Name returns the rule identifier
func (NoDuplicateCase) Name() string { return "no-duplicate-case" }

// Priority returns the severity tier
func (NoDuplicateCase) Priority() int { return domain.PriorityHigh }

// Apply runs the rule against one file
func (r NoDuplicateCase) Apply(file *domain.SourceFile) []domain.Violation {
	if file == nil || file.AST == nil {
		return nil
	}
	var violations []domain.Violation
	file.AST.Walk(func(n domain.ASTNode) bool {
		if n.Kind() != "switch_statement" {
			return true
		}
		seen := make(map[string]bool)
		var walkCases func(domain.ASTNode)
		walkCases = func(node domain.ASTNode) {
			for _, c := range node.Children() {
				if c.Kind() == "switch_body" {
					walkCases(c)
					continue
				}
				if c.Kind() != "switch_case" {
					continue
				}
				values := c.Children()
				if len(values) == 0 {
					continue
				}
				expr := strings.TrimSpace(values[0].Text())
				if seen[expr] {
					violations = append(violations, domain.Violation{
						RuleID:   r.Name(),
						Priority: r.Priority(),
						Location: c.Span(),
						Message:  fmt.Sprintf("duplicated case %q", expr),
					})
					continue
				}
				seen[expr] = true
			}
		}
		walkCases(n)
		return true
	})
	return violations
}
