// Package testutil provides helper functions for testing jsvet components
package testutil

import (
	"testing"

	"github.com/ludo-technologies/jsvet/domain"
	"github.com/ludo-technologies/jsvet/internal/parser"
)

// CreateTestAST creates a test AST from JavaScript source code
func CreateTestAST(t *testing.T, source string) *parser.Node {
	t.Helper()
	p := parser.NewParser()
	defer p.Close()

	ast, err := p.ParseString(source)
	if err != nil {
		t.Fatalf("Failed to parse test code: %v", err)
	}
	return ast
}

// CreateTestSourceFile parses JavaScript source and wraps it as a source file
// ready to be handed to a rule
func CreateTestSourceFile(t *testing.T, path, source string) *domain.SourceFile {
	t.Helper()
	ast, err := parser.ParseForLanguage(path, []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse test code: %v", err)
	}
	return &domain.SourceFile{Path: path, Source: []byte(source), AST: ast}
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}

// AssertFalse fails the test if condition is true
func AssertFalse(t *testing.T, condition bool, msg string) {
	t.Helper()
	if condition {
		t.Error(msg)
	}
}

// CountNodesOfKind counts nodes of a specific kind in an AST
func CountNodesOfKind(ast *parser.Node, kind string) int {
	count := 0
	ast.Walk(func(n domain.ASTNode) bool {
		if n.Kind() == kind {
			count++
		}
		return true
	})
	return count
}
