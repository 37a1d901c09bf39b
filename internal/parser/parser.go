// Package parser wraps tree-sitter to produce the lean syntax tree consumed
// by lint rules.
package parser

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
)

// Parser wraps a tree-sitter parser for JavaScript/TypeScript
type Parser struct {
	parser *sitter.Parser
	isTS   bool
}

// NewParser creates a new JavaScript parser
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(javascript.GetLanguage())
	return &Parser{parser: p}
}

// NewTypeScriptParser creates a new TypeScript parser
func NewTypeScriptParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(tsx.GetLanguage())
	return &Parser{parser: p, isTS: true}
}

// IsTypeScript returns true if this parser is configured for TypeScript
func (p *Parser) IsTypeScript() bool {
	return p.isTS
}

// Close frees the underlying parser resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ParseFile parses source code into the internal tree. The tree-sitter tree
// is converted eagerly and released before returning.
func (p *Parser) ParseFile(filename string, source []byte) (*Node, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse file %s: %v", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("no root node in parse tree for %s", filename)
	}
	if root.HasError() {
		return nil, fmt.Errorf("syntax errors in %s", filename)
	}

	return convert(root, filename, source), nil
}

// ParseString parses source code from a string
func (p *Parser) ParseString(source string) (*Node, error) {
	return p.ParseFile("<input>", []byte(source))
}

// typeScriptExtensions are the file extensions parsed with the TSX grammar
var typeScriptExtensions = map[string]bool{
	".ts": true, ".tsx": true, ".mts": true, ".cts": true,
}

// ParseForLanguage selects the JavaScript or TypeScript grammar based on the
// file extension and parses the source
func ParseForLanguage(filename string, source []byte) (*Node, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var p *Parser
	if typeScriptExtensions[ext] {
		p = NewTypeScriptParser()
	} else {
		p = NewParser()
	}
	defer p.Close()

	return p.ParseFile(filename, source)
}
