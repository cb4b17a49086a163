// Package driver turns rill source into an evaluatable semantic tree.
package driver

import (
	"fmt"
	"os"

	"rill/interpreter-go/pkg/ast"
	"rill/interpreter-go/pkg/parser"
)

// LoadSource parses source text and adapts it into the semantic tree.
func LoadSource(src string) (ast.Node, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	node, err := ast.Convert(tree)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return node, nil
}

// LoadFile reads a source file and returns its semantic tree. Read and parse
// failures are reported with the path.
func LoadFile(path string) (ast.Node, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	node, err := LoadSource(string(contents))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}
