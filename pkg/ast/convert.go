package ast

import (
	"fmt"
	"strings"

	"rill/interpreter-go/pkg/parser"
)

// variableMarker is the one operator whose left operand may (and must) be a
// placeholder: `\x` parses as (\ placeholder x) and adapts to VarRef("x").
const variableMarker = "\\"

// Convert adapts one generic operator-tree node into the semantic tree,
// validating the structural rules the grammar cannot express. Conversion is
// depth-first and aborts on the first failing sub-tree; no partial tree is
// ever returned.
func Convert(node parser.Node) (Node, error) {
	switch n := node.(type) {
	case *parser.Placeholder:
		return nil, fmt.Errorf("placeholder outside a variable declaration")
	case *parser.Group:
		inner, err := Convert(n.Inner)
		if err != nil {
			return nil, err
		}
		return NewScope(inner), nil
	case *parser.Leaf:
		if strings.HasPrefix(n.Label, `"`) {
			return NewText(strings.Trim(n.Label, `"`)), nil
		}
		return NewName(n.Label), nil
	case *parser.Operator:
		if n.Label == variableMarker {
			return convertVariable(n)
		}
		left, err := Convert(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := Convert(n.Right)
		if err != nil {
			return nil, err
		}
		switch n.Label {
		case ";", "->":
			return NewSequence(left, right), nil
		case "<-":
			// Operands swap so data still flows left to right.
			return NewSequence(right, left), nil
		case "|":
			return NewAlternative(left, right), nil
		case ".":
			return NewCall([]Node{left}, right), nil
		default:
			// Arithmetic and comparisons become calls to the built-in of
			// the same label.
			return NewCall([]Node{left, right}, NewName(n.Label)), nil
		}
	default:
		return nil, fmt.Errorf("unsupported node shape %T", node)
	}
}

func convertVariable(n *parser.Operator) (Node, error) {
	if _, ok := n.Left.(*parser.Placeholder); !ok {
		return nil, fmt.Errorf("variable declaration requires a prefix marker")
	}
	leaf, ok := n.Right.(*parser.Leaf)
	if !ok {
		return nil, fmt.Errorf("variable declaration requires an identifier")
	}
	return NewVarRef(leaf.Label), nil
}
