package parser

// Node is one node of the generic operator tree. The parser knows nothing
// about what the operators mean; it only records shape. Four shapes exist:
// Placeholder, Group, Leaf, and Operator.
type Node interface {
	isNode()
}

// Placeholder stands in for a missing operand, produced when an operator
// token appears in prefix position.
type Placeholder struct{}

func (*Placeholder) isNode() {}

// Group is a parenthesized sub-tree.
type Group struct {
	Inner Node
}

func (*Group) isNode() {}

// Leaf is a bare identifier or a quoted string literal. String lexemes keep
// their surrounding double quotes.
type Leaf struct {
	Label string
}

func (*Leaf) isNode() {}

// Operator is a binary operator application.
type Operator struct {
	Label string
	Left  Node
	Right Node
}

func (*Operator) isNode() {}
