package ast

// NodeType names a semantic tree node kind.
type NodeType string

const (
	NodeScope       NodeType = "Scope"
	NodeSequence    NodeType = "Sequence"
	NodeAlternative NodeType = "Alternative"
	NodeCall        NodeType = "Call"
	NodeName        NodeType = "Name"
	NodeText        NodeType = "Text"
	NodeVarRef      NodeType = "VarRef"
)

// Node is one node of the semantic syntax tree. The tree is immutable once
// built; evaluation never rewrites it.
type Node interface {
	NodeType() NodeType
	isNode()
}

// Scope is transparent grouping; it evaluates exactly as its inner node.
type Scope struct {
	Inner Node
}

func (*Scope) NodeType() NodeType { return NodeScope }
func (*Scope) isNode()            {}

// Sequence evaluates First and, on success, feeds its result as input to
// Second.
type Sequence struct {
	First  Node
	Second Node
}

func (*Sequence) NodeType() NodeType { return NodeSequence }
func (*Sequence) isNode()            {}

// Alternative evaluates Primary and, on soft failure, evaluates Fallback
// against the stream as it stood before Primary ran.
type Alternative struct {
	Primary  Node
	Fallback Node
}

func (*Alternative) NodeType() NodeType { return NodeAlternative }
func (*Alternative) isNode()            {}

// Call evaluates Callee as a named operation with Operands as its
// (unevaluated) argument list.
type Call struct {
	Operands []Node
	Callee   Node
}

func (*Call) NodeType() NodeType { return NodeCall }
func (*Call) isNode()            {}

// Name is a named built-in operation. Reached with no enclosing Call its
// argument list is empty.
type Name struct {
	Label string
}

func (*Name) NodeType() NodeType { return NodeName }
func (*Name) isNode()            {}

// Text is a literal constant, legal only against an Empty stream with no
// arguments in scope.
type Text struct {
	Contents string
}

func (*Text) NodeType() NodeType { return NodeText }
func (*Text) isNode()            {}

// VarRef is the variable reference introduced by the grammar's prefix marker.
// It has no evaluation semantics; reaching it at runtime is a fatal fault.
type VarRef struct {
	Label string
}

func (*VarRef) NodeType() NodeType { return NodeVarRef }
func (*VarRef) isNode()            {}

func NewScope(inner Node) *Scope { return &Scope{Inner: inner} }

func NewSequence(first, second Node) *Sequence {
	return &Sequence{First: first, Second: second}
}

func NewAlternative(primary, fallback Node) *Alternative {
	return &Alternative{Primary: primary, Fallback: fallback}
}

func NewCall(operands []Node, callee Node) *Call {
	return &Call{Operands: operands, Callee: callee}
}

func NewName(label string) *Name { return &Name{Label: label} }

func NewText(contents string) *Text { return &Text{Contents: contents} }

func NewVarRef(label string) *VarRef { return &VarRef{Label: label} }
