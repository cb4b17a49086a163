package interpreter

import (
	"bufio"
	"io"
	"os"

	"rill/interpreter-go/pkg/ast"
	"rill/interpreter-go/pkg/runtime"
)

// Interpreter walks the semantic tree, threading one stream value through it.
// Each instance owns its global store, so interpreters never interfere with
// each other.
type Interpreter struct {
	storage map[string]runtime.Value
	stdin   *bufio.Reader
	stdout  io.Writer
}

// New returns an interpreter with an empty store reading from os.Stdin and
// writing to os.Stdout.
func New() *Interpreter {
	return NewWithStorage(make(map[string]runtime.Value))
}

// NewWithStorage returns an interpreter whose store is seeded with the given
// mapping. The interpreter takes ownership of the map.
func NewWithStorage(storage map[string]runtime.Value) *Interpreter {
	return &Interpreter{
		storage: storage,
		stdin:   bufio.NewReader(os.Stdin),
		stdout:  os.Stdout,
	}
}

// SetInput redirects the `input` built-in to r.
func (in *Interpreter) SetInput(r io.Reader) { in.stdin = bufio.NewReader(r) }

// SetOutput redirects the `output` built-in to w.
func (in *Interpreter) SetOutput(w io.Writer) { in.stdout = w }

// Storage exposes the live global store.
func (in *Interpreter) Storage() map[string]runtime.Value { return in.storage }

// Run evaluates a whole program against an Empty stream.
func (in *Interpreter) Run(node ast.Node) (runtime.Value, error) {
	return in.Evaluate(nil, node, runtime.EmptyValue{})
}

// Evaluate walks node with the active operand list and the current stream.
// It returns the produced value, ErrFailed for a soft control-failure, or a
// *Fault for a fatal contract violation.
func (in *Interpreter) Evaluate(operands []ast.Node, node ast.Node, stream runtime.Value) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Scope:
		return in.Evaluate(operands, n.Inner, stream)
	case *ast.Sequence:
		result, err := in.Evaluate(operands, n.First, stream)
		if err != nil {
			return nil, err
		}
		return in.Evaluate(operands, n.Second, result)
	case *ast.Alternative:
		result, err := in.Evaluate(operands, n.Primary, stream)
		if err == nil {
			return result, nil
		}
		if !Failed(err) {
			return nil, err
		}
		// The fallback sees the stream as it stood before the primary
		// branch; store mutations made by the failed branch persist.
		return in.Evaluate(operands, n.Fallback, stream)
	case *ast.Call:
		return in.Evaluate(n.Operands, n.Callee, stream)
	case *ast.Name:
		return in.evaluateBuiltin(operands, n.Label, stream)
	case *ast.Text:
		return in.evaluateText(operands, n.Contents, stream)
	case *ast.VarRef:
		return nil, faultf("variable %q is not executable", n.Label)
	default:
		return nil, faultf("unsupported node type %s", node.NodeType())
	}
}

func (in *Interpreter) evaluateText(operands []ast.Node, contents string, stream runtime.Value) (runtime.Value, error) {
	if stream.Kind() != runtime.KindEmpty {
		return nil, faultf("literal %q requires an empty stream, got %s", contents, stream.Kind())
	}
	if len(operands) != 0 {
		return nil, faultf("literal %q takes no arguments", contents)
	}
	return runtime.TextValue{Val: contents}, nil
}
