package interpreter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"rill/interpreter-go/pkg/ast"
	"rill/interpreter-go/pkg/runtime"
)

// evaluateBuiltin dispatches a Name node against the fixed operation table.
// Operands, where an operation takes them, are each evaluated independently
// against an Empty stream with no arguments in scope.
func (in *Interpreter) evaluateBuiltin(operands []ast.Node, label string, stream runtime.Value) (runtime.Value, error) {
	switch label {
	case "int":
		return in.builtinInt(stream)
	case "str":
		return in.builtinStr(stream)
	case "output":
		return in.builtinOutput(stream)
	case "input":
		return in.builtinInput(stream)
	case "store":
		return in.builtinStore(operands, stream)
	case "load":
		return in.builtinLoad(operands, stream)
	case "+", "-", "*", "%", "==", "!=", "=<", "<":
		return in.builtinBinary(operands, label)
	case "loop":
		return in.builtinLoop(operands, stream)
	case "pass":
		return stream, nil
	default:
		return nil, faultf("unknown operation %q", label)
	}
}

func (in *Interpreter) builtinInt(stream runtime.Value) (runtime.Value, error) {
	switch v := stream.(type) {
	case runtime.IntegerValue:
		return v, nil
	case runtime.TextValue:
		parsed, err := strconv.ParseInt(v.Val, 10, 64)
		if err != nil {
			return nil, ErrFailed
		}
		return runtime.IntegerValue{Val: parsed}, nil
	default:
		return nil, faultf("int requires an integer or text stream")
	}
}

func (in *Interpreter) builtinStr(stream runtime.Value) (runtime.Value, error) {
	switch v := stream.(type) {
	case runtime.IntegerValue:
		return runtime.TextValue{Val: strconv.FormatInt(v.Val, 10)}, nil
	case runtime.TextValue:
		return v, nil
	default:
		return nil, faultf("str requires an integer or text stream")
	}
}

func (in *Interpreter) builtinOutput(stream runtime.Value) (runtime.Value, error) {
	if stream.Kind() == runtime.KindEmpty {
		return nil, faultf("output requires a non-empty stream")
	}
	fmt.Fprintln(in.stdout, runtime.Format(stream))
	return runtime.EmptyValue{}, nil
}

func (in *Interpreter) builtinInput(stream runtime.Value) (runtime.Value, error) {
	if stream.Kind() != runtime.KindEmpty {
		return nil, faultf("input requires an empty stream, got %s", stream.Kind())
	}
	line, err := in.stdin.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, faultf("input: %v", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return runtime.TextValue{Val: line}, nil
}

// storeKey evaluates an operation's key operand. Anything but a successful
// Text result is a fault; the key operand is not a place soft failure may
// escape from.
func (in *Interpreter) storeKey(operands []ast.Node, label string) (string, error) {
	if len(operands) < 1 {
		return "", faultf("%s requires a key argument", label)
	}
	key, err := in.Evaluate(nil, operands[0], runtime.EmptyValue{})
	if err != nil {
		if Failed(err) {
			return "", faultf("%s key did not produce a value", label)
		}
		return "", err
	}
	text, ok := key.(runtime.TextValue)
	if !ok {
		return "", faultf("%s key must be text, got %s", label, key.Kind())
	}
	return text.Val, nil
}

func (in *Interpreter) builtinStore(operands []ast.Node, stream runtime.Value) (runtime.Value, error) {
	key, err := in.storeKey(operands, "store")
	if err != nil {
		return nil, err
	}
	in.storage[key] = stream
	return runtime.EmptyValue{}, nil
}

func (in *Interpreter) builtinLoad(operands []ast.Node, stream runtime.Value) (runtime.Value, error) {
	if stream.Kind() != runtime.KindEmpty {
		return nil, faultf("load requires an empty stream, got %s", stream.Kind())
	}
	key, err := in.storeKey(operands, "load")
	if err != nil {
		return nil, err
	}
	value, ok := in.storage[key]
	if !ok {
		return nil, ErrFailed
	}
	return value, nil
}

// builtinBinary covers the arithmetic and comparison operations. Both
// operands must evaluate to integers; a soft failure in either operand makes
// the whole operation soft-fail, while a wrong kind is a fault. Comparisons
// succeed with Empty when the relation holds and soft-fail otherwise.
func (in *Interpreter) builtinBinary(operands []ast.Node, label string) (runtime.Value, error) {
	if len(operands) < 2 {
		return nil, faultf("%s requires two arguments", label)
	}
	// Both operands are evaluated before either is kind-checked; a soft
	// failure in either operand soft-fails the whole operation.
	leftValue, err := in.Evaluate(nil, operands[0], runtime.EmptyValue{})
	if err != nil {
		return nil, err
	}
	rightValue, err := in.Evaluate(nil, operands[1], runtime.EmptyValue{})
	if err != nil {
		return nil, err
	}
	leftInt, ok := leftValue.(runtime.IntegerValue)
	if !ok {
		return nil, faultf("%s requires integer operands, got %s", label, leftValue.Kind())
	}
	rightInt, ok := rightValue.(runtime.IntegerValue)
	if !ok {
		return nil, faultf("%s requires integer operands, got %s", label, rightValue.Kind())
	}
	left, right := leftInt.Val, rightInt.Val
	switch label {
	case "+":
		return runtime.IntegerValue{Val: left + right}, nil
	case "-":
		return runtime.IntegerValue{Val: left - right}, nil
	case "*":
		return runtime.IntegerValue{Val: left * right}, nil
	case "%":
		if right == 0 {
			return nil, faultf("%% by zero")
		}
		return runtime.IntegerValue{Val: left % right}, nil
	case "==":
		return comparison(left == right)
	case "!=":
		return comparison(left != right)
	case "=<":
		return comparison(left <= right)
	case "<":
		return comparison(left < right)
	default:
		return nil, faultf("unknown operation %q", label)
	}
}

func comparison(holds bool) (runtime.Value, error) {
	if holds {
		return runtime.EmptyValue{}, nil
	}
	return nil, ErrFailed
}

// builtinLoop re-evaluates its operand, feeding each iteration's result to
// the next, until an iteration soft-fails. The loop itself then reports soft
// failure: it can never succeed on its own, so durable iteration state lives
// in the store, not the stream.
func (in *Interpreter) builtinLoop(operands []ast.Node, stream runtime.Value) (runtime.Value, error) {
	if len(operands) < 1 {
		return nil, faultf("loop requires a body argument")
	}
	current := stream
	for {
		next, err := in.Evaluate(nil, operands[0], current)
		if err != nil {
			if Failed(err) {
				return nil, ErrFailed
			}
			return nil, err
		}
		current = next
	}
}
