package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindEmpty Kind = iota
	KindInteger
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindInteger:
		return "integer"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the stream value threaded through evaluation. Exactly one of
// EmptyValue, IntegerValue, or TextValue.
type Value interface {
	Kind() Kind
}

// EmptyValue is both "no value yet" and the unit a whole program must reduce
// to for success.
type EmptyValue struct{}

func (EmptyValue) Kind() Kind { return KindEmpty }

type IntegerValue struct {
	Val int64
}

func (IntegerValue) Kind() Kind { return KindInteger }

type TextValue struct {
	Val string
}

func (TextValue) Kind() Kind { return KindText }

// Format renders a value for console output and diagnostics.
func Format(v Value) string {
	switch val := v.(type) {
	case IntegerValue:
		return strconv.FormatInt(val.Val, 10)
	case TextValue:
		return val.Val
	case EmptyValue:
		return "empty"
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}

// Equal reports whether two values are the same kind and contents.
func Equal(a, b Value) bool {
	return a == b
}
