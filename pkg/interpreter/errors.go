package interpreter

import (
	"errors"
	"fmt"
)

// ErrFailed is the soft control-failure: a recoverable, valueless outcome.
// It encodes boolean-false, absent store keys, and loop termination, and it
// is the only error an Alternative fallback recovers from.
var ErrFailed = errors.New("evaluation failed")

// Fault is a fatal contract violation: wrong value kind, wrong arity, an I/O
// operation against the wrong stream state, or an unimplemented construct.
// It aborts the whole run, bypassing every pending Alternative and Sequence
// frame.
type Fault struct {
	Reason string
}

func (f *Fault) Error() string { return f.Reason }

func faultf(format string, args ...any) error {
	return &Fault{Reason: fmt.Sprintf(format, args...)}
}

// Failed reports whether err is the recoverable control failure.
func Failed(err error) bool { return errors.Is(err, ErrFailed) }

// IsFault reports whether err is a fatal fault.
func IsFault(err error) bool {
	var f *Fault
	return errors.As(err, &f)
}
