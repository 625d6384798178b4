package stream

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrEmpty is returned by First and Last when the stream completes
	// without a value.
	ErrEmpty = errors.New("stream: empty stream")

	// ErrStop matches the errors consumers use to end an observation early.
	// An observer may return it from next to stop a stream without failing.
	ErrStop = errors.New("stream: stopped")
)

// PanicError wraps a value recovered from a panic raised while a stream was
// observed, together with the stack trace at the point of the panic.
type PanicError struct {
	// Value is the value passed to panic().
	Value any
	// Stack is the stack trace captured when the panic was recovered.
	Stack string
}

func newPanicError(v any) *PanicError {
	return &PanicError{
		Value: v,
		Stack: string(debug.Stack()),
	}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("stream: panic recovered: %v", e.Value)
}

// Unwrap returns Value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// stopError ends one observation early. Each consumer allocates its own so
// that nested early exits can tell theirs apart.
type stopError struct {
	by string
}

func newStop(by string) *stopError {
	return &stopError{by: by}
}

func (e *stopError) Error() string {
	return "stream: stopped by " + e.by
}

func (e *stopError) Is(target error) bool {
	return target == ErrStop
}
