package domain

import (
	"errors"
	"fmt"
)

// Sentinel causes of an InvocationError. Match them with errors.Is.
var (
	// ErrSpawn is returned when the selector process could not be started.
	ErrSpawn = errors.New("failed to spawn selector")

	// ErrCommunicate is returned when writing the payload or reading the answer failed.
	ErrCommunicate = errors.New("failed to communicate with selector")

	// ErrAbnormalExit is returned when the selector was killed or exited with an unexpected status.
	ErrAbnormalExit = errors.New("selector exited abnormally")
)

// InvocationError reports a failed selector round-trip.
type InvocationError struct {
	Op  error // one of ErrSpawn, ErrCommunicate, ErrAbnormalExit
	Err error // underlying cause, may be nil
}

func (e *InvocationError) Error() string {
	if e.Err == nil {
		return e.Op.Error()
	}
	return fmt.Sprintf("%v: %v", e.Op, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is/As.
func (e *InvocationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Op}
	}
	return []error{e.Op, e.Err}
}

// CallbackError is a failure signalled by a host callback.
// Any error returned from a callback is accepted; CallbackError just carries a plain message.
type CallbackError struct {
	Message string
}

func (e *CallbackError) Error() string { return e.Message }

// Failf builds a CallbackError with a formatted message.
func Failf(format string, args ...any) error {
	return &CallbackError{Message: fmt.Sprintf(format, args...)}
}
