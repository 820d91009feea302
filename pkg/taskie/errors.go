package taskie

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData is the sentinel for a response that was absent, unparsable,
	// or missing the field the operation needs. Transport failures never
	// match it.
	ErrNoData = errors.New("no data available")

	// ErrNoTasks is returned by ListTasks when the server sent no notes.
	// It matches ErrNoData so callers that only care about "no usable
	// response" can keep checking the broader sentinel.
	ErrNoTasks = fmt.Errorf("%w: task list is empty", ErrNoData)

	// ErrPanic wraps a panic recovered inside an async call.
	ErrPanic = errors.New("taskie call panicked")
)

// StatusError is returned when the server answers with a non-2xx status.
// The body carries no usable payload, so it unwraps to ErrNoData.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("taskie API error %d", e.StatusCode)
	}
	return fmt.Sprintf("taskie API error %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	return ErrNoData
}
