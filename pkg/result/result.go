// Package result provides a two-variant outcome type for operations whose
// completion is delivered to a continuation instead of being returned.
package result

import "errors"

// ErrNilFailure replaces a nil error passed to Failure so that a failed
// Result always carries a non-nil error.
var ErrNilFailure = errors.New("failure without error")

// Result is exactly one of Success(value) or Failure(err).
// The zero value is a Failure carrying ErrNilFailure.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Success wraps a payload.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// Failure wraps an error.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{err: err}
}

// From converts a Go (value, error) pair. A non-nil err always wins.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

func (r Result[T]) IsSuccess() bool { return r.ok }

func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the payload and whether r is a Success.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.ok
}

// Err returns the wrapped error, or nil for a Success.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	if r.err == nil {
		return ErrNilFailure
	}
	return r.err
}

// Get unpacks r back into the (value, error) convention.
func (r Result[T]) Get() (T, error) {
	return r.value, r.Err()
}

// Map applies fn to a Success payload. Failures pass through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if !r.ok {
		return Failure[U](r.Err())
	}
	return Success(fn(r.value))
}
