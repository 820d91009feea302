package result_test

import (
	"errors"
	"testing"

	"taskie/pkg/result"
)

func TestResult(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r := result.Success("abc")
		if !r.IsSuccess() || r.IsFailure() {
			t.Fatalf("expected success, got %+v", r)
		}
		v, ok := r.Value()
		if !ok || v != "abc" {
			t.Errorf("unexpected value %q ok=%v", v, ok)
		}
		if r.Err() != nil {
			t.Errorf("expected nil error, got %v", r.Err())
		}
	})

	t.Run("Failure", func(t *testing.T) {
		boom := errors.New("boom")
		r := result.Failure[int](boom)
		if r.IsSuccess() || !r.IsFailure() {
			t.Fatalf("expected failure")
		}
		if _, ok := r.Value(); ok {
			t.Errorf("failure must not expose a value")
		}
		if !errors.Is(r.Err(), boom) {
			t.Errorf("expected boom, got %v", r.Err())
		}
	})

	t.Run("Failure with nil error", func(t *testing.T) {
		r := result.Failure[int](nil)
		if r.IsSuccess() {
			t.Fatalf("nil failure must stay a failure")
		}
		if !errors.Is(r.Err(), result.ErrNilFailure) {
			t.Errorf("expected ErrNilFailure, got %v", r.Err())
		}
	})

	t.Run("Zero value is failure", func(t *testing.T) {
		var r result.Result[string]
		if r.IsSuccess() {
			t.Fatalf("zero value must not be a success")
		}
		if !errors.Is(r.Err(), result.ErrNilFailure) {
			t.Errorf("expected ErrNilFailure, got %v", r.Err())
		}
	})

	t.Run("From", func(t *testing.T) {
		if r := result.From(3, nil); !r.IsSuccess() {
			t.Errorf("expected success")
		}
		if r := result.From(3, errors.New("x")); r.IsSuccess() {
			t.Errorf("error must win over value")
		}
	})

	t.Run("Get", func(t *testing.T) {
		v, err := result.Success(7).Get()
		if err != nil || v != 7 {
			t.Errorf("unexpected (%d, %v)", v, err)
		}
		_, err = result.Failure[int](errors.New("x")).Get()
		if err == nil {
			t.Errorf("expected error")
		}
	})
}

func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }

	if v, _ := result.Map(result.Success(4), double).Value(); v != 8 {
		t.Errorf("expected 8, got %d", v)
	}

	boom := errors.New("boom")
	called := false
	r := result.Map(result.Failure[int](boom), func(n int) string {
		called = true
		return ""
	})
	if called {
		t.Errorf("fn must not run for a failure")
	}
	if !errors.Is(r.Err(), boom) {
		t.Errorf("expected boom to pass through, got %v", r.Err())
	}
}
