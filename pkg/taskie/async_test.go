package taskie_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"taskie/pkg/result"
	"taskie/pkg/taskie"
)

type fakeAPI struct {
	token   string
	err     error
	panics  bool
	tasks   []taskie.Task
	profile taskie.UserProfile
}

func (f *fakeAPI) Login(ctx context.Context, req taskie.UserDataRequest) (string, error) {
	if f.panics {
		panic("boom")
	}
	return f.token, f.err
}

func (f *fakeAPI) Register(ctx context.Context, req taskie.UserDataRequest) (string, error) {
	return "created", f.err
}

func (f *fakeAPI) ListTasks(ctx context.Context) ([]taskie.Task, error) {
	return f.tasks, f.err
}

func (f *fakeAPI) AddTask(ctx context.Context, req taskie.AddTaskRequest) (taskie.Task, error) {
	return taskie.Task{ID: "9", Title: req.Title}, f.err
}

func (f *fakeAPI) CompleteTask(ctx context.Context, id string) error {
	return f.err
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id string) (string, error) {
	return "deleted", f.err
}

func (f *fakeAPI) GetUserProfile(ctx context.Context) (taskie.UserProfile, error) {
	return f.profile, f.err
}

// await collects one continuation call and fails on a second.
func await[T any](t *testing.T, start func(done func(result.Result[T]))) result.Result[T] {
	t.Helper()
	var calls int32
	ch := make(chan result.Result[T], 2)
	start(func(r result.Result[T]) {
		atomic.AddInt32(&calls, 1)
		ch <- r
	})

	var r result.Result[T]
	select {
	case r = <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("continuation was never called")
	}

	select {
	case <-ch:
		t.Fatalf("continuation called more than once")
	case <-time.After(20 * time.Millisecond):
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected exactly one call, got %d", n)
	}
	return r
}

func TestAsync(t *testing.T) {
	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		a := taskie.NewAsync(&fakeAPI{token: "abc"})
		r := await(t, func(done func(result.Result[string])) {
			a.Login(ctx, taskie.UserDataRequest{}, done)
		})
		if v, ok := r.Value(); !ok || v != "abc" {
			t.Errorf("expected Success(abc), got %+v", r)
		}
	})

	t.Run("Failure carries the error", func(t *testing.T) {
		a := taskie.NewAsync(&fakeAPI{err: taskie.ErrNoTasks})
		r := await(t, func(done func(result.Result[[]taskie.Task])) {
			a.ListTasks(ctx, done)
		})
		if r.IsSuccess() || !errors.Is(r.Err(), taskie.ErrNoData) {
			t.Errorf("expected ErrNoData failure, got %+v", r)
		}
	})

	t.Run("Complete yields unit", func(t *testing.T) {
		a := taskie.NewAsync(&fakeAPI{})
		r := await(t, func(done func(result.Result[struct{}])) {
			a.CompleteTask(ctx, "9", done)
		})
		if !r.IsSuccess() {
			t.Errorf("expected success, got %v", r.Err())
		}
	})

	t.Run("Add, delete, register, profile", func(t *testing.T) {
		a := taskie.NewAsync(&fakeAPI{profile: taskie.UserProfile{Name: "Filip"}})
		if r := await(t, func(done func(result.Result[taskie.Task])) {
			a.AddTask(ctx, taskie.AddTaskRequest{Title: "t"}, done)
		}); !r.IsSuccess() {
			t.Errorf("add: %v", r.Err())
		}
		if r := await(t, func(done func(result.Result[string])) {
			a.DeleteTask(ctx, "9", done)
		}); !r.IsSuccess() {
			t.Errorf("delete: %v", r.Err())
		}
		if r := await(t, func(done func(result.Result[string])) {
			a.Register(ctx, taskie.UserDataRequest{}, done)
		}); !r.IsSuccess() {
			t.Errorf("register: %v", r.Err())
		}
		r := await(t, func(done func(result.Result[taskie.UserProfile])) {
			a.GetUserProfile(ctx, done)
		})
		if v, _ := r.Value(); v.Name != "Filip" {
			t.Errorf("profile: %+v", r)
		}
	})

	t.Run("Panic becomes failure", func(t *testing.T) {
		a := taskie.NewAsync(&fakeAPI{panics: true})
		r := await(t, func(done func(result.Result[string])) {
			a.Login(ctx, taskie.UserDataRequest{}, done)
		})
		if !errors.Is(r.Err(), taskie.ErrPanic) {
			t.Errorf("expected ErrPanic, got %v", r.Err())
		}
	})
}
