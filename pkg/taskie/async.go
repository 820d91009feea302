package taskie

import (
	"context"
	"fmt"

	"taskie/pkg/result"
)

// Async runs Taskie calls off the caller's goroutine and hands each
// outcome to a continuation. Every continuation is invoked exactly once
// with exactly one Result; panics inside the call become a Failure.
type Async struct {
	api ITaskie
}

// NewAsync wraps api.
func NewAsync(api ITaskie) *Async {
	return &Async{api: api}
}

func (a *Async) Login(ctx context.Context, req UserDataRequest, done func(result.Result[string])) {
	dispatch(ctx, func(ctx context.Context) (string, error) {
		return a.api.Login(ctx, req)
	}, done)
}

func (a *Async) Register(ctx context.Context, req UserDataRequest, done func(result.Result[string])) {
	dispatch(ctx, func(ctx context.Context) (string, error) {
		return a.api.Register(ctx, req)
	}, done)
}

func (a *Async) ListTasks(ctx context.Context, done func(result.Result[[]Task])) {
	dispatch(ctx, a.api.ListTasks, done)
}

func (a *Async) AddTask(ctx context.Context, req AddTaskRequest, done func(result.Result[Task])) {
	dispatch(ctx, func(ctx context.Context) (Task, error) {
		return a.api.AddTask(ctx, req)
	}, done)
}

func (a *Async) CompleteTask(ctx context.Context, id string, done func(result.Result[struct{}])) {
	dispatch(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.api.CompleteTask(ctx, id)
	}, done)
}

func (a *Async) DeleteTask(ctx context.Context, id string, done func(result.Result[string])) {
	dispatch(ctx, func(ctx context.Context) (string, error) {
		return a.api.DeleteTask(ctx, id)
	}, done)
}

func (a *Async) GetUserProfile(ctx context.Context, done func(result.Result[UserProfile])) {
	dispatch(ctx, a.api.GetUserProfile, done)
}

func dispatch[T any](ctx context.Context, call func(context.Context) (T, error), done func(result.Result[T])) {
	go func() {
		done(run(ctx, call))
	}()
}

func run[T any](ctx context.Context, call func(context.Context) (T, error)) (r result.Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			r = result.Failure[T](fmt.Errorf("%w: %v", ErrPanic, p))
		}
	}()
	v, err := call(ctx)
	return result.From(v, err)
}
