package taskie

import "context"

// ITaskie is the Taskie API surface. Implementations are safe for
// concurrent use.
type ITaskie interface {
	Login(ctx context.Context, req UserDataRequest) (string, error)
	Register(ctx context.Context, req UserDataRequest) (string, error)
	ListTasks(ctx context.Context) ([]Task, error)
	AddTask(ctx context.Context, req AddTaskRequest) (Task, error)
	CompleteTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) (string, error)
	GetUserProfile(ctx context.Context) (UserProfile, error)
}

// TokenSource supplies the session token attached to outgoing requests.
// An empty or blank token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }
