package task

import "context"

// UseCase is what a Taskie front end (the CLI) drives: sign-in state plus
// the task operations, with input checks done before any network call.
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) error
	Logout(ctx context.Context) error

	List(ctx context.Context) (ListOutput, error)
	Add(ctx context.Context, input AddInput) (AddOutput, error)
	Complete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) (DeleteOutput, error)

	Profile(ctx context.Context) (ProfileOutput, error)
}
