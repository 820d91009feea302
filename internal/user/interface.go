package user

import (
	"context"

	"taskie/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Profile(ctx context.Context, sc model.Scope) (ProfileOutput, error)
	// Authenticate resolves a session token to the caller's scope.
	Authenticate(ctx context.Context, token string) (model.Scope, error)
}
