package note

import (
	"context"

	"taskie/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Complete(ctx context.Context, sc model.Scope, id string) error
	Delete(ctx context.Context, sc model.Scope, id string) error
}
