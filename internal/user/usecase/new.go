package usecase

import (
	"taskie/internal/user/repository"
	"taskie/pkg/jwt"
	"taskie/pkg/log"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo   repository.Repository
	tokens jwt.IManager
	l      log.Logger
	newID  func() string
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, tokens jwt.IManager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		tokens: tokens,
		l:      l,
		newID:  newUUID,
	}
}
