package usecase

import (
	"github.com/google/uuid"

	"taskie/internal/note/repository"
	"taskie/pkg/log"
)

// implUseCase is the private implementation of note.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	newID func() string
}

// New creates a new note UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		newID: uuid.NewString,
	}
}
