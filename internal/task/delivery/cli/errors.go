package cli

import (
	"errors"
	"fmt"

	"taskie/internal/task"
	"taskie/pkg/taskie"
)

var errNotLoggedIn = errors.New("not logged in, run `taskie login` first")

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrNotLoggedIn):
		return errNotLoggedIn
	case errors.Is(err, task.ErrEmptyName),
		errors.Is(err, task.ErrEmptyEmail),
		errors.Is(err, task.ErrEmptyPassword),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrEmptyContent),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrEmptyID):
		return fmt.Errorf("invalid input: %w", err)
	}

	var se *taskie.StatusError
	if errors.As(err, &se) {
		return fmt.Errorf("server rejected the request: %w", err)
	}
	return err
}
