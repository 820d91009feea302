package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyName       = errors.New("name is empty")
	ErrEmptyEmail      = errors.New("email is empty")
	ErrEmptyPassword   = errors.New("password is empty")
	ErrEmptyTitle      = errors.New("title is empty")
	ErrEmptyContent    = errors.New("content is empty")
	ErrInvalidPriority = errors.New("priority must be 1, 2 or 3")
	ErrEmptyID         = errors.New("task id is empty")
	ErrNotLoggedIn     = errors.New("not logged in")
)
