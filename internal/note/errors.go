package note

import "errors"

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrInvalidPriority = errors.New("taskPriority must be 1, 2 or 3")
)
