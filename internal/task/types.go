package task

import (
	"taskie/internal/checklist"
	"taskie/pkg/taskie"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	Message string
}

type LoginInput struct {
	Email    string
	Password string
}

type AddInput struct {
	Title    string
	Content  string
	Priority int
}

// Item is a task prepared for display.
type Item struct {
	ID       string
	Title    string
	Content  string
	Priority taskie.Priority
	Severity taskie.Severity

	// Checklist is the progress of markdown checkboxes in Content.
	Checklist checklist.Stats
}

// ListOutput holds the open tasks. Empty is set when the server had no
// tasks at all, which is not an error for the caller.
type ListOutput struct {
	Items []Item
	Empty bool
}

type AddOutput struct {
	Item Item
}

type DeleteOutput struct {
	Message string
}

type ProfileOutput struct {
	Email     string
	Name      string
	TaskCount int
}
