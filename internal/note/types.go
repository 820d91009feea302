package note

import "taskie/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Title        string
	Content      string
	TaskPriority int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Notes []model.Note
}

type CreateOutput struct {
	Note model.Note
}
