package repository

import (
	"context"

	"taskie/internal/model"
)

// Repository is the composed interface for the note domain data store.
type Repository interface {
	NoteRepository
}

// NoteRepository defines all data access methods for the Note entity.
type NoteRepository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (model.Note, error)
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]model.Note, error)
	// CompleteNote and DeleteNote report whether a row matched.
	CompleteNote(ctx context.Context, opt NoteKey) (bool, error)
	DeleteNote(ctx context.Context, opt NoteKey) (bool, error)
}
