package usecase

import (
	"context"

	"taskie/internal/model"
	"taskie/internal/note"
	repo "taskie/internal/note/repository"
)

// List returns all of the caller's notes. Filtering completed ones is left
// to clients.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (note.ListOutput, error) {
	notes, err := uc.repo.ListNotes(ctx, repo.ListNotesOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListNotes: %v", err)
		return note.ListOutput{}, err
	}
	return note.ListOutput{Notes: notes}, nil
}

// Create stores a new open note for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input note.CreateInput) (note.CreateOutput, error) {
	if input.TaskPriority < 1 || input.TaskPriority > 3 {
		return note.CreateOutput{}, note.ErrInvalidPriority
	}

	n, err := uc.repo.CreateNote(ctx, repo.CreateNoteOptions{
		ID:           uc.newID(),
		UserID:       sc.UserID,
		Title:        input.Title,
		Content:      input.Content,
		TaskPriority: input.TaskPriority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateNote: %v", err)
		return note.CreateOutput{}, err
	}
	return note.CreateOutput{Note: n}, nil
}

// Complete marks one of the caller's notes as done. Returns ErrNoteNotFound
// when the caller owns no note with that id.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) error {
	found, err := uc.repo.CompleteNote(ctx, repo.NoteKey{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete CompleteNote: %v", err)
		return err
	}
	if !found {
		return note.ErrNoteNotFound
	}
	return nil
}

// Delete removes one of the caller's notes. Returns ErrNoteNotFound when
// the caller owns no note with that id.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	found, err := uc.repo.DeleteNote(ctx, repo.NoteKey{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteNote: %v", err)
		return err
	}
	if !found {
		return note.ErrNoteNotFound
	}
	return nil
}
