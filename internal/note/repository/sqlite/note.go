package sqlite

import (
	"context"
	"time"

	"taskie/internal/model"
	repo "taskie/internal/note/repository"
)

const noteColumns = `id, user_id, title, content, is_completed, task_priority, created_at`

type scanner interface {
	Scan(dest ...any) error
}

// CreateNote inserts a new, open Note row and returns the created entity.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (model.Note, error) {
	const query = `
		INSERT INTO notes (id, user_id, title, content, is_completed, task_priority)
		VALUES (?, ?, ?, ?, 0, ?)
		RETURNING ` + noteColumns

	n, err := scanNote(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID, opt.Title, opt.Content, opt.TaskPriority))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return model.Note{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// ListNotes returns every Note of a user, completed ones included, oldest first.
func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]model.Note, error) {
	const query = `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ? ORDER BY created_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListNotes"), err)
			return nil, repo.ErrFailedToList
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	return notes, nil
}

// CompleteNote marks a Note as completed.
func (r *implRepository) CompleteNote(ctx context.Context, key repo.NoteKey) (bool, error) {
	const query = `UPDATE notes SET is_completed = 1 WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, key.ID, key.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CompleteNote"), err)
		return false, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToUpdate
	}
	return n > 0, nil
}

// DeleteNote removes a Note.
func (r *implRepository) DeleteNote(ctx context.Context, key repo.NoteKey) (bool, error) {
	const query = `DELETE FROM notes WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, key.ID, key.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

func scanNote(s scanner) (model.Note, error) {
	var n model.Note
	var createdAt int64
	if err := s.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.IsCompleted, &n.TaskPriority, &createdAt); err != nil {
		return model.Note{}, err
	}
	n.CreatedAt = time.Unix(createdAt, 0)
	return n, nil
}
