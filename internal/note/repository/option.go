package repository

// CreateNoteOptions holds parameters for inserting a new Note.
type CreateNoteOptions struct {
	ID           string
	UserID       string
	Title        string
	Content      string
	TaskPriority int
}

// ListNotesOptions holds filter parameters for listing a user's Notes.
type ListNotesOptions struct {
	UserID string
}

// NoteKey addresses one Note owned by one user.
type NoteKey struct {
	ID     string
	UserID string
}
