package model

import "time"

// Note is a stored to-do item. The API calls it a task.
type Note struct {
	ID           string
	UserID       string
	Title        string
	Content      string
	IsCompleted  bool
	TaskPriority int
	CreatedAt    time.Time
}

// User is a registered account.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
