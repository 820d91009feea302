package http

import (
	"strings"

	"taskie/internal/model"
	"taskie/internal/note"
)

const (
	messageCompleted = "Note completed"
	messageDeleted   = "Note deleted"
)

// --- Request DTOs ---

type createReq struct {
	Title        string `json:"title"        binding:"required,max=255"`
	Content      string `json:"content"      binding:"required"`
	TaskPriority int    `json:"taskPriority" binding:"required"`
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Content) == "" {
		return errEmptyField
	}
	return nil
}

func (r createReq) toInput() note.CreateInput {
	return note.CreateInput{
		Title:        r.Title,
		Content:      r.Content,
		TaskPriority: r.TaskPriority,
	}
}

type idReq struct {
	ID string `form:"id" binding:"required"`
}

func (r idReq) validate() error { return nil }

// --- Response DTOs ---

type noteResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	IsCompleted  bool   `json:"isCompleted"`
	TaskPriority int    `json:"taskPriority"`
}

func newNoteResp(n model.Note) noteResp {
	return noteResp{
		ID:           n.ID,
		Title:        n.Title,
		Content:      n.Content,
		IsCompleted:  n.IsCompleted,
		TaskPriority: n.TaskPriority,
	}
}

type listResp struct {
	Notes []noteResp `json:"notes"`
}

func (h *handler) newListResp(out note.ListOutput) listResp {
	notes := make([]noteResp, len(out.Notes))
	for i, n := range out.Notes {
		notes[i] = newNoteResp(n)
	}
	return listResp{Notes: notes}
}

type messageResp struct {
	Message string `json:"message"`
}
