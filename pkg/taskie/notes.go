package taskie

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListTasks fetches all notes and keeps the ones not yet completed, in
// server order. An empty or missing list yields ErrNoTasks.
func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var resp getTasksResponse
	if err := c.do(ctx, http.MethodGet, PathNote, nil, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Notes) == 0 {
		return nil, ErrNoTasks
	}

	open := make([]Task, 0, len(resp.Notes))
	for _, t := range resp.Notes {
		if !t.IsCompleted {
			open = append(open, t)
		}
	}
	return open, nil
}

// AddTask creates a note via POST /api/note and returns it as stored.
func (c *Client) AddTask(ctx context.Context, req AddTaskRequest) (Task, error) {
	var task *Task
	if err := c.do(ctx, http.MethodPost, PathNote, nil, req, &task); err != nil {
		return Task{}, err
	}
	if task == nil || task.ID == "" {
		return Task{}, fmt.Errorf("%w: add task response has no task", ErrNoData)
	}
	return *task, nil
}

// CompleteTask marks a note done via POST /api/note/complete?id=.
func (c *Client) CompleteTask(ctx context.Context, id string) error {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, PathNoteComplete, idQuery(id), nil, &resp); err != nil {
		return err
	}
	if resp.Message == nil {
		return fmt.Errorf("%w: complete response has no message", ErrNoData)
	}
	return nil
}

// DeleteTask removes a note via DELETE /api/note?id= and returns the
// server's confirmation.
func (c *Client) DeleteTask(ctx context.Context, id string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, PathNote, idQuery(id), nil, &resp); err != nil {
		return "", err
	}
	if resp.Message == nil {
		return "", fmt.Errorf("%w: delete response has no message", ErrNoData)
	}
	return *resp.Message, nil
}

func idQuery(id string) url.Values {
	return url.Values{QueryID: []string{id}}
}
