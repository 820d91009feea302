package usecase

import (
	"context"
	"errors"
	"strings"

	"taskie/internal/checklist"
	"taskie/internal/task"
	"taskie/pkg/taskie"
)

// List returns open tasks. A server with no tasks yields Empty rather than
// an error; every other failure is returned.
func (uc *implUseCase) List(ctx context.Context) (task.ListOutput, error) {
	if err := uc.requireSession(); err != nil {
		return task.ListOutput{}, err
	}

	tasks, err := uc.api.ListTasks(ctx)
	if errors.Is(err, taskie.ErrNoTasks) {
		return task.ListOutput{Empty: true}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Items: toItems(tasks),
		Empty: len(tasks) == 0,
	}, nil
}

func (uc *implUseCase) Add(ctx context.Context, input task.AddInput) (task.AddOutput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Content = strings.TrimSpace(input.Content)
	priority := taskie.Priority(input.Priority)
	switch {
	case input.Title == "":
		return task.AddOutput{}, task.ErrEmptyTitle
	case input.Content == "":
		return task.AddOutput{}, task.ErrEmptyContent
	case !priority.Valid():
		return task.AddOutput{}, task.ErrInvalidPriority
	}
	if err := uc.requireSession(); err != nil {
		return task.AddOutput{}, err
	}

	created, err := uc.api.AddTask(ctx, taskie.AddTaskRequest{
		Title:        input.Title,
		Content:      input.Content,
		TaskPriority: priority,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Add: %v", err)
		return task.AddOutput{}, err
	}

	return task.AddOutput{Item: toItem(created)}, nil
}

func (uc *implUseCase) Complete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return task.ErrEmptyID
	}
	if err := uc.requireSession(); err != nil {
		return err
	}

	if err := uc.api.CompleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Complete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) (task.DeleteOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return task.DeleteOutput{}, task.ErrEmptyID
	}
	if err := uc.requireSession(); err != nil {
		return task.DeleteOutput{}, err
	}

	msg, err := uc.api.DeleteTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return task.DeleteOutput{}, err
	}
	return task.DeleteOutput{Message: msg}, nil
}

func (uc *implUseCase) Profile(ctx context.Context) (task.ProfileOutput, error) {
	if err := uc.requireSession(); err != nil {
		return task.ProfileOutput{}, err
	}

	profile, err := uc.api.GetUserProfile(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Profile: %v", err)
		return task.ProfileOutput{}, err
	}

	return task.ProfileOutput{
		Email:     profile.Email,
		Name:      profile.Name,
		TaskCount: profile.TaskCount,
	}, nil
}

func toItem(t taskie.Task) task.Item {
	return task.Item{
		ID:        t.ID,
		Title:     t.Title,
		Content:   t.Content,
		Priority:  t.TaskPriority,
		Severity:  t.TaskPriority.Severity(),
		Checklist: checklist.Parse(t.Content),
	}
}

func toItems(tasks []taskie.Task) []task.Item {
	items := make([]task.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, toItem(t))
	}
	return items
}
