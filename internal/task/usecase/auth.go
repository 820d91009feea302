package usecase

import (
	"context"
	"fmt"
	"strings"

	"taskie/internal/task"
	"taskie/pkg/taskie"
)

// Register creates an account. It does not sign in.
func (uc *implUseCase) Register(ctx context.Context, input task.RegisterInput) (task.RegisterOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	switch {
	case input.Name == "":
		return task.RegisterOutput{}, task.ErrEmptyName
	case input.Email == "":
		return task.RegisterOutput{}, task.ErrEmptyEmail
	case input.Password == "":
		return task.RegisterOutput{}, task.ErrEmptyPassword
	}

	msg, err := uc.api.Register(ctx, taskie.UserDataRequest{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Register: %v", err)
		return task.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "registered %s", input.Email)
	return task.RegisterOutput{Message: msg}, nil
}

// Login signs in and keeps the token in the session.
func (uc *implUseCase) Login(ctx context.Context, input task.LoginInput) error {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" {
		return task.ErrEmptyEmail
	}
	if input.Password == "" {
		return task.ErrEmptyPassword
	}

	token, err := uc.api.Login(ctx, taskie.UserDataRequest{Email: input.Email, Password: input.Password})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Login: %v", err)
		return err
	}

	if err := uc.session.SetToken(input.Email, token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	uc.l.Infof(ctx, "logged in as %s", input.Email)
	return nil
}

func (uc *implUseCase) Logout(ctx context.Context) error {
	if err := uc.session.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (uc *implUseCase) requireSession() error {
	if !uc.session.IsLoggedIn() {
		return task.ErrNotLoggedIn
	}
	return nil
}
