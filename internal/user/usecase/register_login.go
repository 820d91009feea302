package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"taskie/internal/model"
	"taskie/internal/user"
	repo "taskie/internal/user/repository"
)

// RegisterMessage is what a successful registration answers with.
const RegisterMessage = "User created successfully"

// Register creates a new account after checking for email uniqueness.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	email := normalizeEmail(input.Email)

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return user.RegisterOutput{}, user.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return user.RegisterOutput{}, err
	}

	_, err = uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		ID:           uc.newID(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: string(hash),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.RegisterOutput{}, err
	}

	return user.RegisterOutput{Message: RegisterMessage}, nil
}

// Login checks the password and issues a session token.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: normalizeEmail(input.Email)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}
	if u.ID == "" {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)) != nil {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.tokens.Generate(u.ID, u.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Generate: %v", err)
		return user.LoginOutput{}, err
	}
	return user.LoginOutput{Token: token}, nil
}

// Profile returns the caller's account details.
func (uc *implUseCase) Profile(ctx context.Context, sc model.Scope) (user.ProfileOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Profile GetOneUser: %v", err)
		return user.ProfileOutput{}, err
	}
	if u.ID == "" {
		return user.ProfileOutput{}, user.ErrUserNotFound
	}
	return user.ProfileOutput{Email: u.Email, Name: u.Name}, nil
}

// Authenticate validates token and checks the user still exists.
func (uc *implUseCase) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	claims, err := uc.tokens.Validate(token)
	if err != nil {
		return model.Scope{}, user.ErrInvalidToken
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: claims.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Authenticate GetOneUser: %v", err)
		return model.Scope{}, err
	}
	if u.ID == "" {
		return model.Scope{}, user.ErrInvalidToken
	}
	return model.Scope{UserID: u.ID, Email: u.Email}, nil
}
