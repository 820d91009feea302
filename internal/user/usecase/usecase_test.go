package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskie/internal/model"
	storage "taskie/internal/storage/sqlite"
	"taskie/internal/user"
	userRepo "taskie/internal/user/repository/sqlite"
	"taskie/pkg/jwt"
	"taskie/pkg/log"
)

func newTestUseCase(t *testing.T) *implUseCase {
	t.Helper()
	db, err := storage.Open(context.Background(), storage.MemoryPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens, err := jwt.New(jwt.Config{Secret: "test-secret", TokenTTL: time.Hour})
	if err != nil {
		t.Fatalf("jwt: %v", err)
	}
	return New(userRepo.New(db, log.NewNop()), tokens, log.NewNop())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	out, err := uc.Register(ctx, user.RegisterInput{Name: "Ann", Email: "Ann@Example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if out.Message != RegisterMessage {
		t.Errorf("unexpected message: %q", out.Message)
	}

	_, err = uc.Register(ctx, user.RegisterInput{Name: "Other", Email: " ann@example.com ", Password: "x"})
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t)

	if _, err := uc.Register(ctx, user.RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "pw"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := uc.Login(ctx, user.LoginInput{Email: "ann@example.com", Password: "nope"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Unknown Email", func(t *testing.T) {
		_, err := uc.Login(ctx, user.LoginInput{Email: "bob@example.com", Password: "pw"})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("Token Round Trip", func(t *testing.T) {
		out, err := uc.Login(ctx, user.LoginInput{Email: "ann@example.com", Password: "pw"})
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}
		sc, err := uc.Authenticate(ctx, out.Token)
		if err != nil {
			t.Fatalf("Authenticate() error = %v", err)
		}
		if sc.Email != "ann@example.com" || sc.UserID == "" {
			t.Errorf("unexpected scope: %+v", sc)
		}

		profile, err := uc.Profile(ctx, sc)
		if err != nil {
			t.Fatalf("Profile() error = %v", err)
		}
		if profile.Name != "Ann" || profile.Email != "ann@example.com" {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})

	t.Run("Bad Token", func(t *testing.T) {
		if _, err := uc.Authenticate(ctx, "garbage"); !errors.Is(err, user.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestProfile_UnknownUser(t *testing.T) {
	uc := newTestUseCase(t)
	_, err := uc.Profile(context.Background(), model.Scope{UserID: "missing"})
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
