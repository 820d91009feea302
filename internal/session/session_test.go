package session_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"taskie/internal/session"
)

func TestSession_InMemory(t *testing.T) {
	s := session.New()
	if s.IsLoggedIn() {
		t.Fatalf("new session must be signed out")
	}

	if err := s.SetToken("a@b.com", "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsLoggedIn() || s.Token() != "abc" || s.Email() != "a@b.com" {
		t.Errorf("unexpected session state: token=%q email=%q", s.Token(), s.Email())
	}

	if err := s.SetToken("a@b.com", "   "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.IsLoggedIn() {
		t.Errorf("blank token must count as signed out")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Token() != "" {
		t.Errorf("expected cleared token")
	}
}

func TestSession_ConcurrentAccess(t *testing.T) {
	s := session.New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.SetToken("a@b.com", "abc")
		}()
		go func() {
			defer wg.Done()
			_ = s.Token()
		}()
	}
	wg.Wait()
	if s.Token() != "abc" {
		t.Errorf("expected abc, got %q", s.Token())
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	store := session.NewFileStore(path)

	t.Run("Missing file is empty", func(t *testing.T) {
		st, err := store.Load()
		if err != nil || st.Token != "" {
			t.Fatalf("unexpected (%+v, %v)", st, err)
		}
	})

	t.Run("Persists across opens", func(t *testing.T) {
		s, err := session.Open(store)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.SetToken("a@b.com", "abc"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected session file: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("expected 0600, got %o", perm)
		}

		reopened, err := session.Open(session.NewFileStore(path))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reopened.Token() != "abc" || reopened.Email() != "a@b.com" {
			t.Errorf("unexpected reopened state: %q %q", reopened.Token(), reopened.Email())
		}
	})

	t.Run("Clear removes file", func(t *testing.T) {
		s, err := session.Open(store)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Clear(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected file removed, got %v", err)
		}
		if err := s.Clear(); err != nil {
			t.Errorf("clearing twice must be fine, got %v", err)
		}
	})

	t.Run("Corrupt file", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.yaml")
		os.WriteFile(bad, []byte("token: [unterminated"), 0o600)
		if _, err := session.Open(session.NewFileStore(bad)); err == nil {
			t.Errorf("expected parse error")
		}
	})
}
