// Package session holds the token of the signed-in user and, optionally,
// keeps it on disk between CLI runs.
package session

import (
	"strings"
	"sync"
)

// Store persists session state.
type Store interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

// State is what a Store persists.
type State struct {
	Token string `yaml:"token"`
	Email string `yaml:"email,omitempty"`
}

// Session is the explicit owner of the auth token. It satisfies
// taskie.TokenSource.
type Session struct {
	mu    sync.RWMutex
	state State
	store Store
}

// New creates an in-memory session.
func New() *Session {
	return &Session{}
}

// Open creates a session backed by store and loads any saved state.
func Open(store Store) (*Session, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{state: state, store: store}, nil
}

// Token returns the current token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// Email returns the email the token was obtained for.
func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Email
}

// IsLoggedIn reports whether a non-blank token is held.
func (s *Session) IsLoggedIn() bool {
	return strings.TrimSpace(s.Token()) != ""
}

// SetToken stores token and persists it when a store is attached.
func (s *Session) SetToken(email, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{Token: token, Email: email}
	if s.store == nil {
		return nil
	}
	return s.store.Save(s.state)
}

// Clear signs out.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	if s.store == nil {
		return nil
	}
	return s.store.Clear()
}
