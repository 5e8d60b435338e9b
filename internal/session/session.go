// Package session owns the bearer token: in memory for the lifetime of the
// process, in the OS keyring across runs. Protected screens and commands
// are reachable iff a token is present; the client never inspects the token
// itself.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"

	"github.com/pvlkuz/moodtrack-cli/internal/constants"
	"github.com/pvlkuz/moodtrack-cli/internal/logger"
)

// Authenticator exchanges a login identifier for a token. Implemented by
// the API client.
type Authenticator interface {
	Login(ctx context.Context, email string) (string, error)
}

// Store holds the session token and keeps it in sync with the OS keyring.
// One Store is created at startup and passed explicitly to every consumer.
type Store struct {
	mu      sync.RWMutex
	token   string
	service string
}

// NewStore creates a Store and restores any previously persisted token, so
// a new run resumes the prior session without re-authentication.
func NewStore() *Store {
	s := &Store{service: constants.AppName}
	token, err := keyring.Get(s.service, constants.KeyringTokenUser)
	switch err {
	case nil:
		s.token = token
	case keyring.ErrNotFound:
		// No prior session.
	default:
		logger.Warn("keyring unavailable, starting unauthenticated", "error", err)
	}
	return s
}

// Login authenticates via auth and persists the resulting token. The API
// failure is returned untouched so the caller can classify it.
func (s *Store) Login(ctx context.Context, auth Authenticator, email string) error {
	token, err := auth.Login(ctx, email)
	if err != nil {
		return err
	}
	return s.set(token)
}

// Logout clears the in-memory token and removes it from the keyring.
// Always succeeds from the caller's perspective; a keyring hiccup is logged
// but the in-memory session is gone regardless.
func (s *Store) Logout() {
	if err := s.set(""); err != nil {
		logger.Warn("failed to clear persisted token", "error", err)
	}
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthorized reports whether a session token is present. No expiry or
// validity check happens client-side.
func (s *Store) IsAuthorized() bool {
	return s.Token() != ""
}

// set updates the in-memory token and mirrors the change into the keyring:
// stored when non-empty, removed when empty.
func (s *Store) set(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if token == "" {
		err := keyring.Delete(s.service, constants.KeyringTokenUser)
		if err != nil && err != keyring.ErrNotFound {
			return fmt.Errorf("failed to remove token from keyring: %w", err)
		}
		return nil
	}
	if err := keyring.Set(s.service, constants.KeyringTokenUser, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	return nil
}
