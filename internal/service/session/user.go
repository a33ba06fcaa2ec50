package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leximind/internal/domain"
)

// Login persists user as the current session user, replacing any previous one.
func (s *Store) Login(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session.Login: marshal: %w", err)
	}
	if err := s.storage.Set(ctx, s.key(KeyUser), raw); err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}

	s.user = &user
	s.log.InfoContext(ctx, "user logged in", slog.String("username", user.Username))
	return nil
}

// Logout clears the session user and its persisted record.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Remove(ctx, s.key(KeyUser)); err != nil {
		return fmt.Errorf("session.Logout: %w", err)
	}

	if s.user != nil {
		s.log.InfoContext(ctx, "user logged out", slog.String("username", s.user.Username))
	}
	s.user = nil
	return nil
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *Store) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
