package auth

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/leximind/internal/domain"
)

// sessionStore persists the signed-in user.
type sessionStore interface {
	Login(ctx context.Context, user domain.User) error
	Logout(ctx context.Context) error
	CurrentUser() *domain.User
}

// Service implements sign-in, sign-out and the current-user query.
type Service struct {
	log      *slog.Logger
	provider Provider
	sessions sessionStore
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, provider Provider, sessions sessionStore) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		provider: provider,
		sessions: sessions,
	}
}

// Current returns the signed-in user, or nil.
func (s *Service) Current() *domain.User {
	return s.sessions.CurrentUser()
}
