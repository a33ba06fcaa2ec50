package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leximind/internal/domain"
)

// Login authenticates creds with the provider and stores the resulting user
// as the current session. Sign-up and sign-in are the same operation.
func (s *Service) Login(ctx context.Context, creds Credentials) (*domain.User, error) {
	user, err := s.provider.Authenticate(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := s.sessions.Login(ctx, *user); err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "session started", slog.String("username", user.Username))
	return user, nil
}
