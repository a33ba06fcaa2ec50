package auth

import (
	"context"
	"fmt"
)

// Logout ends the current session. Logging out while logged out is a no-op.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Logout(ctx); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	return nil
}
