package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/leximind/internal/domain"
)

// DefaultTheme applies when no theme was saved.
const DefaultTheme = domain.ThemeLight

// Theme reads the saved theme. A missing or unrecognized value yields
// DefaultTheme.
func (s *Store) Theme(ctx context.Context) (domain.Theme, error) {
	raw, found, err := s.storage.Get(ctx, s.key(KeyTheme))
	if err != nil {
		return DefaultTheme, fmt.Errorf("session.Theme: %w", err)
	}
	if !found {
		return DefaultTheme, nil
	}

	theme, err := domain.ParseTheme(strings.Trim(string(raw), `"`))
	if err != nil {
		s.log.WarnContext(ctx, "unknown theme ignored", slog.String("value", string(raw)))
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme saves the theme as a bare string.
func (s *Store) SetTheme(ctx context.Context, theme domain.Theme) error {
	theme, err := domain.ParseTheme(string(theme))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, s.key(KeyTheme), []byte(theme)); err != nil {
		return fmt.Errorf("session.SetTheme: %w", err)
	}
	return nil
}
