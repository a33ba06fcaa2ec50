package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leximind/internal/domain"
)

// Load reads the persisted history and user once. Missing records mean empty
// history and no user. Corrupt records are logged and treated as missing;
// only a storage failure is returned.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.loadHistory(ctx)
	if err != nil {
		return fmt.Errorf("session.Load: %w", err)
	}

	user, err := s.loadUser(ctx)
	if err != nil {
		return fmt.Errorf("session.Load: %w", err)
	}

	s.history = history
	s.user = user

	s.log.DebugContext(ctx, "session loaded",
		slog.Int("history_items", len(history)),
		slog.Bool("logged_in", user != nil),
	)
	return nil
}

func (s *Store) loadHistory(ctx context.Context) ([]domain.HistoryItem, error) {
	raw, found, err := s.storage.Get(ctx, s.key(KeyHistory))
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	if !found {
		return nil, nil
	}

	var items []domain.HistoryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.log.WarnContext(ctx, "corrupt history record ignored", slog.String("error", err.Error()))
		return nil, nil
	}

	if len(items) > domain.MaxHistoryItems {
		items = items[:domain.MaxHistoryItems]
	}
	return items, nil
}

func (s *Store) loadUser(ctx context.Context) (*domain.User, error) {
	raw, found, err := s.storage.Get(ctx, s.key(KeyUser))
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !found {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil || user.Username == "" {
		msg := "empty username"
		if err != nil {
			msg = err.Error()
		}
		s.log.WarnContext(ctx, "corrupt user record ignored", slog.String("error", msg))
		return nil, nil
	}
	return &user, nil
}
