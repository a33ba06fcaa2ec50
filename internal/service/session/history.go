package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/heartmarshall/leximind/internal/domain"
)

// History returns a copy of the history, most recent first.
func (s *Store) History() []domain.HistoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.history)
}

// RecordSearch moves word to the front of the history, dropping any earlier
// case-insensitive duplicate and keeping at most domain.MaxHistoryItems.
func (s *Store) RecordSearch(ctx context.Context, word string) ([]domain.HistoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := domain.PushHistory(s.history, word, s.now())

	raw, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("session.RecordSearch: marshal: %w", err)
	}
	if err := s.storage.Set(ctx, s.key(KeyHistory), raw); err != nil {
		return nil, fmt.Errorf("session.RecordSearch: %w", err)
	}

	s.history = next
	return slices.Clone(next), nil
}

// ClearHistory empties the history and removes the persisted record.
func (s *Store) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Remove(ctx, s.key(KeyHistory)); err != nil {
		return fmt.Errorf("session.ClearHistory: %w", err)
	}

	s.history = nil
	s.log.InfoContext(ctx, "history cleared")
	return nil
}

// HistoryWord returns the word of the n-th history item (1-based).
func (s *Store) HistoryWord(n int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n < 1 || n > len(s.history) {
		return "", domain.NewValidationError("history", fmt.Sprintf("no history item #%d", n))
	}
	word := s.history[n-1].Word
	s.log.Debug("history item selected", slog.Int("index", n), slog.String("word", word))
	return word, nil
}
