package lookup

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/internal/metrics"
)

// Search looks word up and updates the display state.
//
// The returned state is the one right after the dictionary step. On success
// insights are still loading and arrive later through Subscribe, State or
// WaitInsights. A dictionary failure is returned as *domain.LookupError and
// is also the state's Error.
func (s *Service) Search(ctx context.Context, word string) (State, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return s.State(), domain.NewValidationError("word", "required")
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return State{}, ErrClosed
	}
	s.gen++
	g := s.gen
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	done := make(chan struct{})
	s.done = done
	s.state = State{Generation: g, Query: word, Loading: true, AILoading: true}
	s.commitLocked()

	s.log.DebugContext(ctx, "search started", slog.String("word", word), slog.Uint64("generation", g))

	entries, err := s.dict.Lookup(ctx, word)
	if err == nil && len(entries) == 0 {
		err = &domain.LookupError{Kind: domain.LookupNotFound, Word: word}
	}
	if err != nil {
		return s.fail(ctx, g, done, word, err)
	}
	s.metrics.ObserveLookup(metrics.OutcomeSuccess)

	entry := cloneEntry(entries[0])

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(done)
		return State{}, ErrClosed
	}
	if g != s.gen {
		s.mu.Unlock()
		close(done)
		s.discard(ctx, g, "dictionary")
		return s.State(), ErrSuperseded
	}
	taskCtx, cancel := context.WithCancel(s.baseCtx)
	s.cancel = cancel
	s.state.Entry = &entry
	s.state.Loading = false
	s.wg.Add(1)
	snapshot := s.commitLocked()

	if _, err := s.history.RecordSearch(ctx, entry.Word); err != nil {
		s.log.WarnContext(ctx, "history not recorded",
			slog.String("word", entry.Word),
			slog.String("error", err.Error()),
		)
	}

	go s.resolveInsights(taskCtx, cancel, g, done, entry.Word)

	return snapshot, nil
}

// fail applies a dictionary failure if generation g is still current.
func (s *Service) fail(ctx context.Context, g uint64, done chan struct{}, word string, err error) (State, error) {
	le := domain.AsLookupError(word, err)
	s.metrics.ObserveLookup(lookupOutcome(le.Kind))

	s.mu.Lock()
	if g != s.gen {
		s.mu.Unlock()
		close(done)
		s.discard(ctx, g, "dictionary")
		return s.State(), ErrSuperseded
	}
	s.state.Error = le.UserMessage()
	s.state.Loading = false
	s.state.AILoading = false
	close(done)
	snapshot := s.commitLocked()

	level := slog.LevelWarn
	if le.Kind == domain.LookupNotFound {
		level = slog.LevelInfo
	}
	s.log.Log(ctx, level, "lookup failed",
		slog.String("word", word),
		slog.String("kind", string(le.Kind)),
		slog.String("error", le.Error()),
	)
	return snapshot, le
}

// resolveInsights runs the insight task of generation g.
func (s *Service) resolveInsights(ctx context.Context, cancel context.CancelFunc, g uint64, done chan struct{}, word string) {
	defer s.wg.Done()
	defer cancel()
	defer close(done)

	insights := s.ai.GetInsights(ctx, word)

	s.mu.Lock()
	if g != s.gen {
		s.mu.Unlock()
		s.discard(ctx, g, "insights")
		return
	}
	s.state.Insights = &insights
	s.state.AILoading = false
	s.cancel = nil
	s.commitLocked()
}

func (s *Service) discard(ctx context.Context, g uint64, what string) {
	s.metrics.ObserveStaleDiscarded()
	s.log.DebugContext(ctx, "stale result discarded",
		slog.String("result", what),
		slog.Uint64("generation", g),
	)
}

func lookupOutcome(kind domain.LookupErrorKind) string {
	switch kind {
	case domain.LookupNotFound:
		return metrics.OutcomeNotFound
	case domain.LookupTransient:
		return metrics.OutcomeTransient
	default:
		return metrics.OutcomeUnexpected
	}
}
