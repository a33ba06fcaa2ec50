package lookup

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/internal/metrics"
)

// ErrSuperseded is returned by Search when a newer search started before
// this one finished. The newer search owns the state.
var ErrSuperseded = errors.New("search superseded by a newer search")

// ErrClosed is returned by Search after Close.
var ErrClosed = errors.New("lookup service closed")

type dictionary interface {
	Lookup(ctx context.Context, word string) ([]domain.WordEntry, error)
}

type insightSource interface {
	GetInsights(ctx context.Context, word string) domain.AIInsights
}

type historyRecorder interface {
	RecordSearch(ctx context.Context, word string) ([]domain.HistoryItem, error)
}

// Service runs searches: a dictionary lookup that is awaited, followed by an
// insight request that is not. Every search is tagged with a generation; a
// result is applied only while its generation is still the current one.
type Service struct {
	dict    dictionary
	ai      insightSource
	history historyRecorder
	metrics *metrics.Metrics
	log     *slog.Logger

	baseCtx    context.Context
	baseCancel context.CancelFunc
	wg         sync.WaitGroup

	mu     sync.Mutex
	gen    uint64
	state  State
	cancel context.CancelFunc // cancels the current generation's insight task
	done   chan struct{}      // closed when the current generation is fully resolved
	closed bool

	// notifyMu is taken while s.mu is held and released after the callbacks
	// ran, so subscribers see transitions in order.
	notifyMu sync.Mutex
	subs     map[int]func(State)
	nextSub  int
}

// NewService creates a new lookup service. m may be nil.
func NewService(
	logger *slog.Logger,
	dict dictionary,
	ai insightSource,
	history historyRecorder,
	m *metrics.Metrics,
) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		dict:       dict,
		ai:         ai,
		history:    history,
		metrics:    m,
		log:        logger.With("service", "lookup"),
		baseCtx:    ctx,
		baseCancel: cancel,
		subs:       make(map[int]func(State)),
	}
}

// State returns a snapshot of the current display state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Generation returns the tag of the most recent search.
func (s *Service) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Subscribe registers fn to receive a snapshot after every state transition.
// fn must not call back into the Service. The returned function unsubscribes.
func (s *Service) Subscribe(fn func(State)) (unsubscribe func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.notifyMu.Lock()
		defer s.notifyMu.Unlock()
		delete(s.subs, id)
	}
}

// WaitInsights blocks until the current search is fully resolved (error shown
// or insights applied) or ctx is done.
func (s *Service) WaitInsights(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels the in-flight insight task and waits for background work.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.baseCancel()
	s.wg.Wait()
}

// commitLocked publishes the current state to subscribers. It must be called
// with s.mu held and releases it.
func (s *Service) commitLocked() State {
	snapshot := s.state.clone()
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, fn := range s.subs {
		fn(snapshot.clone())
	}
	return snapshot
}
