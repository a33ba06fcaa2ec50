package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/internal/metrics"
)

// generator produces raw insights for a word.
type generator interface {
	Generate(ctx context.Context, word string) (*domain.AIInsights, error)
}

// Service returns AI insights for a word and never fails: anything short of a
// valid generated result is replaced by domain.FallbackInsights.
type Service struct {
	gen     generator
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewService creates a new insight service. m may be nil.
func NewService(logger *slog.Logger, gen generator, m *metrics.Metrics) *Service {
	return &Service{
		gen:     gen,
		metrics: m,
		log:     logger.With("service", "insight"),
	}
}

// GetInsights returns genuine insights for word or the fallback value.
func (s *Service) GetInsights(ctx context.Context, word string) domain.AIInsights {
	start := time.Now()

	insights, err := s.generate(ctx, word)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, domain.ErrUnavailable) || errors.Is(err, context.Canceled) {
			level = slog.LevelDebug
		}
		s.log.Log(ctx, level, "insights unavailable, using fallback",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		s.metrics.ObserveInsight(metrics.OutcomeFallback, time.Since(start))
		return domain.FallbackInsights()
	}

	s.metrics.ObserveInsight(metrics.OutcomeGenuine, time.Since(start))
	return *insights
}

func (s *Service) generate(ctx context.Context, word string) (result *domain.AIInsights, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, fmt.Errorf("insight.generate: panic: %v", r)
		}
	}()

	result, err = s.gen.Generate(ctx, word)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, errors.New("insight.generate: empty result")
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("insight.generate: %w", err)
	}
	return result, nil
}
