package llm

import (
	"context"

	"github.com/heartmarshall/leximind/internal/domain"
)

// Stub is a generator for setups without an API key.
// Every call fails, so callers fall back to the default insight.
type Stub struct{}

// NewStub creates a new no-op generator.
func NewStub() *Stub { return &Stub{} }

// Generate always returns domain.ErrUnavailable.
func (s *Stub) Generate(ctx context.Context, word string) (*domain.AIInsights, error) {
	return nil, domain.ErrUnavailable
}
