package auth

import (
	"context"

	"github.com/heartmarshall/leximind/internal/domain"
)

// Provider turns credentials into a user. A real identity provider would
// verify them; FabricatedProvider does not.
type Provider interface {
	Authenticate(ctx context.Context, creds Credentials) (*domain.User, error)
}

// FabricatedProvider accepts any non-empty username. It is not an
// authentication mechanism.
type FabricatedProvider struct{}

// NewFabricatedProvider creates a FabricatedProvider.
func NewFabricatedProvider() *FabricatedProvider { return &FabricatedProvider{} }

// Authenticate builds a user from the username alone.
func (FabricatedProvider) Authenticate(_ context.Context, creds Credentials) (*domain.User, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return domain.NewUser(creds.Username)
}
