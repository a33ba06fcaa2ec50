package rest

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/internal/service/auth"
	"github.com/heartmarshall/leximind/internal/service/lookup"
)

type lookupService interface {
	Search(ctx context.Context, word string) (lookup.State, error)
	State() lookup.State
}

type historyStore interface {
	History() []domain.HistoryItem
	ClearHistory(ctx context.Context) error
}

type themeStore interface {
	Theme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme domain.Theme) error
}

type authService interface {
	Login(ctx context.Context, creds auth.Credentials) (*domain.User, error)
	Logout(ctx context.Context) error
	Current() *domain.User
}

// Handler serves the LexiMind JSON API.
type Handler struct {
	lookup  lookupService
	history historyStore
	themes  themeStore
	auth    authService
	log     *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	logger *slog.Logger,
	lookup lookupService,
	history historyStore,
	themes themeStore,
	auth authService,
) *Handler {
	return &Handler{
		lookup:  lookup,
		history: history,
		themes:  themes,
		auth:    auth,
		log:     logger.With("handler", "api"),
	}
}
