package cli

import (
	"context"

	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/internal/service/auth"
	"github.com/heartmarshall/leximind/internal/service/lookup"
)

type lookupService interface {
	Search(ctx context.Context, word string) (lookup.State, error)
	WaitInsights(ctx context.Context) error
	State() lookup.State
}

type historyStore interface {
	History() []domain.HistoryItem
	HistoryWord(n int) (string, error)
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

// Options are the persistent root flags.
type Options struct {
	ConfigPath string
	Ephemeral  bool
}

// Env is the set of services the commands drive. Close releases them.
type Env struct {
	Lookup  lookupService
	History historyStore
	Themes  themeStore
	Auth    authService
	Serve   func(ctx context.Context) error
	Close   func() error
}

// Factory builds an Env once flags are parsed.
type Factory func(ctx context.Context, opts Options) (*Env, error)
