package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/leximind/internal/adapter/memory"
	"github.com/heartmarshall/leximind/internal/adapter/postgres"
	"github.com/heartmarshall/leximind/internal/adapter/provider/freedict"
	"github.com/heartmarshall/leximind/internal/adapter/provider/llm"
	"github.com/heartmarshall/leximind/internal/adapter/sqlite"
	"github.com/heartmarshall/leximind/internal/config"
	"github.com/heartmarshall/leximind/internal/domain"
	"github.com/heartmarshall/leximind/internal/metrics"
	"github.com/heartmarshall/leximind/internal/service/auth"
	"github.com/heartmarshall/leximind/internal/service/insight"
	"github.com/heartmarshall/leximind/internal/service/lookup"
	"github.com/heartmarshall/leximind/internal/service/session"
)

// Options select the configuration source and storage override.
type Options struct {
	ConfigPath string
	// Ephemeral forces in-memory storage regardless of configuration.
	Ephemeral bool
}

// kvStorage is what every storage adapter provides.
type kvStorage interface {
	session.Storage
	Ping(ctx context.Context) error
	Close() error
}

type insightGenerator interface {
	Generate(ctx context.Context, word string) (*domain.AIInsights, error)
}

// App is the wired application: storage, services and their dependencies.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry
	Storage  kvStorage
	Sessions *session.Store
	Auth     *auth.Service
	Lookup   *lookup.Service
}

// Build loads configuration, initializes the logger and wires the application.
func Build(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.LoadFrom(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Ephemeral {
		cfg.Storage.Driver = config.StorageMemory
	}

	logger := NewLogger(cfg.Log)
	logger.Debug("starting application",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("insights", cfg.Insights.EffectiveProvider()),
	)

	return New(ctx, cfg, logger)
}

// New wires the application from an already validated configuration.
// On success the caller owns the App and must Close it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	storage, err := openStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("app.New: open %s storage: %w", cfg.Storage.Driver, err)
	}

	sessions := session.NewStore(logger, storage, cfg.Storage.KeyPrefix)
	if err := sessions.Load(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("app.New: load session: %w", err), storage.Close())
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	dict := freedict.NewProviderWithURL(cfg.Dictionary.BaseURL, logger, cfg.Dictionary.Timeout)
	insights := insight.NewService(logger, newGenerator(cfg.Insights, logger), m)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Registry: reg,
		Storage:  storage,
		Sessions: sessions,
		Auth:     auth.NewService(logger, auth.NewFabricatedProvider(), sessions),
		Lookup:   lookup.NewService(logger, dict, insights, sessions, m),
	}, nil
}

// Close stops in-flight insight requests and closes storage.
func (a *App) Close() error {
	a.Lookup.Close()
	if err := a.Storage.Close(); err != nil {
		return fmt.Errorf("app.Close: %w", err)
	}
	return nil
}

func openStorage(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (kvStorage, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StoragePostgres:
		s, err := postgres.Open(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newGenerator(cfg config.InsightsConfig, logger *slog.Logger) insightGenerator {
	if cfg.EffectiveProvider() == config.InsightProviderAnthropic {
		return llm.NewGenerator(cfg, logger)
	}
	logger.Warn("no insights API key configured, fallback insights will be shown")
	return llm.NewStub()
}
