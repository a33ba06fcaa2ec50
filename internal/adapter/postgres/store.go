// Package postgres implements the key-value storage for history, session and
// theme records on PostgreSQL, for deployments that share state across hosts.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/leximind/internal/config"
)

const table = "kv_store"

// Store is a key-value store backed by the kv_store table.
type Store struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
	log  *slog.Logger
	own  bool
}

// New creates a Store over an existing pool. The caller owns the pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		log:  logger.With("adapter", "postgres"),
	}
}

// Open connects to the configured database, applies migrations and returns a
// Store that closes the pool on Close.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := Migrate(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, err
	}

	s := New(pool, logger)
	s.own = true
	return s, nil
}

// Get returns the value stored under key. found is false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := s.sb.
		Select("value").
		From(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build get query: %w", err)
	}

	var value []byte
	err = s.pool.QueryRow(ctx, query, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, mapError(err, "get", key)
	}
	return value, true, nil
}

// Set inserts or replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := s.sb.
		Insert(table).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, "set", key)
	}

	s.log.DebugContext(ctx, "record stored", slog.String("key", key), slog.Int("bytes", len(value)))
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	query, args, err := s.sb.
		Delete(table).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove query: %w", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return mapError(err, "remove", key)
	}
	return nil
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close releases the pool if the Store opened it.
func (s *Store) Close() error {
	if s.own {
		s.pool.Close()
	}
	return nil
}
