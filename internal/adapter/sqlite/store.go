// Package sqlite implements the on-device key-value storage for history,
// session and theme records.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const table = "kv_store"

// Store is a key-value store in a single SQLite file.
type Store struct {
	db   *sql.DB
	path string
	sb   sq.StatementBuilderType
	now  func() time.Time
	log  *slog.Logger
}

// Open opens (creating if needed) the database at path and applies
// migrations. The special path ":memory:" keeps everything in memory.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("sqlite.Open: create data directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Open: %w", err)
	}
	// One connection: ":memory:" databases are per-connection and SQLite
	// serializes writers anyway.
	db.SetMaxOpenConns(1)

	s := &Store{
		db:   db,
		path: path,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:  time.Now,
		log:  logger.With("adapter", "sqlite"),
	}

	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("sqlite.migrate: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, fsys)
	if err != nil {
		return fmt.Errorf("sqlite.migrate: new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("sqlite.migrate: up: %w", err)
	}
	for _, r := range results {
		s.log.DebugContext(ctx, "migration applied", slog.Int64("version", r.Source.Version))
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
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
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := s.sb.
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UnixMilli()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
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

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}

// Ping checks that the database is usable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
