package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/leximind/internal/domain"
)

// Storage keys.
const (
	KeyHistory = "history"
	KeyUser    = "user"
	KeyTheme   = "theme"
)

// Storage is the persistent key-value backend. A missing key is reported with
// found == false, not an error.
type Storage interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Store keeps search history, the fabricated session user and the theme in
// Storage, mirrored in memory. Read-modify-write sequences are serialized and
// the mirror only changes after the write succeeded.
type Store struct {
	storage Storage
	prefix  string
	now     func() time.Time
	log     *slog.Logger

	mu      sync.Mutex
	history []domain.HistoryItem
	user    *domain.User
}

// NewStore creates a Store. Keys are namespaced with keyPrefix (may be empty).
// Call Load before reading.
func NewStore(logger *slog.Logger, storage Storage, keyPrefix string) *Store {
	return &Store{
		storage: storage,
		prefix:  keyPrefix,
		now:     time.Now,
		log:     logger.With("service", "session"),
	}
}

func (s *Store) key(name string) string {
	return s.prefix + name
}
