package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UniqueKey returns a key that does not collide with other tests sharing the
// container.
func UniqueKey(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}

// SeedRecord writes a raw record directly into kv_store.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, key string, value []byte) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO kv_store (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: seed record %q: %v", key, err)
	}
}
