package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	key := UniqueKey("smoke")
	SeedRecord(t, pool, key, []byte(`"ok"`))

	var value []byte
	err := pool.QueryRow(
		context.Background(),
		`SELECT value FROM kv_store WHERE key = $1`,
		key,
	).Scan(&value)
	if err != nil {
		t.Fatalf("expected record in DB, got error: %v", err)
	}

	if string(value) != `"ok"` {
		t.Fatalf("expected value %q, got %q", `"ok"`, value)
	}
}
