package database

import (
	"path/filepath"
	"testing"
	"time"

	"movia-backend/internal/config"
)

// OpenTest opens a migrated sqlite database in a per-test directory and
// closes it when the test ends.
func OpenTest(t testing.TB) *Database {
	t.Helper()

	db, err := Connect(config.DatabaseConfig{
		Driver:       "sqlite",
		SQLitePath:   filepath.Join(t.TempDir(), "movia.db"),
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("database.Connect() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
