package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/football-leagues/internal/snapshots"
)

// NewTempStore returns a cache store whose file lives in a temp dir and does not exist yet.
func NewTempStore(t *testing.T) *snapshots.FSStore {
	t.Helper()
	return snapshots.NewFSStore(filepath.Join(t.TempDir(), "data_base.json"))
}

// WriteCache puts raw bytes into the store's cache file, bypassing validation.
func WriteCache(t *testing.T, store snapshots.Store, raw string) {
	t.Helper()
	if err := os.WriteFile(store.Path(), []byte(raw), 0o644); err != nil {
		t.Fatalf("failed to write cache %s: %v", store.Path(), err)
	}
}
