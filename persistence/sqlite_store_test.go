package persistence

import (
	"path/filepath"
	"reflect"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "maps.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)
	want := grassMap(5, 4)

	if err := store.SaveMap("grass_map", want); err != nil {
		t.Fatalf("SaveMap failed: %v", err)
	}
	got, err := store.LoadMap("grass_map")
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Round trip mismatch: got %+v", got)
	}
}

func TestSQLiteStore_SaveMap_Replaces(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.SaveMap("m", grassMap(6, 6)); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveMap("m", grassMap(2, 1)); err != nil {
		t.Fatalf("Second SaveMap failed: %v", err)
	}

	got, err := store.LoadMap("m")
	if err != nil {
		t.Fatal(err)
	}
	if got.Width != 2 || got.Height != 1 || got.TileCount() != 2 {
		t.Errorf("Expected replaced 2x1 map, got %dx%d with %d tiles", got.Width, got.Height, got.TileCount())
	}
}

func TestSQLiteStore_EmptyMap(t *testing.T) {
	store := newTestSQLiteStore(t)

	if err := store.SaveMap("empty", grassMap(0, 0)); err != nil {
		t.Fatal(err)
	}
	got, err := store.LoadMap("empty")
	if err != nil {
		t.Fatal(err)
	}
	if got.Tiles == nil || got.TileCount() != 0 {
		t.Errorf("Expected empty non-nil tiles, got %#v", got.Tiles)
	}
}

func TestSQLiteStore_LoadMap_NotFound(t *testing.T) {
	store := newTestSQLiteStore(t)
	if _, err := store.LoadMap("missing"); err == nil {
		t.Error("Expected error for unknown map")
	}
}
