package main

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"grass-map/generator/config"
	"grass-map/generator/persistence"
	"grass-map/generator/services"
)

func TestRun_WritesMapAndSummary(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer

	if err := run(&config.Config{}, dir, &stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if got, want := stdout.String(), "Generated 100x100 grass map with 10000 tiles\n"; got != want {
		t.Errorf("Expected stdout %q, got %q", want, got)
	}

	m, err := persistence.NewJSONStore(dir).LoadMap(services.MapName)
	if err != nil {
		t.Fatalf("Map file unreadable: %v", err)
	}
	if m.Width != 100 || m.Height != 100 || m.TileCount() != 10000 {
		t.Errorf("Unexpected map %dx%d with %d tiles", m.Width, m.Height, m.TileCount())
	}
	last := m.Tiles[len(m.Tiles)-1]
	if last.X != 99 || last.Y != 99 {
		t.Errorf("Expected last tile (99,99), got (%d,%d)", last.X, last.Y)
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets", "maps")
	var stdout bytes.Buffer

	err := run(&config.Config{}, dir, &stdout)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Expected fs.ErrNotExist, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("No summary expected on failure, got %q", stdout.String())
	}
	if _, statErr := os.Stat(filepath.Join(dir, "grass_map.json")); statErr == nil {
		t.Error("No file should be produced on failure")
	}
}

func TestRun_SQLiteMirror(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "maps.db")
	cfg := &config.Config{DBType: config.DBTypeSQLite, DBFile: dbFile}

	if err := run(cfg, dir, &bytes.Buffer{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	store, err := persistence.NewSQLiteStore(dbFile)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m, err := store.LoadMap(services.MapName)
	if err != nil {
		t.Fatalf("Mirrored map missing: %v", err)
	}
	if m.TileCount() != 10000 {
		t.Errorf("Expected 10000 mirrored tiles, got %d", m.TileCount())
	}
}

func TestRun_PublishFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{PublishURL: "ws://127.0.0.1:1/maps"}

	if err := run(cfg, dir, &bytes.Buffer{}); err == nil {
		t.Error("Expected publish error")
	}
	if _, err := os.Stat(filepath.Join(dir, "grass_map.json")); err != nil {
		t.Errorf("Map should be written before publishing: %v", err)
	}
}
