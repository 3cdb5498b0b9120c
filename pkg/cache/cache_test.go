package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Error("Get on empty cache should miss")
	}

	if err := c.Set(ctx, "fig", []byte("svg bytes"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, ok, err := c.Get(ctx, "fig")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if string(data) != "svg bytes" {
		t.Errorf("Get = %q", data)
	}

	if err := c.Delete(ctx, "fig"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "fig"); ok {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "fig"); err != nil {
		t.Errorf("deleting a missing key should not error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "fig", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, ok, _ := c.Get(ctx, "fig"); ok {
		t.Error("expired entry should miss")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "fig", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}

	// Corrupt the entry on disk; it should read as a miss, not an error.
	hash := Hash([]byte("fig"))
	path := filepath.Join(dir, hash[:2], hash[2:]+".json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(ctx, "fig"); ok || err != nil {
		t.Errorf("corrupt entry Get = %v, %v; want miss", ok, err)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache should never hit")
	}
}

func TestFigureKey(t *testing.T) {
	type opts struct {
		ScaleBar bool
		Format   string
	}

	base := FigureKey("d1", "b1", "l1", opts{Format: "svg"})
	if base == "" || base == FigureKey("d2", "b1", "l1", opts{Format: "svg"}) {
		t.Error("key should depend on input hashes")
	}
	if base == FigureKey("d1", "b1", "l1", opts{Format: "png"}) {
		t.Error("key should depend on options")
	}
	if base != FigureKey("d1", "b1", "l1", opts{Format: "svg"}) {
		t.Error("key should be deterministic")
	}
}
