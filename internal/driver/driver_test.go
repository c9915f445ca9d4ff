package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"marklint/internal/diag"
	"marklint/internal/source"
)

func writeSource(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestCheckPathReportsNesting(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.mx", "<table><td/></table>\n")

	_, res, err := CheckPath(path, Options{})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected a nesting error")
	}
	if res.Bag.Items()[0].Code != diag.NestInvalidNesting {
		t.Fatalf("code = %v", res.Bag.Items()[0].Code)
	}
}

func TestCheckPathCleanFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "good.mx", "<table><tr><td>x</td></tr></table>\n")

	_, res, err := CheckPath(path, Options{})
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("expected clean run, got %v", res.Bag.Items())
	}
}

func TestCheckDirOrderIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "b.mx", "<table><td/></table>\n")
	writeSource(t, dir, "a.mx", "<tr><td/></tr>\n")
	writeSource(t, dir, "sub/c.mx", "<br><b/></br>\n")
	writeSource(t, dir, "ignored.txt", "not a source file")

	_, results, err := CheckDir(context.Background(), dir, Options{Jobs: 4})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("want 3 results, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.mx" ||
		filepath.Base(results[1].Path) != "b.mx" ||
		filepath.Base(results[2].Path) != "c.mx" {
		t.Fatalf("results out of order: %v", results)
	}
	if results[0].Bag.Len() != 0 {
		t.Fatalf("a.mx should be clean, got %v", results[0].Bag.Items())
	}
	if !results[1].Bag.HasErrors() || !results[2].Bag.HasErrors() {
		t.Fatalf("b.mx and c.mx should carry errors")
	}
}

func TestCheckDirEmpty(t *testing.T) {
	dir := t.TempDir()
	_, results, err := CheckDir(context.Background(), dir, Options{})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("want no results, got %d", len(results))
	}
}

func TestCheckDirCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.mx", "<td/>\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := CheckDir(ctx, dir, Options{}); err == nil {
		t.Fatalf("canceled context must surface an error")
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	bag := diag.NewBag(16)
	bag.Add(diag.NewError(diag.NestInvalidNesting, source.Span{File: 7, Start: 3, End: 8}, "msg").
		WithNote(source.Span{File: 7, Start: 0, End: 3}, "note"))

	key := CacheKey([32]byte{1}, []string{"h"}, nil)
	if err := cache.Put(key, payloadFromBag(bag)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var payload Payload
	hit, err := cache.Get(key, &payload)
	if err != nil || !hit {
		t.Fatalf("Get: hit=%v err=%v", hit, err)
	}
	restored, ok := bagFromPayload(&payload, source.FileID(2), 16)
	if !ok || restored.Len() != 1 {
		t.Fatalf("restore failed: ok=%v len=%d", ok, restored.Len())
	}
	d := restored.Items()[0]
	if d.Code != diag.NestInvalidNesting || d.Primary.File != 2 || d.Primary.Start != 3 {
		t.Fatalf("restored diagnostic wrong: %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Span.File != 2 {
		t.Fatalf("restored note wrong: %+v", d.Notes)
	}
}

func TestDiskCacheMiss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	var payload Payload
	hit, err := cache.Get(CacheKey([32]byte{9}, nil, nil), &payload)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatalf("unexpected hit")
	}
}

func TestCacheKeyDependsOnConfig(t *testing.T) {
	hash := [32]byte{42}
	base := CacheKey(hash, []string{"h"}, []string{"map"})
	if CacheKey(hash, []string{"el"}, []string{"map"}) == base {
		t.Fatalf("creators must influence the key")
	}
	if CacheKey(hash, []string{"h"}, []string{"each"}) == base {
		t.Fatalf("map methods must influence the key")
	}
	if CacheKey([32]byte{43}, []string{"h"}, []string{"map"}) == base {
		t.Fatalf("content must influence the key")
	}
	if CacheKey(hash, []string{"h"}, []string{"map"}) != base {
		t.Fatalf("key must be deterministic")
	}
}

func TestCheckPathUsesCache(t *testing.T) {
	cacheDir := t.TempDir()
	cache, err := OpenDiskCacheAt(cacheDir)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.mx", "<table><td/></table>\n")
	opts := Options{Cache: cache}

	_, first, err := CheckPath(path, opts)
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if first.FromCache {
		t.Fatalf("first run cannot be a cache hit")
	}

	_, second, err := CheckPath(path, opts)
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if !second.FromCache {
		t.Fatalf("second run should hit the cache")
	}
	if second.Bag.Len() != first.Bag.Len() {
		t.Fatalf("cached result differs: %d vs %d", second.Bag.Len(), first.Bag.Len())
	}
	a, b := first.Bag.Items()[0], second.Bag.Items()[0]
	if a.Code != b.Code || a.Message != b.Message || a.Primary.Start != b.Primary.Start {
		t.Fatalf("cached diagnostic differs: %+v vs %+v", a, b)
	}

	// Editing the file invalidates the entry.
	writeSource(t, dir, "bad.mx", "<table><tr><td/></tr></table>\n")
	_, third, err := CheckPath(path, opts)
	if err != nil {
		t.Fatalf("CheckPath: %v", err)
	}
	if third.FromCache {
		t.Fatalf("changed content must miss the cache")
	}
	if third.Bag.Len() != 0 {
		t.Fatalf("fixed file should be clean, got %v", third.Bag.Items())
	}
}

func TestDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	key := CacheKey([32]byte{1}, nil, nil)
	if err := cache.Put(key, &Payload{Schema: cacheSchemaVersion}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var payload Payload
	if hit, _ := cache.Get(key, &payload); hit {
		t.Fatalf("entry survived DropAll")
	}
}
