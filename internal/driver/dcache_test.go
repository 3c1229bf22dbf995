package driver

import (
	"testing"

	"typelint/internal/diag"
	"typelint/internal/source"
)

func TestCacheKey(t *testing.T) {
	content := []byte("let x = 1;")

	a := CacheKey(content, []string{"no-ignored-return", "no-return-to-void"})
	b := CacheKey(content, []string{"no-return-to-void", "no-ignored-return"})
	if a != b {
		t.Errorf("rule order must not change the key")
	}

	c := CacheKey(content, []string{"no-ignored-return"})
	if a == c {
		t.Errorf("different rule sets must change the key")
	}
	d := CacheKey([]byte("let x = 2;"), []string{"no-ignored-return", "no-return-to-void"})
	if a == d {
		t.Errorf("different content must change the key")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	content := []byte("doSomething();")
	key := CacheKey(content, []string{"no-ignored-return"})

	stored := diag.NewBag(8)
	stored.Add(diag.NewWarning(diag.LintUnusedReturn,
		source.Span{File: 3, Start: 0, End: 13}, "return value is unused"))
	if err := cache.Put(key, stored); err != nil {
		t.Fatalf("Put: %v", err)
	}

	loaded, hit, err := cache.Get(key, source.FileID(7), 8)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatalf("expected a cache hit")
	}
	items := loaded.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	got := items[0]
	if got.Code != diag.LintUnusedReturn || got.Severity != diag.SevWarning {
		t.Errorf("code/severity lost: %v %v", got.Code, got.Severity)
	}
	if got.Message != "return value is unused" {
		t.Errorf("message lost: %q", got.Message)
	}
	if got.Primary.File != source.FileID(7) {
		t.Errorf("span must re-bind to the caller's FileID, got %d", got.Primary.File)
	}
	if got.Primary.Start != 0 || got.Primary.End != 13 {
		t.Errorf("offsets lost: %v", got.Primary)
	}
}

func TestDiskCache_MissAndDrop(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}

	key := CacheKey([]byte("anything"), nil)
	if _, hit, err := cache.Get(key, 0, 8); err != nil || hit {
		t.Fatalf("expected a clean miss, hit=%v err=%v", hit, err)
	}

	if err := cache.Put(key, diag.NewBag(1)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, hit, _ := cache.Get(key, 0, 8); !hit {
		t.Fatalf("expected a hit after Put")
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if _, hit, _ := cache.Get(key, 0, 8); hit {
		t.Errorf("expected a miss after DropAll")
	}
}

func TestDiskCache_NilSafe(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put(Digest{}, diag.NewBag(1)); err != nil {
		t.Errorf("nil Put: %v", err)
	}
	if _, hit, err := cache.Get(Digest{}, 0, 8); hit || err != nil {
		t.Errorf("nil Get: hit=%v err=%v", hit, err)
	}
	if err := cache.DropAll(); err != nil {
		t.Errorf("nil DropAll: %v", err)
	}
}
