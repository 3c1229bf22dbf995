package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"typelint/internal/diag"
	"typelint/internal/source"
)

// Increment when the DiskPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash used as the cache key.
type Digest [sha256.Size]byte

// DiskCache stores per-file diagnostics keyed by content hash plus the
// selected rule set. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiag is one diagnostic in its on-disk shape. Spans are stored as
// byte offsets; the FileID is re-bound on load.
type CachedDiag struct {
	Code  uint16
	Sev   uint8
	Msg   string
	Start uint32
	End   uint32
}

// DiskPayload is the cached analysis outcome of one file.
type DiskPayload struct {
	Schema uint16
	Diags  []CachedDiag
}

// OpenDiskCache initializes and returns a disk cache at the standard
// location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt is like OpenDiskCache with an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey derives the cache key for a file's content under a rule
// selection. Rule order does not matter.
func CacheKey(content []byte, rules []string) Digest {
	sorted := append([]string(nil), rules...)
	sort.Strings(sorted)
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(sorted, ",")))
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey+".mp")
}

// Put serializes a bag's diagnostics into the cache.
func (c *DiskCache) Put(key Digest, bag *diag.Bag) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := DiskPayload{Schema: diskCacheSchemaVersion}
	for _, d := range bag.Items() {
		payload.Diags = append(payload.Diags, CachedDiag{
			Code:  uint16(d.Code),
			Sev:   uint8(d.Severity),
			Msg:   d.Message,
			Start: d.Primary.Start,
			End:   d.Primary.End,
		})
	}

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replace.
	return os.Rename(f.Name(), p)
}

// Get loads cached diagnostics for the key, re-binding spans to fileID.
// The boolean reports a hit; a schema mismatch is a miss.
func (c *DiskCache) Get(key Digest, fileID source.FileID, maxDiagnostics int) (*diag.Bag, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false, nil
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, cd := range payload.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(cd.Sev),
			Code:     diag.Code(cd.Code),
			Message:  cd.Msg,
			Primary: source.Span{
				File:  fileID,
				Start: cd.Start,
				End:   cd.End,
			},
		})
	}
	return bag, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "files"))
}
