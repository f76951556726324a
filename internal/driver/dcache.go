package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"scadc/internal/diag"
	"scadc/internal/source"
	"scadc/internal/transpile"
)

// Bump when the payload format changes; a mismatched schema reads as a miss.
const diskCacheSchemaVersion uint16 = 1

// DiskCache keeps compiled outputs keyed by a digest of the source content
// and the options that shaped it. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type diskPayload struct {
	Schema        uint16
	Body          string
	Constructions int
	Releases      int
	Warnings      []diskWarning
}

// diskWarning flattens a diag.Diagnostic; spans are stored as raw offsets
// and rebound to the freshly loaded file on the way out.
type diskWarning struct {
	Code     uint16
	Severity uint8
	Start    uint32
	End      uint32
	Message  string
}

// OpenDiskCache initializes a disk cache at the standard location.
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

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func cacheKey(file *source.File, opts Options) [32]byte {
	h := sha256.New()
	var schema [2]byte
	binary.LittleEndian.PutUint16(schema[:], diskCacheSchemaVersion)
	h.Write(schema[:])
	h.Write(file.Hash[:])
	var segments [8]byte
	binary.LittleEndian.PutUint64(segments[:], math.Float64bits(opts.DefaultSegments))
	h.Write(segments[:])
	var key [32]byte
	h.Sum(key[:0])
	return key
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "js", hex.EncodeToString(key[:])+".mp")
}

// lookup returns the cached result for this file and option set, rebinding
// warning spans to the given file. A nil cache, a miss, an unreadable
// entry, and a schema mismatch all read as a miss.
func (c *DiskCache) lookup(file *source.File, opts Options) (*transpile.Result, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(cacheKey(file, opts)))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var payload diskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	bag := diag.NewBag(len(payload.Warnings) + 1)
	for _, w := range payload.Warnings {
		bag.Add(diag.New(diag.Severity(w.Severity), diag.Code(w.Code), source.Span{
			File:  file.ID,
			Start: w.Start,
			End:   w.End,
		}, w.Message))
	}
	return &transpile.Result{
		Body:          payload.Body,
		Bag:           bag,
		Constructions: payload.Constructions,
		Releases:      payload.Releases,
	}, true
}

// store writes a compile result to the cache. A nil cache ignores the
// write; I/O failures are swallowed because the cache is an accelerator,
// not a source of truth.
func (c *DiskCache) store(file *source.File, opts Options, res *transpile.Result) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload := diskPayload{
		Schema:        diskCacheSchemaVersion,
		Body:          res.Body,
		Constructions: res.Constructions,
		Releases:      res.Releases,
	}
	for _, d := range res.Bag.Items() {
		payload.Warnings = append(payload.Warnings, diskWarning{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Message:  d.Message,
		})
	}

	p := c.pathFor(cacheKey(file, opts))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return
	}
	if err := f.Close(); err != nil {
		return
	}
	// Atomic swap so concurrent readers never observe a partial entry.
	_ = os.Rename(f.Name(), p)
}

// DropAll invalidates the whole cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}
