package validate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"quiver/internal/diag"
)

// Current schema version - increment when Outcome format changes
const cacheSchemaVersion uint16 = 1

// Digest is a sha256 content hash used as a cache key.
type Digest [32]byte

// DigestOf hashes diagram source for cache lookups.
func DigestOf(text string) Digest {
	return sha256.Sum256([]byte(text))
}

// Outcome stores one settled validation result for caching.
type Outcome struct {
	Schema  uint16
	OK      bool
	Code    string
	Message string
	HasLoc  bool
	Loc     [4]int // firstLine, lastLine, firstCol, lastCol
}

// DiskCache хранит исходы валидации по хешу содержимого на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
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

// OpenDiskCacheAt returns a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог для удобства очистки.
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Put serializes and writes an outcome to the disk cache.
func (c *DiskCache) Put(key Digest, outcome *Outcome) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(outcome); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes an outcome from the disk cache.
func (c *DiskCache) Get(key Digest, out *Outcome) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.pathFor(key)
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "cache: close: %v\n", closeErr)
		}
	}()
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(out); err != nil {
		return false, err
	}
	if out.Schema != cacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(c.dir)
}

// Cached wraps a validator with the disk cache: hits skip validation,
// misses are validated and stored.
func Cached(v Validator, cache *DiskCache) Validator {
	return Func(func(ctx context.Context, text string) error {
		key := DigestOf(text)
		var outcome Outcome
		if ok, err := cache.Get(key, &outcome); err == nil && ok {
			return outcomeToError(&outcome)
		}
		verr := v.Validate(ctx, text)
		_ = cache.Put(key, outcomeOf(verr))
		return verr
	})
}

func outcomeOf(err error) *Outcome {
	out := &Outcome{Schema: cacheSchemaVersion, OK: err == nil}
	if err == nil {
		return out
	}
	var verr *Error
	if errors.As(err, &verr) {
		out.Code = string(verr.Code)
		out.Message = verr.Message
		if verr.Loc != nil {
			out.HasLoc = true
			out.Loc = [4]int{verr.Loc.FirstLine, verr.Loc.LastLine, verr.Loc.FirstCol, verr.Loc.LastCol}
		}
		return out
	}
	out.Message = err.Error()
	return out
}

func outcomeToError(out *Outcome) error {
	if out.OK {
		return nil
	}
	verr := &Error{Code: diag.Code(out.Code), Message: out.Message}
	if out.HasLoc {
		verr.Loc = &Loc{
			FirstLine: out.Loc[0],
			LastLine:  out.Loc[1],
			FirstCol:  out.Loc[2],
			LastCol:   out.Loc[3],
		}
	}
	return verr
}
