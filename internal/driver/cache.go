package driver

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"bassil/internal/diagfmt"
	"bassil/internal/persist"
	"bassil/internal/source"
)

// Bump when the cached record format changes. Version 2 switched the record
// columns from bytes to characters.
const tokenCacheSchemaVersion uint16 = 2

// TokenCache stores resolved token streams on disk, keyed by content hash,
// so an unchanged file is never rescanned. Thread-safe.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type cachedStream struct {
	Schema  uint16
	Path    string
	Records []diagfmt.TokenRecord
}

// OpenTokenCache initializes the cache at the standard user cache location.
func OpenTokenCache(app string) (*TokenCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "tokens")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// OpenTokenCacheAt uses an explicit directory, mainly for tests.
func OpenTokenCacheAt(dir string) (*TokenCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

func (c *TokenCache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".mp")
}

// Put stores the resolved stream for a file.
func (c *TokenCache) Put(file *source.File, records []diagfmt.TokenRecord) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return persist.WriteFileAtomic(c.pathFor(file.Hash), func(f *os.File) error {
		return msgpack.NewEncoder(f).Encode(&cachedStream{
			Schema:  tokenCacheSchemaVersion,
			Path:    file.Path,
			Records: records,
		})
	})
}

// Get retrieves the stream cached for the file's current content. A schema
// mismatch counts as a miss.
func (c *TokenCache) Get(file *source.File) ([]diagfmt.TokenRecord, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(file.Hash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var stream cachedStream
	if err := msgpack.NewDecoder(f).Decode(&stream); err != nil {
		return nil, false, err
	}
	if stream.Schema != tokenCacheSchemaVersion {
		return nil, false, nil
	}
	return stream.Records, true, nil
}

// TokenizeCached returns the resolved record stream for path. An unchanged
// file hits the cache and skips the scan entirely; a miss scans, resolves,
// and stores the stream back when the scan was clean. The TokenizeResult is
// nil on a hit.
func TokenizeCached(path string, cache *TokenCache, opts TokenizeOptions) ([]diagfmt.TokenRecord, *TokenizeResult, bool, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, false, err
	}
	file := fs.Get(fileID)

	if records, hit, err := cache.Get(file); err != nil {
		return nil, nil, false, err
	} else if hit {
		return records, nil, true, nil
	}

	res := scanFile(fs, fileID, opts)
	records := diagfmt.TokenRecords(res.Tokens, fs)

	// partial or error-laden streams are not worth keeping
	if res.ScanErr == nil && !res.Bag.HasErrors() {
		if err := cache.Put(file, records); err != nil {
			return records, res, false, err
		}
	}
	return records, res, false, nil
}

// DropAll removes every cached stream.
func (c *TokenCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
