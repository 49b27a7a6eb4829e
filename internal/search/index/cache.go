package index

import (
	"io"
	"log/slog"
	"sync"

	"github.com/aenigma-lab/opsearch/internal/catalog"
)

// Cache holds the index of the most recently seen catalog and rebuilds it
// only when the catalog's fingerprint changes. It is safe for concurrent use.
type Cache struct {
	mu     sync.Mutex
	idx    *Index
	builds int
	logger *slog.Logger
}

// NewCache returns an empty cache. A nil logger discards output.
func NewCache(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cache{logger: logger}
}

// Get returns an index for c, reusing the cached one when c has the same
// fingerprint. rebuilt reports whether a new index was built.
func (ca *Cache) Get(c *catalog.Catalog) (idx *Index, rebuilt bool, err error) {
	if c == nil {
		return nil, false, ErrNilCatalog
	}
	fp := Fingerprint(c)

	ca.mu.Lock()
	defer ca.mu.Unlock()

	if ca.idx != nil && ca.idx.Fingerprint == fp {
		return ca.idx, false, nil
	}
	idx, err = Build(c)
	if err != nil {
		return nil, false, err
	}
	ca.idx = idx
	ca.builds++
	ca.logger.Debug("index rebuilt", "entries", idx.Len(), "fingerprint", fp, "builds", ca.builds)
	return idx, true, nil
}

// Builds returns how many times the cache has built an index.
func (ca *Cache) Builds() int {
	ca.mu.Lock()
	defer ca.mu.Unlock()
	return ca.builds
}
