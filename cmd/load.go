package cmd

import (
	"fmt"
	"sync"

	"github.com/aenigma-lab/opsearch/internal/catalog"
	"github.com/aenigma-lab/opsearch/internal/config"
	"github.com/aenigma-lab/opsearch/internal/dictionary"
	"github.com/aenigma-lab/opsearch/internal/search"
	"github.com/aenigma-lab/opsearch/internal/search/index"
)

// catalogSource describes where a loaded catalog came from.
type catalogSource struct {
	Kind string // "built-in", "file" or "directory"
	Path string
	Dir  *catalog.DirResult // set for directory sources
}

func (s catalogSource) String() string {
	if s.Path == "" {
		return s.Kind
	}
	return fmt.Sprintf("%s %s", s.Kind, s.Path)
}

var (
	cacheOnce  sync.Once
	indexCache *index.Cache
)

// sharedCache returns the process-wide index cache. It is created on first
// use so that it picks up the --debug logger.
func sharedCache() *index.Cache {
	cacheOnce.Do(func() { indexCache = index.NewCache(logger) })
	return indexCache
}

// loadConfig reads opsearch.yaml (defaults when absent) and applies the
// environment and dotenv overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadCatalog reads the catalog named by cfg: catalog_path, then
// catalog_dir, then the built-in catalog.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, catalogSource, error) {
	switch {
	case cfg.CatalogPath != "":
		src := catalogSource{Kind: "file", Path: cfg.CatalogPath}
		c, err := catalog.LoadFile(cfg.CatalogPath)
		return c, src, err
	case cfg.CatalogDir != "":
		src := catalogSource{Kind: "directory", Path: cfg.CatalogDir}
		res, err := catalog.LoadDir(cfg.CatalogDir, cfg.Excludes)
		if err != nil {
			return nil, src, err
		}
		src.Dir = res
		for _, c := range res.Conflicts {
			logger.Debug("catalog conflict", "id", c.ID, "kept", c.Original, "ignored", c.Conflict)
		}
		return res.Catalog, src, nil
	default:
		return catalog.Builtin(), catalogSource{Kind: "built-in"}, nil
	}
}

// loadDictionaries returns the built-in tables, extended by
// dictionaries_path when set.
func loadDictionaries(cfg *config.Config) (*dictionary.Dictionaries, error) {
	if cfg.DictionariesPath == "" {
		return dictionary.Builtin(), nil
	}
	return dictionary.LoadFile(cfg.DictionariesPath)
}

// session bundles everything a command needs to query the catalog.
type session struct {
	cfg    *config.Config
	source catalogSource
	dicts  *dictionary.Dictionaries
	engine *search.Engine
}

// openSession loads config, catalog and dictionaries and builds an engine
// over the cached index.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openSessionWith(cfg)
}

func openSessionWith(cfg *config.Config) (*session, error) {
	c, src, err := loadCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot load catalog from %s: %w", src, err)
	}
	dicts, err := loadDictionaries(cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot load dictionaries: %w", err)
	}
	idx, _, err := sharedCache().Get(c)
	if err != nil {
		return nil, err
	}
	eng, err := search.New(idx, dicts, search.WithWeights(cfg.Scoring), search.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, source: src, dicts: dicts, engine: eng}, nil
}
