package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aenigma-lab/opsearch/internal/search"
)

// DefaultMaxResults is the max_results written on first opsearch init.
const DefaultMaxResults = search.DefaultMaxResults

// HomeEnv overrides the opsearch home directory.
const HomeEnv = "OPSEARCH_HOME"

// Config is the in-memory representation of ~/.opsearch/opsearch.yaml.
//
// At most one of CatalogPath and CatalogDir is used; CatalogPath wins. With
// neither set the built-in catalog is searched.
type Config struct {
	CatalogPath      string         `yaml:"catalog_path,omitempty"`
	CatalogDir       string         `yaml:"catalog_dir,omitempty"`
	DictionariesPath string         `yaml:"dictionaries_path,omitempty"`
	Excludes         []string       `yaml:"excludes,omitempty"`
	MaxResults       int            `yaml:"max_results"`
	Scoring          search.Weights `yaml:"scoring"`
}

// HomeDir returns the opsearch home directory: $OPSEARCH_HOME when set,
// otherwise ~/.opsearch/.
func HomeDir() (string, error) {
	if v := os.Getenv(HomeEnv); v != "" {
		return ExpandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".opsearch"), nil
}

// ConfigPath returns the absolute path to opsearch.yaml.
func ConfigPath() (string, error) {
	dir, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "opsearch.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the default Config written on first opsearch init.
func DefaultConfig() *Config {
	return &Config{
		MaxResults: DefaultMaxResults,
		Excludes: []string{
			".DS_Store",
			"Thumbs.db",
			"*.tmp",
			"*.bak",
			"*~",
			".git/",
			".idea/",
			".vscode/",
			"node_modules/",
		},
		Scoring: search.DefaultWeights(),
	}
}

// Validate fills in a missing max_results and checks the scoring block.
func (c *Config) Validate() error {
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Load reads and parses opsearch.yaml. Keys missing from the file keep their
// default values. A missing file is reported with an error wrapping
// fs.ErrNotExist.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	for _, p := range []*string{&cfg.CatalogPath, &cfg.CatalogDir, &cfg.DictionariesPath} {
		if *p, err = ExpandPath(*p); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields DefaultConfig.
func LoadOrDefault() (*Config, error) {
	cfg, err := Load()
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save marshals cfg and writes it to opsearch.yaml, creating the home
// directory if needed. Concurrent writers are serialized by a lock file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	unlock, err := acquireLock(5 * time.Second)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
