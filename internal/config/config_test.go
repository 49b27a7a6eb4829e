package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aenigma-lab/opsearch/internal/search"
)

func TestHomeDir_Override(t *testing.T) {
	home := setHome(t)
	dir, err := HomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	p, err := ConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "opsearch.yaml"), p)
}

func TestLoad_Missing(t *testing.T) {
	setHome(t)

	_, err := Load()
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	setHome(t)

	cfg := DefaultConfig()
	cfg.CatalogDir = "/srv/catalogs"
	cfg.MaxResults = 12
	cfg.Scoring.HighThreshold = 75
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	home := setHome(t)
	body := "catalog_path: ~/ops.yaml\nscoring:\n  exact_bonus: 20\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "opsearch.yaml"), []byte(body), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	userHome, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userHome, "ops.yaml"), cfg.CatalogPath)
	assert.Equal(t, DefaultMaxResults, cfg.MaxResults)
	assert.Equal(t, 20, cfg.Scoring.ExactBonus)
	assert.Equal(t, search.DefaultWeights().CoverageWeight, cfg.Scoring.CoverageWeight)
	assert.NotEmpty(t, cfg.Excludes)
}

func TestLoad_Invalid(t *testing.T) {
	home := setHome(t)
	p := filepath.Join(home, "opsearch.yaml")

	require.NoError(t, os.WriteFile(p, []byte("max_results: [\n"), 0o644))
	_, err := Load()
	assert.ErrorContains(t, err, "invalid YAML")

	require.NoError(t, os.WriteFile(p, []byte("scoring:\n  medium_threshold: 90\n"), 0o644))
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, search.ErrInvalidWeights)
}

func TestValidate_DefaultsMaxResults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResults = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultMaxResults, cfg.MaxResults)
}

func TestAcquireLock_Contended(t *testing.T) {
	setHome(t)
	dir, err := HomeDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	lockPath, err := LockPath()
	require.NoError(t, err)
	other := flock.New(lockPath)
	locked, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, locked)

	_, err = acquireLock(300 * time.Millisecond)
	assert.ErrorIs(t, err, ErrLocked)

	require.NoError(t, other.Unlock())
	unlock, err := acquireLock(time.Second)
	require.NoError(t, err)
	unlock()
}
