package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aenigma-lab/opsearch/internal/catalog"
	"github.com/aenigma-lab/opsearch/internal/config"
)

// exportedCatalogName is the file --export-builtin writes under the home
// directory.
const exportedCatalogName = "catalog.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the opsearch home directory and default configuration",
	Long: `Initialize ~/.opsearch/ (or $OPSEARCH_HOME) with a default opsearch.yaml
and a .env template. Existing files are left untouched.

With --export-builtin the built-in catalog is written to
~/.opsearch/catalog.yaml and catalog_path is pointed at it, so the operations
can be edited in place.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var flagExportBuiltin bool

func init() {
	initCmd.Flags().BoolVar(&flagExportBuiltin, "export-builtin", false, "Write the built-in catalog to the home directory and use it")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve and create the home directory ──────────────────────────────
	home, err := config.HomeDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(home, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", home, err)
	}
	printOK("", fmt.Sprintf("Home directory ready: %s", home))

	// ── 2. Write opsearch.yaml if missing ─────────────────────────────────────
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.DefaultConfig()
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	case err != nil:
		return err
	default:
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 3. .env template ──────────────────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		printWarn("", fmt.Sprintf("cannot write .env template: %v", err))
	}

	if !flagExportBuiltin {
		return nil
	}

	// ── 4. Export the built-in catalog ───────────────────────────────────────
	path := filepath.Join(home, exportedCatalogName)
	written, err := exportBuiltin(path)
	if err != nil {
		return err
	}
	if written {
		printOK("", fmt.Sprintf("Built-in catalog exported: %s", path))
	} else {
		printSkip("", fmt.Sprintf("Catalog already exists: %s", path))
	}
	if cfg.CatalogPath != path {
		cfg.CatalogPath = path
		cfg.CatalogDir = ""
		if err := config.Save(cfg); err != nil {
			return err
		}
		printInfo("", fmt.Sprintf("catalog_path set to %s", path))
	}
	return nil
}

// exportBuiltin writes the built-in catalog as YAML to path unless the file
// already exists. written reports whether the file was created.
func exportBuiltin(path string) (written bool, err error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	data, err := yaml.Marshal(catalog.File{Operations: catalog.Builtin().Entries()})
	if err != nil {
		return false, fmt.Errorf("cannot marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("cannot write %s: %w", path, err)
	}
	return true, nil
}
