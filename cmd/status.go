package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aenigma-lab/opsearch/internal/config"
	"github.com/aenigma-lab/opsearch/internal/search/index"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active configuration, catalog and dictionaries",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	printSection("Configuration")
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		printMiss("", fmt.Sprintf("%s not found (using defaults, run 'opsearch init')", cfgPath))
	} else {
		printOK("", cfgPath)
	}
	for _, key := range []string{config.EnvCatalog, config.EnvDictionaries, config.EnvMaxResults} {
		v, err := config.GetConfigValue(key)
		if err != nil {
			printWarn("", fmt.Sprintf("cannot read .env: %v", err))
			break
		}
		if v != "" {
			printInfo("", fmt.Sprintf("override %s=%s", key, v))
		}
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	printInfo("", fmt.Sprintf("max results: %d", cfg.MaxResults))
	printInfo("", fmt.Sprintf("thresholds: high %d / medium %d / exact %d",
		cfg.Scoring.HighThreshold, cfg.Scoring.MediumThreshold, cfg.Scoring.ExactThreshold))

	printSection("Catalog")
	c, src, err := loadCatalog(cfg)
	if err != nil {
		printErr("", fmt.Sprintf("cannot load %s: %v", src, err))
		return err
	}
	printOK("", fmt.Sprintf("%s: %d operation(s) in %d categories", src, c.Len(), len(c.Categories())))
	printInfo("", fmt.Sprintf("fingerprint: %016x", index.Fingerprint(c)))

	if d := src.Dir; d != nil {
		printInfo("", fmt.Sprintf("%d file(s) read / %d loaded / %d duplicate(s) skipped / %d excluded",
			len(d.Files), d.Loaded, d.Skipped, d.Excluded))
		if len(d.Conflicts) > 0 {
			printBullet("Conflicts (first definition kept):")
			for _, cf := range d.Conflicts {
				printWarn(cf.ID, fmt.Sprintf("%s ignored, kept %s", cf.Conflict, cf.Original))
			}
		}
	}

	printSection("Dictionaries")
	dicts, err := loadDictionaries(cfg)
	if err != nil {
		printErr("", err.Error())
		return err
	}
	if cfg.DictionariesPath == "" {
		printSkip("", "no dictionaries_path set, using built-in tables")
	} else {
		printOK("", cfg.DictionariesPath)
	}
	fmt.Printf("\n  %d synonym(s) / %d typo(s) / %d format typo(s) / %d domain term(s)\n",
		dicts.Synonyms.Len(), dicts.Typos.Len(), dicts.Formats.Len(), dicts.Domain.Len())
	return nil
}
