package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/aenigma-lab/opsearch/internal/config"
	"github.com/aenigma-lab/opsearch/internal/search"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight environment checks",
	Long: `Check that the opsearch configuration, catalog and dictionaries load and
that every catalog operation can be found by its own id.
Run this command when results look wrong, or before filing a bug report.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("opsearch doctor")
	fmt.Println()

	// ── Check 1: home directory ───────────────────────────────────────────────
	fmt.Println("[ Home directory ]")
	home, err := config.HomeDir()
	if err != nil {
		failD("cannot determine home directory: %v", err)
	} else if _, err := os.Stat(home); errors.Is(err, fs.ErrNotExist) {
		printMiss("", fmt.Sprintf("%s not found (defaults in use, run 'opsearch init')", home))
	} else {
		printOK("", home)
	}
	fmt.Println()

	// ── Check 2: opsearch.yaml ───────────────────────────────────────────────
	fmt.Println("[ opsearch.yaml ]")
	cfg, err := config.Load()
	switch {
	case errors.Is(err, fs.ErrNotExist):
		printMiss("", "no config file, using defaults")
		cfg = config.DefaultConfig()
	case err != nil:
		failD("invalid config: %v", err)
		cfg = config.DefaultConfig()
	default:
		printOK("", fmt.Sprintf("valid, max_results %d", cfg.MaxResults))
	}
	if err := config.ApplyEnv(cfg); err != nil {
		failD("environment override: %v", err)
	}
	fmt.Println()

	// ── Check 3: catalog ─────────────────────────────────────────────────────
	fmt.Println("[ Catalog ]")
	c, src, err := loadCatalog(cfg)
	if err != nil {
		failD("cannot load %s: %v", src, err)
	} else {
		printOK("", fmt.Sprintf("%s: %d operation(s)", src, c.Len()))
		if src.Dir != nil && len(src.Dir.Conflicts) > 0 {
			printWarn("", fmt.Sprintf("%d conflicting definition(s) ignored, see 'opsearch status'", len(src.Dir.Conflicts)))
		}
	}
	fmt.Println()

	// ── Check 4: dictionaries ────────────────────────────────────────────────
	fmt.Println("[ Dictionaries ]")
	dicts, err := loadDictionaries(cfg)
	if err != nil {
		failD("%v", err)
	} else {
		printOK("", fmt.Sprintf("%d synonym(s), %d typo(s)", dicts.Synonyms.Len(), dicts.Typos.Len()))
	}
	fmt.Println()

	// ── Check 5: index and self-test ─────────────────────────────────────────
	fmt.Println("[ Search index ]")
	if c == nil || dicts == nil {
		printSkip("", "skipped (catalog or dictionaries not loaded)")
	} else if idx, _, err := sharedCache().Get(c); err != nil {
		failD("cannot build index: %v", err)
	} else if eng, err := search.New(idx, dicts, search.WithWeights(cfg.Scoring), search.WithLogger(logger)); err != nil {
		failD("cannot create engine: %v", err)
	} else {
		printOK("", fmt.Sprintf("%d entries, fingerprint %016x", idx.Len(), idx.Fingerprint))
		missed, shadowed := selfTest(eng)
		for _, id := range missed {
			failD("[%s] not found by its own id", id)
		}
		for _, id := range shadowed {
			printWarn(id, "searching its id ranks another operation first")
		}
		if len(missed) == 0 {
			printOK("", "every operation resolves by id")
		}
	}
	fmt.Println()

	if !allOK {
		return fmt.Errorf("one or more checks failed")
	}
	fmt.Println("  All checks passed.")
	return nil
}

// selfTest looks every operation up by its own id. missed holds ids the
// direct lookup cannot resolve; shadowed holds ids whose search does not
// rank the operation first.
func selfTest(eng *search.Engine) (missed, shadowed []string) {
	for _, op := range eng.Index().Catalog.Entries() {
		m, ok := eng.DirectLookup(op.ID)
		if !ok || m.Operation.ID != op.ID {
			missed = append(missed, op.ID)
			continue
		}
		resp := eng.Search(op.ID, 1)
		if len(resp.Results) == 0 || resp.Results[0].Operation.ID != op.ID {
			shadowed = append(shadowed, op.ID)
		}
	}
	return missed, shadowed
}
