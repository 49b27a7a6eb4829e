package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aenigma-lab/opsearch/internal/config"
	"github.com/aenigma-lab/opsearch/internal/dictionary"
	"github.com/aenigma-lab/opsearch/internal/search"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Search interactively, one query per line",
	Long: `Read queries from stdin and print ranked results for each.

The catalog is re-read before every query. The search index is rebuilt only
when the catalog content changed, so edits to catalog files show up on the
next query. Enter :q (or end input) to quit.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dicts, err := loadDictionaries(cfg)
	if err != nil {
		return fmt.Errorf("cannot load dictionaries: %w", err)
	}
	return repl(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, dicts)
}

// replHistory is how many past queries the REPL feeds to context expansion.
const replHistory = 10

func repl(in io.Reader, out io.Writer, cfg *config.Config, dicts *dictionary.Dictionaries) error {
	sc := bufio.NewScanner(in)
	var recent []string
	for {
		fmt.Fprint(out, "opsearch> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		q := strings.TrimSpace(sc.Text())
		switch q {
		case "":
			continue
		case ":q", ":quit":
			return nil
		}

		c, src, err := loadCatalog(cfg)
		if err != nil {
			fmt.Fprintf(out, "  ✗  cannot load catalog from %s: %v\n", src, err)
			continue
		}
		idx, rebuilt, err := sharedCache().Get(c)
		if err != nil {
			fmt.Fprintf(out, "  ✗  %v\n", err)
			continue
		}
		if rebuilt {
			fmt.Fprintf(out, "  ~  index built: %d operation(s) from %s\n", idx.Len(), src)
		}
		eng, err := search.New(idx, dicts, search.WithWeights(cfg.Scoring), search.WithLogger(logger))
		if err != nil {
			return err
		}
		renderResults(out, eng.Search(q, cfg.MaxResults), false)

		if ctx := eng.ExpandContext(q, recent); ctx.Expanded {
			logger.Debug("context expansion", "query", q, "terms", ctx.Terms, "ratio", ctx.Ratio)
		}
		recent = append(recent, q)
		if len(recent) > replHistory {
			recent = recent[1:]
		}
	}
}
