package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aenigma-lab/opsearch/internal/search"
)

var (
	flagSearchK       int
	flagSearchJSON    bool
	flagSearchExplain bool
	flagSearchBatch   string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Rank catalog operations against a free-text query",
	Long: `Rank catalog operations against a free-text query.

Example:
  opsearch search combine files
  opsearch search --explain jpg2png
  opsearch search --batch queries.txt --json`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&flagSearchK, "k", 0, "Number of results to show (default: max_results from config)")
	searchCmd.Flags().BoolVar(&flagSearchJSON, "json", false, "Print the full response as JSON")
	searchCmd.Flags().BoolVar(&flagSearchExplain, "explain", false, "Show the score breakdown of each result")
	searchCmd.Flags().StringVar(&flagSearchBatch, "batch", "", "Read one query per line from `FILE` (- for stdin)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if flagSearchBatch == "" && len(args) == 0 {
		return cmd.Help()
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	k := flagSearchK
	if k <= 0 {
		k = s.cfg.MaxResults
	}
	out := cmd.OutOrStdout()

	if flagSearchBatch != "" {
		queries, err := readQueries(flagSearchBatch, cmd.InOrStdin())
		if err != nil {
			return err
		}
		resps, err := searchBatch(cmd.Context(), s.engine, queries, k)
		if err != nil {
			return err
		}
		if flagSearchJSON {
			return writeJSON(out, resps)
		}
		for _, r := range resps {
			renderResults(out, r, flagSearchExplain)
		}
		return nil
	}

	resp := s.engine.Search(strings.Join(args, " "), k)
	if flagSearchJSON {
		return writeJSON(out, resp)
	}
	renderResults(out, resp, flagSearchExplain)
	return nil
}

// readQueries reads non-empty, non-comment lines from path, or from stdin
// when path is "-".
func readQueries(path string, stdin io.Reader) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open batch file %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read queries: %w", err)
	}
	return out, nil
}

// searchBatch runs every query on a bounded pool of goroutines. Responses
// keep the order of queries.
func searchBatch(ctx context.Context, eng *search.Engine, queries []string, k int) ([]search.SearchResponse, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := make([]search.SearchResponse, len(queries))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = eng.Search(q, k)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("batch search", "queries", len(queries))
	return out, nil
}
