package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aenigma-lab/opsearch/internal/search"
)

var (
	flagSuggestMax   int
	flagSuggestTypos bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <partial>",
	Short: "Complete a partial query, or rank spelling corrections",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVar(&flagSuggestMax, "max", 0, "Maximum number of suggestions")
	suggestCmd.Flags().BoolVar(&flagSuggestTypos, "typos", false, "Rank spelling corrections instead of completions")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	q := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	if flagSuggestTypos {
		typos := s.engine.TypoSuggestions(q, flagSuggestMax)
		if len(typos) == 0 {
			printMiss("", fmt.Sprintf("no corrections for %q", q))
			return nil
		}
		renderTypos(cmd, typos)
		return nil
	}

	for _, sug := range s.engine.Suggest(q, flagSuggestMax) {
		fmt.Fprintln(out, sug)
	}
	return nil
}

func renderTypos(cmd *cobra.Command, typos []search.TypoSuggestion) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, t := range typos {
		op := t.OperationID
		if op == "" {
			op = "(format)"
		}
		fmt.Fprintf(tw, "  %s\t→ %s\t%d%%\t%s\n", t.Original, t.Suggestion, t.Similarity, op)
	}
	_ = tw.Flush()
}
