package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aenigma-lab/opsearch/internal/search"
)

var (
	flagIntentJSON   bool
	flagIntentRecent []string
)

var intentCmd = &cobra.Command{
	Use:   "intent <query>",
	Short: "Classify what a query is trying to do",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIntent,
}

func init() {
	intentCmd.Flags().BoolVar(&flagIntentJSON, "json", false, "Print the intent as JSON")
	intentCmd.Flags().StringSliceVar(&flagIntentRecent, "recent", nil, "Recent searches used to widen the query (comma separated)")
	rootCmd.AddCommand(intentCmd)
}

// intentReport is the JSON shape of the intent command.
type intentReport struct {
	search.Intent
	Context search.ContextExpansion `json:"context"`
}

func runIntent(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dicts, err := loadDictionaries(cfg)
	if err != nil {
		return fmt.Errorf("cannot load dictionaries: %w", err)
	}
	query := strings.Join(args, " ")
	rep := intentReport{
		Intent:  search.DetectIntent(query),
		Context: search.NewExpander(dicts.Synonyms, dicts.Domain).ExpandWithContext(query, flagIntentRecent),
	}
	out := cmd.OutOrStdout()
	if flagIntentJSON {
		return writeJSON(out, rep)
	}
	printIntent(out, rep)
	return nil
}

func printIntent(out io.Writer, rep intentReport) {
	in := rep.Intent
	fmt.Fprintf(out, "Intent:     %s\n", in.Type)
	fmt.Fprintf(out, "Confidence: %.2f\n", in.Confidence)
	if len(in.MatchedTerms) > 0 {
		fmt.Fprintf(out, "Terms:      %s\n", strings.Join(in.MatchedTerms, ", "))
	}
	if in.Entities.From != "" || in.Entities.To != "" {
		fmt.Fprintf(out, "From → To:  %s → %s\n", in.Entities.From, in.Entities.To)
	}
	if in.Entities.Target != "" {
		fmt.Fprintf(out, "Target:     %s\n", in.Entities.Target)
	}
	if ctx := rep.Context; ctx.Expanded {
		fmt.Fprintf(out, "Expanded:   %s (x%.2f)\n", ctx.Query, ctx.Ratio)
	}
}
