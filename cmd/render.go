package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aenigma-lab/opsearch/internal/search"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderResults prints one search response as a ranked table.
func renderResults(w io.Writer, resp search.SearchResponse, explain bool) {
	fmt.Fprintf(w, "\nopsearch search %q\n\n", resp.Query)
	fmt.Fprintf(w, "Results (%d found):\n", len(resp.Results))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, r := range resp.Results {
		fmt.Fprintf(tw, "  %d.\t%3d%%\t%s\t%s\t%s\t%s\n",
			i+1, r.Percentage, r.Confidence, r.MatchType, r.Operation.ID, r.Operation.Label)
	}
	_ = tw.Flush()

	if explain {
		for _, r := range resp.Results {
			fmt.Fprintf(w, "\n  %s (%s, %s)\n", r.Operation.ID, r.MatchType.Description(), r.Confidence.Description())
			renderBreakdown(w, r.Breakdown)
		}
	} else if len(resp.Results) > 0 {
		top := resp.Results[0].Operation
		if d := strings.TrimSpace(top.Description); d != "" {
			fmt.Fprintf(w, "\n  %s: %s\n", top.ID, d)
		}
		if tip := strings.TrimSpace(top.Tip); tip != "" {
			fmt.Fprintf(w, "  Tip: %s\n", tip)
		}
	}

	if len(resp.Suggestions) > 0 {
		fmt.Fprintf(w, "\nDid you mean: %s?\n", strings.Join(resp.Suggestions, ", "))
	}
}

// renderBreakdown prints the score components of one result.
func renderBreakdown(w io.Writer, b search.Breakdown) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "    base\t%d\t(best field %s, distance %.2f)\n", b.BaseScore, b.BestField, b.BestDistance)
	fmt.Fprintf(tw, "    exact\t%d\t\n", b.ExactMatchBonus)
	fmt.Fprintf(tw, "    coverage\t%d\t(%.2f of terms: %s)\n", b.CoverageBonus, b.TermCoverage, strings.Join(b.MatchedTerms, " "))
	fmt.Fprintf(tw, "    close\t%d\t(combined distance %.2f)\n", b.CloseBonus, b.Distance)
	fmt.Fprintf(tw, "    category\t%d\t\n", b.CategoryBoost)
	fmt.Fprintf(tw, "    total\t%d\t(raw %d, keyword density %.2f)\n", b.FinalScore, b.RawScore, b.KeywordDensity)
	_ = tw.Flush()
}
