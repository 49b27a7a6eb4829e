package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aenigma-lab/opsearch/internal/catalog"
)

var flagInspectQuery string

var inspectCmd = &cobra.Command{
	Use:   "inspect <operation-id>",
	Short: "Show an operation's catalog entry and, optionally, how a query scores it",
	Long: `Display a formatted summary of one catalog operation: label, category,
description, tip and keywords.

The argument is an operation id (e.g. mergePdf). When no id matches exactly,
every operation whose id contains the argument (case-insensitive) is shown.

With --query, the score breakdown the query would give the operation is
printed as well, even when the operation would not be returned by search.

Example:
  opsearch inspect mergePdf
  opsearch inspect pdf
  opsearch inspect mergePdf --query "combine files"`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectQuery, "query", "", "Explain how `QUERY` scores this operation")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	ops, err := resolveOperations(s.engine.Index().Catalog, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, op := range ops {
		if i > 0 {
			fmt.Fprintln(out, strings.Repeat("─", 50))
		}
		printInspect(out, op)
		if flagInspectQuery == "" {
			continue
		}
		r, ok := s.engine.Explain(flagInspectQuery, op.ID)
		if !ok {
			printWarn(op.ID, fmt.Sprintf("query %q is empty after normalization", flagInspectQuery))
			continue
		}
		fmt.Fprintf(out, "\nScore for %q: %d%% %s %s\n", flagInspectQuery, r.Percentage, r.Confidence, r.MatchType)
		renderBreakdown(out, r.Breakdown)
	}
	return nil
}

// resolveOperations finds the operations arg names. An exact id match is
// tried first (also ignoring case), then a substring match on ids.
func resolveOperations(c *catalog.Catalog, arg string) ([]*catalog.OperationEntry, error) {
	if op, ok := c.Get(arg); ok {
		return []*catalog.OperationEntry{op}, nil
	}

	ops := c.Entries()
	lower := strings.ToLower(arg)
	for i := range ops {
		if strings.ToLower(ops[i].ID) == lower {
			return []*catalog.OperationEntry{&ops[i]}, nil
		}
	}

	var matches []*catalog.OperationEntry
	for i := range ops {
		if strings.Contains(strings.ToLower(ops[i].ID), lower) {
			matches = append(matches, &ops[i])
		}
	}
	if len(matches) > 0 {
		return matches, nil
	}
	return nil, fmt.Errorf("operation %q not found in catalog.\nTip: run 'opsearch catalog' to list operations.", arg)
}

// printInspect displays the formatted inspection output for one operation.
func printInspect(w io.Writer, op *catalog.OperationEntry) {
	fmt.Fprintf(w, "📦 Operation: %s\n", op.ID)
	fmt.Fprintf(w, "Label:    %s\n", op.Label)
	fmt.Fprintf(w, "Category: %s\n", op.Category)
	if op.Description != "" {
		desc := strings.ReplaceAll(strings.TrimSpace(op.Description), "\n", " ")
		fmt.Fprintf(w, "Summary:  %s\n", desc)
	}
	if op.Tip != "" {
		fmt.Fprintf(w, "Tip:      %s\n", strings.TrimSpace(op.Tip))
	}
	fmt.Fprintf(w, "Id words: %s\n", op.SpacedID())
	if len(op.Keywords) > 0 {
		fmt.Fprintf(w, "\nKeywords (%d):\n", len(op.Keywords))
		for _, kw := range op.Keywords {
			fmt.Fprintf(w, "  - %s\n", kw)
		}
	}
}
