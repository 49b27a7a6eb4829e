package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagLookupQuick bool

var lookupCmd = &cobra.Command{
	Use:   "lookup <query>",
	Short: "Resolve a query to a single operation by id or label",
	Long: `Resolve a query to a single operation without fuzzy ranking: exact id,
exact label, id words, label substring, then per-word scoring.

With --quick, a lookup below the acceptance confidence falls back to the
top search result.

Example:
  opsearch lookup mergePdf
  opsearch lookup --quick combine files`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&flagLookupQuick, "quick", false, "Fall back to the top search result")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	query := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	if flagLookupQuick {
		op, ok := s.engine.QuickSearch(query)
		if !ok {
			return fmt.Errorf("no operation matches %q", query)
		}
		fmt.Fprintf(out, "%s\t%s\n", op.ID, op.Label)
		return nil
	}

	m, ok := s.engine.DirectLookup(query)
	if !ok {
		return fmt.Errorf("no operation matches %q directly.\nTip: try 'opsearch search %s'.", query, query)
	}
	fmt.Fprintf(out, "%s\t%s\t%s\t%.2f\n", m.Operation.ID, m.Operation.Label, m.Kind, m.Confidence)
	return nil
}
