package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aenigma-lab/opsearch/internal/catalog"
)

var flagCatalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List catalog operations grouped by category",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagCatalogCategory, "category", "", "Only list categories containing `TEXT` (case-insensitive)")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, src, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("cannot load catalog from %s: %w", src, err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nCatalog: %s (%d operations)\n", src, c.Len())
	if n := printCatalog(out, c, flagCatalogCategory); n == 0 {
		return fmt.Errorf("no category matches %q", flagCatalogCategory)
	}
	return nil
}

// printCatalog lists operations grouped by category in first-seen order and
// returns the number of operations printed.
func printCatalog(w io.Writer, c *catalog.Catalog, filter string) int {
	filter = strings.ToLower(strings.TrimSpace(filter))
	grouped := make(map[string][]catalog.OperationEntry)
	for _, op := range c.Entries() {
		grouped[op.Category] = append(grouped[op.Category], op)
	}

	n := 0
	for _, cat := range c.Categories() {
		if filter != "" && !strings.Contains(strings.ToLower(cat), filter) {
			continue
		}
		items := grouped[cat]
		fmt.Fprintf(w, "\n%s (%d):\n", cat, len(items))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, op := range items {
			fmt.Fprintf(tw, "  %s\t%s\t%d keywords\n", op.ID, op.Label, len(op.Keywords))
		}
		_ = tw.Flush()
		n += len(items)
	}
	return n
}
