package search

import (
	"strings"

	"github.com/aenigma-lab/opsearch/internal/search/index"
)

// Normalize lower-cases and trims q the same way indexed fields are.
func Normalize(q string) string {
	return index.Normalize(q)
}

func tokenize(q string) []string {
	q = Normalize(q)
	if q == "" {
		return nil
	}
	return strings.Fields(q)
}

func newQueryContext(query string) *QueryContext {
	n := Normalize(query)
	return &QueryContext{
		Original:   query,
		Normalized: n,
		Terms:      strings.Fields(n),
	}
}
