package search

import (
	"strings"

	"github.com/aenigma-lab/opsearch/internal/search/index"
)

// minContextTermLen is the shortest word matched against domain keys and
// recent searches. Single characters would match nearly everything.
const minContextTermLen = 2

// ContextExpansion is a query widened with domain vocabulary and words from
// the user's recent searches.
type ContextExpansion struct {
	Original string   `json:"original"`
	Terms    []string `json:"expanded_terms"`
	Query    string   `json:"expanded_query"`
	Expanded bool     `json:"is_expanded"`
	// Ratio is the number of distinct terms over the number of query
	// words, rounded to two decimals.
	Ratio float64 `json:"expansion_ratio"`
}

// ExpandWithContext widens query for display and follow-up searches. Each
// query word that contains a domain key or is contained in one adds the
// key's whole vocabulary. Each word of a recent search that contains the
// query, or is contained in it, is added as well.
func (x *Expander) ExpandWithContext(query string, recent []string) ContextExpansion {
	ce := ContextExpansion{Original: query, Terms: []string{}}
	q := Normalize(query)
	words := strings.Fields(q)
	if len(words) == 0 {
		return ce
	}
	set := newTermSet()
	set.add(words...)

	for _, w := range words {
		if index.RuneLen(w) < minContextTermLen {
			continue
		}
		for _, e := range x.domain.Entries() {
			if strings.Contains(e.Term, w) || strings.Contains(w, e.Term) {
				set.add(e.Variants...)
			}
		}
	}
	for _, r := range recent {
		for _, w := range strings.Fields(Normalize(r)) {
			if index.RuneLen(w) < minContextTermLen {
				continue
			}
			if strings.Contains(q, w) || strings.Contains(w, q) {
				set.add(w)
			}
		}
	}

	ce.Terms = set.order
	ce.Query = strings.Join(set.order, " ")
	ce.Expanded = len(set.order) > len(words)
	ce.Ratio = round2(float64(len(set.order)) / float64(len(words)))
	return ce
}
