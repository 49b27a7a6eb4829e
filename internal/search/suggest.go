package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/aenigma-lab/opsearch/internal/catalog"
	"github.com/aenigma-lab/opsearch/internal/dictionary"
	"github.com/aenigma-lab/opsearch/internal/search/index"
)

// DefaultSuggestions is the number of type-ahead suggestions returned when
// no limit is given.
const DefaultSuggestions = 5

// Suggest returns type-ahead completions for partial, best first: catalog
// keywords containing it, labels containing it or whose first word it
// contains, and synonym variants starting with it. Keyword and synonym
// completions need more than two characters. Remaining slots are filled
// with fuzzy subsequence matches over all keywords.
func Suggest(partial string, c *catalog.Catalog, synonyms *dictionary.SynonymTable, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestions
	}
	q := Normalize(partial)
	n := index.RuneLen(q)
	if n < 2 || c == nil {
		return []string{}
	}
	long := n > 2

	seen := make(map[string]struct{})
	out := []string{}
	add := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	var keywords []string
	for _, op := range c.Entries() {
		for _, kw := range op.Keywords {
			keywords = append(keywords, kw)
			if long && strings.Contains(Normalize(kw), q) {
				add(kw)
			}
		}
	}
	for _, op := range c.Entries() {
		label := Normalize(op.Label)
		first, _, _ := strings.Cut(label, " ")
		if strings.Contains(label, q) || (first != "" && strings.Contains(q, first)) {
			add(op.Label)
		}
	}
	if long && synonyms != nil {
		for _, e := range synonyms.Entries() {
			for _, v := range e.Variants {
				if strings.HasPrefix(v, q) {
					add(v)
				}
			}
		}
	}

	if len(out) < limit {
		for _, m := range fuzzy.Find(q, keywords) {
			add(m.Str)
			if len(out) >= limit {
				break
			}
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
