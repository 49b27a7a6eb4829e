package search

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/aenigma-lab/opsearch/internal/catalog"
	"github.com/aenigma-lab/opsearch/internal/dictionary"
	"github.com/aenigma-lab/opsearch/internal/search/index"
)

// maxTypoDistance is the largest edit distance at which a dictionary key is
// considered a correction of a query term.
const maxTypoDistance = 2

// Distance is the Levenshtein edit distance between a and b with unit cost
// insertions, deletions and substitutions, counted in characters.
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// Corrector proposes spelling corrections from a TypoTable.
type Corrector struct {
	typos *dictionary.TypoTable
}

// NewCorrector returns a Corrector over typos.
func NewCorrector(typos *dictionary.TypoTable) *Corrector {
	return &Corrector{typos: typos}
}

// Suggest returns corrections for terms in discovery order, without
// duplicates and never echoing a query term back. For each term it first
// adds the canonical words whose misspelling list holds the term, then
// every canonical word within two edits followed by its listed variants.
func (c *Corrector) Suggest(terms []string) []string {
	exclude := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		exclude[t] = struct{}{}
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(words ...string) {
		for _, w := range words {
			if _, ok := exclude[w]; ok {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}

	for _, term := range terms {
		add(c.typos.Canonical(term)...)
		for _, e := range c.typos.Entries() {
			if e.Term == term || Distance(e.Term, term) > maxTypoDistance {
				continue
			}
			add(e.Term)
			add(e.Variants...)
		}
	}
	return out
}

// TypoSuggestion is one ranked correction.
type TypoSuggestion struct {
	Original   string `json:"original"`
	Suggestion string `json:"suggestion"`
	// OperationID is set when the suggestion is a catalog keyword.
	OperationID string `json:"operation_id,omitempty"`
	Similarity  int    `json:"similarity"`
	Distance    int    `json:"distance"`
}

const (
	// DefaultTypoSuggestions is the number of ranked typo suggestions
	// returned when no limit is given.
	DefaultTypoSuggestions = 5

	minTypoTermLen = 3
)

// RankTypos compares each query term of at least three characters with the
// first word of every keyword in c and with the known misspellings of common
// file formats, and returns the closest suggestions, most similar first.
func RankTypos(query string, c *catalog.Catalog, formats *dictionary.TypoTable, limit int) []TypoSuggestion {
	if limit <= 0 {
		limit = DefaultTypoSuggestions
	}
	var all []TypoSuggestion
	for _, term := range tokenize(query) {
		n := index.RuneLen(term)
		if n < minTypoTermLen {
			continue
		}
		for _, op := range c.Entries() {
			for _, kw := range op.Keywords {
				lower := Normalize(kw)
				first, _, _ := strings.Cut(lower, " ")
				d := Distance(term, first)
				sim := 1 - float64(d)/float64(max(n, index.RuneLen(lower)))
				if sim > 0.5 && sim < 1 {
					all = append(all, TypoSuggestion{
						Original:    term,
						Suggestion:  kw,
						OperationID: op.ID,
						Similarity:  roundInt(sim * 100),
						Distance:    d,
					})
				}
			}
		}
		if formats == nil {
			continue
		}
		for _, e := range formats.Entries() {
			for _, typo := range e.Variants {
				if typo == e.Term {
					continue
				}
				d := Distance(term, typo)
				sim := 1 - float64(d)/float64(max(n, index.RuneLen(typo)))
				if sim > 0.6 {
					all = append(all, TypoSuggestion{
						Original:   term,
						Suggestion: e.Term,
						Similarity: roundInt(sim * 100),
						Distance:   d,
					})
				}
			}
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Similarity > all[j].Similarity
	})
	seen := make(map[string]struct{})
	out := make([]TypoSuggestion, 0, limit)
	for _, s := range all {
		if _, ok := seen[s.Suggestion]; ok {
			continue
		}
		seen[s.Suggestion] = struct{}{}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out
}
