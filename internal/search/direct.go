package search

import (
	"strings"

	"github.com/aenigma-lab/opsearch/internal/catalog"
)

// DirectKind names the rule that produced a direct lookup hit.
type DirectKind string

const (
	DirectExactID      DirectKind = "EXACT_ID"
	DirectExactLabel   DirectKind = "EXACT_LABEL"
	DirectFuzzyID      DirectKind = "FUZZY_ID"
	DirectPartialLabel DirectKind = "PARTIAL_LABEL"
	DirectWordMatch    DirectKind = "WORD_MATCH"
)

// DirectMatch is the result of DirectLookup.
type DirectMatch struct {
	Operation  *catalog.OperationEntry `json:"operation"`
	Confidence float64                 `json:"confidence"`
	Kind       DirectKind              `json:"kind"`
}

const (
	wordLabelScore = 1.0
	wordIDScore    = 1.5
	wordScale      = 0.8
	minWordLen     = 3
)

// DirectLookup resolves query against ids and labels without fuzzy
// matching. Rules are tried in order and the first that fires wins:
// exact id, exact label, id words equal to the query or an id containing
// it, a label containing the query, and finally per-word scoring where the
// strictly best operation wins.
func DirectLookup(query string, c *catalog.Catalog) (DirectMatch, bool) {
	q := Normalize(query)
	if q == "" || c == nil {
		return DirectMatch{}, false
	}
	ops := c.Entries()

	for i := range ops {
		if strings.ToLower(ops[i].ID) == q {
			return DirectMatch{Operation: &ops[i], Confidence: 1.0, Kind: DirectExactID}, true
		}
	}
	for i := range ops {
		if Normalize(ops[i].Label) == q {
			return DirectMatch{Operation: &ops[i], Confidence: 0.95, Kind: DirectExactLabel}, true
		}
	}
	for i := range ops {
		if ops[i].SpacedID() == q || strings.Contains(strings.ToLower(ops[i].ID), q) {
			return DirectMatch{Operation: &ops[i], Confidence: 0.9, Kind: DirectFuzzyID}, true
		}
	}
	for i := range ops {
		if strings.Contains(Normalize(ops[i].Label), q) {
			return DirectMatch{Operation: &ops[i], Confidence: 0.85, Kind: DirectPartialLabel}, true
		}
	}

	var words []string
	for _, w := range strings.Fields(q) {
		if len([]rune(w)) >= minWordLen {
			words = append(words, w)
		}
	}
	var (
		best      DirectMatch
		bestScore float64
		found     bool
	)
	for i := range ops {
		label := Normalize(ops[i].Label)
		spaced := ops[i].SpacedID()
		score := 0.0
		for _, w := range words {
			if strings.Contains(label, w) {
				score += wordLabelScore
			}
			if strings.Contains(spaced, w) {
				score += wordIDScore
			}
		}
		normalized := score / float64(max(len(words), 1))
		if score > 0 && normalized > bestScore {
			bestScore = normalized
			// Confidence stays within [0,1] even when most words hit both
			// the label and the id.
			best = DirectMatch{Operation: &ops[i], Confidence: min(normalized*wordScale, 1), Kind: DirectWordMatch}
			found = true
		}
	}
	return best, found
}
