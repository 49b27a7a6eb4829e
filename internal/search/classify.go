package search

import "github.com/aenigma-lab/opsearch/internal/search/index"

// Rule thresholds for classify. The rules are not mutually exclusive; their
// order decides the result.
const (
	keywordDensityFloor = 0.4

	partialHighPercentage = 60
	partialHighCoverage   = 0.5
	partialLowPercentage  = 40
	partialLowCoverage    = 0.3
)

// classify assigns the first match type whose rule fires.
func (w Weights) classify(e *index.SearchIndexEntry, q string, pct int, b Breakdown) MatchType {
	if isExact(e, q) || (pct >= w.ExactThreshold && b.ExactMatch) {
		return MatchExact
	}
	if b.KeywordDensity > keywordDensityFloor {
		return MatchKeyword
	}
	if b.CategoryMatch {
		return MatchCategory
	}
	if (pct >= partialHighPercentage && b.TermCoverage >= partialHighCoverage) ||
		(pct >= partialLowPercentage && b.TermCoverage >= partialLowCoverage) {
		return MatchPartial
	}
	return MatchFuzzy
}

// isExact reports whether q is the operation's label, one of its keywords,
// or its id, lower-cased or split into words.
func isExact(e *index.SearchIndexEntry, q string) bool {
	if q == e.Label || q == e.ID || q == e.IDWords {
		return true
	}
	for _, kw := range e.Keywords {
		if kw == q {
			return true
		}
	}
	return false
}
