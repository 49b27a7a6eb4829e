package search

import (
	"math"
	"strings"

	"github.com/aenigma-lab/opsearch/internal/search/index"
)

// minCoverageTermLen is the shortest query term counted for term coverage.
const minCoverageTermLen = 3

// scoreCandidate turns a matched candidate into a clamped percentage and
// its breakdown.
func (w Weights) scoreCandidate(c index.Candidate, qc *QueryContext) (int, Breakdown) {
	e := c.Entry
	q := qc.Normalized
	b := Breakdown{
		BestField:    c.BestField.String(),
		BestDistance: round2(c.BestDistance()),
		Distance:     round2(c.Distance),
		MatchedTerms: []string{},
	}

	b.BaseScore = roundInt((1 - c.BestDistance()) * float64(w.BaseWeight))

	// Not only a literal label substring: the compacted label and the id
	// forms count too, so "mergepdf" and "pdf to ppt" earn the bonus.
	if exactSubstring(e, q) {
		b.ExactMatch = true
		b.ExactMatchBonus = w.ExactBonus
	}

	for _, t := range qc.Terms {
		if index.RuneLen(t) >= minCoverageTermLen && strings.Contains(e.Blob, t) {
			b.MatchedTerms = append(b.MatchedTerms, t)
		}
	}
	if len(qc.Terms) > 0 {
		b.TermCoverage = float64(len(b.MatchedTerms)) / float64(len(qc.Terms))
	}
	b.CoverageBonus = roundInt(b.TermCoverage * float64(w.CoverageWeight))
	b.KeywordDensity = math.Min(b.TermCoverage*1.5, 1)

	if c.Distance < w.CloseThreshold {
		b.CloseMatch = true
		b.CloseBonus = w.CloseBonus
	}

	if categoryOverlaps(e.Category, q) {
		b.CategoryMatch = true
		b.CategoryBoost = w.CategoryBonus
	}

	b.LengthNormalization = math.Max(0.8, 1-float64(index.RuneLen(q))/50) * 10

	b.RawScore = b.BaseScore + b.ExactMatchBonus + b.CoverageBonus + b.CloseBonus + b.CategoryBoost
	b.FinalScore = min(max(b.RawScore, w.MinPercentage), w.MaxPercentage)
	b.TermCoverage = round2(b.TermCoverage)
	b.KeywordDensity = round2(b.KeywordDensity)
	return b.FinalScore, b
}

// exactSubstring reports whether the label contains the whole query, also
// when spaces, underscores and hyphens are ignored on both sides, or the
// query spells the operation's id.
func exactSubstring(e *index.SearchIndexEntry, q string) bool {
	if strings.Contains(e.Label, q) {
		return true
	}
	if cq := index.Compact(q); cq != "" && strings.Contains(index.Compact(e.Label), cq) {
		return true
	}
	return q == e.ID || q == e.IDWords
}

func categoryOverlaps(category, q string) bool {
	if category == "" || q == "" {
		return false
	}
	return strings.Contains(category, q) || strings.Contains(q, category)
}

func roundInt(f float64) int {
	return int(math.Round(f))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
