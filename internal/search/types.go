// Package search ranks catalog operations against free-text queries.
//
// A query is normalized, expanded with synonyms and morphological variants,
// matched field by field against a prebuilt index, scored to a percentage
// with an explainable breakdown, classified, and sorted. Every call is a
// pure function of the query, the index and the dictionaries.
package search

import "github.com/aenigma-lab/opsearch/internal/catalog"

// MatchType explains why an operation matched.
type MatchType string

const (
	MatchExact    MatchType = "EXACT"
	MatchPartial  MatchType = "PARTIAL"
	MatchFuzzy    MatchType = "FUZZY"
	MatchKeyword  MatchType = "KEYWORD"
	MatchCategory MatchType = "CATEGORY"
)

// Description is a short human-readable form of m.
func (m MatchType) Description() string {
	switch m {
	case MatchExact:
		return "Exact match"
	case MatchPartial:
		return "Partial match"
	case MatchFuzzy:
		return "Similar match"
	case MatchKeyword:
		return "Keyword match"
	case MatchCategory:
		return "Category match"
	default:
		return "Match"
	}
}

// Confidence is a coarse bucket derived from the percentage alone.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// Description is a short human-readable form of c.
func (c Confidence) Description() string {
	switch c {
	case ConfidenceHigh:
		return "Strong match"
	case ConfidenceMedium:
		return "Good match"
	case ConfidenceLow:
		return "Possible match"
	default:
		return "Unknown"
	}
}

// Breakdown records how a percentage was reached.
type Breakdown struct {
	BaseScore       int     `json:"base_score"`
	ExactMatch      bool    `json:"exact_match"`
	ExactMatchBonus int     `json:"exact_match_bonus"`
	TermCoverage    float64 `json:"term_coverage"`
	CoverageBonus   int     `json:"coverage_bonus"`
	KeywordDensity  float64 `json:"keyword_density"`
	CloseMatch      bool    `json:"close_match"`
	CloseBonus      int     `json:"close_bonus"`
	CategoryMatch   bool    `json:"category_match"`
	CategoryBoost   int     `json:"category_boost"`
	// LengthNormalization is max(0.8, 1 - len(query)/50) * 10. It is
	// reported only and does not contribute to the score.
	LengthNormalization float64  `json:"length_normalization"`
	BestField           string   `json:"best_field"`
	BestDistance        float64  `json:"best_distance"`
	Distance            float64  `json:"distance"`
	RawScore            int      `json:"raw_score"`
	FinalScore          int      `json:"final_score"`
	MatchedTerms        []string `json:"matched_terms"`
}

// ScoredResult is one ranked operation. Operation points into the catalog
// the engine was built from.
type ScoredResult struct {
	Operation    *catalog.OperationEntry `json:"operation"`
	Percentage   int                     `json:"percentage"`
	Confidence   Confidence              `json:"confidence"`
	MatchType    MatchType               `json:"match_type"`
	MatchedTerms []string                `json:"matched_terms"`
	Breakdown    Breakdown               `json:"breakdown"`
}

// SearchResponse is the result of Engine.Search.
type SearchResponse struct {
	Results       []ScoredResult `json:"results"`
	Suggestions   []string       `json:"suggestions"`
	ExpandedQuery []string       `json:"expanded_query"`
	Query         string         `json:"query"`
}

// QueryContext is the per-call state of one search.
type QueryContext struct {
	Original     string
	Normalized   string
	Terms        []string
	Expanded     []string
	MatchedTerms []string
}
