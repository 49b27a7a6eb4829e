package index

import "strings"

// Variant is an alternative spelling or meaning of a query term. Weight in
// (0,1] scales the credit a variant hit earns relative to the term itself.
type Variant struct {
	Text   string
	Weight float64
}

// Term is one word of the user's query with its variants.
type Term struct {
	Text     string
	Variants []Variant
}

// Query is what Match scores entries against.
type Query struct {
	Terms []Term

	// Compounds are the query's words run together ("imagetopdf",
	// "image2pdf"). A field containing one at a word start is a perfect hit.
	Compounds []string
}

// NewQuery builds a Query from text with no variants: one term per distinct
// word of at least two characters, and the words run together as the only
// compound.
func NewQuery(text string) Query {
	var q Query
	for _, w := range Tokens(text) {
		q.Terms = append(q.Terms, Term{Text: w})
	}
	if len(q.Terms) >= 2 {
		q.Compounds = []string{Compact(strings.Join(Tokens(text), ""))}
	}
	return q
}

// Empty reports whether q has no term to match.
func (q Query) Empty() bool {
	return len(q.Terms) == 0
}

// Tokens splits a query into its distinct words, dropping words shorter than
// two characters once spaces, underscores and hyphens are removed.
func Tokens(query string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, w := range strings.Fields(Normalize(query)) {
		if RuneLen(Compact(w)) < minTokenLen {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
