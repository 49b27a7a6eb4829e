package search

import (
	"strings"

	"github.com/surgebase/porter2"

	"github.com/aenigma-lab/opsearch/internal/dictionary"
	"github.com/aenigma-lab/opsearch/internal/search/index"
)

// Inflection suffixes stripped before re-looking up a term.
var inflections = map[string]bool{
	"ing": true, "ation": true, "ment": true, "ness": true,
	"ed": true, "en": true, "s": true, "es": true,
}

var (
	affixPrefixes = []string{"re", "un", "dis", "over", "under", "mis", "pre", "post", "anti", "de"}
	affixSuffixes = []string{"able", "ible", "al", "ful", "less", "ous", "ive", "ic", "y", "er", "or", "ist", "ism"}
)

// windowLen is the length of the key substrings probed for light stemming.
const windowLen = 3

// Variant weights by how the variant was derived from the query term.
const (
	synonymWeight      = 0.8
	relatedKeyWeight   = 0.6
	windowWeight       = 0.3
	morphWeight        = 0.9
	morphSynonymWeight = 0.7
	affixWeight        = 0.5
)

// Expander turns a normalized query into the set of terms fed to the index.
type Expander struct {
	synonyms *dictionary.SynonymTable
	domain   *dictionary.SynonymTable
}

// NewExpander returns an Expander over synonyms. domain feeds
// ExpandWithContext and may be nil.
func NewExpander(synonyms, domain *dictionary.SynonymTable) *Expander {
	if domain == nil {
		domain = dictionary.NewSynonymTable(nil)
	}
	return &Expander{synonyms: synonyms, domain: domain}
}

type termSet struct {
	seen  map[string]struct{}
	order []string
}

func newTermSet() *termSet {
	return &termSet{seen: make(map[string]struct{})}
}

func (s *termSet) add(terms ...string) {
	for _, t := range terms {
		if t == "" {
			continue
		}
		if _, ok := s.seen[t]; ok {
			continue
		}
		s.seen[t] = struct{}{}
		s.order = append(s.order, t)
	}
}

// variants collects the weighted variants of one term, keeping the highest
// weight a variant is reached with, and mirrors them into the flat set.
type variants struct {
	term string
	flat *termSet
	pos  map[string]int
	out  []index.Variant
}

func (v *variants) add(weight float64, texts ...string) {
	for _, t := range texts {
		v.flat.add(t)
		if t == "" || t == v.term {
			continue
		}
		if i, ok := v.pos[t]; ok {
			v.out[i].Weight = max(v.out[i].Weight, weight)
			continue
		}
		v.pos[t] = len(v.out)
		v.out = append(v.out, index.Variant{Text: t, Weight: weight})
	}
}

// Expand returns the original terms of query followed by every synonym,
// morphological and compound variant, without duplicates and in the order
// they were first produced.
func (x *Expander) Expand(query string) []string {
	_, flat := x.expand(query)
	return flat
}

// ExpandQuery is Expand keeping each variant attached to the term it came
// from, weighted by how it was derived.
func (x *Expander) ExpandQuery(query string) index.Query {
	q, _ := x.expand(query)
	return q
}

func (x *Expander) expand(query string) (index.Query, []string) {
	terms := tokenize(query)
	if len(terms) == 0 {
		return index.Query{}, []string{}
	}
	flat := newTermSet()
	flat.add(terms...)

	var q index.Query
	done := make(map[string]bool, len(terms))
	for _, term := range terms {
		if done[term] {
			continue
		}
		done[term] = true
		v := &variants{term: term, flat: flat, pos: make(map[string]int)}
		x.addSynonyms(v, synonymWeight, term)
		x.addRelatedKeys(v, term)

		if base := stripInflection(term); base != term {
			v.add(morphWeight, base)
			x.addSynonyms(v, morphSynonymWeight, base)
		}
		if stem := porter2.Stem(term); stem != term && index.RuneLen(stem) >= 2 {
			v.add(morphWeight, stem)
			x.addSynonyms(v, morphSynonymWeight, stem)
		}
		for _, p := range affixPrefixes {
			if strings.HasPrefix(term, p) {
				v.add(affixWeight, term[len(p):])
			}
		}
		for _, s := range affixSuffixes {
			if strings.HasSuffix(term, s) {
				v.add(affixWeight, term[:len(term)-len(s)])
			}
		}
		q.Terms = append(q.Terms, index.Term{Text: term, Variants: v.out})
	}

	if len(terms) >= 2 {
		joined := strings.Join(terms, "")
		flat.add(joined, strings.Join(terms, "_"), strings.Join(terms, "-"))
		q.Compounds = append(q.Compounds, joined)
		for i, t := range terms {
			if t != "to" {
				continue
			}
			with2 := append([]string(nil), terms...)
			with2[i] = "2"
			flat.add(strings.Join(with2, ""), strings.Join(with2, "_"))
			q.Compounds = append(q.Compounds, strings.Join(with2, ""))
			break
		}
	}
	return q, flat.order
}

func (x *Expander) addSynonyms(v *variants, weight float64, term string) {
	if vs, ok := x.synonyms.Lookup(term); ok {
		v.add(weight, vs...)
	}
}

// addRelatedKeys adds the synonyms of every key that contains term, is
// contained in it, or shares a three-character substring with it.
func (x *Expander) addRelatedKeys(v *variants, term string) {
	tr := []rune(term)
	for _, e := range x.synonyms.Entries() {
		if strings.Contains(e.Term, term) || strings.Contains(term, e.Term) {
			v.add(relatedKeyWeight, e.Variants...)
		}
		kr := []rune(e.Term)
		n := min(len(kr), len(tr))
		for i := 0; i <= n-windowLen; i++ {
			if strings.Contains(term, string(kr[i:i+windowLen])) {
				v.add(windowWeight, e.Variants...)
				break
			}
		}
	}
}

// stripInflection removes the longest trailing inflection, i.e. the one
// starting earliest in term. "files" becomes "fil".
func stripInflection(term string) string {
	for i := range term {
		if inflections[term[i:]] {
			return term[:i]
		}
	}
	return term
}
