package index

import (
	"math"
	"strings"

	"github.com/hbollon/go-edlib"
)

// DefaultMinQuality is the floor an entry's best field quality must reach
// for the entry to be kept.
const DefaultMinQuality = 0.5

const (
	// minTokenLen is the shortest query token ever matched.
	minTokenLen = 2
	// minPrefixLen is the shortest token matched as a word prefix. Shorter
	// tokens must equal a whole word.
	minPrefixLen = 3
)

// distanceFloor keeps a perfect field from collapsing the combined distance to zero.
const distanceFloor = 1e-3

// Candidate is one operation that survived matching.
type Candidate struct {
	Entry *SearchIndexEntry

	// Quality holds the per-field match quality in [0,1]: the rarity
	// weighted share of query terms the field answers, or 1 when the field
	// holds the whole query run together.
	Quality   [NumFields]float64
	Best      float64
	BestField Field

	// Distance is the weighted combination of all field qualities, 0 for a
	// perfect hit and 1 for none.
	Distance float64

	// Hits lists the query terms that matched at least one field, directly
	// or through a variant.
	Hits []string
}

// BestDistance is the distance ratio of the best matching field.
func (c Candidate) BestDistance() float64 {
	return 1 - c.Best
}

type token struct {
	text    string
	compact string
	n       int
	phrase  bool
}

func newToken(s string) token {
	return token{text: s, compact: Compact(s), n: RuneLen(s), phrase: strings.ContainsRune(s, ' ')}
}

type variantToken struct {
	token
	weight float64
}

type termTokens struct {
	token
	variants []variantToken
	rarity   float64
}

// Match scores every indexed operation against q and returns, in catalog
// order, those whose best field quality is at least minQuality. Where a term
// hits a field does not matter.
//
// Terms are weighted by rarity, ln(1+N/(1+df)) where df counts the
// operations that contain the term, so a word every operation carries
// cannot on its own lift a field to a strong match.
func (ix *Index) Match(q Query, minQuality float64) []Candidate {
	terms := ix.prepare(q)
	if len(terms) == 0 {
		return nil
	}
	compounds := make([]string, 0, len(q.Compounds))
	for _, c := range q.Compounds {
		if c = Compact(Normalize(c)); RuneLen(c) >= minTokenLen {
			compounds = append(compounds, c)
		}
	}
	var out []Candidate
	for i := range ix.Entries {
		c := matchEntry(&ix.Entries[i], terms, compounds)
		if c.Best < minQuality || c.Best == 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (ix *Index) prepare(q Query) []termTokens {
	seen := make(map[string]struct{})
	var terms []termTokens
	for _, t := range q.Terms {
		text := Normalize(t.Text)
		if RuneLen(Compact(text)) < minTokenLen {
			continue
		}
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		tt := termTokens{token: newToken(text)}
		for _, v := range t.Variants {
			vt := Normalize(v.Text)
			if vt == text || v.Weight <= 0 || RuneLen(Compact(vt)) < minTokenLen {
				continue
			}
			tt.variants = append(tt.variants, variantToken{token: newToken(vt), weight: min(v.Weight, 1)})
		}
		tt.rarity = ix.rarity(tt.token)
		terms = append(terms, tt)
	}
	return terms
}

func (ix *Index) rarity(t token) float64 {
	df := 0
	for i := range ix.Entries {
		e := &ix.Entries[i]
		if e.fields[FieldBlob].contains(t) || e.fields[FieldDescription].contains(t) {
			df++
		}
	}
	return math.Log(1 + float64(len(ix.Entries))/float64(1+df))
}

func matchEntry(e *SearchIndexEntry, terms []termTokens, compounds []string) Candidate {
	c := Candidate{Entry: e}
	hit := make([]bool, len(terms))

	var raritySum float64
	for _, t := range terms {
		raritySum += t.rarity
	}

	var logSum, weightSum float64
	for f := Field(0); f < NumFields; f++ {
		ft := &e.fields[f]
		if ft.text == "" {
			continue
		}
		var sum float64
		for i, t := range terms {
			s := ft.termScore(t)
			if s > 0 {
				hit[i] = true
			}
			sum += t.rarity * s
		}
		q := sum / raritySum
		for _, cp := range compounds {
			if ft.hasPrefixAt(cp) {
				q = 1
				break
			}
		}
		c.Quality[f] = q
		if q > c.Best {
			c.Best, c.BestField = q, f
		}
		w := FieldWeights[f]
		logSum += w * math.Log(math.Max(1-q, distanceFloor))
		weightSum += w
	}
	if weightSum > 0 {
		c.Distance = math.Exp(logSum / weightSum)
	} else {
		c.Distance = 1
	}
	for i, t := range terms {
		if hit[i] {
			c.Hits = append(c.Hits, t.text)
		}
	}
	return c
}

// termScore is the best of the term's own score and each variant's score
// scaled by its weight.
func (ft *fieldText) termScore(t termTokens) float64 {
	best := ft.score(t.token)
	for _, v := range t.variants {
		if v.weight <= best {
			continue
		}
		if s := v.weight * ft.score(v.token); s > best {
			best = s
		}
	}
	return best
}

// maxEdits is the edit distance tolerated for a token of n characters.
func maxEdits(n int) int {
	switch {
	case n < 4:
		return 0
	case n < 6:
		return 1
	default:
		return 2
	}
}

// score rates token t against the field. A phrase scores 1 when the field
// holds it starting at a word, and 0 otherwise. A single word scores 1 when
// a field word starts with it (tokens under three characters must equal a
// whole word), a value below 1 when a field word is within the token's edit
// tolerance, and 0 otherwise.
func (ft *fieldText) score(t token) float64 {
	if t.phrase {
		if ft.hasPrefixAt(t.compact) {
			return 1
		}
		return 0
	}
	if RuneLen(t.compact) < minPrefixLen {
		for _, w := range ft.words {
			if w.text == t.text {
				return 1
			}
		}
		return 0
	}
	if ft.hasPrefixAt(t.compact) {
		return 1
	}
	k := maxEdits(t.n)
	if k == 0 {
		return 0
	}
	best := 0.0
	for _, w := range ft.words {
		if w.n-t.n > k || t.n-w.n > k {
			continue
		}
		d := edlib.LevenshteinDistance(t.text, w.text)
		if d > k {
			continue
		}
		if s := 1 - float64(d)/float64(t.n+1); s > best {
			best = s
		}
	}
	return best
}

// contains reports whether t scores a full hit in the field.
func (ft *fieldText) contains(t token) bool {
	return ft.score(t) == 1
}

// hasPrefixAt reports whether the compacted field holds s starting at a word
// boundary.
func (ft *fieldText) hasPrefixAt(s string) bool {
	if s == "" {
		return false
	}
	for _, at := range ft.starts {
		if strings.HasPrefix(ft.compact[at:], s) {
			return true
		}
	}
	return false
}
