package search

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aenigma-lab/opsearch/internal/catalog"
	"github.com/aenigma-lab/opsearch/internal/search/index"
)

func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.OperationEntry{
		{
			ID: "mergePdf", Label: "MERGE PDF", Category: "PDF OPERATIONS",
			Keywords:    []string{"combine pdf", "join pdf", "merge pdf files"},
			Description: "Merge PDF files",
		},
		{
			ID: "splitPdf", Label: "SPLIT PDF", Category: "PDF OPERATIONS",
			Keywords:    []string{"separate pdf", "extract pages"},
			Description: "Split PDF files into pages",
		},
		{
			ID: "imageToPdf", Label: "IMAGE TO PDF", Category: "DOCUMENT OPERATIONS",
			Keywords: []string{"photo to pdf", "img2pdf"},
		},
	})
	require.NoError(t, err)
	return c
}

func newEngine(t *testing.T, c *catalog.Catalog, opts ...Option) *Engine {
	t.Helper()
	idx, err := index.Build(c)
	require.NoError(t, err)
	e, err := New(idx, nil, opts...)
	require.NoError(t, err)
	return e
}

func rank(results []ScoredResult, id string) int {
	for i, r := range results {
		if r.Operation.ID == id {
			return i
		}
	}
	return -1
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrNilIndex)

	idx, err := index.Build(smallCatalog(t))
	require.NoError(t, err)
	w := DefaultWeights()
	w.MediumThreshold = 80
	_, err = New(idx, nil, WithWeights(w))
	assert.ErrorIs(t, err, ErrInvalidWeights)

	e, err := New(idx, nil, WithLogger(nil))
	require.NoError(t, err)
	assert.Same(t, idx, e.Index())
	assert.Equal(t, DefaultWeights(), e.Weights())
}

func TestWeights_Validate(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())

	for name, mutate := range map[string]func(*Weights){
		"min above max":    func(w *Weights) { w.MinPercentage = 101 },
		"max above 100":    func(w *Weights) { w.MaxPercentage = 120 },
		"medium over high": func(w *Weights) { w.MediumThreshold = 90 },
		"quality above 1":  func(w *Weights) { w.MinMatchQuality = 1.5 },
		"negative close":   func(w *Weights) { w.CloseThreshold = -0.1 },
		"negative suggest": func(w *Weights) { w.MaxSuggestions = -1 },
	} {
		w := DefaultWeights()
		mutate(&w)
		assert.ErrorIs(t, w.Validate(), ErrInvalidWeights, name)
	}
}

func TestConfidenceBoundaries(t *testing.T) {
	for pct, want := range map[int]Confidence{
		100: ConfidenceHigh,
		70:  ConfidenceHigh,
		69:  ConfidenceMedium,
		40:  ConfidenceMedium,
		39:  ConfidenceLow,
		20:  ConfidenceLow,
	} {
		assert.Equal(t, want, ConfidenceFor(pct), pct)
	}
	assert.Equal(t, "Strong match", ConfidenceHigh.Description())
	assert.Equal(t, "Similar match", MatchFuzzy.Description())
}

func TestSearch_EmptyQuery(t *testing.T) {
	e := newEngine(t, smallCatalog(t))
	for _, q := range []string{"", "   ", "\t\n"} {
		resp := e.Search(q, 10)
		assert.Empty(t, resp.Results)
		assert.Empty(t, resp.Suggestions)
		assert.NotNil(t, resp.Results)
		assert.NotNil(t, resp.Suggestions)
		assert.Equal(t, q, resp.Query)
	}
}

func TestSearch_Scenario(t *testing.T) {
	for name, c := range map[string]*catalog.Catalog{
		"small":   smallCatalog(t),
		"builtin": catalog.Builtin(),
	} {
		t.Run(name, func(t *testing.T) {
			e := newEngine(t, c)
			resp := e.Search("combine files", 10)

			merge := rank(resp.Results, "mergePdf")
			require.GreaterOrEqual(t, merge, 0)
			if split := rank(resp.Results, "splitPdf"); split >= 0 {
				assert.Less(t, merge, split)
			}
			r := resp.Results[merge]
			assert.Contains(t, []MatchType{MatchKeyword, MatchPartial}, r.MatchType)
			assert.NotEqual(t, ConfidenceLow, r.Confidence)
			assert.Equal(t, []string{"combine", "files"}, r.MatchedTerms)
		})
	}
}

func TestSearch_ScenarioBreakdown(t *testing.T) {
	e := newEngine(t, smallCatalog(t))
	resp := e.Search("combine files", 10)
	require.Len(t, resp.Results, 1)

	merge := resp.Results[0]
	assert.Equal(t, "mergePdf", merge.Operation.ID)
	assert.Equal(t, 95, merge.Percentage)
	assert.Equal(t, ConfidenceHigh, merge.Confidence)
	assert.Equal(t, MatchKeyword, merge.MatchType)
	assert.Equal(t, 50, merge.Breakdown.BaseScore)
	assert.Equal(t, 35, merge.Breakdown.CoverageBonus)
	assert.Equal(t, 1.0, merge.Breakdown.TermCoverage)
	assert.False(t, merge.Breakdown.ExactMatch)
	assert.True(t, merge.Breakdown.CloseMatch)
	assert.Equal(t, "blob", merge.Breakdown.BestField)
	assert.Equal(t, merge.Percentage, merge.Breakdown.FinalScore)

	// splitPdf only shares "files", through its description, and falls
	// under the match quality floor.
	assert.Equal(t, -1, rank(resp.Results, "splitPdf"))
	split, ok := e.Explain("combine files", "splitPdf")
	require.True(t, ok)
	assert.Equal(t, 22, split.Percentage)
	assert.Equal(t, ConfidenceLow, split.Confidence)
	assert.Equal(t, MatchFuzzy, split.MatchType)
	assert.Equal(t, "description", split.Breakdown.BestField)

	// The top result is HIGH, so no corrections are offered.
	assert.Empty(t, resp.Suggestions)
	assert.Equal(t, []string{"combine", "files"}, resp.ExpandedQuery[:2])
}

func TestSearch_RareTermsDecide(t *testing.T) {
	e := newEngine(t, catalog.Builtin())

	// "pdf" is carried by most of the catalog; "compress" by a handful.
	resp := e.Search("compress pdf", 8)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "zip", resp.Results[0].Operation.ID)
	for _, r := range resp.Results {
		assert.NotEqual(t, ConfidenceHigh, r.Confidence, r.Operation.ID)
	}
	assert.Equal(t, -1, rank(resp.Results, "pdfToDocx"))
	assert.Equal(t, -1, rank(resp.Results, "mergePdf"))

	resp = e.Search("unlock pdf", 8)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "unlockPdf", resp.Results[0].Operation.ID)
	assert.Equal(t, ConfidenceHigh, resp.Results[0].Confidence)
	if i := rank(resp.Results, "mergePdf"); i >= 0 {
		assert.NotEqual(t, ConfidenceHigh, resp.Results[i].Confidence)
	}

	// A misspelled rare word still finds the archive operations and, with
	// no strong match, gets a correction.
	resp = e.Search("compres pdf", 8)
	assert.NotEqual(t, -1, rank(resp.Results, "zip"))
	require.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, "compress", resp.Suggestions[0])
}

func TestSearch_PhraseVariantsStayWhole(t *testing.T) {
	e := newEngine(t, catalog.Builtin())

	// "photo" expands to phrases such as "photo to pdf"; their filler words
	// must not earn pdfToDocx a match on its own label.
	got, ok := e.Explain("pdf photo", "pdfToDocx")
	require.True(t, ok)
	assert.Less(t, got.Breakdown.BaseScore, 45)

	resp := e.Search("pdf photo", 3)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "imageToPdf", resp.Results[0].Operation.ID)
}

func TestSearch_ExactForms(t *testing.T) {
	e := newEngine(t, smallCatalog(t))
	for _, q := range []string{"mergePdf", "mergepdf", "merge pdf", "MERGE PDF", "  Merge   Pdf "} {
		resp := e.Search(q, 5)
		require.NotEmpty(t, resp.Results, q)
		top := resp.Results[0]
		assert.Equal(t, "mergePdf", top.Operation.ID, q)
		assert.Equal(t, MatchExact, top.MatchType, q)
		assert.Equal(t, 100, top.Percentage, q)
		assert.True(t, top.Breakdown.ExactMatch, q)
		assert.True(t, top.Breakdown.CloseMatch, q)
	}
}

func TestScore_ExactBonusForms(t *testing.T) {
	e := newEngine(t, catalog.Builtin())
	for q, want := range map[string]bool{
		"image to pdf": true,  // label substring
		"image-to-pdf": true,  // compacted label
		"imagetopdf":   true,  // id
		"pdf image":    false, // reordered words
		"image pdf":    false, // compacted, still not in the label
	} {
		got, ok := e.Explain(q, "imageToPdf")
		require.True(t, ok, q)
		assert.Equal(t, want, got.Breakdown.ExactMatch, q)
	}

	// Spelled id words count even when the label words differ.
	got, ok := e.Explain("pdf to ppt", "pdfToPpt")
	require.True(t, ok)
	assert.True(t, got.Breakdown.ExactMatch)
	assert.Equal(t, 15, got.Breakdown.ExactMatchBonus)
}

func TestSearch_BuiltinExactRanksFirst(t *testing.T) {
	c := catalog.Builtin()
	e := newEngine(t, c)
	for _, op := range c.Entries() {
		for _, q := range []string{op.ID, op.SpacedID(), op.Label} {
			resp := e.Search(q, 3)
			require.NotEmpty(t, resp.Results, q)
			assert.Equal(t, op.ID, resp.Results[0].Operation.ID, q)
			assert.Equal(t, MatchExact, resp.Results[0].MatchType, q)
			assert.Empty(t, resp.Suggestions, q)
		}
	}
}

func TestSearch_Invariants(t *testing.T) {
	e := newEngine(t, catalog.Builtin())
	queries := []string{
		"pdf", "convert word to pdf", "compress", "extract text from image",
		"jpg2png", "password", "mrege pdfs", "resize photo", "zip", "xyzzy",
	}
	for _, q := range queries {
		for _, k := range []int{1, 3, 8} {
			resp := e.Search(q, k)
			assert.LessOrEqual(t, len(resp.Results), k, q)
			for i, r := range resp.Results {
				assert.GreaterOrEqual(t, r.Percentage, 20, q)
				assert.LessOrEqual(t, r.Percentage, 100, q)
				assert.Equal(t, ConfidenceFor(r.Percentage), r.Confidence, q)
				if i > 0 {
					assert.GreaterOrEqual(t, resp.Results[i-1].Percentage, r.Percentage, q)
				}
			}
			assert.LessOrEqual(t, len(resp.Suggestions), 3, q)
			if len(resp.Results) > 0 && resp.Results[0].Confidence == ConfidenceHigh {
				assert.Empty(t, resp.Suggestions, q)
			}
		}
	}
}

func TestSearch_DefaultLimit(t *testing.T) {
	e := newEngine(t, catalog.Builtin())
	resp := e.Search("pdf", 0)
	assert.NotEmpty(t, resp.Results)
	assert.LessOrEqual(t, len(resp.Results), DefaultMaxResults)
	assert.Equal(t, resp, e.Search("pdf", -3))
}

func TestSearch_Idempotent(t *testing.T) {
	e := newEngine(t, catalog.Builtin())
	for _, q := range []string{"combine files", "pdf to word", "mrege"} {
		assert.Equal(t, e.Search(q, 8), e.Search(q, 8), q)
	}
}

func TestSearch_Suggestions(t *testing.T) {
	e := newEngine(t, catalog.Builtin())

	resp := e.Search("mrege", 8)
	for _, r := range resp.Results {
		assert.NotEqual(t, ConfidenceHigh, r.Confidence)
	}
	require.NotEmpty(t, resp.Suggestions)
	assert.LessOrEqual(t, len(resp.Suggestions), 3)
	assert.Equal(t, "merge", resp.Suggestions[0])
	assert.NotContains(t, resp.Suggestions, "mrege")

	w := DefaultWeights()
	w.MaxSuggestions = 0
	e = newEngine(t, catalog.Builtin(), WithWeights(w))
	assert.Empty(t, e.Search("mrege", 8).Suggestions)
}

func TestSearch_Concurrent(t *testing.T) {
	e := newEngine(t, catalog.Builtin())
	queries := []string{"combine files", "lock pdf", "ocr", "png to jpg"}
	want := make([]SearchResponse, len(queries))
	for i, q := range queries {
		want[i] = e.Search(q, 8)
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, q := range queries {
				assert.Equal(t, want[i], e.Search(q, 8))
			}
		}()
	}
	wg.Wait()
}

func TestExplain(t *testing.T) {
	e := newEngine(t, smallCatalog(t))

	resp := e.Search("combine files", 10)
	require.NotEmpty(t, resp.Results)
	got, ok := e.Explain("combine files", "mergePdf")
	require.True(t, ok)
	assert.Equal(t, resp.Results[0], got)

	// An operation the query does not reach still gets a floor score.
	got, ok = e.Explain("combine files", "imageToPdf")
	require.True(t, ok)
	assert.Equal(t, 20, got.Percentage)
	assert.Equal(t, MatchFuzzy, got.MatchType)
	assert.Equal(t, 0, got.Breakdown.BaseScore)

	_, ok = e.Explain("combine files", "rotatePdf")
	assert.False(t, ok)
	_, ok = e.Explain(" ", "mergePdf")
	assert.False(t, ok)
}

func TestQuickSearch(t *testing.T) {
	e := newEngine(t, smallCatalog(t))

	op, ok := e.QuickSearch("mergepdf")
	require.True(t, ok)
	assert.Equal(t, "mergePdf", op.ID)

	op, ok = e.QuickSearch("combine files")
	require.True(t, ok)
	assert.Equal(t, "mergePdf", op.ID)

	_, ok = e.QuickSearch("zzzz qqqq")
	assert.False(t, ok)
}

func TestSortResults_Stable(t *testing.T) {
	ops := catalog.Builtin().Entries()
	results := []ScoredResult{
		{Operation: &ops[0], Percentage: 50},
		{Operation: &ops[1], Percentage: 90},
		{Operation: &ops[2], Percentage: 50},
		{Operation: &ops[3], Percentage: 90},
	}
	SortResults(results)
	var ids []string
	for _, r := range results {
		ids = append(ids, r.Operation.ID)
	}
	assert.Equal(t, []string{ops[1].ID, ops[3].ID, ops[0].ID, ops[2].ID}, ids)
}
