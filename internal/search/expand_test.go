package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aenigma-lab/opsearch/internal/dictionary"
	"github.com/aenigma-lab/opsearch/internal/search/index"
)

func TestStripInflection(t *testing.T) {
	for in, want := range map[string]string{
		"files":       "fil",
		"converting":  "convert",
		"document":    "docu",
		"tested":      "test",
		"pdf":         "pdf",
		"compression": "compression",
	} {
		assert.Equal(t, want, stripInflection(in), in)
	}
}

func TestExpand(t *testing.T) {
	x := NewExpander(dictionary.Builtin().Synonyms, nil)

	got := x.Expand("Combine  FILES")
	assert.Equal(t, []string{"combine", "files"}, got[:2])
	assert.Subset(t, got, []string{"fil", "file", "combinefiles", "combine_files", "combine-files"})

	assert.Subset(t, x.Expand("merge"), []string{"combine", "join", "unite"})
	assert.Subset(t, x.Expand("unlock"), []string{"lock", "decrypt"})
	assert.Subset(t, x.Expand("jpg to pdf"), []string{
		"jpgtopdf", "jpg_to_pdf", "jpg-to-pdf", "jpg2pdf", "jpg_2_pdf",
	})

	assert.Equal(t, []string{}, x.Expand(""))
	assert.Equal(t, []string{}, x.Expand("   "))
}

func TestExpand_NoDuplicates(t *testing.T) {
	x := NewExpander(dictionary.Builtin().Synonyms, nil)
	for _, q := range []string{"convert pdf to word", "extract text", "zip zip", "remove password"} {
		seen := make(map[string]bool)
		for _, term := range x.Expand(q) {
			assert.False(t, seen[term], "%q repeats %q", q, term)
			seen[term] = true
		}
	}
}

func TestExpand_RelatedKeys(t *testing.T) {
	x := NewExpander(dictionary.NewSynonymTable([]dictionary.Entry{
		{Term: "compress", Variants: []string{"zip"}},
		{Term: "ocr", Variants: []string{"recognize"}},
	}), nil)

	// Shares "com" with a key.
	assert.Contains(t, x.Expand("compact"), "zip")
	// Contains a key.
	assert.Contains(t, x.Expand("pdfocr"), "recognize")
	assert.Equal(t, []string{"xyz"}, x.Expand("xyz"))
}

func weightOf(t index.Term, text string) float64 {
	for _, v := range t.Variants {
		if v.Text == text {
			return v.Weight
		}
	}
	return 0
}

func TestExpandQuery_WeighsVariantsByOrigin(t *testing.T) {
	x := NewExpander(dictionary.Builtin().Synonyms, nil)

	q := x.ExpandQuery("unlock")
	require.Len(t, q.Terms, 1)
	u := q.Terms[0]
	assert.Equal(t, "unlock", u.Text)
	assert.Equal(t, synonymWeight, weightOf(u, "decrypt"))
	assert.Equal(t, synonymWeight, weightOf(u, "remove password"))
	// From the "lock" key, which "unlock" contains.
	assert.Equal(t, relatedKeyWeight, weightOf(u, "encrypt"))
	assert.Equal(t, affixWeight, weightOf(u, "lock"))
	assert.Zero(t, weightOf(u, "unlock"))
	assert.Empty(t, q.Compounds)

	q = x.ExpandQuery("compress pdf")
	require.Len(t, q.Terms, 2)
	assert.Equal(t, synonymWeight, weightOf(q.Terms[0], "zip"))
	assert.Equal(t, []string{"compresspdf"}, q.Compounds)

	q = x.ExpandQuery("jpg to pdf")
	assert.Equal(t, []string{"jpgtopdf", "jpg2pdf"}, q.Compounds)

	// Repeated words become one term.
	assert.Len(t, x.ExpandQuery("zip zip").Terms, 1)
	assert.True(t, x.ExpandQuery("  ").Empty())
}

func TestExpandQuery_MatchesFlatExpansion(t *testing.T) {
	x := NewExpander(dictionary.Builtin().Synonyms, nil)
	for _, query := range []string{"combine files", "unlock pdf", "jpg to png"} {
		q := x.ExpandQuery(query)
		flat := x.Expand(query)
		for _, term := range q.Terms {
			assert.Contains(t, flat, term.Text, query)
			for _, v := range term.Variants {
				assert.Contains(t, flat, v.Text, query)
				assert.Greater(t, v.Weight, 0.0, query)
				assert.LessOrEqual(t, v.Weight, 1.0, query)
			}
		}
	}
}
