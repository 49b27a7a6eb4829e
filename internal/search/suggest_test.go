package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aenigma-lab/opsearch/internal/catalog"
	"github.com/aenigma-lab/opsearch/internal/dictionary"
)

func TestSuggest(t *testing.T) {
	c := smallCatalog(t)
	syn := dictionary.Builtin().Synonyms

	assert.Equal(t,
		[]string{"combine pdf", "join pdf", "merge pdf files", "separate pdf", "photo to pdf"},
		Suggest("pdf", c, syn, 5))

	got := Suggest("sep", c, syn, 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "separate pdf", got[0])
	assert.Contains(t, got, "separate")

	// Two characters only match labels, then fuzzy keyword matches fill up.
	got = Suggest("me", c, nil, 5)
	require.Len(t, got, 3)
	assert.Equal(t, "MERGE PDF", got[0])
	assert.ElementsMatch(t, []string{"combine pdf", "merge pdf files"}, got[1:])

	assert.Equal(t, []string{}, Suggest("m", c, syn, 5))
	assert.Equal(t, []string{}, Suggest("pdf", nil, syn, 5))
	assert.Len(t, Suggest("pdf", c, syn, 0), DefaultSuggestions)
}

func TestEngine_Suggest(t *testing.T) {
	e := newEngine(t, catalog.Builtin())
	got := e.Suggest("merg", 3)
	require.Len(t, got, 3)
	for _, s := range got {
		assert.Contains(t, Normalize(s), "merg")
	}

	typos := e.TypoSuggestions("exel", 0)
	require.NotEmpty(t, typos)
	assert.LessOrEqual(t, len(typos), DefaultTypoSuggestions)
	assert.Equal(t, "excel", typos[0].Suggestion)
}
