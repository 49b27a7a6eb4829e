// Package dictionary holds the static synonym and misspelling tables used for
// query expansion and spelling correction.
//
// Tables keep their keys in insertion order. Re-declaring a key replaces its
// variants but leaves it at the position of its first declaration, so the
// order in which expansion and correction visit keys is stable.
package dictionary

import "strings"

// Entry maps one term to its variants (synonyms or known misspellings).
type Entry struct {
	Term     string   `yaml:"term" toml:"term" json:"term"`
	Variants []string `yaml:"variants" toml:"variants" json:"variants"`
}

// Table is an ordered, read-only term -> variants mapping.
type Table struct {
	entries []Entry
	index   map[string]int
}

// NewTable builds a Table. Terms and variants are lowercased and trimmed;
// entries with an empty term are ignored.
func NewTable(entries []Entry) *Table {
	t := &Table{}
	t.init(entries)
	return t
}

func (t *Table) init(entries []Entry) {
	t.entries = make([]Entry, 0, len(entries))
	t.index = make(map[string]int, len(entries))
	for _, e := range entries {
		term := normalize(e.Term)
		if term == "" {
			continue
		}
		variants := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			if v = normalize(v); v != "" {
				variants = append(variants, v)
			}
		}
		if i, ok := t.index[term]; ok {
			t.entries[i].Variants = variants
			continue
		}
		t.index[term] = len(t.entries)
		t.entries = append(t.entries, Entry{Term: term, Variants: variants})
	}
}

// Lookup returns the variants of term. The returned slice must not be modified.
func (t *Table) Lookup(term string) ([]string, bool) {
	i, ok := t.index[term]
	if !ok {
		return nil, false
	}
	return t.entries[i].Variants, true
}

// Has reports whether term is a key of the table.
func (t *Table) Has(term string) bool {
	_, ok := t.index[term]
	return ok
}

// Entries returns the table in key order. Callers must not modify it.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.entries)
}

// SynonymTable maps a term to words with the same or related meaning.
type SynonymTable struct {
	Table
}

// NewSynonymTable builds a SynonymTable from entries.
func NewSynonymTable(entries []Entry) *SynonymTable {
	s := &SynonymTable{}
	s.init(entries)
	return s
}

// TypoTable maps a canonical term to its curated misspellings.
type TypoTable struct {
	Table
	canonical map[string][]string
}

// NewTypoTable builds a TypoTable from entries.
func NewTypoTable(entries []Entry) *TypoTable {
	tt := &TypoTable{}
	tt.init(entries)
	tt.canonical = make(map[string][]string)
	for _, e := range tt.entries {
		for _, v := range e.Variants {
			keys := tt.canonical[v]
			if len(keys) > 0 && keys[len(keys)-1] == e.Term {
				continue
			}
			tt.canonical[v] = append(keys, e.Term)
		}
	}
	return tt
}

// Canonical returns, in key order, the canonical terms whose misspelling
// list contains word.
func (t *TypoTable) Canonical(word string) []string {
	return t.canonical[word]
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
