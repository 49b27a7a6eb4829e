// Package catalog holds the fixed set of operations the search engine ranks.
//
// Entries are supplied once by the host (built-in, a file, or a directory of
// fragments), validated here, and never mutated afterwards.
package catalog

import (
	"fmt"
	"strings"
	"unicode"
)

// OperationEntry is one operation exposed to end users.
type OperationEntry struct {
	ID          string   `yaml:"id" toml:"id" json:"id"`
	Label       string   `yaml:"label" toml:"label" json:"label"`
	Category    string   `yaml:"category" toml:"category" json:"category"`
	Keywords    []string `yaml:"keywords,omitempty" toml:"keywords,omitempty" json:"keywords,omitempty"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
	Tip         string   `yaml:"tip,omitempty" toml:"tip,omitempty" json:"tip,omitempty"`
}

// SpacedID returns the id split on internal capitals and lowercased,
// e.g. "pdfToDocx" -> "pdf to docx".
func (e OperationEntry) SpacedID() string {
	return DecomposeID(e.ID)
}

// DecomposeID splits an identifier before every upper-case letter and
// lowercases the result.
func DecomposeID(id string) string {
	var b strings.Builder
	b.Grow(len(id) + 4)
	for _, r := range id {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return strings.TrimSpace(b.String())
}

// Catalog is a validated, read-only list of operations in host order.
type Catalog struct {
	entries []OperationEntry
	byID    map[string]int
}

// New validates entries and returns a Catalog. Keywords and descriptions are
// optional; id, label and category are required and ids must be unique.
func New(entries []OperationEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		entries: make([]OperationEntry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		e.ID = strings.TrimSpace(e.ID)
		e.Label = strings.TrimSpace(e.Label)
		e.Category = strings.TrimSpace(e.Category)
		switch {
		case e.ID == "":
			return nil, fmt.Errorf("entry %d: %w: id", i, ErrMissingField)
		case e.Label == "":
			return nil, fmt.Errorf("entry %q: %w: label", e.ID, ErrMissingField)
		case e.Category == "":
			return nil, fmt.Errorf("entry %q: %w: category", e.ID, ErrMissingField)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
		}
		if e.Keywords == nil {
			e.Keywords = []string{}
		}
		e.Keywords = append([]string(nil), e.Keywords...)
		c.byID[e.ID] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// MustNew is New for static catalogs; it panics on invalid input.
func MustNew(entries []OperationEntry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Entries returns the operations in catalog order. Callers must not modify them.
func (c *Catalog) Entries() []OperationEntry {
	return c.entries
}

// Len returns the number of operations.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Get returns the operation with the given id.
func (c *Catalog) Get(id string) (*OperationEntry, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// Categories returns distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range c.entries {
		if _, ok := seen[e.Category]; ok {
			continue
		}
		seen[e.Category] = struct{}{}
		out = append(out, e.Category)
	}
	return out
}
