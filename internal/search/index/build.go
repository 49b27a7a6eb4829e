package index

import (
	"strings"

	"github.com/aenigma-lab/opsearch/internal/catalog"
)

// Build indexes every operation of c. The catalog is not copied; the index
// refers to its entries.
func Build(c *catalog.Catalog) (*Index, error) {
	if c == nil {
		return nil, ErrNilCatalog
	}
	ops := c.Entries()
	ix := &Index{
		Catalog:     c,
		Entries:     make([]SearchIndexEntry, len(ops)),
		Fingerprint: Fingerprint(c),
	}
	for i := range ops {
		ix.Entries[i] = newEntry(&ops[i], i)
	}
	return ix, nil
}

func newEntry(op *catalog.OperationEntry, order int) SearchIndexEntry {
	e := SearchIndexEntry{
		Entry:       op,
		Order:       order,
		Label:       Normalize(op.Label),
		ID:          Normalize(op.ID),
		IDWords:     Normalize(op.SpacedID()),
		Category:    Normalize(op.Category),
		Description: Normalize(op.Description),
		Keywords:    make([]string, 0, len(op.Keywords)),
	}
	for _, kw := range op.Keywords {
		if kw = Normalize(kw); kw != "" {
			e.Keywords = append(e.Keywords, kw)
		}
	}

	blob := make([]string, 0, 4+len(e.Keywords))
	blob = append(blob, e.Label, e.Category, e.ID, e.IDWords)
	blob = append(blob, e.Keywords...)
	e.Blob = strings.Join(blob, " ")

	e.fields[FieldLabel] = newFieldText(e.Label)
	e.fields[FieldIDWords] = newFieldText(e.IDWords)
	e.fields[FieldBlob] = newFieldText(e.Blob)
	e.fields[FieldCategory] = newFieldText(e.Category)
	e.fields[FieldDescription] = newFieldText(e.Description)
	return e
}

func newFieldText(text string) fieldText {
	f := fieldText{text: text}
	var b strings.Builder
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(text) {
		if c := Compact(w); c != "" {
			f.starts = append(f.starts, b.Len())
			b.WriteString(c)
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		f.words = append(f.words, word{text: w, n: RuneLen(w)})
	}
	f.compact = b.String()
	return f
}
