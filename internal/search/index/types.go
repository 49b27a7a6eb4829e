package index

import "github.com/aenigma-lab/opsearch/internal/catalog"

// Field identifies one searchable field of an indexed operation.
type Field int

const (
	FieldLabel Field = iota
	FieldIDWords
	FieldBlob
	FieldCategory
	FieldDescription

	NumFields
)

// FieldWeights are the relative weights of each field in the combined match
// distance, highest first.
var FieldWeights = [NumFields]float64{
	FieldLabel:       2.5,
	FieldIDWords:     2.0,
	FieldBlob:        1.5,
	FieldCategory:    1.2,
	FieldDescription: 1.0,
}

var fieldNames = [NumFields]string{"label", "id", "blob", "category", "description"}

func (f Field) String() string {
	if f < 0 || f >= NumFields {
		return "unknown"
	}
	return fieldNames[f]
}

// SearchIndexEntry is the precomputed, normalized form of one operation.
type SearchIndexEntry struct {
	Entry *catalog.OperationEntry
	Order int // position in the catalog

	Label       string
	ID          string // lower-cased id
	IDWords     string // id split on capitals, e.g. "pdf to docx"
	Category    string
	Description string
	Keywords    []string
	// Blob is label, category, id, id words and keywords joined by spaces.
	Blob string

	fields [NumFields]fieldText
}

// Text returns the normalized text of field f.
func (e *SearchIndexEntry) Text(f Field) string {
	return e.fields[f].text
}

type fieldText struct {
	text    string
	compact string
	starts  []int  // byte offsets in compact where a word begins
	words   []word // distinct words
}

type word struct {
	text string
	n    int
}

// Index is an immutable search index over one catalog snapshot.
type Index struct {
	Catalog     *catalog.Catalog
	Entries     []SearchIndexEntry
	Fingerprint uint64
}

// Len returns the number of indexed operations.
func (ix *Index) Len() int {
	return len(ix.Entries)
}
