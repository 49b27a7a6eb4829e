package index

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/aenigma-lab/opsearch/internal/catalog"
)

// Normalize folds s to the form both queries and indexed fields are compared
// in: NFKC, lower case, control characters dropped, runs of white space
// collapsed to one space.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// Compact removes spaces, underscores and hyphens so "image to pdf",
// "image_to_pdf" and "imagetopdf" compare equal.
func Compact(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}

// RuneLen is the length of s in characters.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// CanonicalText returns the text that identifies an operation for
// fingerprinting. Any change to a searchable field changes it.
func CanonicalText(e catalog.OperationEntry) string {
	parts := []string{
		"id: " + e.ID,
		"label: " + e.Label,
		"category: " + e.Category,
		"keywords: " + strings.Join(e.Keywords, "\x1f"),
		"description: " + e.Description,
	}
	return strings.Join(parts, "\n")
}

// Fingerprint hashes every entry of c in order.
func Fingerprint(c *catalog.Catalog) uint64 {
	d := xxhash.New()
	for _, e := range c.Entries() {
		_, _ = d.WriteString(CanonicalText(e))
		_, _ = d.WriteString("\x1e")
	}
	return d.Sum64()
}
