package catalog

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseMarkdown reads one operation from a Markdown file with YAML
// frontmatter:
//
//	---
//	id: rotatePdf
//	category: PDF OPERATIONS
//	keywords: rotate pdf, turn pages
//	---
//	# Rotate PDF
//	Rotate every page of a PDF.
//
// A missing id defaults to the file name, a missing label to the id split
// into upper-case words, and a missing description to the first body line
// that is not a heading. Files without frontmatter hold no operation.
func parseMarkdown(name string, data []byte) []OperationEntry {
	h, body, ok := splitFrontmatter(string(data))
	if !ok {
		return nil
	}

	e := OperationEntry{
		ID:          str(h["id"]),
		Label:       str(h["label"]),
		Category:    str(h["category"]),
		Description: str(h["description"]),
		Tip:         str(h["tip"]),
		Keywords:    list(h["keywords"]),
	}
	if len(e.Keywords) == 0 {
		e.Keywords = list(h["tags"])
	}
	if e.ID == "" {
		e.ID = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	if e.Label == "" {
		e.Label = strings.ToUpper(DecomposeID(e.ID))
	}
	if e.Description == "" {
		e.Description = inferDescriptionFromBody(body)
	}
	return []OperationEntry{e}
}

func splitFrontmatter(content string) (map[string]any, string, bool) {
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return nil, content, false
	}

	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return nil, content, false
	}

	fmText := strings.TrimSpace(parts[1])
	body := strings.TrimPrefix(parts[2], "\n")

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(fmText), &raw); err != nil {
		return nil, content, false
	}

	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = v
	}
	return out, body, true
}

func str(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// list accepts a YAML sequence or a comma-separated string.
func list(v any) []string {
	var out []string
	switch t := v.(type) {
	case string:
		for _, p := range strings.Split(t, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	case []any:
		for _, item := range t {
			if s := str(item); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func inferDescriptionFromBody(body string) string {
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		return ln
	}
	return ""
}
