package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a catalog file:
//
//	operations:
//	  - id: mergePdf
//	    label: MERGE PDF
//	    category: PDF OPERATIONS
//	    keywords: [combine pdf, join pdf]
type File struct {
	Operations []OperationEntry `yaml:"operations" toml:"operations" json:"operations"`
}

// IsCatalogFile reports whether path has an extension LoadFile understands.
func IsCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml", ".json", ".md":
		return true
	}
	return false
}

// ParseFile decodes raw catalog bytes according to the extension of name.
// YAML, TOML and JSON files hold a list of operations; a Markdown file holds
// one operation in its frontmatter. It does not validate the entries.
func ParseFile(name string, data []byte) ([]OperationEntry, error) {
	var f File
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", name, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("invalid TOML in %s: %w", name, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("invalid JSON in %s: %w", name, err)
		}
	case ".md":
		return parseMarkdown(name, data), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return f.Operations, nil
}

// LoadFile reads a single catalog file and validates it.
func LoadFile(path string) (*Catalog, error) {
	if !IsCatalogFile(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog %s: %w", path, err)
	}
	entries, err := ParseFile(path, data)
	if err != nil {
		return nil, err
	}
	c, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
