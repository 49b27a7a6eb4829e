package dictionary

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Dictionaries bundles the tables an engine is constructed with.
type Dictionaries struct {
	Synonyms *SynonymTable
	Typos    *TypoTable
	// Formats maps a file format to misspellings of it.
	Formats *TypoTable
	// Domain maps a file-operation concept to the words users search it
	// by, for contextual expansion.
	Domain *SynonymTable
}

// File is the on-disk shape of a dictionary override file.
//
//	synonyms:
//	  - term: merge
//	    variants: [combine, join]
//	typos:
//	  - term: merge
//	    variants: [mrege, merg]
type File struct {
	Synonyms []Entry `yaml:"synonyms" toml:"synonyms" json:"synonyms"`
	Typos    []Entry `yaml:"typos" toml:"typos" json:"typos"`
	Formats  []Entry `yaml:"formats" toml:"formats" json:"formats"`
	Domain   []Entry `yaml:"domain" toml:"domain" json:"domain"`
}

// Parse decodes a dictionary file according to the extension of name.
func Parse(name string, data []byte) (*File, error) {
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
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return &f, nil
}

// Extend returns new tables holding d's entries followed by f's. Keys already
// present in d take the variants from f and keep their position.
func (d *Dictionaries) Extend(f *File) *Dictionaries {
	return &Dictionaries{
		Synonyms: NewSynonymTable(concat(d.Synonyms.Entries(), f.Synonyms)),
		Typos:    NewTypoTable(concat(d.Typos.Entries(), f.Typos)),
		Formats:  NewTypoTable(concat(d.Formats.Entries(), f.Formats)),
		Domain:   NewSynonymTable(concat(d.Domain.Entries(), f.Domain)),
	}
}

// LoadFile reads an override file and applies it on top of the built-in tables.
func LoadFile(path string) (*Dictionaries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read dictionaries %s: %w", path, err)
	}
	f, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	return Builtin().Extend(f), nil
}

func concat(a, b []Entry) []Entry {
	out := make([]Entry, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
