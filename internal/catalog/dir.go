package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
)

// Conflict records an operation id defined twice with different content.
// The first definition (Original) is kept.
type Conflict struct {
	ID       string
	Original string // file holding the kept definition
	Conflict string // file whose definition was ignored
}

// DirResult is returned by LoadDir.
type DirResult struct {
	Catalog   *Catalog
	Files     []string // catalog files read, in walk order
	Conflicts []Conflict
	Loaded    int // operations kept
	Skipped   int // identical duplicates skipped
	Excluded  int // files skipped by exclude patterns
}

// LoadDir reads every catalog file under dir and merges them into one
// catalog. Files are visited in lexical order. An id seen a second time
// with identical content is skipped; with different content it is recorded
// as a conflict and the first definition wins.
func LoadDir(dir string, excludes []string) (*DirResult, error) {
	result := &DirResult{}

	type seenEntry struct {
		file string
		sum  uint64
	}
	seen := map[string]seenEntry{}
	var entries []OperationEntry

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == dir {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if matchesExclude(rel, d.IsDir(), excludes) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			result.Excluded++
			return nil
		}
		if d.IsDir() || !IsCatalogFile(path) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read catalog %s: %w", path, err)
		}
		ops, err := ParseFile(path, data)
		if err != nil {
			return err
		}
		if len(ops) > 0 {
			result.Files = append(result.Files, rel)
		}

		for _, op := range ops {
			sum, err := entrySum(op)
			if err != nil {
				return fmt.Errorf("hash %s in %s: %w", op.ID, path, err)
			}
			id := strings.TrimSpace(op.ID)
			if prev, ok := seen[id]; ok && id != "" {
				if prev.sum == sum {
					result.Skipped++
					continue
				}
				result.Conflicts = append(result.Conflicts, Conflict{
					ID:       id,
					Original: prev.file,
					Conflict: rel,
				})
				continue
			}
			if id != "" {
				seen[id] = seenEntry{file: rel, sum: sum}
			}
			entries = append(entries, op)
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	c, err := New(entries)
	if err != nil {
		return result, fmt.Errorf("catalog dir %s: %w", dir, err)
	}
	result.Catalog = c
	result.Loaded = c.Len()
	return result, nil
}

// matchesExclude reports whether relPath matches any exclude glob. Patterns
// are matched against the slash-separated relative path and the base name;
// a trailing "/" restricts a pattern to directories.
func matchesExclude(relPath string, isDir bool, patterns []string) bool {
	rel := filepath.ToSlash(relPath)
	name := filepath.Base(relPath)
	for _, pattern := range patterns {
		p := pattern
		if strings.HasSuffix(p, "/") {
			if !isDir {
				continue
			}
			p = strings.TrimSuffix(p, "/")
		}
		if matched, _ := doublestar.Match(p, name); matched {
			return true
		}
		if matched, _ := doublestar.Match(p, rel); matched {
			return true
		}
	}
	return false
}

// entrySum fingerprints an operation by its canonical JSON encoding.
func entrySum(e OperationEntry) (uint64, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
