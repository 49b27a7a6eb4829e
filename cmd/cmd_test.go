package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aenigma-lab/opsearch/internal/catalog"
	"github.com/aenigma-lab/opsearch/internal/config"
	"github.com/aenigma-lab/opsearch/internal/dictionary"
	"github.com/aenigma-lab/opsearch/internal/search"
)

// setHome points the config layer at a fresh temp directory and clears the
// environment overrides.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.HomeEnv, home)
	t.Setenv(config.EnvCatalog, "")
	t.Setenv(config.EnvDictionaries, "")
	t.Setenv(config.EnvMaxResults, "")
	return home
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func builtinSession(t *testing.T) *session {
	t.Helper()
	setHome(t)
	s, err := openSessionWith(config.DefaultConfig())
	if err != nil {
		t.Fatalf("openSessionWith: %v", err)
	}
	return s
}

const testCatalogYAML = `operations:
  - id: mergePdf
    label: MERGE PDF
    category: PDF OPERATIONS
    keywords: [combine pdf, join pdf]
  - id: splitPdf
    label: SPLIT PDF
    category: PDF OPERATIONS
    keywords: [separate pdf]
`

func TestReadQueries_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.txt")
	writeFile(t, path, "# comment\nmerge pdf\n\n  jpg to png  \n")

	got, err := readQueries(path, nil)
	if err != nil {
		t.Fatalf("readQueries: %v", err)
	}
	if len(got) != 2 || got[0] != "merge pdf" || got[1] != "jpg to png" {
		t.Fatalf("got %q", got)
	}
}

func TestReadQueries_Stdin(t *testing.T) {
	got, err := readQueries("-", strings.NewReader("a b\n#x\nc\n"))
	if err != nil {
		t.Fatalf("readQueries: %v", err)
	}
	if len(got) != 2 || got[0] != "a b" || got[1] != "c" {
		t.Fatalf("got %q", got)
	}
}

func TestReadQueries_MissingFile(t *testing.T) {
	if _, err := readQueries(filepath.Join(t.TempDir(), "nope.txt"), nil); err == nil {
		t.Fatal("expected error for missing batch file")
	}
}

func TestSearchBatch_KeepsOrder(t *testing.T) {
	s := builtinSession(t)
	queries := []string{"merge pdf", "split pdf", "zip", "", "jpg to png"}

	resps, err := searchBatch(context.Background(), s.engine, queries, 3)
	if err != nil {
		t.Fatalf("searchBatch: %v", err)
	}
	if len(resps) != len(queries) {
		t.Fatalf("got %d responses, want %d", len(resps), len(queries))
	}
	for i, q := range queries {
		if resps[i].Query != q {
			t.Errorf("response %d has query %q, want %q", i, resps[i].Query, q)
		}
	}
	if len(resps[3].Results) != 0 {
		t.Errorf("empty query returned %d results", len(resps[3].Results))
	}
	if top := resps[0].Results[0].Operation.ID; top != "mergePdf" {
		t.Errorf("top result for merge pdf = %s", top)
	}
}

func TestSearchBatch_Cancelled(t *testing.T) {
	s := builtinSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := searchBatch(ctx, s.engine, []string{"merge"}, 3); err == nil {
		t.Fatal("expected context error")
	}
}

func TestRenderResults(t *testing.T) {
	s := builtinSession(t)
	var buf bytes.Buffer
	renderResults(&buf, s.engine.Search("merge pdf", 3), false)
	out := buf.String()
	for _, want := range []string{`opsearch search "merge pdf"`, "1.", "100%", "mergePdf", "MERGE PDF"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	renderResults(&buf, s.engine.Search("merge pdf", 1), true)
	if !strings.Contains(buf.String(), "base") || !strings.Contains(buf.String(), "total") {
		t.Errorf("explain output missing breakdown:\n%s", buf.String())
	}

	buf.Reset()
	renderResults(&buf, search.SearchResponse{Query: "mrege", Suggestions: []string{"merge", "merg"}}, false)
	if !strings.Contains(buf.String(), "Did you mean: merge, merg?") {
		t.Errorf("suggestions not rendered:\n%s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	s := builtinSession(t)
	var buf bytes.Buffer
	if err := writeJSON(&buf, s.engine.Search("merge pdf", 2)); err != nil {
		t.Fatalf("writeJSON: %v", err)
	}
	var got struct {
		Query   string `json:"query"`
		Results []struct {
			Percentage int `json:"percentage"`
			Operation  struct {
				ID string `json:"id"`
			} `json:"operation"`
		} `json:"results"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Query != "merge pdf" || len(got.Results) == 0 || got.Results[0].Operation.ID != "mergePdf" {
		t.Fatalf("unexpected JSON: %+v", got)
	}
}

func TestLoadCatalog_Builtin(t *testing.T) {
	setHome(t)
	c, src, err := loadCatalog(config.DefaultConfig())
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if src.Kind != "built-in" || src.String() != "built-in" {
		t.Errorf("source = %+v", src)
	}
	if c.Len() != catalog.Builtin().Len() {
		t.Errorf("got %d operations", c.Len())
	}
}

func TestLoadCatalog_File(t *testing.T) {
	home := setHome(t)
	path := filepath.Join(home, "ops.yaml")
	writeFile(t, path, testCatalogYAML)

	cfg := config.DefaultConfig()
	cfg.CatalogPath = path
	c, src, err := loadCatalog(cfg)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if src.Kind != "file" || src.Path != path {
		t.Errorf("source = %+v", src)
	}
	if c.Len() != 2 {
		t.Errorf("got %d operations, want 2", c.Len())
	}
}

func TestLoadCatalog_DirectoryViaEnv(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, "catalog")
	writeFile(t, filepath.Join(dir, "a.yaml"), testCatalogYAML)
	writeFile(t, filepath.Join(dir, "b.md"), "---\nid: mergePdf\nlabel: COMBINE\ncategory: PDF OPERATIONS\n---\nOther merge.\n")
	writeFile(t, filepath.Join(dir, "c.md"), "---\nid: rotatePdf\ncategory: PDF OPERATIONS\n---\n# Rotate\nRotate pages.\n")
	t.Setenv(config.EnvCatalog, dir)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	c, src, err := loadCatalog(cfg)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if src.Kind != "directory" || src.Dir == nil {
		t.Fatalf("source = %+v", src)
	}
	if c.Len() != 3 {
		t.Errorf("got %d operations, want 3", c.Len())
	}
	if len(src.Dir.Conflicts) != 1 || src.Dir.Conflicts[0].ID != "mergePdf" {
		t.Errorf("conflicts = %+v", src.Dir.Conflicts)
	}
	op, ok := c.Get("mergePdf")
	if !ok || op.Label != "MERGE PDF" {
		t.Errorf("first definition should win, got %+v", op)
	}
}

func TestLoadCatalog_BadFile(t *testing.T) {
	home := setHome(t)
	path := filepath.Join(home, "ops.yaml")
	writeFile(t, path, "operations: [")

	cfg := config.DefaultConfig()
	cfg.CatalogPath = path
	if _, _, err := loadCatalog(cfg); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if _, err := openSessionWith(cfg); err == nil {
		t.Fatal("expected openSessionWith to fail")
	}
}

func TestResolveOperations(t *testing.T) {
	c := catalog.Builtin()

	ops, err := resolveOperations(c, "mergePdf")
	if err != nil || len(ops) != 1 || ops[0].ID != "mergePdf" {
		t.Fatalf("exact: %v %v", ops, err)
	}
	ops, err = resolveOperations(c, "MERGEPDF")
	if err != nil || len(ops) != 1 || ops[0].ID != "mergePdf" {
		t.Fatalf("case-insensitive: %v %v", ops, err)
	}
	ops, err = resolveOperations(c, "topdf")
	if err != nil || len(ops) < 2 {
		t.Fatalf("substring: %v %v", ops, err)
	}
	for _, op := range ops {
		if !strings.Contains(strings.ToLower(op.ID), "topdf") {
			t.Errorf("unexpected match %s", op.ID)
		}
	}
	if _, err := resolveOperations(c, "xyzzy"); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestPrintInspect(t *testing.T) {
	op, ok := catalog.Builtin().Get("mergePdf")
	if !ok {
		t.Fatal("mergePdf missing from built-in catalog")
	}
	var buf bytes.Buffer
	printInspect(&buf, op)
	out := buf.String()
	for _, want := range []string{"Operation: mergePdf", "Label:    MERGE PDF", "Id words: merge pdf", "Keywords ("} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCatalog(t *testing.T) {
	c := catalog.Builtin()
	var buf bytes.Buffer
	if n := printCatalog(&buf, c, ""); n != c.Len() {
		t.Errorf("printed %d operations, want %d", n, c.Len())
	}
	for _, cat := range c.Categories() {
		if !strings.Contains(buf.String(), cat) {
			t.Errorf("category %q missing", cat)
		}
	}

	buf.Reset()
	if n := printCatalog(&buf, c, "no such category"); n != 0 || buf.Len() != 0 {
		t.Errorf("filter matched %d operations", n)
	}
}

func TestExportBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), exportedCatalogName)

	written, err := exportBuiltin(path)
	if err != nil || !written {
		t.Fatalf("exportBuiltin: written=%v err=%v", written, err)
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		t.Fatalf("exported catalog does not load: %v", err)
	}
	want := catalog.Builtin().Entries()
	got := c.Entries()
	if len(got) != len(want) {
		t.Fatalf("got %d operations, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Label != want[i].Label || len(got[i].Keywords) != len(want[i].Keywords) {
			t.Errorf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}

	written, err = exportBuiltin(path)
	if err != nil || written {
		t.Fatalf("second export: written=%v err=%v", written, err)
	}
}

func TestRunInit_ExportBuiltin(t *testing.T) {
	home := setHome(t)
	flagExportBuiltin = true
	t.Cleanup(func() { flagExportBuiltin = false })

	if err := runInit(nil, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	want := filepath.Join(home, exportedCatalogName)
	if cfg.CatalogPath != want {
		t.Errorf("catalog_path = %q, want %q", cfg.CatalogPath, want)
	}
	if _, err := os.Stat(filepath.Join(home, ".env")); err != nil {
		t.Errorf(".env template not written: %v", err)
	}

	// A second run leaves everything in place.
	if err := runInit(nil, nil); err != nil {
		t.Fatalf("second runInit: %v", err)
	}
}

func TestSelfTest_Builtin(t *testing.T) {
	s := builtinSession(t)
	missed, _ := selfTest(s.engine)
	if len(missed) != 0 {
		t.Fatalf("operations not found by id: %v", missed)
	}
}

func TestRepl(t *testing.T) {
	setHome(t)
	var out bytes.Buffer
	in := strings.NewReader("merge pdf\n\n:q\nsplit pdf\n")
	if err := repl(in, &out, config.DefaultConfig(), dictionary.Builtin()); err != nil {
		t.Fatalf("repl: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "mergePdf") {
		t.Errorf("missing result for first query:\n%s", got)
	}
	if strings.Contains(got, `"split pdf"`) {
		t.Errorf("query after :q was run:\n%s", got)
	}
}

func TestRepl_PicksUpCatalogEdits(t *testing.T) {
	home := setHome(t)
	path := filepath.Join(home, "ops.yaml")
	writeFile(t, path, testCatalogYAML)
	cfg := config.DefaultConfig()
	cfg.CatalogPath = path

	// The catalog file is rewritten between the two queries by a reader
	// that edits it once the first line has been consumed.
	in := &editingReader{
		lines: []string{"rotate pdf\n", "rotate pdf\n"},
		edit: func() {
			writeFile(t, path, testCatalogYAML+"  - id: rotatePdf\n    label: ROTATE PDF\n    category: PDF OPERATIONS\n")
		},
	}
	var out bytes.Buffer
	if err := repl(in, &out, cfg, dictionary.Builtin()); err != nil {
		t.Fatalf("repl: %v", err)
	}
	if !strings.Contains(out.String(), "rotatePdf") {
		t.Errorf("edited catalog not searched:\n%s", out.String())
	}
}

// editingReader yields one line per Read call and runs edit after the first.
type editingReader struct {
	lines []string
	edit  func()
	n     int
}

func (r *editingReader) Read(p []byte) (int, error) {
	if r.n >= len(r.lines) {
		return 0, io.EOF
	}
	if r.n == 1 && r.edit != nil {
		r.edit()
	}
	n := copy(p, r.lines[r.n])
	r.n++
	return n, nil
}

func TestRunVersion(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	if err := runVersion(versionCmd, nil); err != nil {
		t.Fatalf("runVersion: %v", err)
	}
	for _, want := range []string{"Version:", "Go Version:", "OS/Arch:"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
	if emptyAsNA("") != "n/a" || emptyAsNA("x") != "x" {
		t.Error("emptyAsNA")
	}
}

func TestRunIntent(t *testing.T) {
	setHome(t)
	var buf bytes.Buffer
	intentCmd.SetOut(&buf)
	flagIntentRecent = []string{"merge pdfs"}
	t.Cleanup(func() {
		intentCmd.SetOut(nil)
		flagIntentRecent = nil
		flagIntentJSON = false
	})

	if err := runIntent(intentCmd, []string{"pdf"}); err != nil {
		t.Fatalf("runIntent: %v", err)
	}
	for _, want := range []string{"Intent:", "Expanded:", "portable document format", "pdfs", "(x6.00)"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	flagIntentJSON = true
	if err := runIntent(intentCmd, []string{"pdf"}); err != nil {
		t.Fatalf("runIntent --json: %v", err)
	}
	var got struct {
		Type    string `json:"type"`
		Context struct {
			Terms    []string `json:"expanded_terms"`
			Expanded bool     `json:"is_expanded"`
			Ratio    float64  `json:"expansion_ratio"`
		} `json:"context"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if got.Type == "" || !got.Context.Expanded || got.Context.Ratio != 6 || got.Context.Terms[0] != "pdf" {
		t.Fatalf("unexpected JSON: %+v", got)
	}
}
