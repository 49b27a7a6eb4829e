package search

import (
	"io"
	"log/slog"

	"github.com/aenigma-lab/opsearch/internal/catalog"
	"github.com/aenigma-lab/opsearch/internal/dictionary"
	"github.com/aenigma-lab/opsearch/internal/search/index"
)

// DefaultMaxResults is used when Search is called with a non-positive limit.
const DefaultMaxResults = 8

// Engine ranks the operations of one index. It holds no mutable state and
// is safe for concurrent use.
type Engine struct {
	idx       *index.Index
	dicts     *dictionary.Dictionaries
	expander  *Expander
	corrector *Corrector
	weights   Weights
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeights replaces the default scoring constants.
func WithWeights(w Weights) Option {
	return func(e *Engine) { e.weights = w }
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an engine over idx. A nil dicts uses the built-in tables.
func New(idx *index.Index, dicts *dictionary.Dictionaries, opts ...Option) (*Engine, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	if dicts == nil {
		dicts = dictionary.Builtin()
	}
	e := &Engine{
		idx:     idx,
		dicts:   dicts,
		weights: DefaultWeights(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.weights.Validate(); err != nil {
		return nil, err
	}
	e.expander = NewExpander(dicts.Synonyms, dicts.Domain)
	e.corrector = NewCorrector(dicts.Typos)
	e.logger.Debug("engine ready", "entries", idx.Len(), "fingerprint", idx.Fingerprint,
		"synonyms", dicts.Synonyms.Len(), "typos", dicts.Typos.Len())
	return e, nil
}

// Index returns the engine's index.
func (e *Engine) Index() *index.Index {
	return e.idx
}

// Weights returns the engine's scoring constants.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Search ranks the catalog against query and returns at most maxResults
// results. An empty query yields an empty response.
func (e *Engine) Search(query string, maxResults int) SearchResponse {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	resp := SearchResponse{
		Results:       []ScoredResult{},
		Suggestions:   []string{},
		ExpandedQuery: []string{},
		Query:         query,
	}
	qc := newQueryContext(query)
	if qc.Normalized == "" {
		return resp
	}
	var mq index.Query
	mq, qc.Expanded = e.expander.expand(qc.Normalized)
	resp.ExpandedQuery = qc.Expanded

	cands := e.idx.Match(mq, e.weights.MinMatchQuality)
	results := make([]ScoredResult, 0, len(cands))
	for _, c := range cands {
		results = append(results, e.score(c, qc))
	}
	SortResults(results)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	resp.Results = results
	qc.MatchedTerms = matchedTerms(results)

	if !hasHigh(results) {
		s := e.corrector.Suggest(qc.Terms)
		if len(s) > e.weights.MaxSuggestions {
			s = s[:e.weights.MaxSuggestions]
		}
		resp.Suggestions = append(resp.Suggestions, s...)
	}

	e.logger.Debug("search",
		"query", qc.Normalized,
		"expanded", len(qc.Expanded),
		"candidates", len(cands),
		"results", len(resp.Results),
		"matched_terms", qc.MatchedTerms,
		"suggestions", len(resp.Suggestions))
	return resp
}

// Explain scores one operation against query whether or not it would
// survive matching. It reports false for an unknown id or empty query.
func (e *Engine) Explain(query, id string) (ScoredResult, bool) {
	qc := newQueryContext(query)
	if qc.Normalized == "" {
		return ScoredResult{}, false
	}
	var mq index.Query
	mq, qc.Expanded = e.expander.expand(qc.Normalized)
	for _, c := range e.idx.Match(mq, 0) {
		if c.Entry.Entry.ID == id {
			return e.score(c, qc), true
		}
	}
	for i := range e.idx.Entries {
		if e.idx.Entries[i].Entry.ID == id {
			c := index.Candidate{Entry: &e.idx.Entries[i], Distance: 1}
			return e.score(c, qc), true
		}
	}
	return ScoredResult{}, false
}

// ExpandContext widens query with the domain table and recent searches.
func (e *Engine) ExpandContext(query string, recent []string) ContextExpansion {
	return e.expander.ExpandWithContext(query, recent)
}

// QuickSearch resolves query to a single operation: a direct lookup hit at
// or above the acceptance confidence, otherwise the top search result.
func (e *Engine) QuickSearch(query string) (*catalog.OperationEntry, bool) {
	if m, ok := e.DirectLookup(query); ok && m.Confidence >= e.weights.DirectAccept {
		return m.Operation, true
	}
	resp := e.Search(query, 1)
	if len(resp.Results) == 0 {
		return nil, false
	}
	return resp.Results[0].Operation, true
}

// DirectLookup runs the direct lookup path over the engine's catalog.
func (e *Engine) DirectLookup(query string) (DirectMatch, bool) {
	m, ok := DirectLookup(query, e.idx.Catalog)
	if ok {
		e.logger.Debug("direct lookup", "query", query, "id", m.Operation.ID, "kind", m.Kind, "confidence", m.Confidence)
	}
	return m, ok
}

// TypoSuggestions ranks corrections for query against the catalog keywords
// and common file-format misspellings.
func (e *Engine) TypoSuggestions(query string, limit int) []TypoSuggestion {
	return RankTypos(query, e.idx.Catalog, e.dicts.Formats, limit)
}

// Suggest returns type-ahead completions for a partial query.
func (e *Engine) Suggest(partial string, limit int) []string {
	return Suggest(partial, e.idx.Catalog, e.dicts.Synonyms, limit)
}

func (e *Engine) score(c index.Candidate, qc *QueryContext) ScoredResult {
	pct, b := e.weights.scoreCandidate(c, qc)
	return ScoredResult{
		Operation:    c.Entry.Entry,
		Percentage:   pct,
		Confidence:   e.weights.Confidence(pct),
		MatchType:    e.weights.classify(c.Entry, qc.Normalized, pct, b),
		MatchedTerms: b.MatchedTerms,
		Breakdown:    b,
	}
}

func hasHigh(results []ScoredResult) bool {
	for _, r := range results {
		if r.Confidence == ConfidenceHigh {
			return true
		}
	}
	return false
}

func matchedTerms(results []ScoredResult) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range results {
		for _, t := range r.MatchedTerms {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
