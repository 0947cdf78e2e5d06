package retrieval

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/spf13/cast"
)

// Defaults applied by NewIndex when the corresponding option is zero.
const (
	DefaultMaxResults  = 50
	DefaultPhraseBoost = 2.0
)

// IndexOptions configures an Index.
type IndexOptions struct {
	// MaxResults caps the number of documents Invoke returns (0 = default).
	MaxResults int

	// PhraseBoost boosts exact phrase matches over bag-of-words matches
	// (0 = default).
	PhraseBoost float64

	// Filter is the relevance filter FilterDocuments delegates to.
	// Defaults to NewTermOverlapFilter(0).
	Filter RelevanceFilter
}

// Index is an in-memory hybrid retriever over pre-chunked documents. It
// implements [Pipeline]: ranked retrieval via a Bleve mem-only index,
// relevance filtering via the configured filter, and document listing in
// ingestion order.
type Index struct {
	mu   sync.RWMutex
	opts IndexOptions

	docs []Document

	// idx covers docs as of fingerprint; rebuilt lazily on search.
	idx         bleve.Index
	fingerprint string
}

// NewIndex creates an empty index with the given options.
func NewIndex(opts IndexOptions) *Index {
	if opts.MaxResults <= 0 {
		opts.MaxResults = DefaultMaxResults
	}
	if opts.PhraseBoost <= 0 {
		opts.PhraseBoost = DefaultPhraseBoost
	}
	if opts.Filter == nil {
		opts.Filter = NewTermOverlapFilter(0)
	}
	return &Index{opts: opts}
}

// Add appends documents to the corpus. The search index is rebuilt lazily
// on the next Invoke.
func (x *Index) Add(docs ...Document) {
	x.mu.Lock()
	x.docs = append(x.docs, docs...)
	x.mu.Unlock()
}

// Documents implements [Store]. The returned slice is a copy in ingestion
// order.
func (x *Index) Documents() []Document {
	x.mu.RLock()
	defer x.mu.RUnlock()
	out := make([]Document, len(x.docs))
	copy(out, x.docs)
	return out
}

// Invoke implements [Retriever]. It runs a disjunction of a match query and
// a boosted phrase query over the corpus and returns the matching documents
// ordered by descending score, ties broken by document ID.
func (x *Index) Invoke(ctx context.Context, query string) ([]Document, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	x.mu.Lock()
	idx, err := x.ensureIndex()
	if err != nil {
		x.mu.Unlock()
		return nil, err
	}
	docs := x.docs
	x.mu.Unlock()

	match := bleve.NewMatchQuery(query)
	phrase := bleve.NewMatchPhraseQuery(query)
	phrase.SetBoost(x.opts.PhraseBoost)

	req := bleve.NewSearchRequestOptions(
		bleve.NewDisjunctionQuery(match, phrase),
		x.opts.MaxResults, 0, false,
	)
	req.SortBy([]string{"-_score", "_id"})

	res, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	out := make([]Document, 0, len(res.Hits))
	for _, hit := range res.Hits {
		i, ok := parseDocID(hit.ID)
		if !ok || i >= len(docs) {
			continue
		}
		out = append(out, docs[i])
	}
	return out, nil
}

// FilterDocuments implements [RelevanceFilter] by delegating to the
// configured filter.
func (x *Index) FilterDocuments(ctx context.Context, query string, docs []Document) ([]ScoredDocument, error) {
	return x.opts.Filter.FilterDocuments(ctx, query, docs)
}

// Close releases the underlying Bleve index.
func (x *Index) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.idx == nil {
		return nil
	}
	err := x.idx.Close()
	x.idx = nil
	x.fingerprint = ""
	return err
}

// ensureIndex returns a Bleve index covering the current corpus, rebuilding
// it when the document fingerprint has changed. Caller must hold the write
// lock.
func (x *Index) ensureIndex() (bleve.Index, error) {
	fp := computeFingerprint(x.docs)
	if x.idx != nil && fp == x.fingerprint {
		return x.idx, nil
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	batch := idx.NewBatch()
	for i, doc := range x.docs {
		fields := map[string]any{
			"content": doc.Content,
			"source":  cast.ToString(doc.Metadata["source"]),
		}
		if err := batch.Index(formatDocID(i), fields); err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("failed to index document %d: %w", i, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("failed to build index: %w", err)
	}

	if x.idx != nil {
		_ = x.idx.Close()
	}
	x.idx = idx
	x.fingerprint = fp
	return idx, nil
}

// formatDocID returns a zero-padded ID so lexicographic and numeric order
// agree for ID tie-breaking.
func formatDocID(i int) string {
	return fmt.Sprintf("doc-%08d", i)
}

func parseDocID(id string) (int, bool) {
	var i int
	if _, err := fmt.Sscanf(id, "doc-%08d", &i); err != nil {
		return 0, false
	}
	return i, true
}
