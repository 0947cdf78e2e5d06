package dispatch

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/ragkit/toolbridge/retrieval"
)

// Default candidate window sizes per tool.
const (
	defaultRetrieveTopK = 8
	defaultScopedTopK   = 5
)

func (d *Dispatcher) retrieveDocuments(ctx context.Context, args map[string]any) Result {
	topK := intArg(args, "top_k", defaultRetrieveTopK)

	query := stringArg(args, "query")
	if query == "" {
		// Some runtimes emit the query under a "question" alias.
		query = stringArg(args, "question")
	}
	if query == "" {
		return failure("Query is required")
	}

	if d.pipeline == nil {
		return failure("RAG pipeline not initialized")
	}

	docs, err := d.pipeline.Invoke(ctx, query)
	if err != nil {
		return failure(err.Error())
	}
	if len(docs) == 0 {
		return Result{
			Success:   true,
			Message:   "No relevant documents found",
			Documents: []DocumentView{},
		}
	}

	// Truncate before filtering: the filter sees the candidate window, not
	// the full result set.
	if len(docs) > topK {
		docs = docs[:topK]
	}
	scored, err := d.pipeline.FilterDocuments(ctx, query, docs)
	if err != nil {
		return failure(err.Error())
	}

	views := projectDocuments(scored)
	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Retrieved %d relevant documents", len(views)),
		Documents: views,
		Count:     len(views),
	}
}

func (d *Dispatcher) searchSpecificDocument(ctx context.Context, args map[string]any) Result {
	documentName := stringArg(args, "document_name")
	query := stringArg(args, "query")
	topK := intArg(args, "top_k", defaultScopedTopK)

	if documentName == "" || query == "" {
		return failure("Both document_name and query are required")
	}

	if d.pipeline == nil {
		return failure("RAG pipeline not initialized")
	}

	docs, err := d.pipeline.Invoke(ctx, query)
	if err != nil {
		return failure(err.Error())
	}

	// Scope to the named document. Matching is against the raw source
	// metadata, so chunks without a source never match.
	needle := strings.ToLower(documentName)
	var scoped []retrieval.Document
	for _, doc := range docs {
		source := cast.ToString(doc.Metadata["source"])
		if strings.Contains(strings.ToLower(source), needle) {
			scoped = append(scoped, doc)
		}
	}

	if len(scoped) == 0 {
		return Result{
			Success:          true,
			Message:          fmt.Sprintf("No content found in '%s' for this query", documentName),
			Documents:        []DocumentView{},
			SearchedDocument: documentName,
		}
	}

	// Widen the candidate window, filter, then cut to topK. Note this is
	// the reverse of retrieveDocuments, which cuts before filtering.
	if window := 2 * topK; len(scoped) > window {
		scoped = scoped[:window]
	}
	scored, err := d.pipeline.FilterDocuments(ctx, query, scoped)
	if err != nil {
		return failure(err.Error())
	}
	if len(scored) > topK {
		scored = scored[:topK]
	}

	views := projectDocuments(scored)
	return Result{
		Success:          true,
		Message:          fmt.Sprintf("Retrieved %d chunks from '%s'", len(views), documentName),
		Documents:        views,
		Count:            len(views),
		SearchedDocument: documentName,
	}
}

func (d *Dispatcher) getDocumentList(ctx context.Context, args map[string]any) Result {
	var docs []retrieval.Document
	if d.pipeline != nil {
		docs = d.pipeline.Documents()
	}
	if len(docs) == 0 {
		return failure("No documents loaded in the knowledge base")
	}

	type group struct {
		pages  map[string]struct{}
		types  map[string]struct{}
		chunks int
	}
	groups := make(map[string]*group)
	var order []string

	for _, doc := range docs {
		source := doc.Source()
		g, ok := groups[source]
		if !ok {
			g = &group{
				pages: make(map[string]struct{}),
				types: make(map[string]struct{}),
			}
			groups[source] = g
			order = append(order, source)
		}
		g.pages[doc.Page()] = struct{}{}
		g.types[doc.Type()] = struct{}{}
		g.chunks++
	}

	entries := make([]CatalogEntry, 0, len(order))
	for _, source := range order {
		g := groups[source]
		types := make([]string, 0, len(g.types))
		for t := range g.types {
			types = append(types, t)
		}
		slices.Sort(types)
		entries = append(entries, CatalogEntry{
			Name:         source,
			TotalChunks:  g.chunks,
			PageCount:    len(g.pages),
			ContentTypes: types,
		})
	}

	return Result{
		Success:        true,
		Message:        fmt.Sprintf("Found %d documents in knowledge base", len(entries)),
		Catalog:        entries,
		TotalDocuments: len(entries),
	}
}

func projectDocuments(scored []retrieval.ScoredDocument) []DocumentView {
	views := make([]DocumentView, 0, len(scored))
	for _, sd := range scored {
		views = append(views, DocumentView{
			Content: sd.Document.Content,
			Source:  sd.Document.Source(),
			Page:    sd.Document.Page(),
			Type:    sd.Document.Type(),
		})
	}
	return views
}
