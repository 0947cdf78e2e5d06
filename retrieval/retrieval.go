package retrieval

import (
	"context"
	"errors"

	"github.com/mitchellh/mapstructure"
)

// Error values for consistent error handling by callers.
var (
	ErrEmptyQuery = errors.New("empty query")
)

// Document is a retrievable chunk of a source document. Content is the chunk
// text; Metadata conventionally carries "source" (document identifier or
// filename), "page" and "type".
type Document struct {
	Content  string
	Metadata map[string]any
}

// ScoredDocument pairs a document with the relevance score a filter assigned
// to it.
type ScoredDocument struct {
	Document Document
	Score    float64
}

// Retriever returns documents relevant to a query, most relevant first.
type Retriever interface {
	Invoke(ctx context.Context, query string) ([]Document, error)
}

// RelevanceFilter re-scores candidate documents against a query and drops
// irrelevant ones. Results are ordered by descending score.
type RelevanceFilter interface {
	FilterDocuments(ctx context.Context, query string, docs []Document) ([]ScoredDocument, error)
}

// Store exposes every ingested document, in ingestion order.
type Store interface {
	Documents() []Document
}

// Pipeline is the full retrieval capability surface the dispatcher consumes.
type Pipeline interface {
	Retriever
	RelevanceFilter
	Store
}

// documentMeta is the typed projection of the metadata conventions.
type documentMeta struct {
	Source string `mapstructure:"source"`
	Page   string `mapstructure:"page"`
	Type   string `mapstructure:"type"`
}

func (d Document) meta() documentMeta {
	var m documentMeta
	_ = decodeMeta(d.Metadata, &m)
	if m.Source == "" {
		m.Source = "Unknown"
	}
	if m.Page == "" {
		m.Page = "?"
	}
	if m.Type == "" {
		m.Type = "text"
	}
	return m
}

// Source returns the document's source identifier, or "Unknown" when the
// metadata does not carry one.
func (d Document) Source() string { return d.meta().Source }

// Page returns the document's page label, or "?" when absent. Numeric page
// values are stringified.
func (d Document) Page() string { return d.meta().Page }

// Type returns the document's content type, defaulting to "text".
func (d Document) Type() string { return d.meta().Type }

// decodeMeta decodes a free-form metadata map into a typed struct. Decoding
// is weakly typed so numeric values satisfy string fields.
func decodeMeta(input map[string]any, out any) error {
	if len(input) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
