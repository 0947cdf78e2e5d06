// Package retrieval provides the document retrieval backend consumed by the
// dispatch package.
//
// It exists to:
//   - Define the document model and metadata conventions shared by every
//     component (content plus a free-form metadata map carrying source, page
//     and content type)
//   - Define the narrow capability interfaces ([Retriever], [RelevanceFilter],
//     [Store]) the dispatcher depends on, composed as [Pipeline]
//   - Supply an in-process [Pipeline] implementation: [Index], a Bleve-backed
//     hybrid retriever over pre-chunked documents, paired with
//     [TermOverlapFilter] for relevance filtering
//
// # Thread Safety
//
// Index is safe for concurrent use. It uses an internal RWMutex to protect
// index state and caches the Bleve index based on a document fingerprint,
// only rebuilding when the document set changes.
//
// # Behavior
//
// Invoke ranks with a disjunction of a bag-of-words match query and a boosted
// phrase match query, with deterministic tie-breaking (score DESC, then
// document ID ASC). Empty queries are rejected with [ErrEmptyQuery].
package retrieval
