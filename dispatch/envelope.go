package dispatch

// DocumentView is the outward projection of a retrieved chunk.
type DocumentView struct {
	Content string `json:"content"`
	Source  string `json:"source"`
	Page    string `json:"page"`
	Type    string `json:"type"`
}

// CatalogEntry summarizes one source document in the knowledge base.
type CatalogEntry struct {
	Name         string   `json:"name"`
	TotalChunks  int      `json:"total_chunks"`
	PageCount    int      `json:"page_count"`
	ContentTypes []string `json:"content_types"`
}

// Result is the uniform envelope every tool execution returns. Exactly one
// of Success or Error is meaningful: failure envelopes carry Error and no
// documents, success envelopes never carry Error.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// Documents holds projected chunks for the retrieval tools, in
	// relevance order.
	Documents []DocumentView `json:"documents,omitempty"`
	Count     int            `json:"count"`

	// Catalog holds per-source aggregates for the document listing tool.
	Catalog        []CatalogEntry `json:"catalog,omitempty"`
	TotalDocuments int            `json:"total_documents,omitempty"`

	// SearchedDocument tags scoped search results with the requested
	// document name.
	SearchedDocument string `json:"searched_document,omitempty"`

	Error string `json:"error,omitempty"`
}

func failure(message string) Result {
	return Result{Error: message}
}
