package prompt

import (
	"strings"
	"testing"

	"github.com/ragkit/toolbridge/catalog"
	"github.com/ragkit/toolbridge/dispatch"
)

func TestFormatResultFailure(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		result   dispatch.Result
		want     string
	}{
		{
			"with error message",
			catalog.ToolRetrieveDocuments,
			dispatch.Result{Error: "Query is required"},
			"[Tool Error - retrieve_documents]: Query is required",
		},
		{
			"without error message",
			catalog.ToolGetDocumentList,
			dispatch.Result{},
			"[Tool Error - get_document_list]: Unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatResult(tt.toolName, tt.result)
			if got != tt.want {
				t.Errorf("FormatResult = %q, want %q", got, tt.want)
			}
			if !strings.HasPrefix(got, "[Tool Error - ") {
				t.Errorf("failure output missing error prefix: %q", got)
			}
		})
	}
}

func TestFormatResultEmptyDocuments(t *testing.T) {
	for _, toolName := range []string{
		catalog.ToolRetrieveDocuments,
		catalog.ToolSearchSpecificDocument,
	} {
		got := FormatResult(toolName, dispatch.Result{
			Success:   true,
			Documents: []dispatch.DocumentView{},
		})
		want := "[" + toolName + "]: No relevant documents found."
		if got != want {
			t.Errorf("FormatResult(%s) = %q, want %q", toolName, got, want)
		}
	}
}

func TestFormatResultDocuments(t *testing.T) {
	result := dispatch.Result{
		Success: true,
		Count:   2,
		Documents: []dispatch.DocumentView{
			{Content: "first chunk", Source: "A.pdf", Page: "1", Type: "text"},
			{Content: "second chunk", Source: "B.pdf", Page: "?", Type: "table"},
		},
	}

	got := FormatResult(catalog.ToolRetrieveDocuments, result)

	want := "[retrieve_documents]: Retrieved 2 documents:\n\n" +
		"--- Document 1 ---\n" +
		"Source: A.pdf, Page: 1, Type: text\n" +
		"Content: first chunk\n\n" +
		"--- Document 2 ---\n" +
		"Source: B.pdf, Page: ?, Type: table\n" +
		"Content: second chunk\n\n"
	if got != want {
		t.Errorf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestFormatResultDocumentOrderPreserved(t *testing.T) {
	result := dispatch.Result{
		Success: true,
		Documents: []dispatch.DocumentView{
			{Content: "most relevant", Source: "Z.pdf"},
			{Content: "less relevant", Source: "A.pdf"},
		},
	}

	got := FormatResult(catalog.ToolSearchSpecificDocument, result)

	first := strings.Index(got, "most relevant")
	second := strings.Index(got, "less relevant")
	if first < 0 || second < 0 || first > second {
		t.Errorf("envelope order not preserved in output:\n%s", got)
	}
}

func TestFormatResultCatalog(t *testing.T) {
	result := dispatch.Result{
		Success:        true,
		TotalDocuments: 2,
		Catalog: []dispatch.CatalogEntry{
			{Name: "A.pdf", TotalChunks: 12, PageCount: 4},
			{Name: "B.pdf", TotalChunks: 3, PageCount: 1},
		},
	}

	got := FormatResult(catalog.ToolGetDocumentList, result)

	want := "[get_document_list]: Available documents:\n\n" +
		"- A.pdf: 12 chunks, 4 pages\n" +
		"- B.pdf: 3 chunks, 1 pages\n"
	if got != want {
		t.Errorf("unexpected output:\n got %q\nwant %q", got, want)
	}
}

func TestFormatResultGenericFallback(t *testing.T) {
	result := dispatch.Result{
		Success: true,
		Message: "done",
		Count:   1,
	}

	got := FormatResult("future_tool", result)

	if !strings.HasPrefix(got, "[future_tool]: ") {
		t.Errorf("expected tool name prefix, got %q", got)
	}
	if !strings.Contains(got, `"success": true`) {
		t.Errorf("expected structured dump, got %q", got)
	}
	if !strings.Contains(got, `"message": "done"`) {
		t.Errorf("expected message in dump, got %q", got)
	}
}
