package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ragkit/toolbridge/catalog"
	"github.com/ragkit/toolbridge/dispatch"
)

// FormatResult renders a tool execution result as a text block suitable for
// insertion into a follow-up prompt.
func FormatResult(toolName string, result dispatch.Result) string {
	if !result.Success {
		message := result.Error
		if message == "" {
			message = "Unknown error"
		}
		return fmt.Sprintf("[Tool Error - %s]: %s", toolName, message)
	}

	switch toolName {
	case catalog.ToolRetrieveDocuments, catalog.ToolSearchSpecificDocument:
		return formatDocuments(toolName, result)
	case catalog.ToolGetDocumentList:
		return formatCatalog(toolName, result)
	default:
		return formatGeneric(toolName, result)
	}
}

func formatDocuments(toolName string, result dispatch.Result) string {
	if len(result.Documents) == 0 {
		return fmt.Sprintf("[%s]: No relevant documents found.", toolName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s]: Retrieved %d documents:\n\n", toolName, len(result.Documents))
	for i, doc := range result.Documents {
		fmt.Fprintf(&b, "--- Document %d ---\n", i+1)
		fmt.Fprintf(&b, "Source: %s, Page: %s, Type: %s\n", doc.Source, doc.Page, doc.Type)
		fmt.Fprintf(&b, "Content: %s\n\n", doc.Content)
	}
	return b.String()
}

func formatCatalog(toolName string, result dispatch.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]: Available documents:\n\n", toolName)
	for _, entry := range result.Catalog {
		fmt.Fprintf(&b, "- %s: %d chunks, %d pages\n", entry.Name, entry.TotalChunks, entry.PageCount)
	}
	return b.String()
}

func formatGeneric(toolName string, result dispatch.Result) string {
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Sprintf("[%s]: %+v", toolName, result)
	}
	return fmt.Sprintf("[%s]: %s", toolName, raw)
}
