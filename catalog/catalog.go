package catalog

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Names of the tools the dispatcher knows how to execute.
const (
	ToolRetrieveDocuments      = "retrieve_documents"
	ToolSearchSpecificDocument = "search_specific_document"
	ToolGetDocumentList        = "get_document_list"
)

// Schema declares a single callable tool for the LLM runtime.
type Schema struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

var tools = []Schema{
	{
		Name: ToolRetrieveDocuments,
		Description: "Retrieve relevant documents from the knowledge base. " +
			"Use this tool when you need to find information to answer the user's question. " +
			"This searches across all available documents.",
		Parameters: map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "STRING",
					"description": "The search query to find relevant documents. Should be a clear, specific question or topic.",
				},
				"top_k": map[string]any{
					"type":        "INTEGER",
					"description": "Number of top documents to retrieve (default: 8, max: 15)",
				},
			},
			"required": []string{"query"},
		},
	},
	{
		Name: ToolSearchSpecificDocument,
		Description: "Search for information within a specific document only. " +
			"Use this when the user explicitly mentions a document name or asks to use only a specific source.",
		Parameters: map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"document_name": map[string]any{
					"type":        "STRING",
					"description": "The name of the specific document to search within (e.g., a PDF filename)",
				},
				"query": map[string]any{
					"type":        "STRING",
					"description": "The search query within that specific document",
				},
				"top_k": map[string]any{
					"type":        "INTEGER",
					"description": "Number of top chunks to retrieve from this document (default: 5)",
				},
			},
			"required": []string{"document_name", "query"},
		},
	},
	{
		Name: ToolGetDocumentList,
		Description: "Get a list of all available documents in the knowledge base with their metadata. " +
			"Use this when the user asks what documents are available or wants to know the sources.",
		Parameters: map[string]any{
			"type":       "OBJECT",
			"properties": map[string]any{},
			"required":   []string{},
		},
	},
}

// Tools returns the full tool catalog in declaration order. The returned
// slice is a copy; the parameter maps are shared and must be treated as
// read-only.
func Tools() []Schema {
	out := make([]Schema, len(tools))
	copy(out, tools)
	return out
}

// Names returns the catalog's tool names in declaration order.
func Names() []string {
	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	return names
}

// Find returns the declaration for name, or false if the catalog does not
// contain it.
func Find(name string) (Schema, bool) {
	for _, t := range tools {
		if t.Name == name {
			return t, true
		}
	}
	return Schema{}, false
}

// MCPTools converts the catalog to MCP tool declarations. Schema types are
// lowercased to the JSON Schema spelling MCP clients expect.
func MCPTools() []mcp.Tool {
	out := make([]mcp.Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, mcp.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: lowerSchemaTypes(t.Parameters),
		})
	}
	return out
}

// lowerSchemaTypes deep-copies a parameter object, lowercasing every "type"
// value it finds along the way.
func lowerSchemaTypes(schema map[string]any) map[string]any {
	out := make(map[string]any, len(schema))
	for key, value := range schema {
		switch v := value.(type) {
		case string:
			if key == "type" {
				out[key] = lowerType(v)
				continue
			}
			out[key] = v
		case map[string]any:
			out[key] = lowerSchemaTypes(v)
		default:
			out[key] = v
		}
	}
	return out
}

func lowerType(t string) string {
	switch t {
	case "OBJECT":
		return "object"
	case "STRING":
		return "string"
	case "INTEGER":
		return "integer"
	case "NUMBER":
		return "number"
	case "BOOLEAN":
		return "boolean"
	case "ARRAY":
		return "array"
	default:
		return t
	}
}
