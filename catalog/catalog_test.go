package catalog

import (
	"reflect"
	"testing"
)

func TestToolsOrderAndNames(t *testing.T) {
	tools := Tools()

	want := []string{
		ToolRetrieveDocuments,
		ToolSearchSpecificDocument,
		ToolGetDocumentList,
	}
	if len(tools) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(tools))
	}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, tools[i].Name)
		}
	}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestToolsReturnsCopy(t *testing.T) {
	first := Tools()
	first[0] = Schema{Name: "clobbered"}

	if second := Tools(); second[0].Name != ToolRetrieveDocuments {
		t.Errorf("catalog mutated through returned slice: %s", second[0].Name)
	}
}

func TestRequiredParameters(t *testing.T) {
	tests := []struct {
		tool     string
		required []string
	}{
		{ToolRetrieveDocuments, []string{"query"}},
		{ToolSearchSpecificDocument, []string{"document_name", "query"}},
		{ToolGetDocumentList, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			schema, ok := Find(tt.tool)
			if !ok {
				t.Fatalf("tool %s not in catalog", tt.tool)
			}
			required, ok := schema.Parameters["required"].([]string)
			if !ok {
				t.Fatalf("expected required list, got %T", schema.Parameters["required"])
			}
			if !reflect.DeepEqual(required, tt.required) {
				t.Errorf("required = %v, want %v", required, tt.required)
			}
		})
	}
}

func TestFindUnknown(t *testing.T) {
	if _, ok := Find("no_such_tool"); ok {
		t.Error("expected Find to miss for unknown name")
	}
}

func TestMCPToolsLowercasesTypes(t *testing.T) {
	tools := MCPTools()
	if len(tools) != len(Names()) {
		t.Fatalf("expected %d MCP tools, got %d", len(Names()), len(tools))
	}

	schema, ok := tools[0].InputSchema.(map[string]any)
	if !ok {
		t.Fatalf("expected map input schema, got %T", tools[0].InputSchema)
	}
	if schema["type"] != "object" {
		t.Errorf("expected lowercased object type, got %v", schema["type"])
	}

	properties := schema["properties"].(map[string]any)
	query := properties["query"].(map[string]any)
	if query["type"] != "string" {
		t.Errorf("expected lowercased string type, got %v", query["type"])
	}
	topK := properties["top_k"].(map[string]any)
	if topK["type"] != "integer" {
		t.Errorf("expected lowercased integer type, got %v", topK["type"])
	}
}

func TestMCPToolsDoesNotMutateCatalog(t *testing.T) {
	_ = MCPTools()

	schema, _ := Find(ToolRetrieveDocuments)
	if schema.Parameters["type"] != "OBJECT" {
		t.Errorf("catalog schema mutated: %v", schema.Parameters["type"])
	}
	properties := schema.Parameters["properties"].(map[string]any)
	query := properties["query"].(map[string]any)
	if query["type"] != "STRING" {
		t.Errorf("nested catalog schema mutated: %v", query["type"])
	}
}
