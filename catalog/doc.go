// Package catalog declares the tools an LLM runtime may invoke against the
// knowledge base.
//
// The catalog is pure data: an ordered, process-lifetime list of tool
// declarations, each carrying a name, a description, and a JSON-Schema-like
// parameter object. The same declarations are handed to the LLM runtime's
// function-calling feature and used by the dispatch package to route calls,
// so names and parameter shapes must stay stable.
//
// Parameter types use the uppercase enum form (OBJECT, STRING, INTEGER)
// expected by Gemini-style function declarations. [MCPTools] converts the
// catalog to MCP tool declarations with lowercased schema types for MCP
// clients.
package catalog
