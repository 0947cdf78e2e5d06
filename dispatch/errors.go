package dispatch

// JSON-RPC 2.0 error codes used by the MCP server surface. Tool-level
// failures are reported inside the Result envelope instead; these codes
// cover transport-level problems only.
const (
	ErrCodeParseError     = -32700
	ErrCodeInvalidRequest = -32600
	ErrCodeMethodNotFound = -32601
	ErrCodeInvalidParams  = -32602
	ErrCodeInternal       = -32603
)
