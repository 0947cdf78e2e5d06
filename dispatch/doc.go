// Package dispatch validates, routes and executes tool calls against the
// retrieval backend.
//
// Dispatcher is the sole call surface the host LLM runtime uses: it receives
// a tool name and a map of raw arguments, coerces the arguments defensively,
// routes to the matching handler, and normalizes every outcome into a uniform
// [Result] envelope. No failure propagates past Execute: unknown tools,
// validation problems, collaborator errors and panics all come back as
// reported failure envelopes, so the conversation can continue.
//
// An empty result set is not a failure. A successful envelope with Count 0
// tells the LLM "nothing relevant exists"; a failure envelope tells it "the
// tool is broken". Handlers keep that distinction intact.
//
// The package also provides an MCP-style JSON-RPC surface (HandleRequest,
// ServeStdio, ServeHTTP) exposing the catalog via tools/list and the
// dispatcher via tools/call.
package dispatch
