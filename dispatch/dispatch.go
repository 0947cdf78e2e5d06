package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ragkit/toolbridge/catalog"
	"github.com/ragkit/toolbridge/retrieval"
)

// Config configures a Dispatcher.
type Config struct {
	// Pipeline is the retrieval backend. A nil pipeline is a degraded but
	// running state: tools that need it report an error envelope instead of
	// failing construction.
	Pipeline retrieval.Pipeline

	// Logger receives one record per tool invocation. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// ServerInfo describes this server in the MCP initialize response.
	ServerInfo ServerInfo
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

type handlerFunc func(ctx context.Context, args map[string]any) Result

// Dispatcher routes tool calls from the LLM runtime to their handlers.
type Dispatcher struct {
	pipeline retrieval.Pipeline
	logger   *slog.Logger
	config   Config
	handlers map[string]handlerFunc
}

// New creates a Dispatcher with the given config.
func New(cfg Config) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Dispatcher{
		pipeline: cfg.Pipeline,
		logger:   logger,
		config:   cfg,
	}
	d.handlers = map[string]handlerFunc{
		catalog.ToolRetrieveDocuments:      d.retrieveDocuments,
		catalog.ToolSearchSpecificDocument: d.searchSpecificDocument,
		catalog.ToolGetDocumentList:        d.getDocumentList,
	}
	return d
}

// ToolNames returns the names the dispatcher can execute, in catalog order.
func (d *Dispatcher) ToolNames() []string {
	names := make([]string, 0, len(d.handlers))
	for _, name := range catalog.Names() {
		if _, ok := d.handlers[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Execute runs the named tool with the given arguments and returns its
// result envelope. Execute always returns a well-formed envelope: unknown
// tools and any internal failure are reported in it, never propagated.
func (d *Dispatcher) Execute(ctx context.Context, name string, args map[string]any) (res Result) {
	d.logger.Info("executing tool", "tool", name, "args", args)

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("tool execution panicked", "tool", name, "panic", r)
			res = failure(fmt.Sprintf("%v", r))
		}
	}()

	handler, ok := d.handlers[name]
	if !ok {
		return failure(fmt.Sprintf("Unknown tool: %s", name))
	}
	return handler(ctx, args)
}
