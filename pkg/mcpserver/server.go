// Package mcpserver binds the tool registry onto an MCP server and serves it
// over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/quaylabs/multisearch-mcp/pkg/tools"
)

// Options names the server implementation advertised during initialization.
type Options struct {
	Name    string
	Version string
}

// New builds an MCP server exposing every tool in the registry. Calls are
// routed through the dispatcher so failures stay structured and per-call.
func New(registry *tools.Registry, dispatcher *tools.Dispatcher, opts Options, log zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: opts.Name, Version: opts.Version}, nil)
	for _, tool := range registry.All() {
		addTool(server, tool, dispatcher)
		log.Debug().Str("tool", tool.Name).Msg("tool registered")
	}
	return server
}

func addTool(server *mcp.Server, tool *tools.Tool, dispatcher *tools.Dispatcher) {
	name := tool.Name
	mcp.AddTool(server, &tool.Tool, func(ctx context.Context, req *mcp.CallToolRequest, args map[string]any) (*mcp.CallToolResult, map[string]any, error) {
		result := dispatcher.Dispatch(ctx, name, args)
		if result.IsError() {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: result.Error}},
				IsError: true,
			}, nil, nil
		}
		return nil, result.Payload, nil
	})
}

// Run serves the MCP server over stdio until the context is canceled or the
// client disconnects.
func Run(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}
