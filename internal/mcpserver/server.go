// Package mcpserver exposes the tool registry over the Model Context
// Protocol on stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hession/pokemate/internal/logger"
	"github.com/hession/pokemate/internal/pokedex"
	"github.com/hession/pokemate/internal/tools"
)

// ServerName is announced to MCP clients during initialization.
const ServerName = "pokemate"

// New creates an MCP server with every tool of reg registered.
func New(reg *tools.Registry, version string) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, tool := range reg.List() {
		schema, err := tools.InputSchema(tool)
		if err != nil {
			return nil, err
		}
		s.AddTool(
			mcp.NewToolWithRawSchema(tool.Name(), tool.Description(), schema),
			Handler(reg, tool.Name()),
		)
	}
	return s, nil
}

// Handler adapts one registry tool to an MCP tool handler. Tool failures
// become results with IsError set; the handler itself never fails.
func Handler(reg *tools.Registry, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := reg.Execute(ctx, name, req.GetArguments())
		if err != nil {
			logger.Error("mcp: %s: %v", name, err)
			data, _ := json.Marshal(pokedex.StructuredError{Message: err.Error()})
			return mcp.NewToolResultError(string(data)), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: result.Text,
				},
			},
			IsError: result.IsError,
		}, nil
	}
}

// Serve runs s on stdin/stdout until the input closes. Protocol errors go
// to the log file, never to stdout.
func Serve(s *server.MCPServer) error {
	logger.Info("MCP server listening on stdio")
	errLog := log.New(logger.GetWriter(logger.ERROR), "mcp: ", 0)
	return server.ServeStdio(s, server.WithErrorLogger(errLog))
}
