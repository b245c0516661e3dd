// Command server is the main entry point for the Calculator MCP Server
package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/machinewright/mcp-server-calculator/core"
	"github.com/machinewright/mcp-server-calculator/pkg/calc"
	"github.com/machinewright/mcp-server-calculator/pkg/config"
	"github.com/machinewright/mcp-server-calculator/pkg/tools/calculator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Warn("Configuration warning", "error", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Initialize MCP server
	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithLogging(),
	)

	// Register calculator tools
	engine := calc.NewEngine(calc.Limits{
		MaxValues: cfg.Limits.MaxValues,
		MaxBatch:  cfg.Limits.MaxBatch,
	})

	registry := NewToolRegistry(mcpServer)
	for _, tool := range calculator.RegisterCalculatorTools(engine) {
		registry.RegisterTool(tool)
	}

	// Start the server
	switch cfg.Transport {
	case "http":
		log.Info("Starting Calculator MCP Server", "transport", "http", "addr", cfg.HTTPAddr)
		httpServer := server.NewStreamableHTTPServer(mcpServer)
		if err := httpServer.Start(cfg.HTTPAddr); err != nil {
			log.Fatal("Server error", "error", err)
		}
	default:
		log.Info("Starting Calculator MCP Server", "transport", "stdio")
		if err := server.ServeStdio(mcpServer); err != nil {
			log.Fatal("Server error", "error", err)
		}
	}
}

// ToolRegistry manages tool registration and lifecycle
type ToolRegistry struct {
	server *server.MCPServer
	tools  map[string]core.Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry(mcpServer *server.MCPServer) *ToolRegistry {
	return &ToolRegistry{
		server: mcpServer,
		tools:  make(map[string]core.Tool),
	}
}

// RegisterTool registers a tool with the server, wrapping its handler with
// per-call logging. Every invocation gets a call id so concurrent calls can
// be told apart in the logs.
func (r *ToolRegistry) RegisterTool(tool core.Tool) {
	name := tool.Handle().Name
	r.tools[name] = tool

	r.server.AddTool(tool.Handle(), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		callID := uuid.NewString()
		log.Debug("Tool call", "tool", name, "call_id", callID)

		result, err := tool.Handler(ctx, request)
		if err != nil {
			log.Error("Tool call failed", "tool", name, "call_id", callID, "error", err)
		} else if result != nil && result.IsError {
			log.Warn("Tool returned error result", "tool", name, "call_id", callID)
		}

		return result, err
	})
}
