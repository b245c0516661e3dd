// Package core defines the contract shared by every tool the server exposes.
package core

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is implemented by every calculator tool registered with the MCP server.
type Tool interface {
	// Handle returns the MCP tool definition, including its input schema.
	Handle() mcp.Tool

	// Handler executes a tool call. Calculation failures are reported as
	// error results on the MCP side; a non-nil Go error means the call
	// could not be processed at all.
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
}
