package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// WrapToolHandler wraps a tool handler with metrics collection. A handler is
// counted as failed both when it returns a Go error and when it returns a
// tool-level error result.
func WrapToolHandler(handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), toolName, moduleName string) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()

		// Record module request
		RecordModuleRequest(moduleName)

		// Call the actual handler
		result, err := handler(ctx, request)

		duration := time.Since(start)
		success := err == nil && (result == nil || !result.IsError)

		// Record tool call metrics
		RecordMCPToolCall(toolName, moduleName, duration, success)

		if !success {
			RecordMCPToolError(toolName, moduleName, categorizeError(err, result))
		}

		return result, err
	}
}

// categorizeError maps an error or error result onto a coarse error type label
func categorizeError(err error, result *mcp.CallToolResult) string {
	message := ""
	if err != nil {
		message = err.Error()
	} else if result != nil {
		for _, content := range result.Content {
			if text, ok := content.(mcp.TextContent); ok {
				message = text.Text
				break
			}
		}
	}

	errStr := strings.ToLower(message)
	switch {
	case strings.Contains(errStr, "is required"):
		return "validation"
	case strings.Contains(errStr, "returned status"):
		return "upstream"
	case strings.Contains(errStr, "decode"):
		return "decode"
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline"):
		return "timeout"
	case strings.Contains(errStr, "connection") || strings.Contains(errStr, "reach"):
		return "network"
	default:
		return "unknown"
	}
}
