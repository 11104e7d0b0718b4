package mcp

// Shared helpers for MCP tools (error mapping, result shaping)

import (
	"fmt"

	"github.com/google/uuid"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figwing/figwing/figma"
	"github.com/figwing/figwing/internal/extract"
	"github.com/figwing/figwing/types"
)

// fallbackClientID identifies the caller when the MCP session carries no ID
// (single-client stdio transport). Stable for the process lifetime.
var fallbackClientID = uuid.NewString()

// clientID resolves the opaque per-client identifier for session tracking.
func clientID(ss *mcpsdk.ServerSession) string {
	if ss != nil {
		if id := ss.ID(); id != "" {
			return id
		}
	}
	return fallbackClientID
}

// wrapCoreError maps core failures onto the MCP error taxonomy. NotFound
// and upstream failures keep their identity; anything else is reported as
// an extraction failure.
func wrapCoreError(err error) error {
	switch e := err.(type) {
	case *types.MCPError:
		return e
	case *extract.NotFoundError:
		return types.NewMCPError(types.CodeNotFound, e.Error(), map[string]interface{}{
			"fileId":      e.FileID,
			"componentId": e.ComponentID,
		})
	case *figma.APIError:
		return types.NewMCPError(types.CodeUpstream, e.Message, map[string]interface{}{
			"status": e.Status,
		})
	default:
		return types.NewMCPError("EXTRACTION_FAILED", err.Error(), nil)
	}
}

// result wraps a text summary and a structured payload into a tool result.
func result[T any](text string, structured T) *mcpsdk.CallToolResultFor[T] {
	return &mcpsdk.CallToolResultFor[T]{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
		StructuredContent: structured,
	}
}

// requireField returns a MISSING-style error for an empty required field.
// The file ID keeps its dedicated code so clients can prompt for a URL.
func requireField(value, field string) error {
	if value != "" {
		return nil
	}
	code := types.CodeValidation
	if field == "fileId" {
		code = types.CodeMissingFileID
	}
	return types.NewMCPError(code, fmt.Sprintf("%s is required", field), map[string]interface{}{
		"field": field,
	})
}
