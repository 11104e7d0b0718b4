package types

import "fmt"

// MCPError provides structured error information for MCP responses
type MCPError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewMCPError creates a new structured MCP error
func NewMCPError(code string, message string, details map[string]interface{}) *MCPError {
	return &MCPError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// Error codes shared across tool handlers.
const (
	CodeNotFound      = "NOT_FOUND"
	CodeMissingFileID = "MISSING_FILE_ID"
	CodeInvalidURL    = "INVALID_URL"
	CodeNoWorkingFile = "NO_WORKING_FILE"
	CodeUpstream      = "UPSTREAM_ERROR"
	CodeValidation    = "VALIDATION_FAILED"
)
