// Package tools defines the MCP tool surface: descriptors, schemas, handlers
// and the registry/dispatcher that routes invocations.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool descriptor with its execution logic.
type Tool struct {
	mcp.Tool // Name, Description, InputSchema, OutputSchema

	Execute func(ctx context.Context, args map[string]any) (*Result, error)
}

// ResultStatus indicates the outcome of a tool invocation.
type ResultStatus string

const (
	// ResultSuccess indicates the tool completed successfully.
	ResultSuccess ResultStatus = "success"
	// ResultError indicates the tool failed with a structured error.
	ResultError ResultStatus = "error"
)

// Result standardizes tool output: a status, text content blocks, and the
// structured payload the caller receives.
type Result struct {
	Status  ResultStatus   `json:"status"`
	Content []ContentBlock `json:"content,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ContentBlock is one block of textual result content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// IsError returns true if the result indicates a failure.
func (r *Result) IsError() bool {
	return r.Status == ResultError
}

// Text returns the first text block, or the error message on failure.
func (r *Result) Text() string {
	if r.Status == ResultError && r.Error != "" {
		return r.Error
	}
	for _, block := range r.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	return ""
}
