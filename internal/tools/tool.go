package tools

import "context"

// Tool tool interface
type Tool interface {
	Name() string                                                   // Tool name
	Description() string                                            // Tool description (for MCP clients)
	Parameters() []ParameterDef                                     // Parameter definitions
	Execute(ctx context.Context, args map[string]any) (any, error) // Execute, returning a JSON-encodable payload
}

// ParameterDef parameter definition
type ParameterDef struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // "string" | "integer" | "number" | "boolean"
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Default     any      `json:"default,omitempty"`
	Aliases     []string `json:"aliases,omitempty"` // Accepted alternative argument names
}
