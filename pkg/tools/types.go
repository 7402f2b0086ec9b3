// Tool interface and definition structures.

package tools

import "context"

// JSONSchema represents a JSON Schema for tool parameters.
//
// Used instead of a bare interface{} for type safety. The layout follows
// the JSON Schema subset accepted by the Function Calling API.
type JSONSchema map[string]any

// ToolDefinition describes a tool for the LLM (Function Calling format).
type ToolDefinition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"` // JSON Schema of the argument object
}

// Tool is the contract every tool implements: "raw JSON in, string out".
type Tool interface {
	// Definition returns the tool description for the LLM.
	Definition() ToolDefinition

	// Execute runs the tool. argsJSON is the raw JSON argument object as
	// sent by the LLM. Returns the result (plain text or JSON) or an error.
	Execute(ctx context.Context, argsJSON string) (string, error)
}
