// Package llm defines the provider-agnostic types the application uses
// to talk to language models.
package llm

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is one entry of the conversation sent to or received from a
// model.
type Message struct {
	Role    Role
	Content string

	// ToolCalls is set on assistant messages when the model decided to
	// invoke registered functions instead of answering directly.
	ToolCalls []ToolCall

	// ToolCallID and ToolName are set on RoleTool messages carrying the
	// result of a tool execution back to the model.
	ToolCallID string
	ToolName   string
}

// ToolCall is a function invocation requested by the model.
type ToolCall struct {
	ID   string
	Name string
	Args string // raw JSON arguments as sent by the model
}
