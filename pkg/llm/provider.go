package llm

import "context"

// Provider is the contract every AI backend implements. The rest of the
// application depends only on this interface, never on a concrete SDK.
//
// toolDefs, when non-empty, is passed to the model for function calling;
// adapters expect []tools.ToolDefinition and reject anything else.
type Provider interface {
	Generate(ctx context.Context, messages []Message, toolDefs ...any) (Message, error)
}
