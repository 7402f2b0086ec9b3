// Package openai implements the LLM provider adapter for
// OpenAI-compatible APIs.
//
// Groq exposes an OpenAI-compatible endpoint, so the same adapter serves
// both; the base URL comes from the model definition in config.yaml.
// Function Calling (tools) is supported for the agent loop.
package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/isaque468/finagent/pkg/config"
	"github.com/isaque468/finagent/pkg/llm"
	"github.com/isaque468/finagent/pkg/tools"
	"github.com/isaque468/finagent/pkg/utils"
	openai "github.com/sashabaranov/go-openai"
)

// Client implements llm.Provider for OpenAI-compatible APIs.
type Client struct {
	api  *openai.Client
	opts llm.GenerateOptions
}

// NewClient creates a client from a model definition.
//
// Takes ModelDef directly so callers can build clients straight from the
// configuration; the API key in the definition is used for auth. Extra
// options override the definition's parameters.
func NewClient(modelDef config.ModelDef, opts ...llm.GenerateOption) *Client {
	// Custom BaseURL supports non-OpenAI providers (Groq, DeepSeek, ...).
	cfg := openai.DefaultConfig(modelDef.APIKey)
	if modelDef.BaseURL != "" {
		cfg.BaseURL = modelDef.BaseURL
	}

	base := llm.GenerateOptions{
		Model:       modelDef.ModelName,
		Temperature: modelDef.Temperature,
		MaxTokens:   modelDef.MaxTokens,
	}

	return &Client{
		api:  openai.NewClientWithConfig(cfg),
		opts: base.Apply(opts...),
	}
}

// Generate sends the conversation to the API and returns the model's
// reply.
//
// Optional tool definitions enable Function Calling:
//
//	toolDefs[0] must be []tools.ToolDefinition
//
// Steps:
//  1. Convert internal messages to the OpenAI SDK format
//  2. Attach tools when provided
//  3. Call the API
//  4. Convert the response back, extracting ToolCalls if the model
//     decided to invoke functions
func (c *Client) Generate(ctx context.Context, messages []llm.Message, toolDefs ...any) (llm.Message, error) {
	startTime := time.Now()

	openaiMsgs := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		openaiMsgs[i] = mapToOpenAI(m)
	}

	req := openai.ChatCompletionRequest{
		Model:       c.opts.Model,
		Messages:    openaiMsgs,
		Temperature: float32(c.opts.Temperature),
	}
	if c.opts.MaxTokens > 0 {
		req.MaxTokens = c.opts.MaxTokens
	}

	if len(toolDefs) > 0 {
		defs, ok := toolDefs[0].([]tools.ToolDefinition)
		if !ok {
			return llm.Message{}, fmt.Errorf("invalid tools type: expected []tools.ToolDefinition, got %T", toolDefs[0])
		}

		req.Tools = convertToolsToOpenAI(defs)
		// Let the model decide when to call tools.
		req.ToolChoice = "auto"
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		utils.Error("LLM API request failed",
			"error", err,
			"model", c.opts.Model,
			"duration_ms", time.Since(startTime).Milliseconds())
		return llm.Message{}, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return llm.Message{}, fmt.Errorf("no choices in response")
	}

	choice := resp.Choices[0].Message

	result := llm.Message{
		Role:    llm.Role(choice.Role),
		Content: choice.Content,
	}

	if len(choice.ToolCalls) > 0 {
		result.ToolCalls = make([]llm.ToolCall, len(choice.ToolCalls))
		for i, tc := range choice.ToolCalls {
			result.ToolCalls[i] = llm.ToolCall{
				ID:   tc.ID,
				Name: tc.Function.Name,
				Args: tc.Function.Arguments,
			}
		}
	}

	utils.Info("LLM response received",
		"model", c.opts.Model,
		"tool_calls_count", len(result.ToolCalls),
		"content_length", len(result.Content),
		"duration_ms", time.Since(startTime).Milliseconds())

	return result, nil
}

// mapToOpenAI converts an internal message into the SDK format,
// including assistant tool calls and tool result messages so the full
// agent history round-trips.
func mapToOpenAI(m llm.Message) openai.ChatCompletionMessage {
	msg := openai.ChatCompletionMessage{
		Role:    string(m.Role),
		Content: m.Content,
	}

	if m.Role == llm.RoleTool {
		msg.ToolCallID = m.ToolCallID
		msg.Name = m.ToolName
		return msg
	}

	if len(m.ToolCalls) > 0 {
		msg.ToolCalls = make([]openai.ToolCall, len(m.ToolCalls))
		for i, tc := range m.ToolCalls {
			msg.ToolCalls[i] = openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.Args,
				},
			}
		}
	}

	return msg
}

// convertToolsToOpenAI converts internal tool definitions into the
// OpenAI Function Calling format. ToolDefinition.Parameters is already a
// JSON Schema object, so it is passed through unchanged.
func convertToolsToOpenAI(defs []tools.ToolDefinition) []openai.Tool {
	result := make([]openai.Tool, len(defs))

	for i, def := range defs {
		result[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Parameters,
			},
		}
	}

	return result
}
