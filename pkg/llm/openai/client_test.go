package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isaque468/finagent/pkg/config"
	"github.com/isaque468/finagent/pkg/llm"
	"github.com/isaque468/finagent/pkg/tools"
)

// newTestServer returns an httptest server that answers every chat
// completion request with the given response body and captures the
// request body for inspection.
func newTestServer(t *testing.T, response string, captured *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read request body: %v", err)
		}
		if captured != nil {
			if err := json.Unmarshal(body, captured); err != nil {
				t.Errorf("request body is not JSON: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(response)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
}

func testClient(url string) *Client {
	return NewClient(config.ModelDef{
		Provider:    "groq",
		ModelName:   "llama-3.3-70b-versatile",
		APIKey:      "gsk_test",
		BaseURL:     url + "/v1",
		Temperature: 0.1,
	})
}

func TestGenerateTextResponse(t *testing.T) {
	const response = `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"choices": [{
			"index": 0,
			"message": {"role": "assistant", "content": "Juros compostos crescem exponencialmente."},
			"finish_reason": "stop"
		}]
	}`

	var captured map[string]any
	srv := newTestServer(t, response, &captured)
	defer srv.Close()

	client := testClient(srv.URL)
	got, err := client.Generate(context.Background(), []llm.Message{
		{Role: llm.RoleSystem, Content: "You are a helpful assistant."},
		{Role: llm.RoleUser, Content: "O que são juros compostos?"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got.Role != llm.RoleAssistant {
		t.Errorf("role = %q, want assistant", got.Role)
	}
	if got.Content != "Juros compostos crescem exponencialmente." {
		t.Errorf("content = %q", got.Content)
	}
	if len(got.ToolCalls) != 0 {
		t.Errorf("unexpected tool calls: %v", got.ToolCalls)
	}
	if captured["model"] != "llama-3.3-70b-versatile" {
		t.Errorf("request model = %v", captured["model"])
	}
}

func TestGenerateExtractsToolCalls(t *testing.T) {
	const response = `{
		"id": "chatcmpl-2",
		"object": "chat.completion",
		"choices": [{
			"index": 0,
			"message": {
				"role": "assistant",
				"content": "",
				"tool_calls": [{
					"id": "call_1",
					"type": "function",
					"function": {"name": "calc_income_tax", "arguments": "{\"income\": 50000}"}
				}]
			},
			"finish_reason": "tool_calls"
		}]
	}`

	var captured map[string]any
	srv := newTestServer(t, response, &captured)
	defer srv.Close()

	defs := []tools.ToolDefinition{{
		Name:        "calc_income_tax",
		Description: "income tax calculator",
		Parameters: tools.JSONSchema{
			"type": "object",
			"properties": map[string]interface{}{
				"income": map[string]interface{}{"type": "number"},
			},
			"required": []string{"income"},
		},
	}}

	client := testClient(srv.URL)
	got, err := client.Generate(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "Qual o IR de R$ 50.000?"},
	}, defs)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(got.ToolCalls) != 1 {
		t.Fatalf("tool calls = %d, want 1", len(got.ToolCalls))
	}
	if got.ToolCalls[0].Name != "calc_income_tax" {
		t.Errorf("tool name = %q", got.ToolCalls[0].Name)
	}
	if got.ToolCalls[0].Args != `{"income": 50000}` {
		t.Errorf("tool args = %q", got.ToolCalls[0].Args)
	}

	// The request must carry the tool definitions.
	reqTools, ok := captured["tools"].([]any)
	if !ok || len(reqTools) != 1 {
		t.Fatalf("request tools = %v, want 1 entry", captured["tools"])
	}
}

func TestGenerateOptionOverrides(t *testing.T) {
	const response = `{
		"id": "chatcmpl-4",
		"object": "chat.completion",
		"choices": [{
			"index": 0,
			"message": {"role": "assistant", "content": "ok"},
			"finish_reason": "stop"
		}]
	}`

	var captured map[string]any
	srv := newTestServer(t, response, &captured)
	defer srv.Close()

	client := NewClient(config.ModelDef{
		ModelName:   "llama-3.3-70b-versatile",
		APIKey:      "gsk_test",
		BaseURL:     srv.URL + "/v1",
		Temperature: 0.1,
	}, llm.WithModel("llama-3.1-8b-instant"), llm.WithMaxTokens(128))

	if _, err := client.Generate(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "oi"},
	}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if captured["model"] != "llama-3.1-8b-instant" {
		t.Errorf("request model = %v, want override", captured["model"])
	}
	if captured["max_tokens"] != float64(128) {
		t.Errorf("request max_tokens = %v, want 128", captured["max_tokens"])
	}
}

func TestGenerateRejectsWrongToolsType(t *testing.T) {
	srv := newTestServer(t, `{}`, nil)
	defer srv.Close()

	client := testClient(srv.URL)
	_, err := client.Generate(context.Background(), []llm.Message{
		{Role: llm.RoleUser, Content: "oi"},
	}, "not-a-definition-slice")
	if err == nil {
		t.Fatal("expected error for wrong tools type, got nil")
	}
}

func TestGenerateRoundTripsToolHistory(t *testing.T) {
	const response = `{
		"id": "chatcmpl-3",
		"object": "chat.completion",
		"choices": [{
			"index": 0,
			"message": {"role": "assistant", "content": "O imposto devido é R$ 3.307,83."},
			"finish_reason": "stop"
		}]
	}`

	var captured map[string]any
	srv := newTestServer(t, response, &captured)
	defer srv.Close()

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "Qual o IR de R$ 50.000?"},
		{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{
			{ID: "call_1", Name: "calc_income_tax", Args: `{"income": 50000}`},
		}},
		{Role: llm.RoleTool, ToolCallID: "call_1", ToolName: "calc_income_tax", Content: "Imposto devido: R$ 3.307,83"},
	}

	client := testClient(srv.URL)
	if _, err := client.Generate(context.Background(), history); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	msgs, ok := captured["messages"].([]any)
	if !ok || len(msgs) != 3 {
		t.Fatalf("request messages = %v, want 3 entries", captured["messages"])
	}

	toolMsg, ok := msgs[2].(map[string]any)
	if !ok {
		t.Fatalf("third message is not an object: %v", msgs[2])
	}
	if toolMsg["role"] != "tool" || toolMsg["tool_call_id"] != "call_1" {
		t.Errorf("tool message not round-tripped: %v", toolMsg)
	}
}
