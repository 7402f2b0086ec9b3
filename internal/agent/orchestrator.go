// Package agent runs the tool-calling loop of the assistant.
//
// The Orchestrator owns one conversation: it appends the user message
// to the shared state, asks the llm.Provider for the next step, executes
// any tool calls through the tools.Registry and feeds the results back
// until the model produces a plain answer. When the provider is
// unreachable the orchestrator degrades to a keyword router that calls
// the financial tools directly, so the deterministic calculators stay
// available offline.
package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/isaque468/finagent/pkg/history"
	"github.com/isaque468/finagent/pkg/llm"
	"github.com/isaque468/finagent/pkg/state"
	"github.com/isaque468/finagent/pkg/tools"
	"github.com/isaque468/finagent/pkg/utils"
)

// DefaultMaxIterations bounds the tool-calling loop per user message.
const DefaultMaxIterations = 10

// Orchestrator drives the conversation loop. Thread-safe via sync.Mutex:
// concurrent Run calls are serialized so the history stays coherent.
type Orchestrator struct {
	llm          llm.Provider
	registry     *tools.Registry
	state        *state.CoreState
	store        *history.Store // nil when persistence is disabled
	sessionID    string
	maxIters     int
	systemPrompt string

	mu sync.Mutex
}

// Config configures a new Orchestrator.
type Config struct {
	// LLM is the language model provider (required).
	LLM llm.Provider

	// Registry holds the registered tools (required).
	Registry *tools.Registry

	// State is the shared conversation state (required).
	State *state.CoreState

	// MaxIters caps the tool-calling loop; 0 means DefaultMaxIterations.
	MaxIters int

	// SystemPrompt overrides the default system prompt when non-empty.
	SystemPrompt string

	// Store persists messages when non-nil. SessionID must then be set.
	Store     *history.Store
	SessionID string
}

// New validates the configuration and creates an Orchestrator.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.LLM == nil {
		return nil, fmt.Errorf("cfg.LLM is required")
	}
	if cfg.Registry == nil {
		return nil, fmt.Errorf("cfg.Registry is required")
	}
	if cfg.State == nil {
		return nil, fmt.Errorf("cfg.State is required")
	}
	if cfg.Store != nil && cfg.SessionID == "" {
		return nil, fmt.Errorf("cfg.SessionID is required when cfg.Store is set")
	}

	if cfg.MaxIters <= 0 {
		cfg.MaxIters = DefaultMaxIterations
	}
	if cfg.SystemPrompt == "" {
		cfg.SystemPrompt = defaultSystemPrompt()
	}

	return &Orchestrator{
		llm:          cfg.LLM,
		registry:     cfg.Registry,
		state:        cfg.State,
		store:        cfg.Store,
		sessionID:    cfg.SessionID,
		maxIters:     cfg.MaxIters,
		systemPrompt: cfg.SystemPrompt,
	}, nil
}

// Run processes one user message and returns the final answer text.
//
// The loop appends the user message to the state, then alternates LLM
// generations and tool executions until the model answers without tool
// calls or maxIters is reached. A provider failure on the first
// generation triggers the keyword fallback instead of an error, so
// calculator requests survive an unreachable API.
func (o *Orchestrator) Run(ctx context.Context, userQuery string) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	started := time.Now()
	utils.Info("agent run started", "query", userQuery)

	o.appendAndPersist(ctx, llm.Message{Role: llm.RoleUser, Content: userQuery})

	messages := o.state.BuildAgentContext(o.systemPrompt)
	defs := o.registry.GetDefinitions()

	for iter := 0; iter < o.maxIters; iter++ {
		reply, err := o.llm.Generate(ctx, messages, defs)
		if err != nil {
			if iter == 0 {
				utils.Error("llm unreachable, falling back to direct routing", "error", err)
				answer, _ := o.routeFallback(ctx, userQuery)
				o.appendAndPersist(ctx, llm.Message{Role: llm.RoleAssistant, Content: answer})
				return answer, nil
			}
			return "", fmt.Errorf("llm generation failed on iteration %d: %w", iter, err)
		}

		messages = append(messages, reply)
		o.appendAndPersist(ctx, reply)

		if len(reply.ToolCalls) == 0 {
			utils.Info("agent run completed",
				"iterations", iter+1,
				"duration_ms", time.Since(started).Milliseconds(),
			)
			return reply.Content, nil
		}

		for _, call := range reply.ToolCalls {
			result := o.executeToolCall(ctx, call)
			toolMsg := llm.Message{
				Role:       llm.RoleTool,
				Content:    result,
				ToolCallID: call.ID,
				ToolName:   call.Name,
			}
			messages = append(messages, toolMsg)
			o.appendAndPersist(ctx, toolMsg)
		}
	}

	return "", fmt.Errorf("no final answer after %d iterations", o.maxIters)
}

// executeToolCall runs one tool call and always returns text: tool
// failures go back to the model as an error description so it can
// recover or explain, instead of aborting the whole run.
func (o *Orchestrator) executeToolCall(ctx context.Context, call llm.ToolCall) string {
	utils.Info("executing tool", "tool", call.Name, "args", call.Args)

	tool, err := o.registry.Get(call.Name)
	if err != nil {
		utils.Error("unknown tool requested", "tool", call.Name, "error", err)
		return fmt.Sprintf("Erro: ferramenta %q não existe.", call.Name)
	}

	result, err := tool.Execute(ctx, call.Args)
	if err != nil {
		utils.Error("tool execution failed", "tool", call.Name, "error", err)
		return fmt.Sprintf("Erro ao executar %s: %v", call.Name, err)
	}

	utils.Info("tool completed", "tool", call.Name, "result_len", fmt.Sprint(len(result)))
	return result
}

// appendAndPersist records a message in the in-memory state and, when a
// store is configured, in the history database. Persistence failures
// are logged and swallowed: losing a history row must not break the
// conversation.
func (o *Orchestrator) appendAndPersist(ctx context.Context, msg llm.Message) {
	o.state.AppendMessage(msg)
	if o.store == nil {
		return
	}
	if err := o.store.SaveMessage(ctx, o.sessionID, msg); err != nil {
		utils.Error("history persistence failed", "session", o.sessionID, "error", err)
	}
}

// GetHistory returns a copy of the conversation history.
func (o *Orchestrator) GetHistory() []llm.Message {
	return o.state.GetHistory()
}

// defaultSystemPrompt describes the assistant and its tool discipline.
func defaultSystemPrompt() string {
	return `Você é um assistente financeiro inteligente.

Você tem acesso a ferramentas para obter dados exatos:
- calc_income_tax: imposto de renda brasileiro 2024
- calc_interest: juros compostos e simples
- calc_percentage: operações com porcentagem
- search_papers: artigos científicos no arXiv
- web_search: informações atuais na web

Regras:
1. Para QUALQUER cálculo financeiro, use a ferramenta, nunca calcule de cabeça.
2. Repasse os números exatamente como a ferramenta retornou.
3. Se a ferramenta retornar um erro de entrada, explique ao usuário o que faltou.
4. Responda em português, de forma clara e objetiva.
5. Para perguntas gerais sem cálculo, responda diretamente.`
}
