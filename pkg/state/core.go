// Package state provides the thread-safe conversation state shared by
// the agent and the UI.
//
// CoreState holds only the dialog history: the calculators are pure and
// keep nothing between calls, so history is the single piece of mutable
// state in the process. All access goes through an RWMutex; there are no
// package-level variables.
package state

import (
	"sync"

	"github.com/isaque468/finagent/pkg/llm"
)

// CoreState is the thread-safe dialog state of the assistant.
//
// Usable from any surface: TUI, one-shot CLI, tests.
type CoreState struct {
	mu sync.RWMutex

	// history is the User <-> Agent chronology, including tool calls and
	// tool results. Never contains raw secrets.
	history []llm.Message
}

// NewCoreState creates an empty, ready-to-use state.
func NewCoreState() *CoreState {
	return &CoreState{
		history: make([]llm.Message, 0),
	}
}

// AppendMessage safely appends a message to the dialog history.
func (s *CoreState) AppendMessage(msg llm.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, msg)
}

// GetHistory returns a copy of the dialog history.
//
// Returning a copy keeps callers from racing with concurrent appends.
func (s *CoreState) GetHistory() []llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dst := make([]llm.Message, len(s.history))
	copy(dst, s.history)
	return dst
}

// Len returns the number of messages in the history.
func (s *CoreState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}

// ClearHistory resets the dialog. Used when starting a new session.
func (s *CoreState) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make([]llm.Message, 0)
}

// SetHistory replaces the whole history, e.g. when resuming a persisted
// session.
func (s *CoreState) SetHistory(history []llm.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make([]llm.Message, len(history))
	copy(s.history, history)
}

// BuildAgentContext assembles the message slice for a generative call:
// the system prompt followed by the dialog history.
func (s *CoreState) BuildAgentContext(systemPrompt string) []llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]llm.Message, 0, len(s.history)+1)
	messages = append(messages, llm.Message{
		Role:    llm.RoleSystem,
		Content: systemPrompt,
	})
	messages = append(messages, s.history...)
	return messages
}
