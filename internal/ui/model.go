// Package ui is the Bubble Tea chat interface of the assistant.
//
// The model is a classic viewport-plus-textarea chat: the viewport
// shows the conversation log, the textarea takes the next message, and
// agent runs happen inside a tea.Cmd so the terminal never blocks while
// the model thinks.
package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Agent answers one user message. Satisfied by agent.Orchestrator.
type Agent interface {
	Run(ctx context.Context, userQuery string) (string, error)
}

// agentResultMsg carries the agent's answer back into Update.
type agentResultMsg struct {
	answer string
	err    error
}

// MainModel is the Bubble Tea model of the chat screen.
type MainModel struct {
	viewport viewport.Model
	textarea textarea.Model

	agent     Agent
	modelName string // shown in the header

	log          []string // rendered conversation lines
	isProcessing bool
	ready        bool
}

// InitialModel builds the startup state of the chat screen.
func InitialModel(agent Agent, modelName string) MainModel {
	ta := textarea.New()
	ta.Placeholder = "Pergunte algo (ex: quanto pago de IR sobre R$ 50.000?)..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.CharLimit = 500
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	// Sizes stay (0,0) until the first WindowSizeMsg.
	vp := viewport.New(0, 0)

	m := MainModel{
		textarea:  ta,
		viewport:  vp,
		agent:     agent,
		modelName: modelName,
	}
	m.appendLog(assistantMsgStyle("Assistente financeiro pronto."))
	m.appendLog(hintStyle("Comandos: /limpar para limpar a tela, Esc ou Ctrl+C para sair."))
	return m
}

// Init starts the textarea cursor blink.
func (m MainModel) Init() tea.Cmd {
	return textarea.Blink
}
