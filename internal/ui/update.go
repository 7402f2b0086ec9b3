package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// agentTimeout bounds one full agent run, tool calls included.
const agentTimeout = 2 * time.Minute

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		headerHeight := 1
		footerHeight := m.textarea.Height() + 2

		vpHeight := msg.Height - headerHeight - footerHeight
		if vpHeight < 0 {
			vpHeight = 0
		}
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
		m.textarea.SetWidth(msg.Width)

		// Re-wrap the log for the new width.
		m.refreshViewport()
		m.ready = true

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" || m.isProcessing {
				return m, nil
			}
			m.textarea.Reset()

			if input == "/limpar" || input == "/clear" {
				m.log = nil
				m.refreshViewport()
				return m, nil
			}

			m.appendLog(userMsgStyle("VOCÊ > ") + input)
			m.appendLog(hintStyle("pensando..."))
			m.isProcessing = true
			return m, askAgent(m.agent, input)
		}

	case agentResultMsg:
		m.isProcessing = false
		// Drop the "pensando..." placeholder.
		if n := len(m.log); n > 0 && strings.Contains(m.log[n-1], "pensando") {
			m.log = m.log[:n-1]
		}
		if msg.err != nil {
			m.appendLog(errorMsgStyle("ERRO: ") + msg.err.Error())
		} else {
			m.appendLog(assistantMsgStyle("ASSISTENTE > ") + msg.answer)
		}
		m.refreshViewport()
		m.textarea.Focus()
	}

	return m, tea.Batch(tiCmd, vpCmd)
}

// askAgent runs the agent off the UI goroutine.
func askAgent(agent Agent, input string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), agentTimeout)
		defer cancel()

		answer, err := agent.Run(ctx, input)
		return agentResultMsg{answer: answer, err: err}
	}
}

// appendLog adds one entry to the conversation log and re-renders.
func (m *MainModel) appendLog(entry string) {
	m.log = append(m.log, entry)
	m.refreshViewport()
}

// refreshViewport rebuilds the viewport content from the log, wrapped
// to the current width.
func (m *MainModel) refreshViewport() {
	content := strings.Join(m.log, "\n")
	if m.viewport.Width > 0 {
		content = wordwrap.String(content, m.viewport.Width)
	}
	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}
