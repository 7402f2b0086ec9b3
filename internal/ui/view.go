package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	if !m.ready {
		return "Inicializando..."
	}

	status := fmt.Sprintf(" FinAgent | MODELO: %s ", m.modelName)
	if m.isProcessing {
		status += "| processando... "
	}

	header := headerStyle.
		Width(m.viewport.Width).
		Render(status)

	border := lipgloss.NewStyle().
		Foreground(grayColor).
		Width(m.viewport.Width).
		Render("──────────────────────────────────────────────────")

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		header,
		m.viewport.View(),
		border,
		m.textarea.View(),
	)
}
