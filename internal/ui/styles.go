package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("36")  // teal
	accentColor  = lipgloss.Color("205") // pink
	grayColor    = lipgloss.Color("240")

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primaryColor).
			Padding(0, 1).
			Bold(true)

	userMsgStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Render

	assistantMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Render

	errorMsgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true).
			Render

	hintStyle = lipgloss.NewStyle().
			Foreground(grayColor).
			Render
)
