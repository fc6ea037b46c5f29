package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleBarStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6")).
		Padding(0, 1)

	inlineButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).
		Padding(0, 1)

	pinnedBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("240"))

	pinnedButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("6")).
		Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))
)

// applyAccent re-tints the accent-colored styles from config.
func applyAccent(color string) {
	if color == "" {
		return
	}
	accent := lipgloss.Color(color)
	titleBarStyle = titleBarStyle.Foreground(accent)
	inlineButtonStyle = inlineButtonStyle.Background(accent)
	pinnedButtonStyle = pinnedButtonStyle.Background(accent)
}
