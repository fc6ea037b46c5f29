package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if !m.ready {
		return "Loading document..."
	}

	var b strings.Builder
	b.WriteString(m.renderTitleBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	return b.String()
}

// renderTitleBar renders the document title with the scroll position.
func (m Model) renderTitleBar() string {
	title := m.document.Title
	if title == "" {
		title = filepath.Base(m.docPath)
	}

	percent := fmt.Sprintf("%3.0f%%", m.vp.ScrollPercent()*100)
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(percent) - 2
	if gap < 1 {
		gap = 1
	}
	return titleBarStyle.Width(m.width).Render(title + strings.Repeat(" ", gap) + percent)
}

// renderContent renders the viewport with the pinned bar overlaid on its
// anchored row. The bar is an overlay, not an in-flow row: hiding it lets
// the content underneath show through without any geometry change.
func (m Model) renderContent() string {
	lines := strings.Split(m.vp.View(), "\n")
	for len(lines) < m.geo.viewportHeight {
		lines = append(lines, "")
	}

	if m.ctrl.Visibility().PinnedVisible {
		idx := m.geo.pinnedRow - m.geo.contentTop
		if idx >= 0 && idx < len(lines) {
			lines[idx] = renderPinnedBar(m.document.Action.Label, m.width)
		}
	}
	return joinLines(lines)
}

func (m Model) renderStatusLine() string {
	if m.showHelp {
		return helpStyle.Render("j/k scroll • ctrl+d/u half page • g/G top/bottom • enter activate • R reload • q quit")
	}
	if m.message != "" {
		return messageStyle.Render(m.message)
	}
	return helpStyle.Render("? for help")
}

// renderInlineCTA renders the inline control's content line. The hidden
// state occupies exactly the same cells as the visible one, so toggling
// never changes the height or width the control contributes to the content.
func renderInlineCTA(label string, width int, visible bool) string {
	btn := "[ " + label + " ]"
	if !visible {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Repeat(" ", lipgloss.Width(btn)))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, inlineButtonStyle.Render(btn))
}

// renderPinnedBar renders the fixed bar with the pinned copy of the control.
func renderPinnedBar(label string, width int) string {
	btn := pinnedButtonStyle.Render("[ " + label + " ]")
	return pinnedBarStyle.Width(width).Align(lipgloss.Center).Render(btn)
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
