package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anchor-tui/anchor/internal/watcher"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		cmd := m.recheckScrollable()
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case documentLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		reloaded := m.document != nil
		m.document = msg.doc
		if m.geo.sized {
			m.layout()
		}
		if reloaded {
			m.message = "Document reloaded"
		}
		cmd := m.recheckScrollable()
		return m, cmd

	case reconcileMsg:
		prev := m.ctrl.Visibility()
		vis := m.ctrl.Reconcile()
		if vis != prev && m.ready {
			// Visibility changed: re-render the two affected controls.
			m.refreshContent()
		}
		return m, nil

	case actionResultMsg:
		if msg.err != nil {
			m.message = "Action failed: " + msg.err.Error()
		} else if msg.output != "" {
			m.message = msg.output
		} else {
			m.message = "Done"
		}
		return m, nil

	case watcherEventMsg:
		cmds := []tea.Cmd{listenForWatcherEvents(m.fileWatcher)}
		switch msg.event.Type {
		case watcher.DocumentChanged:
			cmds = append(cmds, loadDocument(m.docPath))
		case watcher.DocumentRemoved:
			m.message = "Document removed on disk"
		}
		return m, tea.Batch(cmds...)

	case watcherErrorMsg:
		m.message = "Watcher error: " + msg.err.Error()
		return m, listenForWatcherEvents(m.fileWatcher)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.teardown()
		return m, tea.Quit

	case "down", "j":
		m.vp.LineDown(1)
		return m.afterScroll()

	case "up", "k":
		m.vp.LineUp(1)
		return m.afterScroll()

	case "ctrl+d":
		m.vp.HalfViewDown()
		return m.afterScroll()

	case "ctrl+u":
		m.vp.HalfViewUp()
		return m.afterScroll()

	case "pgdown", " ":
		m.vp.ViewDown()
		return m.afterScroll()

	case "pgup":
		m.vp.ViewUp()
		return m.afterScroll()

	case "G", "end":
		m.vp.GotoBottom()
		return m.afterScroll()

	case "g", "home":
		m.vp.GotoTop()
		return m.afterScroll()

	case "enter":
		return m.handleActivate()

	case "R":
		m.message = "Reloading document..."
		return m, loadDocument(m.docPath)

	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

// afterScroll publishes the new scroll offset and schedules one deferred
// reconciliation pass. The measurement must not run here: the coordinate of
// the inline control is only valid once the update for this scroll event has
// fully applied, so the pass arrives as its own message.
func (m Model) afterScroll() (tea.Model, tea.Cmd) {
	m.message = ""
	m.syncScroll()
	if m.ctrl.Scrollable() && m.ctrl.SchedulePass() {
		return m, schedulePass()
	}
	return m, nil
}

// recheckScrollable re-runs the scrollability monitor. Called after every
// layout-affecting event (window resize, document load or reload), not just
// once at startup, so content growth and shrinkage both take effect.
func (m *Model) recheckScrollable() tea.Cmd {
	if !m.geo.sized {
		return nil
	}
	if m.ctrl.CheckScrollable() && m.ctrl.SchedulePass() {
		return schedulePass()
	}
	if m.ready && !m.ctrl.Scrollable() {
		// No overflow: the monitor reset visibility to inline; mirror it.
		m.refreshContent()
	}
	return nil
}

// handleActivate triggers the call-to-action through whichever control is
// currently visible. A hidden control takes no input, so during the brief
// window where neither is resolvable this is a no-op.
func (m Model) handleActivate() (tea.Model, tea.Cmd) {
	if m.document == nil {
		return m, nil
	}
	vis := m.ctrl.Visibility()
	if !vis.InlineVisible && !vis.PinnedVisible {
		return m, nil
	}

	action := m.document.Action
	if action.Command == "" {
		m.message = fmt.Sprintf("%s acknowledged", action.Label)
		return m, nil
	}
	m.message = fmt.Sprintf("Running %s...", action.Label)
	return m, runAction(action)
}
