package tui

import (
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anchor-tui/anchor/internal/doc"
	"github.com/anchor-tui/anchor/internal/watcher"
)

type documentLoadedMsg struct {
	doc *doc.Document
	err error
}

func loadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		d, err := doc.Load(path)
		if err != nil {
			return documentLoadedMsg{err: err}
		}
		return documentLoadedMsg{doc: d}
	}
}

// reconcileMsg triggers one deferred reconciliation pass. Delivering it as a
// message guarantees the pass runs only after the update that moved the
// scroll offset has fully applied, never inside the scroll handler itself.
type reconcileMsg struct{}

func schedulePass() tea.Cmd {
	return func() tea.Msg {
		return reconcileMsg{}
	}
}

type actionResultMsg struct {
	actionID string
	output   string
	err      error
}

// runAction executes the call-to-action's command in a shell. The command
// runs in a background goroutine (tea.Cmd runs async) so the viewer stays
// responsive.
func runAction(action doc.Action) tea.Cmd {
	return func() tea.Msg {
		cmd := exec.Command("sh", "-c", action.Command)
		out, err := cmd.CombinedOutput()
		return actionResultMsg{
			actionID: action.ID,
			output:   strings.TrimSpace(string(out)),
			err:      err,
		}
	}
}

// Watcher event messages
type watcherEventMsg struct {
	event watcher.Event
}

type watcherErrorMsg struct {
	err error
}

// listenForWatcherEvents creates a command that listens for watcher events
func listenForWatcherEvents(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case event := <-w.Events:
			return watcherEventMsg{event: event}
		case err := <-w.Errors:
			return watcherErrorMsg{err: err}
		}
	}
}
