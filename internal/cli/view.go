package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/anchor-tui/anchor/internal/tui"
	"github.com/anchor-tui/anchor/internal/watcher"
)

var noWatch bool

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Open a document in the viewer",
	Long: `Open a document in the full-screen viewer.

The document's call-to-action renders inline at the end of the content.
While it is off-screen a pinned copy is anchored to the bottom of the
window; scrolling the inline control up to the pinned row hands
visibility back to it.

The document is watched for changes and reloaded automatically; use
--no-watch to disable.

Navigation:
  ↑/k ↓/j     Scroll
  ctrl+u/d    Half page up/down
  g/G         Top/bottom
  Enter       Activate the call-to-action
  R           Reload document
  ?           Toggle help
  q/Esc       Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	docPath := args[0]

	cfg, err := LoadConfigForCommand()
	if err != nil {
		return err
	}

	var w *watcher.Watcher
	if !noWatch {
		w, err = watcher.New()
		if err != nil {
			return err
		}
		if err := w.WatchDocument(docPath); err != nil {
			w.Close()
			return err
		}
		w.Start()
		defer w.Close()
	}

	model := tui.NewModelWithWatcher(cfg, docPath, w)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func init() {
	viewCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not watch the document for changes")
}
