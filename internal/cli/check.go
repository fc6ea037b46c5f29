package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/anchor-tui/anchor/internal/doc"
	"github.com/anchor-tui/anchor/internal/sticky"
	"github.com/anchor-tui/anchor/internal/tui"
)

var (
	checkWidth  int
	checkHeight int
)

// Fallback terminal size when stdout is not a terminal and no override was
// given (e.g. in pipelines).
const (
	defaultCheckWidth  = 80
	defaultCheckHeight = 24
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Report whether a document overflows the terminal",
	Long: `Check whether a document is taller than the terminal, i.e. whether
the viewer would engage the pinned call-to-action.

Prints the computed extents and exits with status 1 when the document
overflows, 0 when it fits. Use --width and --height to check against an
explicit size instead of the current terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	d, err := doc.Load(args[0])
	if err != nil {
		return err
	}

	cfg, err := LoadConfigForCommand()
	if err != nil {
		return err
	}

	width, height := checkWidth, checkHeight
	if width == 0 || height == 0 {
		w, h := terminalSize()
		if width == 0 {
			width = w
		}
		if height == 0 {
			height = h
		}
	}

	viewportExtent := height - tui.ChromeRows
	contentExtent := tui.ContentExtent(d, cfg, width)
	overflow := sticky.Overflow(contentExtent, viewportExtent)

	fmt.Printf("document: %s\n", args[0])
	fmt.Printf("content:  %d rows (wrapped to %d columns)\n", contentExtent, width)
	fmt.Printf("viewport: %d rows (%dx%d terminal)\n", viewportExtent, width, height)
	if overflow == 0 {
		fmt.Println("fits: the inline control stays visible")
		return nil
	}
	fmt.Printf("overflows by %d rows: the pinned control engages\n", overflow)
	os.Exit(1)
	return nil
}

// terminalSize probes stdout, falling back to a conventional 80x24 when it
// is not a terminal.
func terminalSize() (int, int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultCheckWidth, defaultCheckHeight
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return defaultCheckWidth, defaultCheckHeight
	}
	return w, h
}

func init() {
	checkCmd.Flags().IntVar(&checkWidth, "width", 0, "Columns to check against (default: terminal width)")
	checkCmd.Flags().IntVar(&checkHeight, "height", 0, "Rows to check against (default: terminal height)")
}
