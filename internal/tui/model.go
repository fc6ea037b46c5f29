package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anchor-tui/anchor/internal/config"
	"github.com/anchor-tui/anchor/internal/doc"
	"github.com/anchor-tui/anchor/internal/sticky"
	"github.com/anchor-tui/anchor/internal/watcher"
)

// Rows reserved outside the scrollable content region.
const (
	titleRows  = 1
	statusRows = 1

	// ChromeRows is the total height the viewer consumes around the
	// scrollable region.
	ChromeRows = titleRows + statusRows
)

// ContentExtent computes the total content height the viewer lays out for a
// document at a given width: the wrapped body, the configured spacing, and
// the inline control's row. Shared with the headless check command.
func ContentExtent(d *doc.Document, cfg *config.Config, width int) int {
	return len(d.Lines(width)) + cfg.InlineSpacing + 1
}

// Model is the viewer screen: a scrollable document with an inline
// call-to-action at its end and a pinned copy anchored to the bottom of the
// viewport. The sticky controller decides which of the two is visible.
type Model struct {
	cfg     *config.Config
	docPath string

	document  *doc.Document
	bodyLines []string

	vp    viewport.Model
	geo   *geometry
	ctrl  *sticky.Controller
	ready bool // sized and content laid out

	width  int
	height int

	// UI state
	message  string // Success/error messages
	err      error
	showHelp bool

	// File watcher
	fileWatcher *watcher.Watcher
}

// NewModel creates the viewer model for a document path.
func NewModel(cfg *config.Config, docPath string) Model {
	return NewModelWithWatcher(cfg, docPath, nil)
}

// NewModelWithWatcher creates the viewer model with file watching enabled.
func NewModelWithWatcher(cfg *config.Config, docPath string, w *watcher.Watcher) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	applyAccent(cfg.AccentColor)

	geo := newGeometry()
	return Model{
		cfg:         cfg,
		docPath:     docPath,
		geo:         geo,
		ctrl:        sticky.NewController(viewportSurface{geo}, inlineSlot{geo}, pinnedSlot{geo}),
		fileWatcher: w,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadDocument(m.docPath)}
	if m.fileWatcher != nil {
		cmds = append(cmds, listenForWatcherEvents(m.fileWatcher))
	}
	return tea.Batch(cmds...)
}

// Visibility exposes the current control visibility, for the status line
// and for tests.
func (m Model) Visibility() sticky.VisibilityState {
	return m.ctrl.Visibility()
}

// layout recomputes the viewport dimensions and the wrapped content for the
// current window size, then refreshes the shared geometry. Called on window
// size changes and document (re)loads; never before the first size is known.
func (m *Model) layout() {
	vpHeight := m.height - titleRows - statusRows
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.vp = viewport.New(m.width, vpHeight)
	} else {
		m.vp.Width = m.width
		m.vp.Height = vpHeight
	}

	m.geo.sized = true
	m.geo.contentTop = titleRows
	m.geo.viewportHeight = vpHeight
	// The bar overlays the viewport's bottom row, raised by the configured
	// margin. It contributes no layout height of its own.
	m.geo.pinnedRow = titleRows + vpHeight - 1 - m.cfg.BottomMargin

	if m.document != nil {
		m.ready = true
		m.refreshContent()
	}
	m.syncScroll()
}

// refreshContent re-renders the document and the inline control into the
// viewport. The inline control always occupies its lines; only its styling
// follows the visibility state, so toggling can never shift layout.
func (m *Model) refreshContent() {
	m.bodyLines = m.document.Lines(m.vp.Width)

	lines := make([]string, 0, len(m.bodyLines)+m.cfg.InlineSpacing+1)
	lines = append(lines, m.bodyLines...)
	for i := 0; i < m.cfg.InlineSpacing; i++ {
		lines = append(lines, "")
	}
	m.geo.ctaLine = len(lines)
	lines = append(lines, renderInlineCTA(m.document.Action.Label, m.vp.Width, m.ctrl.Visibility().InlineVisible))

	m.geo.contentHeight = len(lines)
	m.vp.SetContent(joinLines(lines))
	m.syncScroll()
}

// syncScroll mirrors the viewport's scroll offset into the shared geometry.
func (m *Model) syncScroll() {
	m.geo.yOffset = m.vp.YOffset
}

// teardown releases the scroll subscription and the controller so that any
// still-scheduled reconciliation pass lands as a no-op.
func (m *Model) teardown() {
	m.ctrl.Close()
	if m.fileWatcher != nil {
		m.fileWatcher.Stop()
	}
}
