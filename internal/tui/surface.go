package tui

import "github.com/anchor-tui/anchor/internal/sticky"

// geometry is the screen geometry shared between the model and the sticky
// controller's capability adapters. The model owns it and updates it in
// place after every size, content, or scroll change; the adapters only read.
// A single allocation survives bubbletea's value-copying of the model.
type geometry struct {
	sized bool // first WindowSizeMsg has arrived

	contentTop     int // global row of the viewport's first line
	viewportHeight int
	contentHeight  int // total wrapped content lines
	yOffset        int // current viewport scroll offset

	ctaLine   int // content line index of the inline control, -1 until known
	pinnedRow int // global row of the pinned bar, -1 until sized
}

func newGeometry() *geometry {
	return &geometry{ctaLine: -1, pinnedRow: -1}
}

// viewportSurface adapts the shared geometry to sticky.ScrollSurface.
type viewportSurface struct {
	g *geometry
}

func (s viewportSurface) ScrollOffset() int   { return s.g.yOffset }
func (s viewportSurface) ContentExtent() int  { return s.g.contentHeight }
func (s viewportSurface) ViewportExtent() int { return s.g.viewportHeight }

// inlineSlot resolves the inline control's global row: its content line
// translated by the current scroll offset. Unavailable until the document
// has been laid out into a sized viewport.
type inlineSlot struct {
	g *geometry
}

func (h inlineSlot) GlobalY() (int, bool) {
	if !h.g.sized || h.g.ctaLine < 0 {
		return 0, false
	}
	return h.g.contentTop + h.g.ctaLine - h.g.yOffset, true
}

// pinnedSlot resolves the pinned bar's global row, constant for a given
// window size since the bar is anchored to the viewport bottom.
type pinnedSlot struct {
	g *geometry
}

func (h pinnedSlot) GlobalY() (int, bool) {
	if !h.g.sized || h.g.pinnedRow < 0 {
		return 0, false
	}
	return h.g.pinnedRow, true
}

var (
	_ sticky.ScrollSurface = viewportSurface{}
	_ sticky.ControlHandle = inlineSlot{}
	_ sticky.ControlHandle = pinnedSlot{}
)
