package sticky

// ScrollSurface reports the geometry of a scrollable region. Implemented by
// whatever hosts the content (the TUI wraps a bubbles viewport); the
// controller only ever reads extents and never mutates the surface.
type ScrollSurface interface {
	// ScrollOffset is the current vertical scroll position in rows.
	ScrollOffset() int
	// ContentExtent is the total height of the content in rows.
	ContentExtent() int
	// ViewportExtent is the visible height of the surface in rows.
	ViewportExtent() int
}

// ControlHandle resolves the current global on-screen row of a rendered
// control's top edge. The second return is false while the control has not
// been laid out yet (e.g. before the first window size is known); callers
// must treat that as "skip this pass", never as an error.
type ControlHandle interface {
	GlobalY() (int, bool)
}
