// Package sticky implements the visibility handoff between an inline
// call-to-action control and its pinned copy anchored to the bottom of the
// screen. A Controller watches a scroll surface: while the inline control
// sits below the pinned control's row the pinned copy is shown, and the
// moment the inline control scrolls up to or past that row, visibility hands
// off to the inline control. Exactly one control is visible at a time and
// toggling never changes layout geometry.
package sticky

// ScrollState records whether the surface had any overflow at the time of
// the last check. Derived from the surface's extents, not independently
// authoritative.
type ScrollState struct {
	Scrollable bool
}

// VisibilityState is the output of a reconciliation pass. Once scrollability
// has been established exactly one of the two fields is true. Before the
// first pass the inline control is visible by default: no handoff is needed
// until we know the content overflows.
type VisibilityState struct {
	InlineVisible bool
	PinnedVisible bool
}

// Measurement holds the resolved global rows of both controls for a single
// reconciliation pass. Not retained between passes.
type Measurement struct {
	InlineY int
	PinnedY int
}

// Controller owns the scroll and visibility state for one screen. It is not
// safe for concurrent use; the bubbletea update loop is its only caller.
type Controller struct {
	surface ScrollSurface
	inline  ControlHandle
	pinned  ControlHandle

	scroll ScrollState
	vis    VisibilityState

	pending bool // a reconciliation pass is scheduled but has not run
	closed  bool
}

// NewController creates a controller over a surface and the two control
// slots. The inline control starts visible, the pinned control hidden.
func NewController(surface ScrollSurface, inline, pinned ControlHandle) *Controller {
	return &Controller{
		surface: surface,
		inline:  inline,
		pinned:  pinned,
		vis:     VisibilityState{InlineVisible: true},
	}
}

// CheckScrollable recomputes whether the surface has any overflow and
// updates the scroll state. The host must call this only after the surface
// has been sized (window size or content events), and should call
// SchedulePass when a false to true transition is reported so the first
// measurement runs once the new layout has settled.
func (c *Controller) CheckScrollable() bool {
	if c.closed {
		return false
	}
	overflow := c.surface.ContentExtent() - c.surface.ViewportExtent()
	c.scroll.Scrollable = overflow > 0
	if !c.scroll.Scrollable {
		// With no overflow there is nothing to hand off: the inline control
		// is back in its natural place and the pinned copy retires.
		c.vis = VisibilityState{InlineVisible: true}
	}
	return c.scroll.Scrollable
}

// SchedulePass marks a reconciliation pass as pending and reports whether
// the caller should actually schedule one. Rapid-fire scroll events coalesce
// into a single pending pass: only the state before the next paint is user
// visible, so running the measurement once is equivalent.
func (c *Controller) SchedulePass() bool {
	if c.closed || c.pending {
		return false
	}
	c.pending = true
	return true
}

// Reconcile runs one reconciliation pass and returns the resulting
// visibility state. It is a no-op when the surface is not scrollable or when
// either control cannot resolve its position yet; both conditions are
// transient and retried on the next scroll or layout event. A pass never
// applies a partial update from a single coordinate.
func (c *Controller) Reconcile() VisibilityState {
	c.pending = false
	if c.closed || !c.scroll.Scrollable {
		return c.vis
	}

	m, ok := c.measure()
	if !ok {
		return c.vis
	}

	// <= rather than ==: the inline row moves up in discrete steps as the
	// user scrolls, so the crossing must be detected as a threshold, and at
	// exact alignment the in-flow control wins.
	reached := m.InlineY <= m.PinnedY
	c.vis = VisibilityState{
		InlineVisible: reached,
		PinnedVisible: !reached,
	}
	return c.vis
}

func (c *Controller) measure() (Measurement, bool) {
	inlineY, ok := c.inline.GlobalY()
	if !ok {
		return Measurement{}, false
	}
	pinnedY, ok := c.pinned.GlobalY()
	if !ok {
		return Measurement{}, false
	}
	return Measurement{InlineY: inlineY, PinnedY: pinnedY}, true
}

// Visibility returns the current visibility state.
func (c *Controller) Visibility() VisibilityState {
	return c.vis
}

// Scrollable reports the scroll state recorded by the last CheckScrollable.
func (c *Controller) Scrollable() bool {
	return c.scroll.Scrollable
}

// Close tears the controller down. Any pass that was still scheduled at
// teardown becomes a no-op; the controls no longer exist, so nothing may be
// measured or toggled afterwards.
func (c *Controller) Close() {
	c.closed = true
	c.pending = false
}

// Overflow computes the scrollable distance for a content and viewport
// extent, clamped to zero. Shared with the headless check command so both
// agree on what counts as scrollable.
func Overflow(contentExtent, viewportExtent int) int {
	d := contentExtent - viewportExtent
	if d < 0 {
		return 0
	}
	return d
}
