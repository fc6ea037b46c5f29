package sticky

import "testing"

// fakeSurface is a scroll surface with fixed extents.
type fakeSurface struct {
	offset   int
	content  int
	viewport int
}

func (s *fakeSurface) ScrollOffset() int   { return s.offset }
func (s *fakeSurface) ContentExtent() int  { return s.content }
func (s *fakeSurface) ViewportExtent() int { return s.viewport }

// fakeHandle resolves to a fixed row, or to nothing while unset.
type fakeHandle struct {
	y  int
	ok bool
}

func (h *fakeHandle) GlobalY() (int, bool) { return h.y, h.ok }

// newTestController builds a controller over a long document: 200 rows of
// content in a 40 row viewport, inline control at row 800, pinned at 700.
func newTestController(t *testing.T) (*Controller, *fakeSurface, *fakeHandle, *fakeHandle) {
	t.Helper()
	surface := &fakeSurface{content: 200, viewport: 40}
	inline := &fakeHandle{y: 800, ok: true}
	pinned := &fakeHandle{y: 700, ok: true}
	return NewController(surface, inline, pinned), surface, inline, pinned
}

func TestInitialVisibility(t *testing.T) {
	c, _, _, _ := newTestController(t)

	vis := c.Visibility()
	if !vis.InlineVisible {
		t.Error("inline control should start visible")
	}
	if vis.PinnedVisible {
		t.Error("pinned control should start hidden")
	}
}

func TestCheckScrollable(t *testing.T) {
	tests := []struct {
		name     string
		content  int
		viewport int
		want     bool
	}{
		{"content overflows", 200, 40, true},
		{"content fits exactly", 40, 40, false},
		{"content shorter than viewport", 10, 40, false},
		{"single row overflow", 41, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surface := &fakeSurface{content: tt.content, viewport: tt.viewport}
			c := NewController(surface, &fakeHandle{ok: true}, &fakeHandle{ok: true})

			if got := c.CheckScrollable(); got != tt.want {
				t.Errorf("CheckScrollable() = %v, want %v", got, tt.want)
			}
			if c.Scrollable() != tt.want {
				t.Errorf("Scrollable() = %v after check, want %v", c.Scrollable(), tt.want)
			}
		})
	}
}

// Content shorter than the viewport: the monitor reports not scrollable, the
// reconciler never changes anything, and the inline control stays visible.
func TestShortContentKeepsInlineVisible(t *testing.T) {
	surface := &fakeSurface{content: 10, viewport: 40}
	inline := &fakeHandle{y: 8, ok: true}
	pinned := &fakeHandle{y: 36, ok: true}
	c := NewController(surface, inline, pinned)

	if c.CheckScrollable() {
		t.Fatal("short content should not be scrollable")
	}

	vis := c.Reconcile()
	if !vis.InlineVisible || vis.PinnedVisible {
		t.Errorf("visibility after gated pass = %+v, want inline only", vis)
	}
}

// Long content at scroll offset zero: the inline control's natural position
// is below the pinned row, so the first pass hands off to the pinned copy.
func TestInitialHandoffToPinned(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.CheckScrollable()

	vis := c.Reconcile()
	if vis.InlineVisible {
		t.Error("inline control should be hidden while below the pinned row")
	}
	if !vis.PinnedVisible {
		t.Error("pinned control should be visible while inline is off-screen")
	}
}

// Exact alignment hands off to the inline control: the tie favors the
// in-flow control.
func TestTieFavorsInline(t *testing.T) {
	c, _, inline, _ := newTestController(t)
	c.CheckScrollable()

	inline.y = 700
	vis := c.Reconcile()
	if !vis.InlineVisible || vis.PinnedVisible {
		t.Errorf("visibility at exact alignment = %+v, want inline only", vis)
	}
}

// Scrolling back down past the threshold flips visibility back to pinned.
func TestScrollBackRestoresPinned(t *testing.T) {
	c, _, inline, _ := newTestController(t)
	c.CheckScrollable()

	inline.y = 650
	if vis := c.Reconcile(); !vis.InlineVisible {
		t.Fatal("inline should be visible above the pinned row")
	}

	inline.y = 900
	vis := c.Reconcile()
	if vis.InlineVisible || !vis.PinnedVisible {
		t.Errorf("visibility after scrolling back = %+v, want pinned only", vis)
	}
}

func TestThresholdProperty(t *testing.T) {
	tests := []struct {
		name       string
		inlineY    int
		wantInline bool
	}{
		{"well above pinned", 100, true},
		{"one row above", 699, true},
		{"exactly aligned", 700, true},
		{"one row below", 701, false},
		{"well below pinned", 1200, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, inline, _ := newTestController(t)
			c.CheckScrollable()
			inline.y = tt.inlineY

			vis := c.Reconcile()
			if vis.InlineVisible != tt.wantInline {
				t.Errorf("InlineVisible = %v for inlineY=%d, pinnedY=700", vis.InlineVisible, tt.inlineY)
			}
			if vis.InlineVisible == vis.PinnedVisible {
				t.Errorf("exclusivity violated: %+v", vis)
			}
		})
	}
}

// Every reconciled state has exactly one visible control.
func TestExclusivityInvariant(t *testing.T) {
	c, _, inline, _ := newTestController(t)
	c.CheckScrollable()

	for y := 600; y <= 900; y += 10 {
		inline.y = y
		vis := c.Reconcile()
		if vis.InlineVisible == vis.PinnedVisible {
			t.Fatalf("exclusivity violated at inlineY=%d: %+v", y, vis)
		}
	}
}

func TestReconcileIdempotent(t *testing.T) {
	c, _, _, _ := newTestController(t)
	c.CheckScrollable()

	first := c.Reconcile()
	second := c.Reconcile()
	if first != second {
		t.Errorf("repeated pass changed state: %+v then %+v", first, second)
	}
}

// A control that has not been laid out yet skips the pass entirely; the
// previous state is kept and no partial update is applied.
func TestUnresolvedControlSkipsPass(t *testing.T) {
	tests := []struct {
		name           string
		inlineResolved bool
		pinnedResolved bool
	}{
		{"inline unresolved", false, true},
		{"pinned unresolved", true, false},
		{"both unresolved", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, inline, pinned := newTestController(t)
			c.CheckScrollable()
			inline.ok = tt.inlineResolved
			pinned.ok = tt.pinnedResolved

			before := c.Visibility()
			after := c.Reconcile()
			if before != after {
				t.Errorf("skipped pass changed state: %+v then %+v", before, after)
			}

			// The next event retries and succeeds.
			inline.ok = true
			pinned.ok = true
			vis := c.Reconcile()
			if !vis.PinnedVisible {
				t.Errorf("retry after resolution = %+v, want pinned visible", vis)
			}
		})
	}
}

func TestSchedulePassCoalesces(t *testing.T) {
	c, _, _, _ := newTestController(t)

	if !c.SchedulePass() {
		t.Fatal("first SchedulePass should request scheduling")
	}
	if c.SchedulePass() {
		t.Error("second SchedulePass before the pass ran should coalesce")
	}

	c.CheckScrollable()
	c.Reconcile()

	if !c.SchedulePass() {
		t.Error("SchedulePass after the pass ran should request scheduling again")
	}
}

// Teardown with a pass still scheduled: the pending pass must run as a safe
// no-op and nothing may be scheduled afterwards.
func TestCloseMakesPendingPassNoOp(t *testing.T) {
	c, _, inline, _ := newTestController(t)
	c.CheckScrollable()
	c.SchedulePass()

	before := c.Visibility()
	c.Close()

	inline.y = 100 // would hand off to inline if the pass ran
	if vis := c.Reconcile(); vis != before {
		t.Errorf("pass after Close changed state: %+v", vis)
	}
	if c.SchedulePass() {
		t.Error("SchedulePass after Close should refuse")
	}
	if c.CheckScrollable() {
		t.Error("CheckScrollable after Close should report not scrollable")
	}
}

// Growing content re-establishes scrollability; shrinking it gates the
// reconciler again.
func TestContentResizeRechecks(t *testing.T) {
	surface := &fakeSurface{content: 30, viewport: 40}
	inline := &fakeHandle{y: 28, ok: true}
	pinned := &fakeHandle{y: 36, ok: true}
	c := NewController(surface, inline, pinned)

	if c.CheckScrollable() {
		t.Fatal("content should not be scrollable yet")
	}

	surface.content = 120
	inline.y = 118
	if !c.CheckScrollable() {
		t.Fatal("grown content should be scrollable")
	}
	if vis := c.Reconcile(); !vis.PinnedVisible {
		t.Errorf("after growth = %+v, want pinned visible", vis)
	}

	surface.content = 30
	if c.CheckScrollable() {
		t.Fatal("shrunk content should not be scrollable")
	}
	if vis := c.Visibility(); !vis.InlineVisible || vis.PinnedVisible {
		t.Errorf("after shrink = %+v, want inline only", vis)
	}
}

func TestOverflow(t *testing.T) {
	tests := []struct {
		content  int
		viewport int
		want     int
	}{
		{200, 40, 160},
		{40, 40, 0},
		{10, 40, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := Overflow(tt.content, tt.viewport); got != tt.want {
			t.Errorf("Overflow(%d, %d) = %d, want %d", tt.content, tt.viewport, got, tt.want)
		}
	}
}
