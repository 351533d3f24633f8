package retained

import "testing"

// scrollFixture builds a vertical flow with 400px of content capped at 100px.
func scrollFixture() (*Flow, []*Box) {
	f := NewFlow(Vertical)
	f.SetMinSize(100, 0)
	f.SetMaxSize(0, 100)
	f.SetOverflow(OverflowScroll)
	boxes := make([]*Box, 4)
	for i := range boxes {
		boxes[i] = NewBox(20, 100)
		f.AddChild(boxes[i])
	}
	f.Reflow()
	return f, boxes
}

func TestScrollSetup(t *testing.T) {
	f, _ := scrollFixture()

	if h := f.OuterHeight(); h != 100 {
		t.Errorf("OuterHeight = %v, want 100", h)
	}
	if h := f.ContentHeight(); h != 400 {
		t.Errorf("ContentHeight = %v, want 400", h)
	}
	if f.ScrollBar() == nil || f.ScrollCursor() == nil {
		t.Fatal("scroll overflow must attach a scrollbar")
	}

	// Cursor height encodes the visible fraction: 100*100/400.
	if h := f.ScrollCursor().OuterHeight(); h != 25 {
		t.Errorf("cursor height = %v, want 25", h)
	}
	if x := f.ScrollBar().X; x != 100-8 {
		t.Errorf("track X = %v, want 92", x)
	}
}

func TestSetScrollPosShiftsWithoutReflow(t *testing.T) {
	f, boxes := scrollFixture()

	f.SetScrollPos(150)
	if f.NeedsReflow() {
		t.Error("SetScrollPos must not trigger a reflow")
	}
	if boxes[0].Y != -150 {
		t.Errorf("first child Y = %v, want -150", boxes[0].Y)
	}
	if boxes[1].Y != -50 {
		t.Errorf("second child Y = %v, want -50", boxes[1].Y)
	}
}

func TestScrollPosClamped(t *testing.T) {
	f, _ := scrollFixture()

	f.SetScrollPos(1000)
	if got := f.ScrollPos(); got != 300 {
		t.Errorf("ScrollPos = %v, want clamp at contentHeight-outerHeight = 300", got)
	}
	f.SetScrollPos(-50)
	if got := f.ScrollPos(); got != 0 {
		t.Errorf("ScrollPos = %v, want clamp at 0", got)
	}
}

func TestScrollCursorTracksPosition(t *testing.T) {
	f, _ := scrollFixture()

	f.SetScrollPos(300)
	// Track travel is outer minus cursor height: 100-25 = 75.
	if y := f.ScrollCursor().Y; y != 75 {
		t.Errorf("cursor Y = %v, want 75 at full scroll", y)
	}
	f.SetScrollPos(150)
	if y := f.ScrollCursor().Y; y != 37.5 {
		t.Errorf("cursor Y = %v, want 37.5 at half scroll", y)
	}
}

func TestDragScrollCursor(t *testing.T) {
	f, _ := scrollFixture()

	f.DragScrollCursorTo(75)
	if got := f.ScrollPos(); got != 300 {
		t.Errorf("ScrollPos = %v, want 300 after dragging the cursor to the end", got)
	}
}

func TestWheelUsesScrollSpeed(t *testing.T) {
	f, _ := scrollFixture()

	f.Wheel(1)
	if got := f.ScrollPos(); got != 30 {
		t.Errorf("ScrollPos = %v, want the default speed 30", got)
	}
	f.SetScrollSpeed(10)
	f.Wheel(-2)
	if got := f.ScrollPos(); got != 10 {
		t.Errorf("ScrollPos = %v, want 10", got)
	}
}

func TestScrollPosIgnoredWithoutScrollOverflow(t *testing.T) {
	f := NewFlow(Vertical)
	f.SetMaxSize(0, 100)
	f.SetOverflow(OverflowHidden)
	f.AddChild(NewBox(20, 400))
	f.Reflow()

	f.SetScrollPos(50)
	if got := f.ScrollPos(); got != 0 {
		t.Errorf("ScrollPos = %v, want 0 without scroll overflow", got)
	}
}

func TestLeavingScrollTearsDownScrollBar(t *testing.T) {
	f, _ := scrollFixture()
	f.SetScrollPos(100)

	f.SetOverflow(OverflowExpand)
	if f.ScrollBar() != nil || f.ScrollCursor() != nil {
		t.Error("scrollbar must be torn down when leaving scroll overflow")
	}
	if got := f.ScrollPos(); got != 0 {
		t.Errorf("ScrollPos = %v, want reset to 0", got)
	}
	if n := f.NumChildren(); n != 4 {
		t.Errorf("NumChildren = %d, want 4 after removing the track", n)
	}
}

func TestScrollBarHiddenWhenContentFits(t *testing.T) {
	f := NewFlow(Vertical)
	f.SetMaxSize(0, 100)
	f.SetOverflow(OverflowScroll)
	f.AddChild(NewBox(20, 40))
	f.Reflow()

	if f.ScrollBar().Visible() {
		t.Error("scrollbar must hide when the content fits")
	}
}
