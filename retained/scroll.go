package retained

// Scrolling is vertical only. With OverflowScroll the flow caps its outer
// height, shifts flowed children up by the scroll position and attaches a
// scrollbar built out of two nested flows: a track pinned to the right edge
// and a cursor whose height encodes the visible fraction of the content.
// Absolute children do not scroll.

const minScrollCursorHeight = 10

// ScrollPos returns the current scroll offset in pixels.
func (f *Flow) ScrollPos() float32 { return f.scrollPos }

// ScrollSpeed returns the pixels scrolled per wheel notch.
func (f *Flow) ScrollSpeed() float32 { return f.scrollSpeed }

// SetScrollSpeed sets the pixels scrolled per wheel notch.
func (f *Flow) SetScrollSpeed(v float32) {
	if v < 0 {
		v = 0
	}
	f.scrollSpeed = v
}

// SetScrollBarWidth sets the track width used by OverflowScroll.
func (f *Flow) SetScrollBarWidth(w float32) {
	if w <= 0 || f.scrollBarWidth == w {
		return
	}
	f.scrollBarWidth = w
	if f.overflow == OverflowScroll {
		f.needReflow = true
	}
}

// SetOverflow switches the overflow policy, creating or tearing down the
// scrollbar as needed. Leaving OverflowScroll resets the scroll position.
func (f *Flow) SetOverflow(o Overflow) {
	if f.overflow == o {
		return
	}
	prev := f.overflow
	f.overflow = o
	if o == OverflowScroll {
		f.makeScrollBar()
	} else if prev == OverflowScroll {
		f.destroyScrollBar()
	}
	f.Invalidate()
}

// SetScrollPos scrolls to an absolute offset, clamped to
// [0, contentHeight-outerHeight]. Flowed children are shifted by the delta
// directly; no reflow is triggered.
func (f *Flow) SetScrollPos(v float32) {
	if f.overflow != OverflowScroll {
		return
	}
	f.ReflowIfNeeded()
	max := f.contentHeight - f.calculatedHeight
	if max < 0 {
		max = 0
	}
	if v < 0 {
		v = 0
	}
	if v > max {
		v = max
	}
	if v == f.scrollPos {
		return
	}
	delta := v - f.scrollPos
	f.scrollPos = v
	for i, child := range f.children {
		if f.props[i].isAbsolute || !child.base().Visible() {
			continue
		}
		child.base().Y -= delta
	}
	f.positionScrollCursor()
}

// ScrollBy scrolls by a relative amount.
func (f *Flow) ScrollBy(delta float32) {
	f.SetScrollPos(f.scrollPos + delta)
}

// Wheel scrolls by notches times the scroll speed. Positive scrolls down.
func (f *Flow) Wheel(notches float32) {
	f.ScrollBy(notches * f.scrollSpeed)
}

// DragScrollCursorTo maps a cursor position within the track back to a
// scroll offset, for callers wiring up pointer drag on the cursor.
func (f *Flow) DragScrollCursorTo(y float32) {
	if f.overflow != OverflowScroll || f.scrollCursor == nil {
		return
	}
	f.ReflowIfNeeded()
	maxScroll := f.contentHeight - f.calculatedHeight
	travel := f.calculatedHeight - f.scrollCursorHeight()
	if maxScroll <= 0 || travel <= 0 {
		return
	}
	f.SetScrollPos(y / travel * maxScroll)
}

// ScrollBar returns the track flow, or nil when overflow is not Scroll.
// Callers attach a background and pointer handlers to it.
func (f *Flow) ScrollBar() *Flow { return f.scrollBar }

// ScrollCursor returns the cursor flow, or nil when overflow is not Scroll.
func (f *Flow) ScrollCursor() *Flow { return f.scrollCursor }

func (f *Flow) makeScrollBar() {
	track := NewFlow(Vertical)
	cursor := NewFlow(Vertical)
	track.AddChild(cursor).SetAbsolute(true)
	f.scrollBar = track
	f.scrollCursor = cursor
	f.AddChild(track).SetAbsolute(true)
}

func (f *Flow) destroyScrollBar() {
	if f.scrollBar == nil {
		return
	}
	f.RemoveChild(f.scrollBar)
	f.scrollBar = nil
	f.scrollCursor = nil
	f.scrollPos = 0
}

func (f *Flow) scrollCursorHeight() float32 {
	outH := f.calculatedHeight
	if f.contentHeight <= 0 || outH <= 0 {
		return 0
	}
	h := outH * outH / f.contentHeight
	if h < minScrollCursorHeight {
		h = minScrollCursorHeight
	}
	if h > outH {
		h = outH
	}
	return h
}

// syncScrollBar sizes and pins the track and cursor to the freshly resolved
// geometry. Called from reflow post-processing; the dirtying it causes on f
// is cleared when the reflow commits.
func (f *Flow) syncScrollBar() {
	if f.scrollBar == nil {
		return
	}
	outW, outH := f.calculatedWidth, f.calculatedHeight
	f.scrollBar.SetVisible(f.contentHeight > outH)
	f.scrollBar.SetMinSize(f.scrollBarWidth, outH)
	f.scrollBar.SetMaxSize(f.scrollBarWidth, outH)
	f.scrollBar.base().SetPos(outW-f.scrollBarWidth, 0)

	cursorH := f.scrollCursorHeight()
	f.scrollCursor.SetMinSize(f.scrollBarWidth, cursorH)
	f.scrollCursor.SetMaxSize(f.scrollBarWidth, cursorH)
	f.positionScrollCursor()
}

func (f *Flow) positionScrollCursor() {
	if f.scrollCursor == nil {
		return
	}
	outH := f.calculatedHeight
	maxScroll := f.contentHeight - outH
	travel := outH - f.scrollCursorHeight()
	y := float32(0)
	if maxScroll > 0 && travel > 0 {
		y = f.scrollPos / maxScroll * travel
	}
	f.scrollCursor.base().SetPos(0, y)
}
