package retained

import "testing"

func TestPadValue(t *testing.T) {
	if got := Pad(3).Extra(); got != 3 {
		t.Errorf("Pad(3).Extra() = %v, want 3", got)
	}
	if Pad(3).Ignores() {
		t.Error("explicit pad must not ignore")
	}
	if got := PadIgnore.Extra(); got != 0 {
		t.Errorf("PadIgnore.Extra() = %v, want 0", got)
	}
	if !PadIgnore.Ignores() {
		t.Error("PadIgnore must ignore")
	}
}

func TestPropertySettersDetectChanges(t *testing.T) {
	f := NewFlow(Horizontal)
	p := f.AddChild(NewBox(10, 10))
	f.Reflow()

	sets := []struct {
		name string
		same func()
		diff func()
	}{
		{"Offset", func() { p.SetOffset(0, 0) }, func() { p.SetOffset(1, 0) }},
		{"MinSize", func() { p.SetMinSize(0, 0) }, func() { p.SetMinSize(5, 0) }},
		{"LineBreak", func() { p.SetLineBreak(false) }, func() { p.SetLineBreak(true) }},
		{"AutoWidth", func() { p.SetAutoWidth(0) }, func() { p.SetAutoWidth(0.5) }},
		{"HorizontalAlign", func() { p.SetHorizontalAlign(AlignAuto) }, func() { p.SetHorizontalAlign(AlignRight) }},
	}

	for _, tt := range sets {
		t.Run(tt.name, func(t *testing.T) {
			f.ReflowIfNeeded()
			tt.same()
			if f.NeedsReflow() {
				t.Error("setting an unchanged value must not dirty the flow")
			}
			tt.diff()
			if !f.NeedsReflow() {
				t.Error("changing the value must dirty the flow")
			}
		})
	}
}

func TestAbsoluteChildChangeDoesNotRippleUp(t *testing.T) {
	parent := NewFlow(Vertical)
	inner := NewFlow(Horizontal)
	parent.AddChild(inner)
	abs := NewBox(10, 10)
	pa := inner.AddChild(abs)
	pa.SetAbsolute(true)
	parent.Reflow()

	pa.SetOffset(5, 5)
	if !inner.NeedsReflow() {
		t.Error("inner flow must re-place its absolute child")
	}
	if parent.NeedsReflow() {
		t.Error("absolute child changes must not invalidate the grandparent")
	}
}

func TestToggleAbsoluteInvalidatesUpward(t *testing.T) {
	parent := NewFlow(Vertical)
	inner := NewFlow(Horizontal)
	parent.AddChild(inner)
	p := inner.AddChild(NewBox(10, 10))
	parent.Reflow()

	// Entering or leaving the flow changes the inner flow's own size, so
	// this one does ripple.
	p.SetAbsolute(true)
	if !parent.NeedsReflow() {
		t.Error("toggling absolute must invalidate the parent chain")
	}
}

func TestCalculatedSizeIncludesExtraPadding(t *testing.T) {
	f := NewFlow(Horizontal)
	p := f.AddChild(NewBox(10, 20))
	p.SetPadding(Pad(1), Pad(2), Pad(3), Pad(4))
	f.Reflow()

	if w := p.CalculatedWidth(); w != 16 {
		t.Errorf("CalculatedWidth = %v, want 16", w)
	}
	if h := p.CalculatedHeight(); h != 24 {
		t.Errorf("CalculatedHeight = %v, want 24", h)
	}
}

func TestChildMinSizeFloorsCalculated(t *testing.T) {
	f := NewFlow(Horizontal)
	p := f.AddChild(NewBox(10, 10))
	p.SetMinSize(30, 25)
	f.Reflow()

	if w, h := p.CalculatedWidth(), p.CalculatedHeight(); w != 30 || h != 25 {
		t.Errorf("calculated = %vx%v, want 30x25", w, h)
	}
}
