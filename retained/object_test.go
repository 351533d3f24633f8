package retained

import "testing"

func TestVisibilityDirtiesParent(t *testing.T) {
	f := NewFlow(Horizontal)
	b := NewBox(10, 10)
	f.AddChild(b)
	f.Reflow()

	b.SetVisible(true)
	if f.NeedsReflow() {
		t.Error("setting the current visibility must not dirty the parent")
	}
	b.SetVisible(false)
	if !f.NeedsReflow() {
		t.Error("hiding a child must dirty the parent")
	}
}

func TestContentChangedWithoutParent(t *testing.T) {
	b := NewBox(10, 10)
	// Must not panic on an unmanaged element.
	b.SetSize(20, 20)
	if w, h := b.Size(); w != 20 || h != 20 {
		t.Errorf("Size = %vx%v, want 20x20", w, h)
	}
}

func TestSetPosDoesNotDirtyParent(t *testing.T) {
	f := NewFlow(Horizontal)
	b := NewBox(10, 10)
	f.AddChild(b)
	f.Reflow()

	b.SetPos(50, 50)
	if f.NeedsReflow() {
		t.Error("moving a child directly must not dirty the parent")
	}
}

func TestLeafResizeNotifiesParent(t *testing.T) {
	f := NewFlow(Horizontal)
	b := NewBox(10, 10)
	f.AddChild(b)
	f.Reflow()

	b.SetSize(30, 10)
	if !f.NeedsReflow() {
		t.Error("changing a leaf's natural size must dirty the parent")
	}
	if w := f.OuterWidth(); w != 30 {
		t.Errorf("OuterWidth = %v, want 30", w)
	}
}
