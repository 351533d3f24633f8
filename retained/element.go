package retained

// Element is the contract the layout engine consumes from the scene-graph
// node base. Implementations embed Object, which provides everything except
// measurement.
type Element interface {
	// base exposes the embedded Object. Embedding retained.Object
	// satisfies this.
	base() *Object

	// Size returns the element's natural content size under the current
	// constraint.
	Size() (w, h float32)

	// Constrain imposes an upper bound on one or both dimensions before
	// measurement. A negative value leaves that dimension unconstrained.
	Constrain(maxW, maxH float32)
}

// Resizable is implemented by decorations a Flow keeps stretched to its
// outer size: a background patch and a full-bounds interactive overlay.
// Rendering and hit-testing of these live outside the layout engine.
type Resizable interface {
	Resize(w, h float32)
}

// Box is a leaf element with a fixed natural size. It ignores constraints,
// which also makes it the single-child-wider-than-the-container overflow
// case in wrapping flows.
type Box struct {
	Object
	W, H float32
}

// NewBox returns a box with the given natural size.
func NewBox(w, h float32) *Box {
	return &Box{W: w, H: h}
}

func (b *Box) Size() (float32, float32) { return b.W, b.H }

func (b *Box) Constrain(maxW, maxH float32) {}

// SetSize changes the natural size and notifies the managing flow.
func (b *Box) SetSize(w, h float32) {
	if b.W == w && b.H == h {
		return
	}
	b.W = w
	b.H = h
	b.ContentChanged()
}

// Resize implements Resizable so a Box can double as a background patch.
// Unlike SetSize it does not notify the parent: it is called from inside
// reflow post-processing.
func (b *Box) Resize(w, h float32) {
	b.W = w
	b.H = h
}

// Text is a leaf whose measurement reacts to a width constraint the way
// wrapped text does: a narrower bound produces a taller result. Glyphs are
// modeled as fixed-advance cells so measurement stays deterministic and
// renderer-free.
type Text struct {
	Object
	Content    string
	CharWidth  float32
	LineHeight float32

	maxWidth float32
}

// NewText returns a text leaf with the given cell metrics.
func NewText(content string, charWidth, lineHeight float32) *Text {
	return &Text{Content: content, CharWidth: charWidth, LineHeight: lineHeight, maxWidth: -1}
}

// SetContent replaces the text and notifies the managing flow.
func (t *Text) SetContent(s string) {
	if t.Content == s {
		return
	}
	t.Content = s
	t.ContentChanged()
}

func (t *Text) Constrain(maxW, maxH float32) {
	t.maxWidth = maxW
}

func (t *Text) Size() (float32, float32) {
	n := 0
	for range t.Content {
		n++
	}
	if n == 0 {
		return 0, t.LineHeight
	}
	natural := float32(n) * t.CharWidth
	if t.maxWidth < 0 || natural <= t.maxWidth || t.CharWidth <= 0 {
		return natural, t.LineHeight
	}
	perLine := int(t.maxWidth / t.CharWidth)
	if perLine < 1 {
		perLine = 1
	}
	lines := (n + perLine - 1) / perLine
	w := float32(perLine) * t.CharWidth
	if n < perLine {
		w = float32(n) * t.CharWidth
	}
	return w, float32(lines) * t.LineHeight
}
