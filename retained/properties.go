package retained

// PadValue is a per-child padding edge: either an explicit number of extra
// pixels added to the child's occupied box, or the ignore-parent variant.
// Ignore removes the container's padding contribution for that edge and,
// when the child is the outermost same-aligned flowed child on the edge,
// lets it bleed into the container's padding region (see Flow reflow).
// The zero value is Explicit(0).
type PadValue struct {
	px     float32
	ignore bool
}

// Pad returns an explicit padding value.
func Pad(px float32) PadValue { return PadValue{px: px} }

// PadIgnore is the ignore-parent-padding variant.
var PadIgnore = PadValue{ignore: true}

// Extra returns the explicit pixel amount (0 for the ignore variant).
func (p PadValue) Extra() float32 {
	if p.ignore {
		return 0
	}
	return p.px
}

// Ignores reports whether this is the ignore-parent variant.
func (p PadValue) Ignores() bool { return p.ignore }

// FlowProperties is the layout attribute record a Flow keeps for each
// managed child. It is created when the child is added and discarded when
// the child is removed; CalculatedWidth/Height and IsBreak are outputs of
// the last reflow, everything else is input. Every mutator compares the old
// and new value and only dirties the owning flow on an actual change.
type FlowProperties struct {
	flow  *Flow
	child Element

	padding         [4]PadValue // top, right, bottom, left
	isAbsolute      bool
	horizontalAlign Align // AlignAuto = unset
	verticalAlign   Align // AlignAuto = unset
	offsetX         float32
	offsetY         float32
	minWidth        float32 // 0 = unset
	minHeight       float32 // 0 = unset
	lineBreak       bool
	autoWidthRatio  float32 // 0 = unset
	autoHeightRatio float32 // 0 = unset

	calculatedWidth  float32
	calculatedHeight float32
	isBreak          bool
}

// Child returns the element this record belongs to.
func (p *FlowProperties) Child() Element { return p.child }

// CalculatedWidth returns the child's occupied width from the last reflow,
// including its own extra padding.
func (p *FlowProperties) CalculatedWidth() float32 { return p.calculatedWidth }

// CalculatedHeight returns the child's occupied height from the last reflow.
func (p *FlowProperties) CalculatedHeight() float32 { return p.calculatedHeight }

// IsBreak reports whether the last reflow started a new line (or column) at
// this child.
func (p *FlowProperties) IsBreak() bool { return p.isBreak }

// IsAbsolute reports whether the child is excluded from automatic flow
// placement.
func (p *FlowProperties) IsAbsolute() bool { return p.isAbsolute }

// SetAbsolute excludes or re-includes the child in flow placement.
func (p *FlowProperties) SetAbsolute(v bool) {
	if p.isAbsolute == v {
		return
	}
	p.isAbsolute = v
	p.flow.Invalidate()
}

// invalidate dirties the owning flow. Attribute changes on an absolute
// child only require re-placing that child; they do not ripple a resize
// notification to the flow's own parent.
func (p *FlowProperties) invalidate() {
	if p.isAbsolute {
		p.flow.needReflow = true
		return
	}
	p.flow.Invalidate()
}

// HorizontalAlign returns the per-child override (AlignAuto when unset).
func (p *FlowProperties) HorizontalAlign() Align { return p.horizontalAlign }

// SetHorizontalAlign overrides the container's horizontal alignment for
// this child. AlignAuto restores the container default.
func (p *FlowProperties) SetHorizontalAlign(a Align) {
	if p.horizontalAlign == a {
		return
	}
	p.horizontalAlign = a
	p.invalidate()
}

// VerticalAlign returns the per-child override (AlignAuto when unset).
func (p *FlowProperties) VerticalAlign() Align { return p.verticalAlign }

// SetVerticalAlign overrides the container's vertical alignment for this
// child. AlignAuto restores the container default.
func (p *FlowProperties) SetVerticalAlign(a Align) {
	if p.verticalAlign == a {
		return
	}
	p.verticalAlign = a
	p.invalidate()
}

// Offset returns the visual offset applied after placement.
func (p *FlowProperties) Offset() (x, y float32) { return p.offsetX, p.offsetY }

// SetOffset sets a visual offset applied after placement. Offsets do not
// affect the space the child occupies.
func (p *FlowProperties) SetOffset(x, y float32) {
	if p.offsetX == x && p.offsetY == y {
		return
	}
	p.offsetX = x
	p.offsetY = y
	p.invalidate()
}

// SetMinSize sets lower bounds for the calculated size. Zero clears a bound.
func (p *FlowProperties) SetMinSize(w, h float32) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if p.minWidth == w && p.minHeight == h {
		return
	}
	p.minWidth = w
	p.minHeight = h
	p.invalidate()
}

// LineBreak reports whether a wrap is forced before this child.
func (p *FlowProperties) LineBreak() bool { return p.lineBreak }

// SetLineBreak forces the flow to wrap before this child.
func (p *FlowProperties) SetLineBreak(v bool) {
	if p.lineBreak == v {
		return
	}
	p.lineBreak = v
	p.invalidate()
}

// SetPadding sets all four edges at once.
func (p *FlowProperties) SetPadding(top, right, bottom, left PadValue) {
	if p.padding[EdgeTop] == top && p.padding[EdgeRight] == right &&
		p.padding[EdgeBottom] == bottom && p.padding[EdgeLeft] == left {
		return
	}
	p.padding[EdgeTop] = top
	p.padding[EdgeRight] = right
	p.padding[EdgeBottom] = bottom
	p.padding[EdgeLeft] = left
	p.invalidate()
}

// SetPaddingEdge sets a single edge.
func (p *FlowProperties) SetPaddingEdge(e Edge, v PadValue) {
	if p.padding[e] == v {
		return
	}
	p.padding[e] = v
	p.invalidate()
}

// Padding returns the value for one edge.
func (p *FlowProperties) Padding(e Edge) PadValue { return p.padding[e] }

// AutoWidth returns the horizontal auto-size ratio (0 when unset).
func (p *FlowProperties) AutoWidth() float32 { return p.autoWidthRatio }

// SetAutoWidth gives the child a proportional share of the remaining
// horizontal space instead of an independent measurement. Zero disables it.
func (p *FlowProperties) SetAutoWidth(ratio float32) {
	if ratio < 0 {
		ratio = 0
	}
	if p.autoWidthRatio == ratio {
		return
	}
	p.autoWidthRatio = ratio
	p.invalidate()
}

// AutoHeight returns the vertical auto-size ratio (0 when unset).
func (p *FlowProperties) AutoHeight() float32 { return p.autoHeightRatio }

// SetAutoHeight gives the child a proportional share of the remaining
// vertical space. Zero disables it.
func (p *FlowProperties) SetAutoHeight(ratio float32) {
	if ratio < 0 {
		ratio = 0
	}
	if p.autoHeightRatio == ratio {
		return
	}
	p.autoHeightRatio = ratio
	p.invalidate()
}

// SetAutoSize sets both ratios at once.
func (p *FlowProperties) SetAutoSize(ratio float32) {
	p.SetAutoWidth(ratio)
	p.SetAutoHeight(ratio)
}

// mainRatio returns the auto-size ratio for the flow's main axis.
func (p *FlowProperties) mainRatio(horizontal bool) float32 {
	if horizontal {
		return p.autoWidthRatio
	}
	return p.autoHeightRatio
}

// crossRatio returns the auto-size ratio for the cross axis.
func (p *FlowProperties) crossRatio(horizontal bool) float32 {
	if horizontal {
		return p.autoHeightRatio
	}
	return p.autoWidthRatio
}

// extraMain returns the child's explicit padding along the main axis.
func (p *FlowProperties) extraMain(horizontal bool) (start, end float32) {
	if horizontal {
		return p.padding[EdgeLeft].Extra(), p.padding[EdgeRight].Extra()
	}
	return p.padding[EdgeTop].Extra(), p.padding[EdgeBottom].Extra()
}

// extraCross returns the child's explicit padding along the cross axis.
func (p *FlowProperties) extraCross(horizontal bool) (start, end float32) {
	if horizontal {
		return p.padding[EdgeTop].Extra(), p.padding[EdgeBottom].Extra()
	}
	return p.padding[EdgeLeft].Extra(), p.padding[EdgeRight].Extra()
}
