package retained

// FlowLayout selects the axis children are placed along.
type FlowLayout int

const (
	// Horizontal places children left to right, wrapping into rows when
	// multiline is enabled.
	Horizontal FlowLayout = iota

	// Vertical places children top to bottom, wrapping into columns when
	// multiline is enabled.
	Vertical

	// Stacked measures every child under the same shared constraint and
	// aligns each one independently; children may overlap.
	Stacked
)

// Align positions an element against an edge or the center of its line (or
// of the whole container for absolute and stacked children).
type Align int

const (
	// AlignAuto means "unset": a per-child value falls back to the
	// container default, and an unset container default falls back to a
	// hardcoded edge (left on the horizontal axis; bottom of the line for
	// the vertical axis in Horizontal mode, top in Vertical mode).
	AlignAuto Align = iota
	AlignTop
	AlignLeft
	AlignRight
	AlignMiddle
	AlignBottom
)

// Overflow controls what happens when content exceeds the resolved max size.
type Overflow int

const (
	// OverflowExpand grows the container to fit its content.
	OverflowExpand Overflow = iota

	// OverflowLimit caps the outer size; content past it is visually
	// clipped by whoever renders it, without masking.
	OverflowLimit

	// OverflowHidden caps the outer size and masks the overflowing
	// content.
	OverflowHidden

	// OverflowScroll caps the outer size, masks, and attaches a scrollbar
	// so the hidden content can be reached.
	OverflowScroll
)

// Edge identifies one side of a box. Indices match the padding array order.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// resolvedHorizontalAlign applies the two-level fallback for the horizontal
// axis: child override, else container default, else left.
func (f *Flow) resolvedHorizontalAlign(p *FlowProperties) Align {
	if p.horizontalAlign != AlignAuto {
		return p.horizontalAlign
	}
	if f.horizontalAlign != AlignAuto {
		return f.horizontalAlign
	}
	return AlignLeft
}

// resolvedVerticalAlign applies the two-level fallback for the vertical
// axis. The hardcoded fallback depends on the axis role: bottom of the line
// when vertical is the cross axis (Horizontal mode), top when it is the
// main axis.
func (f *Flow) resolvedVerticalAlign(p *FlowProperties) Align {
	if p.verticalAlign != AlignAuto {
		return p.verticalAlign
	}
	if f.verticalAlign != AlignAuto {
		return f.verticalAlign
	}
	if f.layout == Horizontal {
		return AlignBottom
	}
	return AlignTop
}

// alignGroup buckets a resolved alignment into the three main-axis groups.
// Values that name the perpendicular axis count as the start group, the
// same default used for AlignAuto.
type alignGroup int

const (
	groupStart alignGroup = iota
	groupMiddle
	groupEnd
)

func mainGroup(a Align, horizontal bool) alignGroup {
	if a == AlignMiddle {
		return groupMiddle
	}
	if horizontal {
		if a == AlignRight {
			return groupEnd
		}
	} else {
		if a == AlignBottom {
			return groupEnd
		}
	}
	return groupStart
}

// borderEligible decides whether child i may bleed into the container's
// padding region on the given edge: it must be flowed (not absolute) and be
// the outermost flowed child carrying that edge's resolved alignment, i.e.
// no earlier (start edge) or later (end edge) visible flowed sibling
// resolves to the same alignment. Flow order honors the reverse flag.
func (f *Flow) borderEligible(i int, edge Edge) bool {
	p := f.props[i]
	if p.isAbsolute {
		return false
	}
	horizontal := edge == EdgeLeft || edge == EdgeRight
	align := f.resolvedAxisAlign(p, horizontal)
	start := edge == EdgeLeft || edge == EdgeTop

	sameAligned := func(j int) bool {
		sp := f.props[j]
		if sp.isAbsolute || !f.children[j].base().Visible() {
			return false
		}
		return f.resolvedAxisAlign(sp, horizontal) == align
	}

	// Siblings preceding i in flow order sit at lower indices, or higher
	// ones when the flow is reversed.
	scanLower := start != f.reverse
	if scanLower {
		for j := 0; j < i; j++ {
			if sameAligned(j) {
				return false
			}
		}
	} else {
		for j := i + 1; j < len(f.children); j++ {
			if sameAligned(j) {
				return false
			}
		}
	}
	return true
}

func (f *Flow) resolvedAxisAlign(p *FlowProperties, horizontal bool) Align {
	if horizontal {
		return f.resolvedHorizontalAlign(p)
	}
	return f.resolvedVerticalAlign(p)
}
