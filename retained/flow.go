package retained

// Flow is a layout container: it owns an ordered set of child elements plus
// one FlowProperties record per child (same index, kept in lockstep), and
// computes their positions and sizes on demand.
//
// Reflow is lazy: mutators mark the flow dirty and the next size query,
// Reflow call or ReflowIfNeeded runs the two-pass computation. Reflow is
// idempotent: two calls with no mutation in between produce identical
// geometry.
type Flow struct {
	Object

	layout          FlowLayout
	reverse         bool
	horizontalAlign Align // container default, AlignAuto = unset
	verticalAlign   Align
	padding         [4]float32 // top, right, bottom, left
	borders         [4]float32
	bordersEnabled  bool
	minWidth        float32 // 0 = unset
	minHeight       float32
	maxWidth        float32 // 0 = unset
	maxHeight       float32
	lineHeight      float32 // 0 = unset; fixed row height in Horizontal mode
	colWidth        float32 // 0 = unset; fixed column width in Vertical mode
	overflow        Overflow
	multiline       bool
	hSpacing        float32
	vSpacing        float32
	fillWidth       bool
	fillHeight      bool
	scrollPos       float32
	scrollSpeed     float32
	scrollBarWidth  float32
	debug           bool

	children []Element
	props    []*FlowProperties

	// Cached state from the last reflow / constraint update.
	calculatedWidth  float32
	calculatedHeight float32
	contentWidth     float32 // pre-clamp natural content size
	contentHeight    float32
	constraintWidth  float32 // -1 = none; imposed by the parent
	constraintHeight float32
	realMaxWidth     float32 // -1 = unbounded
	realMaxHeight    float32
	realMinWidth     float32
	realMinHeight    float32
	needReflow       bool
	reflowing        bool

	background Resizable
	hitArea    Resizable

	scrollBar    *Flow
	scrollCursor *Flow

	debugRects []DebugRect

	// BeforeReflow and AfterReflow fire immediately around each reflow so
	// external code can react to newly computed geometry.
	BeforeReflow func()
	AfterReflow  func()
}

// NewFlow returns an empty dirty flow with the given layout mode.
func NewFlow(layout FlowLayout) *Flow {
	return &Flow{
		layout:           layout,
		constraintWidth:  -1,
		constraintHeight: -1,
		realMaxWidth:     -1,
		realMaxHeight:    -1,
		scrollSpeed:      30,
		scrollBarWidth:   8,
		needReflow:       true,
	}
}

// ----------------------------------------------------------------------------
// Dirty tracking
// ----------------------------------------------------------------------------

// Invalidate marks the flow dirty and propagates a content-changed
// notification to its own parent.
func (f *Flow) Invalidate() {
	f.needReflow = true
	f.ContentChanged()
}

// NeedsReflow reports whether geometry queries will trigger a recompute.
func (f *Flow) NeedsReflow() bool { return f.needReflow }

// childContentChanged receives upward notifications from managed children.
// A content change in an absolute child only requires re-placing it; it
// does not ripple a resize notification further up.
func (f *Flow) childContentChanged(o *Object) {
	p := f.propsForObject(o)
	if p != nil && p.isAbsolute {
		f.needReflow = true
		return
	}
	f.Invalidate()
}

func (f *Flow) propsForObject(o *Object) *FlowProperties {
	for i, c := range f.children {
		if c.base() == o {
			return f.props[i]
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Child management
// ----------------------------------------------------------------------------

// AddChild appends el and returns its fresh properties record.
func (f *Flow) AddChild(el Element) *FlowProperties {
	return f.AddChildAt(len(f.children), el)
}

// AddChildAt inserts el at index i. Child order defines flow order and
// z-order. The children and properties collections stay in lockstep.
func (f *Flow) AddChildAt(i int, el Element) *FlowProperties {
	ob := el.base()
	if ob.parent != nil {
		ob.parent.RemoveChild(el)
	}
	if i < 0 {
		i = 0
	}
	if i > len(f.children) {
		i = len(f.children)
	}
	p := &FlowProperties{flow: f, child: el}
	f.children = append(f.children, nil)
	copy(f.children[i+1:], f.children[i:])
	f.children[i] = el
	f.props = append(f.props, nil)
	copy(f.props[i+1:], f.props[i:])
	f.props[i] = p
	ob.parent = f
	f.Invalidate()
	return p
}

// RemoveChild detaches el, discards its properties record and clears any
// constraint the flow imposed on it. Lookup is by identity, so callers
// holding stale indices after structural changes are not supported.
func (f *Flow) RemoveChild(el Element) bool {
	ob := el.base()
	for i, c := range f.children {
		if c.base() != ob {
			continue
		}
		f.children = append(f.children[:i], f.children[i+1:]...)
		f.props = append(f.props[:i], f.props[i+1:]...)
		ob.parent = nil
		el.Constrain(-1, -1)
		f.Invalidate()
		return true
	}
	return false
}

// MoveChildTo reorders el to index idx, keeping properties in lockstep.
func (f *Flow) MoveChildTo(el Element, idx int) bool {
	ob := el.base()
	cur := -1
	for i, c := range f.children {
		if c.base() == ob {
			cur = i
			break
		}
	}
	if cur < 0 {
		return false
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(f.children) {
		idx = len(f.children) - 1
	}
	if idx == cur {
		return true
	}
	c, p := f.children[cur], f.props[cur]
	f.children = append(f.children[:cur], f.children[cur+1:]...)
	f.props = append(f.props[:cur], f.props[cur+1:]...)
	f.children = append(f.children, nil)
	copy(f.children[idx+1:], f.children[idx:])
	f.children[idx] = c
	f.props = append(f.props, nil)
	copy(f.props[idx+1:], f.props[idx:])
	f.props[idx] = p
	f.Invalidate()
	return true
}

// Props returns the properties record for el, or nil if el is not managed
// by this flow.
func (f *Flow) Props(el Element) *FlowProperties {
	return f.propsForObject(el.base())
}

// NumChildren returns the number of managed children.
func (f *Flow) NumChildren() int { return len(f.children) }

// ChildAt returns the child at index i in insertion order.
func (f *Flow) ChildAt(i int) Element { return f.children[i] }

// PropsAt returns the properties record at index i.
func (f *Flow) PropsAt(i int) *FlowProperties { return f.props[i] }

// ----------------------------------------------------------------------------
// Container attribute setters (change-detected)
// ----------------------------------------------------------------------------

// Layout returns the axis mode.
func (f *Flow) Layout() FlowLayout { return f.layout }

// SetLayout switches the axis mode.
func (f *Flow) SetLayout(l FlowLayout) {
	if f.layout == l {
		return
	}
	f.layout = l
	f.Invalidate()
}

// SetReverse flips the order children are flowed in. Reversal affects flow
// order only, not indices or z-order.
func (f *Flow) SetReverse(v bool) {
	if f.reverse == v {
		return
	}
	f.reverse = v
	f.Invalidate()
}

// SetHorizontalAlign sets the container default for the horizontal axis.
func (f *Flow) SetHorizontalAlign(a Align) {
	if f.horizontalAlign == a {
		return
	}
	f.horizontalAlign = a
	f.Invalidate()
}

// SetVerticalAlign sets the container default for the vertical axis.
func (f *Flow) SetVerticalAlign(a Align) {
	if f.verticalAlign == a {
		return
	}
	f.verticalAlign = a
	f.Invalidate()
}

// SetPadding sets all four padding edges to the same value.
func (f *Flow) SetPadding(px float32) {
	f.SetPaddingEdges(px, px, px, px)
}

// SetPaddingEdges sets the four padding edges.
func (f *Flow) SetPaddingEdges(top, right, bottom, left float32) {
	if f.padding[EdgeTop] == top && f.padding[EdgeRight] == right &&
		f.padding[EdgeBottom] == bottom && f.padding[EdgeLeft] == left {
		return
	}
	f.padding[EdgeTop] = top
	f.padding[EdgeRight] = right
	f.padding[EdgeBottom] = bottom
	f.padding[EdgeLeft] = left
	f.Invalidate()
}

// Padding returns one padding edge.
func (f *Flow) Padding(e Edge) float32 { return f.padding[e] }

// SetBorders sets the border inset widths and enables them.
func (f *Flow) SetBorders(top, right, bottom, left float32) {
	if f.bordersEnabled && f.borders[EdgeTop] == top && f.borders[EdgeRight] == right &&
		f.borders[EdgeBottom] == bottom && f.borders[EdgeLeft] == left {
		return
	}
	f.borders[EdgeTop] = top
	f.borders[EdgeRight] = right
	f.borders[EdgeBottom] = bottom
	f.borders[EdgeLeft] = left
	f.bordersEnabled = true
	f.Invalidate()
}

// DisableBorders turns border insets off without clearing the widths.
func (f *Flow) DisableBorders() {
	if !f.bordersEnabled {
		return
	}
	f.bordersEnabled = false
	f.Invalidate()
}

func (f *Flow) borderInset(e Edge) float32 {
	if !f.bordersEnabled {
		return 0
	}
	return f.borders[e]
}

// inset returns padding plus border for one edge.
func (f *Flow) inset(e Edge) float32 { return f.padding[e] + f.borderInset(e) }

// SetMinSize sets the minimum outer size. Zero clears a bound.
func (f *Flow) SetMinSize(w, h float32) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if f.minWidth == w && f.minHeight == h {
		return
	}
	f.minWidth = w
	f.minHeight = h
	f.updateConstraint()
	f.Invalidate()
}

// SetMaxSize sets the maximum outer size. Zero clears a bound.
func (f *Flow) SetMaxSize(w, h float32) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if f.maxWidth == w && f.maxHeight == h {
		return
	}
	f.maxWidth = w
	f.maxHeight = h
	f.updateConstraint()
	f.Invalidate()
}

// SetLineHeight fixes a minimum row height for Horizontal mode. Zero clears.
func (f *Flow) SetLineHeight(h float32) {
	if f.lineHeight == h {
		return
	}
	f.lineHeight = h
	f.Invalidate()
}

// SetColWidth fixes a minimum column width for Vertical mode. Zero clears.
func (f *Flow) SetColWidth(w float32) {
	if f.colWidth == w {
		return
	}
	f.colWidth = w
	f.Invalidate()
}

// Overflow returns the overflow policy.
func (f *Flow) Overflow() Overflow { return f.overflow }

// SetMultiline enables wrapping into multiple lines (or columns).
func (f *Flow) SetMultiline(v bool) {
	if f.multiline == v {
		return
	}
	f.multiline = v
	f.Invalidate()
}

// SetSpacing sets the inter-child spacing: horizontal between columns,
// vertical between rows.
func (f *Flow) SetSpacing(h, v float32) {
	if f.hSpacing == h && f.vSpacing == v {
		return
	}
	f.hSpacing = h
	f.vSpacing = v
	f.Invalidate()
}

// SetFillWidth makes the flow grow to any width constraint imposed by its
// parent.
func (f *Flow) SetFillWidth(v bool) {
	if f.fillWidth == v {
		return
	}
	f.fillWidth = v
	f.updateConstraint()
	f.Invalidate()
}

// SetFillHeight makes the flow grow to any height constraint imposed by its
// parent.
func (f *Flow) SetFillHeight(v bool) {
	if f.fillHeight == v {
		return
	}
	f.fillHeight = v
	f.updateConstraint()
	f.Invalidate()
}

// SetDebug toggles the debug overlay (recorded rectangles, see DebugRects).
func (f *Flow) SetDebug(v bool) {
	if f.debug == v {
		return
	}
	f.debug = v
	f.needReflow = true
}

// SetBackground attaches a decoration kept resized to the outer size.
func (f *Flow) SetBackground(r Resizable) {
	if f.background == r {
		return
	}
	f.background = r
	f.needReflow = true
}

// SetHitArea attaches a full-bounds interactive overlay kept resized to the
// outer size. Hit-testing itself lives outside the layout engine.
func (f *Flow) SetHitArea(r Resizable) {
	if f.hitArea == r {
		return
	}
	f.hitArea = r
	f.needReflow = true
}

// ----------------------------------------------------------------------------
// Constraints and measurement
// ----------------------------------------------------------------------------

// Constrain implements Element: the parent imposes an upper bound before
// measuring. Negative means unconstrained.
func (f *Flow) Constrain(maxW, maxH float32) {
	if maxW < 0 {
		maxW = -1
	}
	if maxH < 0 {
		maxH = -1
	}
	if f.constraintWidth == maxW && f.constraintHeight == maxH {
		return
	}
	f.constraintWidth = maxW
	f.constraintHeight = maxH
	f.updateConstraint()
}

// updateConstraint recomputes the effective min/max bounds: the effective
// max is the tighter of the explicit max and the parent constraint, raised
// to the explicit min on conflict (min wins). The effective min is the
// explicit min, or the parent constraint when the fill flag is set for that
// axis. Any change marks the flow dirty.
func (f *Flow) updateConstraint() {
	rmaxW := float32(-1)
	if f.maxWidth > 0 {
		rmaxW = f.maxWidth
	}
	if f.constraintWidth >= 0 && (rmaxW < 0 || f.constraintWidth < rmaxW) {
		rmaxW = f.constraintWidth
	}
	if f.minWidth > 0 && rmaxW >= 0 && rmaxW < f.minWidth {
		rmaxW = f.minWidth
	}

	rmaxH := float32(-1)
	if f.maxHeight > 0 {
		rmaxH = f.maxHeight
	}
	if f.constraintHeight >= 0 && (rmaxH < 0 || f.constraintHeight < rmaxH) {
		rmaxH = f.constraintHeight
	}
	if f.minHeight > 0 && rmaxH >= 0 && rmaxH < f.minHeight {
		rmaxH = f.minHeight
	}

	rminW := f.minWidth
	if f.fillWidth && f.constraintWidth > rminW {
		rminW = f.constraintWidth
	}
	rminH := f.minHeight
	if f.fillHeight && f.constraintHeight > rminH {
		rminH = f.constraintHeight
	}

	if rmaxW != f.realMaxWidth || rmaxH != f.realMaxHeight ||
		rminW != f.realMinWidth || rminH != f.realMinHeight {
		f.realMaxWidth = rmaxW
		f.realMaxHeight = rmaxH
		f.realMinWidth = rminW
		f.realMinHeight = rminH
		f.needReflow = true
	}
}

// Size implements Element: the flow's natural size under the current
// constraint is its outer size, reflowed on demand.
func (f *Flow) Size() (float32, float32) {
	f.ReflowIfNeeded()
	return f.calculatedWidth, f.calculatedHeight
}

// OuterWidth returns the resolved outer width, reflowing if dirty.
func (f *Flow) OuterWidth() float32 {
	f.ReflowIfNeeded()
	return f.calculatedWidth
}

// OuterHeight returns the resolved outer height, reflowing if dirty.
func (f *Flow) OuterHeight() float32 {
	f.ReflowIfNeeded()
	return f.calculatedHeight
}

// InnerWidth returns the outer width minus horizontal padding and borders.
func (f *Flow) InnerWidth() float32 {
	w := f.OuterWidth() - f.inset(EdgeLeft) - f.inset(EdgeRight)
	if w < 0 {
		w = 0
	}
	return w
}

// InnerHeight returns the outer height minus vertical padding and borders.
func (f *Flow) InnerHeight() float32 {
	h := f.OuterHeight() - f.inset(EdgeTop) - f.inset(EdgeBottom)
	if h < 0 {
		h = 0
	}
	return h
}

// ContentWidth returns the natural content width from the last reflow,
// before the overflow clamp. It may exceed the outer width when overflow is
// Limit, Hidden or Scroll.
func (f *Flow) ContentWidth() float32 {
	f.ReflowIfNeeded()
	return f.contentWidth
}

// ContentHeight returns the natural content height from the last reflow.
func (f *Flow) ContentHeight() float32 {
	f.ReflowIfNeeded()
	return f.contentHeight
}

// ----------------------------------------------------------------------------
// Reflow
// ----------------------------------------------------------------------------

// ReflowIfNeeded runs a reflow only when the flow is dirty.
func (f *Flow) ReflowIfNeeded() {
	if f.needReflow {
		f.Reflow()
	}
}

// Reflow recomputes layout unconditionally: the sizing pass, the
// positioning pass, then post-processing (overflow clamp, scroll offset,
// decoration resize, scrollbar sync, debug overlay). It either completes
// and commits all geometry, or panics via the recursion guard leaving the
// dirty flag untouched.
func (f *Flow) Reflow() {
	if f.reflowing {
		panic("retained: Reflow re-entered on the same Flow; a child measurement must not trigger its own container's reflow")
	}
	f.reflowing = true
	defer func() { f.reflowing = false }()

	if f.BeforeReflow != nil {
		f.BeforeReflow()
	}

	if f.layout == Stacked {
		f.reflowStacked()
	} else {
		f.reflowAxis(f.layout == Horizontal)
	}
	f.absolutePass()
	f.postReflow()

	f.needReflow = false
	if f.AfterReflow != nil {
		f.AfterReflow()
	}
}

func (f *Flow) mainSpacing(horizontal bool) float32 {
	if horizontal {
		return f.hSpacing
	}
	return f.vSpacing
}

func (f *Flow) crossSpacing(horizontal bool) float32 {
	if horizontal {
		return f.vSpacing
	}
	return f.hSpacing
}

func (p *FlowProperties) calcMain(horizontal bool) float32 {
	if horizontal {
		return p.calculatedWidth
	}
	return p.calculatedHeight
}

func (p *FlowProperties) calcCross(horizontal bool) float32 {
	if horizontal {
		return p.calculatedHeight
	}
	return p.calculatedWidth
}

// measureChild measures one flowed child under the axis constraint and
// commits its calculated size (measured size plus its own extra padding,
// floored by its min size). forcedMain >= 0 pins the main-axis size to a
// resolved auto-size share instead of the measured value.
func (f *Flow) measureChild(i int, availMain, availCross, forcedMain float32, horizontal bool) {
	child := f.children[i]
	p := f.props[i]

	maxW, maxH := float32(-1), float32(-1)
	mainBound := availMain
	if forcedMain >= 0 {
		mainBound = forcedMain
	}
	crossBound := availCross
	forcedCross := float32(-1)
	if cr := p.crossRatio(horizontal); cr > 0 && availCross >= 0 {
		forcedCross = availCross * cr
		crossBound = forcedCross
	}
	if horizontal {
		maxW, maxH = mainBound, crossBound
	} else {
		maxW, maxH = crossBound, mainBound
	}
	child.Constrain(maxW, maxH)
	w, h := child.Size()

	main, cross := w, h
	if !horizontal {
		main, cross = h, w
	}
	if forcedMain >= 0 {
		main = forcedMain
	}
	if forcedCross >= 0 {
		cross = forcedCross
	}
	exMs, exMe := p.extraMain(horizontal)
	exCs, exCe := p.extraCross(horizontal)
	main += exMs + exMe
	cross += exCs + exCe

	minMain, minCross := p.minWidth, p.minHeight
	if !horizontal {
		minMain, minCross = p.minHeight, p.minWidth
	}
	if minMain > 0 && main < minMain {
		main = minMain
	}
	if minCross > 0 && cross < minCross {
		cross = minCross
	}
	if main < 0 {
		main = 0
	}
	if cross < 0 {
		cross = 0
	}

	if horizontal {
		p.calculatedWidth, p.calculatedHeight = main, cross
	} else {
		p.calculatedWidth, p.calculatedHeight = cross, main
	}
	debugLog("measure child[%d]: main=%.1f cross=%.1f", i, main, cross)
}

// reflowAxis is the shared Horizontal/Vertical algorithm with the axes
// swapped through the horizontal flag.
func (f *Flow) reflowAxis(horizontal bool) {
	var insMainStart, insMainEnd, insCrossStart, insCrossEnd float32
	var maxTotMain, maxTotCross float32
	if horizontal {
		insMainStart, insMainEnd = f.inset(EdgeLeft), f.inset(EdgeRight)
		insCrossStart, insCrossEnd = f.inset(EdgeTop), f.inset(EdgeBottom)
		maxTotMain, maxTotCross = f.realMaxWidth, f.realMaxHeight
	} else {
		insMainStart, insMainEnd = f.inset(EdgeTop), f.inset(EdgeBottom)
		insCrossStart, insCrossEnd = f.inset(EdgeLeft), f.inset(EdgeRight)
		maxTotMain, maxTotCross = f.realMaxHeight, f.realMaxWidth
	}

	availMain := float32(-1)
	if maxTotMain >= 0 {
		availMain = maxTotMain - insMainStart - insMainEnd
		if availMain < 0 {
			availMain = 0
		}
	}
	availCross := float32(-1)
	if maxTotCross >= 0 {
		availCross = maxTotCross - insCrossStart - insCrossEnd
		if availCross < 0 {
			availCross = 0
		}
	}

	n := len(f.children)
	mainSp := f.mainSpacing(horizontal)
	crossSp := f.crossSpacing(horizontal)

	// Sizing pass: measure non-ratio children in flow order, reducing the
	// running available space; ratio children are deferred and then given
	// a proportional share of what remains.
	var ratioSum float32
	remaining := availMain
	for k := 0; k < n; k++ {
		i := k
		if f.reverse {
			i = n - 1 - k
		}
		child := f.children[i]
		p := f.props[i]
		// Cleared for every child, so hidden ones do not keep a stale
		// break flag from their last visible reflow.
		p.isBreak = false
		if !child.base().Visible() || p.isAbsolute {
			continue
		}
		if r := p.mainRatio(horizontal); r > 0 {
			ratioSum += r
			continue
		}
		f.measureChild(i, availMain, availCross, -1, horizontal)
		if remaining >= 0 {
			remaining -= p.calcMain(horizontal) + mainSp
		}
	}
	if ratioSum > 0 {
		for i := 0; i < n; i++ {
			child := f.children[i]
			p := f.props[i]
			if !child.base().Visible() || p.isAbsolute {
				continue
			}
			r := p.mainRatio(horizontal)
			if r <= 0 {
				continue
			}
			if availMain < 0 {
				// Unbounded container: nothing to distribute, fall
				// back to a plain measurement.
				f.measureChild(i, availMain, availCross, -1, horizontal)
				continue
			}
			share := float32(0)
			if remaining > 0 {
				share = remaining * r / ratioSum
			}
			f.measureChild(i, availMain, availCross, share, horizontal)
		}
	}

	// Positioning pass: walk children in flow order, wrapping into lines,
	// then close out each line with cross-axis alignment and main-axis
	// group distribution.
	mainStart := insMainStart
	boxMain := acquireF32Slice(n)
	line := acquireIndexSlice(0)
	defer releaseF32Slice(boxMain)
	defer func() { releaseIndexSlice(line) }()

	cursor := mainStart
	crossCursor := insCrossStart
	var lineCrossMax float32
	var maxMainExtent float32
	nLines := 0

	fixedLine := f.lineHeight
	if !horizontal {
		fixedLine = f.colWidth
	}

	closeLine := func() {
		if len(line) == 0 {
			return
		}
		lineSize := lineCrossMax
		if fixedLine > 0 && lineSize < fixedLine {
			lineSize = fixedLine
		}
		f.alignLineMain(line, boxMain, availMain, mainStart, horizontal)
		for _, i := range line {
			p := f.props[i]
			ob := f.children[i].base()
			crossPos := f.crossOffset(i, crossCursor, lineSize, horizontal)
			exMs, _ := p.extraMain(horizontal)
			mainPos := boxMain[i] + exMs
			if horizontal {
				ob.SetPos(mainPos+p.offsetX, crossPos+p.offsetY)
			} else {
				ob.SetPos(crossPos+p.offsetX, mainPos+p.offsetY)
			}
			// Extents are taken after group shifts so a right-aligned
			// line stretches the content to the constraint edge.
			if ext := boxMain[i] + p.calcMain(horizontal) - mainStart; ext > maxMainExtent {
				maxMainExtent = ext
			}
		}
		nLines++
		crossCursor += lineSize
	}

	for k := 0; k < n; k++ {
		i := k
		if f.reverse {
			i = n - 1 - k
		}
		child := f.children[i]
		p := f.props[i]
		if !child.base().Visible() || p.isAbsolute {
			continue
		}
		main := p.calcMain(horizontal)
		wraps := f.multiline && availMain >= 0 && cursor+main-mainStart > availMain
		if len(line) > 0 && (wraps || p.lineBreak) {
			closeLine()
			crossCursor += crossSp
			cursor = mainStart
			line = line[:0]
			lineCrossMax = 0
			p.isBreak = true
		}
		boxMain[i] = cursor
		line = append(line, i)
		if c := p.calcCross(horizontal); c > lineCrossMax {
			lineCrossMax = c
		}
		cursor += main + mainSp
	}
	closeLine()

	contentMain := maxMainExtent + insMainStart + insMainEnd
	contentCross := crossCursor + insCrossEnd
	if nLines == 0 {
		contentCross = insCrossStart + insCrossEnd
	}
	if horizontal {
		f.contentWidth, f.contentHeight = contentMain, contentCross
	} else {
		f.contentWidth, f.contentHeight = contentCross, contentMain
	}
	f.clampOuter()
}

// alignLineMain distributes the line's leftover main-axis space between the
// three alignment groups: one gap inserted before the first middle-group
// child (centering the group on the line midpoint) and one before the first
// end-group child (packing it flush to the end). Start-group children never
// move. Afterwards the border-ignore exception pulls eligible edge children
// into the container padding.
func (f *Flow) alignLineMain(line []int, boxMain []float32, availMain, mainStart float32, horizontal bool) {
	var mainStartEdge, mainEndEdge Edge
	if horizontal {
		mainStartEdge, mainEndEdge = EdgeLeft, EdgeRight
	} else {
		mainStartEdge, mainEndEdge = EdgeTop, EdgeBottom
	}

	if availMain >= 0 {
		sp := f.mainSpacing(horizontal)
		var w [3]float32
		var cnt [3]int
		for _, i := range line {
			g := mainGroup(f.resolvedAxisAlign(f.props[i], horizontal), horizontal)
			w[g] += f.props[i].calcMain(horizontal)
			cnt[g]++
		}
		for g := range w {
			if cnt[g] > 1 {
				w[g] += sp * float32(cnt[g]-1)
			}
		}

		startMid := (availMain - w[groupMiddle]) / 2
		minMid := float32(0)
		if cnt[groupStart] > 0 {
			minMid = w[groupStart] + sp
		}
		if startMid < minMid {
			startMid = minMid
		}
		startEnd := availMain - w[groupEnd]
		prevEnd := float32(0)
		prevAny := false
		if cnt[groupMiddle] > 0 {
			prevEnd = startMid + w[groupMiddle]
			prevAny = true
		} else if cnt[groupStart] > 0 {
			prevEnd = w[groupStart]
			prevAny = true
		}
		if prevAny {
			if startEnd < prevEnd+sp {
				startEnd = prevEnd + sp
			}
		} else if startEnd < 0 {
			startEnd = 0
		}

		var delta float32
		seenMid, seenEnd := false, false
		for _, i := range line {
			g := mainGroup(f.resolvedAxisAlign(f.props[i], horizontal), horizontal)
			rel := boxMain[i] - mainStart
			if g == groupMiddle && !seenMid {
				seenMid = true
				delta = startMid - rel
			} else if g == groupEnd && !seenEnd {
				seenEnd = true
				delta = startEnd - rel
			}
			if delta != 0 {
				boxMain[i] = mainStart + rel + delta
			}
		}
	}

	// Border-ignore: an eligible outermost edge child with the ignore
	// variant bleeds past the container padding (border insets stay).
	for _, i := range line {
		p := f.props[i]
		g := mainGroup(f.resolvedAxisAlign(p, horizontal), horizontal)
		if g == groupStart && p.padding[mainStartEdge].Ignores() && f.borderEligible(i, mainStartEdge) {
			boxMain[i] -= f.padding[mainStartEdge]
		}
		if g == groupEnd && p.padding[mainEndEdge].Ignores() && f.borderEligible(i, mainEndEdge) {
			boxMain[i] += f.padding[mainEndEdge]
		}
	}
}

// crossOffset computes child i's cross-axis position within its line band
// [lineStart, lineStart+lineSize). Edge-aligned children sit flush, middle
// children are offset by half the leftover, and any other value behaves
// like the unset default for the axis.
func (f *Flow) crossOffset(i int, lineStart, lineSize float32, horizontal bool) float32 {
	p := f.props[i]
	cross := p.calcCross(horizontal)
	exCs, _ := p.extraCross(horizontal)
	a := f.resolvedAxisAlign(p, !horizontal)

	var crossStartEdge, crossEndEdge Edge
	if horizontal {
		crossStartEdge, crossEndEdge = EdgeTop, EdgeBottom
	} else {
		crossStartEdge, crossEndEdge = EdgeLeft, EdgeRight
	}

	atStart := func() float32 {
		pos := lineStart + exCs
		if p.padding[crossStartEdge].Ignores() && f.borderEligible(i, crossStartEdge) {
			pos -= f.padding[crossStartEdge]
		}
		return pos
	}
	atEnd := func() float32 {
		pos := lineStart + lineSize - cross + exCs
		if p.padding[crossEndEdge].Ignores() && f.borderEligible(i, crossEndEdge) {
			pos += f.padding[crossEndEdge]
		}
		return pos
	}

	if horizontal {
		// Vertical cross axis: default is the bottom edge of the line.
		switch a {
		case AlignTop:
			return atStart()
		case AlignMiddle:
			return lineStart + (lineSize-cross)/2 + exCs
		default:
			return atEnd()
		}
	}
	// Horizontal cross axis: default is the left edge of the column.
	switch a {
	case AlignRight:
		return atEnd()
	case AlignMiddle:
		return lineStart + (lineSize-cross)/2 + exCs
	default:
		return atStart()
	}
}

// reflowStacked measures every flowed child under the same shared
// constraint and aligns each independently against the full resolved box.
// Children may overlap; there is no wrapping and no cursor.
func (f *Flow) reflowStacked() {
	insL, insR := f.inset(EdgeLeft), f.inset(EdgeRight)
	insT, insB := f.inset(EdgeTop), f.inset(EdgeBottom)

	availW := float32(-1)
	if f.realMaxWidth >= 0 {
		availW = f.realMaxWidth - insL - insR
		if availW < 0 {
			availW = 0
		}
	}
	// The height bound uses the height constraint, not the width one.
	availH := float32(-1)
	if f.realMaxHeight >= 0 {
		availH = f.realMaxHeight - insT - insB
		if availH < 0 {
			availH = 0
		}
	}

	var ratioSumW, ratioSumH float32
	for i, child := range f.children {
		p := f.props[i]
		if !child.base().Visible() || p.isAbsolute {
			continue
		}
		ratioSumW += p.autoWidthRatio
		ratioSumH += p.autoHeightRatio
	}

	var maxW, maxH float32
	for i, child := range f.children {
		p := f.props[i]
		p.isBreak = false
		if !child.base().Visible() || p.isAbsolute {
			continue
		}

		forceW, forceH := float32(-1), float32(-1)
		if p.autoWidthRatio > 0 && availW >= 0 && ratioSumW > 0 {
			forceW = availW * p.autoWidthRatio / ratioSumW
		}
		if p.autoHeightRatio > 0 && availH >= 0 && ratioSumH > 0 {
			forceH = availH * p.autoHeightRatio / ratioSumH
		}
		cw, ch := availW, availH
		if forceW >= 0 {
			cw = forceW
		}
		if forceH >= 0 {
			ch = forceH
		}
		child.Constrain(cw, ch)
		w, h := child.Size()
		if forceW >= 0 {
			w = forceW
		}
		if forceH >= 0 {
			h = forceH
		}
		w += p.padding[EdgeLeft].Extra() + p.padding[EdgeRight].Extra()
		h += p.padding[EdgeTop].Extra() + p.padding[EdgeBottom].Extra()
		if p.minWidth > 0 && w < p.minWidth {
			w = p.minWidth
		}
		if p.minHeight > 0 && h < p.minHeight {
			h = p.minHeight
		}
		p.calculatedWidth, p.calculatedHeight = w, h
		if w > maxW {
			maxW = w
		}
		if h > maxH {
			maxH = h
		}
	}

	f.contentWidth = maxW + insL + insR
	f.contentHeight = maxH + insT + insB
	f.clampOuter()

	outW, outH := f.calculatedWidth, f.calculatedHeight
	for i, child := range f.children {
		p := f.props[i]
		if !child.base().Visible() || p.isAbsolute {
			continue
		}
		x := f.alignWithinBox(i, true, outW, true)
		y := f.alignWithinBox(i, false, outH, true)
		child.base().SetPos(x+p.offsetX, y+p.offsetY)
	}
}

// alignWithinBox positions child i's box along one axis of the full
// resolved container box. With defaults enabled an unset alignment falls
// back through the container default to the hardcoded edge; without them
// (absolute children) the caller only invokes this for explicitly set
// overrides.
func (f *Flow) alignWithinBox(i int, horizontal bool, outer float32, defaults bool) float32 {
	p := f.props[i]
	var a Align
	if defaults {
		a = f.resolvedAxisAlign(p, horizontal)
	} else if horizontal {
		a = p.horizontalAlign
	} else {
		a = p.verticalAlign
	}

	var startEdge, endEdge Edge
	var size, ex float32
	if horizontal {
		startEdge, endEdge = EdgeLeft, EdgeRight
		size = p.calculatedWidth
		ex = p.padding[EdgeLeft].Extra()
	} else {
		startEdge, endEdge = EdgeTop, EdgeBottom
		size = p.calculatedHeight
		ex = p.padding[EdgeTop].Extra()
	}

	atStart := func() float32 {
		pos := f.inset(startEdge) + ex
		if p.padding[startEdge].Ignores() && f.borderEligible(i, startEdge) {
			pos -= f.padding[startEdge]
		}
		return pos
	}
	atEnd := func() float32 {
		pos := outer - f.inset(endEdge) - size + ex
		if p.padding[endEdge].Ignores() && f.borderEligible(i, endEdge) {
			pos += f.padding[endEdge]
		}
		return pos
	}

	switch a {
	case AlignMiddle:
		return (outer-size)/2 + ex
	case AlignLeft, AlignTop:
		return atStart()
	case AlignRight, AlignBottom:
		return atEnd()
	default:
		return atStart()
	}
}

// absolutePass places absolute children against the final resolved bounds.
// Only axes with an explicit alignment override are written; an unset axis
// keeps whatever position was set directly on the child. Auto-size ratios
// resolve against the container's own final inner size, not siblings.
func (f *Flow) absolutePass() {
	outW, outH := f.calculatedWidth, f.calculatedHeight
	innerW := outW - f.inset(EdgeLeft) - f.inset(EdgeRight)
	innerH := outH - f.inset(EdgeTop) - f.inset(EdgeBottom)
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	for i, child := range f.children {
		p := f.props[i]
		if !p.isAbsolute || !child.base().Visible() {
			continue
		}
		p.isBreak = false

		forceW, forceH := float32(-1), float32(-1)
		if p.autoWidthRatio > 0 {
			forceW = innerW * p.autoWidthRatio
		}
		if p.autoHeightRatio > 0 {
			forceH = innerH * p.autoHeightRatio
		}
		child.Constrain(forceW, forceH)
		w, h := child.Size()
		if forceW >= 0 {
			w = forceW
		}
		if forceH >= 0 {
			h = forceH
		}
		w += p.padding[EdgeLeft].Extra() + p.padding[EdgeRight].Extra()
		h += p.padding[EdgeTop].Extra() + p.padding[EdgeBottom].Extra()
		if p.minWidth > 0 && w < p.minWidth {
			w = p.minWidth
		}
		if p.minHeight > 0 && h < p.minHeight {
			h = p.minHeight
		}
		p.calculatedWidth, p.calculatedHeight = w, h

		ob := child.base()
		if p.horizontalAlign != AlignAuto {
			ob.X = f.alignWithinBox(i, true, outW, false) + p.offsetX
		}
		if p.verticalAlign != AlignAuto {
			ob.Y = f.alignWithinBox(i, false, outH, false) + p.offsetY
		}
	}
}

// clampOuter commits the outer size from the content size: capped by the
// effective max unless overflow is Expand, floored by the effective min,
// never negative.
func (f *Flow) clampOuter() {
	outW, outH := f.contentWidth, f.contentHeight
	if f.overflow != OverflowExpand {
		if f.realMaxWidth >= 0 && outW > f.realMaxWidth {
			outW = f.realMaxWidth
		}
		if f.realMaxHeight >= 0 && outH > f.realMaxHeight {
			outH = f.realMaxHeight
		}
	}
	if outW < f.realMinWidth {
		outW = f.realMinWidth
	}
	if outH < f.realMinHeight {
		outH = f.realMinHeight
	}
	if outW < 0 {
		outW = 0
	}
	if outH < 0 {
		outH = 0
	}
	f.calculatedWidth = outW
	f.calculatedHeight = outH
	debugLog("outer: %.1fx%.1f content: %.1fx%.1f", outW, outH, f.contentWidth, f.contentHeight)
}

// postReflow applies the scroll offset, keeps decorations stretched to the
// outer size, syncs the scrollbar and records the debug overlay.
func (f *Flow) postReflow() {
	if f.overflow == OverflowScroll {
		max := f.contentHeight - f.calculatedHeight
		if max < 0 {
			max = 0
		}
		if f.scrollPos > max {
			f.scrollPos = max
		}
		if f.scrollPos < 0 {
			f.scrollPos = 0
		}
		if f.scrollPos != 0 {
			for i, child := range f.children {
				p := f.props[i]
				if p.isAbsolute || !child.base().Visible() {
					continue
				}
				child.base().Y -= f.scrollPos
			}
		}
		f.syncScrollBar()
	}

	if f.background != nil {
		f.background.Resize(f.calculatedWidth, f.calculatedHeight)
	}
	if f.hitArea != nil {
		f.hitArea.Resize(f.calculatedWidth, f.calculatedHeight)
	}
	f.recordDebugRects()
}
