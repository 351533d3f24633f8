// Package retained implements a constraint-based box layout engine for a
// retained scene graph. A Flow container owns an ordered set of child
// elements plus one FlowProperties record per child, and computes concrete
// positions and sizes for them on demand (horizontal/vertical/stacked flows,
// line wrapping, alignment, padding and border insets, auto-fill sizing and
// scrollable overflow).
//
// The engine is single-threaded and demand-driven: mutations mark the
// container dirty, and the next size or position query triggers a reflow.
package retained

// Object is the scene-node base embedded by every element managed by a Flow.
// It carries the position the layout engine writes, the visibility flag it
// reads, and the parent hook used to propagate content-change notifications
// upward.
type Object struct {
	// X, Y is the element position in parent coordinates. Written by the
	// layout engine for flowed children; absolute children keep whatever
	// was set directly unless an alignment override repositions them.
	X, Y float32

	// Hidden excludes the element from layout and rendering.
	// The zero value is visible.
	Hidden bool

	parent *Flow
}

func (o *Object) base() *Object { return o }

// Pos returns the element position in parent coordinates.
func (o *Object) Pos() (x, y float32) { return o.X, o.Y }

// SetPos moves the element. Moving a child directly does not dirty its
// parent flow; flowed children will be repositioned on the next reflow,
// absolute children without alignment overrides keep the new position.
func (o *Object) SetPos(x, y float32) {
	o.X = x
	o.Y = y
}

// Visible reports whether the element participates in layout.
func (o *Object) Visible() bool { return !o.Hidden }

// SetVisible toggles layout participation and dirties the parent flow on
// change.
func (o *Object) SetVisible(v bool) {
	if o.Hidden == !v {
		return
	}
	o.Hidden = !v
	o.ContentChanged()
}

// Parent returns the flow currently managing this element, or nil.
func (o *Object) Parent() *Flow { return o.parent }

// ContentChanged notifies the managing flow that this element's natural
// size may have changed. Leaf elements call this from their own mutators.
func (o *Object) ContentChanged() {
	if o.parent != nil {
		o.parent.childContentChanged(o)
	}
}
