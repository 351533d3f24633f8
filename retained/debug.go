package retained

import "fmt"

var layoutDebug = false // Set to true for debug logging

func debugLog(format string, args ...interface{}) {
	if layoutDebug {
		fmt.Printf(format+"\n", args...)
	}
}

// DebugRectKind classifies a rectangle in the debug overlay.
type DebugRectKind int

const (
	// DebugOuter is the container's outer bounds.
	DebugOuter DebugRectKind = iota

	// DebugInner is the content area inside padding and borders.
	DebugInner

	// DebugChild is one flowed child's occupied box, including its extra
	// padding. Absolute children are not recorded.
	DebugChild
)

// DebugRect is one rectangle recorded during reflow when the debug overlay
// is enabled. Coordinates are in the flow's own coordinate space.
type DebugRect struct {
	Kind       DebugRectKind
	X, Y, W, H float32
}

// DebugRects returns the overlay recorded by the last reflow. It is empty
// unless SetDebug(true) was called before that reflow.
func (f *Flow) DebugRects() []DebugRect {
	f.ReflowIfNeeded()
	return f.debugRects
}

func (f *Flow) recordDebugRects() {
	f.debugRects = f.debugRects[:0]
	if !f.debug {
		return
	}
	f.debugRects = append(f.debugRects, DebugRect{
		Kind: DebugOuter,
		W:    f.calculatedWidth,
		H:    f.calculatedHeight,
	})
	f.debugRects = append(f.debugRects, DebugRect{
		Kind: DebugInner,
		X:    f.inset(EdgeLeft),
		Y:    f.inset(EdgeTop),
		W:    f.calculatedWidth - f.inset(EdgeLeft) - f.inset(EdgeRight),
		H:    f.calculatedHeight - f.inset(EdgeTop) - f.inset(EdgeBottom),
	})
	for i, child := range f.children {
		p := f.props[i]
		if p.isAbsolute || !child.base().Visible() {
			continue
		}
		ob := child.base()
		exL := p.padding[EdgeLeft].Extra()
		exT := p.padding[EdgeTop].Extra()
		f.debugRects = append(f.debugRects, DebugRect{
			Kind: DebugChild,
			X:    ob.X - exL - p.offsetX,
			Y:    ob.Y - exT - p.offsetY,
			W:    p.calculatedWidth,
			H:    p.calculatedHeight,
		})
	}
}
