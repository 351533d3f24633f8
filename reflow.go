// Package reflow re-exports the retained layout engine's public surface so
// applications can depend on a single import path.
package reflow

import "github.com/reflowui/reflow/retained"

type (
	Flow           = retained.Flow
	FlowProperties = retained.FlowProperties
	FlowLayout     = retained.FlowLayout
	Align          = retained.Align
	Overflow       = retained.Overflow
	Edge           = retained.Edge
	PadValue       = retained.PadValue
	Element        = retained.Element
	Resizable      = retained.Resizable
	Object         = retained.Object
	Box            = retained.Box
	Text           = retained.Text
	DebugRect      = retained.DebugRect
)

const (
	Horizontal = retained.Horizontal
	Vertical   = retained.Vertical
	Stacked    = retained.Stacked

	AlignAuto   = retained.AlignAuto
	AlignTop    = retained.AlignTop
	AlignLeft   = retained.AlignLeft
	AlignRight  = retained.AlignRight
	AlignMiddle = retained.AlignMiddle
	AlignBottom = retained.AlignBottom

	OverflowExpand = retained.OverflowExpand
	OverflowLimit  = retained.OverflowLimit
	OverflowHidden = retained.OverflowHidden
	OverflowScroll = retained.OverflowScroll

	EdgeTop    = retained.EdgeTop
	EdgeRight  = retained.EdgeRight
	EdgeBottom = retained.EdgeBottom
	EdgeLeft   = retained.EdgeLeft
)

var (
	NewFlow   = retained.NewFlow
	NewBox    = retained.NewBox
	NewText   = retained.NewText
	Pad       = retained.Pad
	PadIgnore = retained.PadIgnore
)
