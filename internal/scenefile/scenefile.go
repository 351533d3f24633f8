// Package scenefile loads a flow tree from a TOML scene description. It
// exists for the reflow CLI and for tests that want declarative fixtures;
// applications normally build trees through the retained API directly.
package scenefile

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/reflowui/reflow/retained"
)

// Document is the top-level scene file structure.
type Document struct {
	Root FlowNode `toml:"root"`
}

// FlowNode describes one Flow container.
type FlowNode struct {
	Layout          string    `toml:"layout"` // horizontal, vertical, stacked
	Reverse         bool      `toml:"reverse"`
	Multiline       bool      `toml:"multiline"`
	Overflow        string    `toml:"overflow"` // expand, limit, hidden, scroll
	HorizontalAlign string    `toml:"horizontal_align"`
	VerticalAlign   string    `toml:"vertical_align"`
	Padding         []float64 `toml:"padding"` // one value or [top, right, bottom, left]
	Borders         []float64 `toml:"borders"`
	MinWidth        float64   `toml:"min_width"`
	MinHeight       float64   `toml:"min_height"`
	MaxWidth        float64   `toml:"max_width"`
	MaxHeight       float64   `toml:"max_height"`
	LineHeight      float64   `toml:"line_height"`
	ColWidth        float64   `toml:"col_width"`
	HSpacing        float64   `toml:"horizontal_spacing"`
	VSpacing        float64   `toml:"vertical_spacing"`
	FillWidth       bool      `toml:"fill_width"`
	FillHeight      bool      `toml:"fill_height"`
	ScrollPos       float64   `toml:"scroll_pos"`

	Children []ChildNode `toml:"children"`
}

// ChildNode describes one child element plus its layout properties.
type ChildNode struct {
	Kind string `toml:"kind"` // box, text, flow

	// box
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// text
	Text       string  `toml:"text"`
	CharWidth  float64 `toml:"char_width"`
	LineHeight float64 `toml:"line_height"`

	// flow
	Flow *FlowNode `toml:"flow"`

	Hidden          bool      `toml:"hidden"`
	Absolute        bool      `toml:"absolute"`
	X               float64   `toml:"x"`
	Y               float64   `toml:"y"`
	HorizontalAlign string    `toml:"horizontal_align"`
	VerticalAlign   string    `toml:"vertical_align"`
	OffsetX         float64   `toml:"offset_x"`
	OffsetY         float64   `toml:"offset_y"`
	MinWidth        float64   `toml:"min_width"`
	MinHeight       float64   `toml:"min_height"`
	LineBreak       bool      `toml:"line_break"`
	AutoWidth       float64   `toml:"auto_width"`
	AutoHeight      float64   `toml:"auto_height"`
	Padding         []float64 `toml:"padding"`
	PaddingIgnore   []string  `toml:"padding_ignore"` // edges using the ignore variant
}

// Load reads and builds a scene file from disk.
func Load(path string) (*retained.Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data)
}

// Parse builds a flow tree from TOML scene data.
func Parse(data []byte) (*retained.Flow, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	return buildFlow(&doc.Root)
}

func buildFlow(n *FlowNode) (*retained.Flow, error) {
	layout, err := parseLayout(n.Layout)
	if err != nil {
		return nil, err
	}
	f := retained.NewFlow(layout)
	f.SetReverse(n.Reverse)
	f.SetMultiline(n.Multiline)

	if n.Overflow != "" {
		o, err := parseOverflow(n.Overflow)
		if err != nil {
			return nil, err
		}
		f.SetOverflow(o)
	}
	if n.HorizontalAlign != "" {
		a, err := parseAlign(n.HorizontalAlign)
		if err != nil {
			return nil, err
		}
		f.SetHorizontalAlign(a)
	}
	if n.VerticalAlign != "" {
		a, err := parseAlign(n.VerticalAlign)
		if err != nil {
			return nil, err
		}
		f.SetVerticalAlign(a)
	}
	if len(n.Padding) > 0 {
		t, r, b, l, err := edges("padding", n.Padding)
		if err != nil {
			return nil, err
		}
		f.SetPaddingEdges(t, r, b, l)
	}
	if len(n.Borders) > 0 {
		t, r, b, l, err := edges("borders", n.Borders)
		if err != nil {
			return nil, err
		}
		f.SetBorders(t, r, b, l)
	}
	f.SetMinSize(float32(n.MinWidth), float32(n.MinHeight))
	f.SetMaxSize(float32(n.MaxWidth), float32(n.MaxHeight))
	f.SetLineHeight(float32(n.LineHeight))
	f.SetColWidth(float32(n.ColWidth))
	f.SetSpacing(float32(n.HSpacing), float32(n.VSpacing))
	f.SetFillWidth(n.FillWidth)
	f.SetFillHeight(n.FillHeight)

	for i := range n.Children {
		if err := addChild(f, &n.Children[i]); err != nil {
			return nil, fmt.Errorf("child %d: %w", i, err)
		}
	}

	if n.ScrollPos != 0 {
		f.SetScrollPos(float32(n.ScrollPos))
	}
	return f, nil
}

func addChild(f *retained.Flow, c *ChildNode) error {
	var el retained.Element
	switch c.Kind {
	case "box", "":
		el = retained.NewBox(float32(c.Width), float32(c.Height))
	case "text":
		cw, lh := c.CharWidth, c.LineHeight
		if cw == 0 {
			cw = 8
		}
		if lh == 0 {
			lh = 16
		}
		el = retained.NewText(c.Text, float32(cw), float32(lh))
	case "flow":
		if c.Flow == nil {
			return fmt.Errorf("kind %q requires a flow table", c.Kind)
		}
		sub, err := buildFlow(c.Flow)
		if err != nil {
			return err
		}
		el = sub
	default:
		return fmt.Errorf("unknown child kind %q", c.Kind)
	}

	// SetVisible and SetPos are promoted from the embedded Object on every
	// concrete element type.
	node := el.(interface {
		SetVisible(bool)
		SetPos(x, y float32)
	})

	p := f.AddChild(el)
	if c.Hidden {
		node.SetVisible(false)
	}
	p.SetAbsolute(c.Absolute)
	if c.Absolute {
		node.SetPos(float32(c.X), float32(c.Y))
	}
	if c.HorizontalAlign != "" {
		a, err := parseAlign(c.HorizontalAlign)
		if err != nil {
			return err
		}
		p.SetHorizontalAlign(a)
	}
	if c.VerticalAlign != "" {
		a, err := parseAlign(c.VerticalAlign)
		if err != nil {
			return err
		}
		p.SetVerticalAlign(a)
	}
	p.SetOffset(float32(c.OffsetX), float32(c.OffsetY))
	p.SetMinSize(float32(c.MinWidth), float32(c.MinHeight))
	p.SetLineBreak(c.LineBreak)
	p.SetAutoWidth(float32(c.AutoWidth))
	p.SetAutoHeight(float32(c.AutoHeight))

	if len(c.Padding) > 0 {
		t, r, b, l, err := edges("padding", c.Padding)
		if err != nil {
			return err
		}
		p.SetPadding(retained.Pad(t), retained.Pad(r), retained.Pad(b), retained.Pad(l))
	}
	for _, name := range c.PaddingIgnore {
		e, err := parseEdge(name)
		if err != nil {
			return err
		}
		p.SetPaddingEdge(e, retained.PadIgnore)
	}
	return nil
}

// edges expands a one-value or four-value list into top, right, bottom, left.
func edges(field string, v []float64) (t, r, b, l float32, err error) {
	switch len(v) {
	case 1:
		x := float32(v[0])
		return x, x, x, x, nil
	case 4:
		return float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3]), nil
	default:
		return 0, 0, 0, 0, fmt.Errorf("%s wants 1 or 4 values, got %d", field, len(v))
	}
}

func parseLayout(s string) (retained.FlowLayout, error) {
	switch s {
	case "horizontal", "":
		return retained.Horizontal, nil
	case "vertical":
		return retained.Vertical, nil
	case "stacked":
		return retained.Stacked, nil
	default:
		return 0, fmt.Errorf("unknown layout %q", s)
	}
}

func parseOverflow(s string) (retained.Overflow, error) {
	switch s {
	case "expand":
		return retained.OverflowExpand, nil
	case "limit":
		return retained.OverflowLimit, nil
	case "hidden":
		return retained.OverflowHidden, nil
	case "scroll":
		return retained.OverflowScroll, nil
	default:
		return 0, fmt.Errorf("unknown overflow %q", s)
	}
}

func parseAlign(s string) (retained.Align, error) {
	switch s {
	case "top":
		return retained.AlignTop, nil
	case "left":
		return retained.AlignLeft, nil
	case "right":
		return retained.AlignRight, nil
	case "middle":
		return retained.AlignMiddle, nil
	case "bottom":
		return retained.AlignBottom, nil
	case "auto", "":
		return retained.AlignAuto, nil
	default:
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
}

func parseEdge(s string) (retained.Edge, error) {
	switch s {
	case "top":
		return retained.EdgeTop, nil
	case "right":
		return retained.EdgeRight, nil
	case "bottom":
		return retained.EdgeBottom, nil
	case "left":
		return retained.EdgeLeft, nil
	default:
		return 0, fmt.Errorf("unknown edge %q", s)
	}
}
