package scenefile

import (
	"testing"

	"github.com/reflowui/reflow/retained"
)

func TestParseScene(t *testing.T) {
	data := []byte(`
[root]
layout = "horizontal"
padding = [5]
horizontal_spacing = 2
vertical_spacing = 2

[[root.children]]
kind = "box"
width = 10
height = 10

[[root.children]]
kind = "box"
width = 20
height = 20
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f.Reflow()

	if n := f.NumChildren(); n != 2 {
		t.Fatalf("NumChildren = %d, want 2", n)
	}
	if w, h := f.Size(); w != 42 || h != 30 {
		t.Errorf("Size = %vx%v, want 42x30", w, h)
	}
}

func TestParseNestedFlow(t *testing.T) {
	data := []byte(`
[root]
layout = "vertical"

[[root.children]]
kind = "flow"
[root.children.flow]
layout = "horizontal"
[[root.children.flow.children]]
kind = "box"
width = 10
height = 10
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f.Reflow()

	sub, ok := f.ChildAt(0).(*retained.Flow)
	if !ok {
		t.Fatalf("child is %T, want *retained.Flow", f.ChildAt(0))
	}
	if w, h := sub.Size(); w != 10 || h != 10 {
		t.Errorf("nested flow size = %vx%v, want 10x10", w, h)
	}
}

func TestParseChildProperties(t *testing.T) {
	data := []byte(`
[root]
layout = "horizontal"
min_width = 100

[[root.children]]
kind = "box"
width = 10
height = 10
horizontal_align = "right"
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	f.Reflow()

	if a := f.PropsAt(0).HorizontalAlign(); a != retained.AlignRight {
		t.Errorf("HorizontalAlign = %v, want AlignRight", a)
	}
}

func TestParseText(t *testing.T) {
	data := []byte(`
[root]
layout = "vertical"

[[root.children]]
kind = "text"
text = "hello"
char_width = 5
line_height = 10
`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	txt, ok := f.ChildAt(0).(*retained.Text)
	if !ok {
		t.Fatalf("child is %T, want *retained.Text", f.ChildAt(0))
	}
	if txt.Content != "hello" {
		t.Errorf("Content = %q, want %q", txt.Content, "hello")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown layout", "[root]\nlayout = \"diagonal\"\n"},
		{"unknown overflow", "[root]\noverflow = \"wrap\"\n"},
		{"bad padding arity", "[root]\npadding = [1, 2]\n"},
		{"unknown child kind", "[root]\n[[root.children]]\nkind = \"sprite\"\n"},
		{"flow kind without table", "[root]\n[[root.children]]\nkind = \"flow\"\n"},
		{"unknown ignore edge", "[root]\n[[root.children]]\nkind = \"box\"\npadding_ignore = [\"center\"]\n"},
		{"not toml", "this is not toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Parse succeeded, want error")
			}
		})
	}
}
