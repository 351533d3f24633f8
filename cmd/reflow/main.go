package main

import (
	"fmt"
	"os"

	"github.com/reflowui/reflow/internal/scenefile"
	"github.com/reflowui/reflow/retained"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "dump":
		err = dump(args)
	case "version", "-v", "--version":
		fmt.Printf("reflow version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`reflow - layout scene inspector

Usage: reflow <command> [options]

Commands:
  dump <scene.toml>    Lay out a scene file and print the resolved geometry
  version              Print the version
  help                 Show this help`)
}

func dump(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("dump wants a scene file")
	}
	root, err := scenefile.Load(args[0])
	if err != nil {
		return err
	}
	root.Reflow()
	dumpFlow(root, 0)
	return nil
}

func dumpFlow(f *retained.Flow, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Printf("%sflow %s at (%.1f, %.1f) outer %.1fx%.1f content %.1fx%.1f\n",
		indent, layoutName(f.Layout()), f.X, f.Y,
		f.OuterWidth(), f.OuterHeight(), f.ContentWidth(), f.ContentHeight())
	for i := 0; i < f.NumChildren(); i++ {
		child := f.ChildAt(i)
		p := f.PropsAt(i)
		switch c := child.(type) {
		case *retained.Flow:
			dumpFlow(c, depth+1)
		case *retained.Text:
			fmt.Printf("%s  text %q at (%.1f, %.1f) box %.1fx%.1f\n",
				indent, c.Content, c.X, c.Y, p.CalculatedWidth(), p.CalculatedHeight())
		default:
			ob := childPos(child)
			fmt.Printf("%s  box at (%.1f, %.1f) box %.1fx%.1f\n",
				indent, ob[0], ob[1], p.CalculatedWidth(), p.CalculatedHeight())
		}
	}
}

func childPos(el retained.Element) [2]float32 {
	type positioned interface {
		Pos() (x, y float32)
	}
	x, y := el.(positioned).Pos()
	return [2]float32{x, y}
}

func layoutName(l retained.FlowLayout) string {
	switch l {
	case retained.Horizontal:
		return "horizontal"
	case retained.Vertical:
		return "vertical"
	case retained.Stacked:
		return "stacked"
	}
	return "unknown"
}
