package tree

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/synteny-tools/synplot/pkg/errors"
)

// ToDOT lays out the tree as a Graphviz digraph: internal nodes are points,
// leaves labeled boxes, all tinted with the panel color when one is set.
func ToDOT(t Tree) string {
	color := "black"
	if t.HasColor {
		color = t.Color.Hex()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  edge [arrowhead=none, color=%q];\n", color)
	fmt.Fprintf(&buf, "  node [shape=point, color=%q];\n", color)
	if t.Label != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=b;\n  fontcolor=%q;\n", t.Label, color)
	}
	buf.WriteString("\n")

	id := 0
	var walk func(n *Node) string
	walk = func(n *Node) string {
		name := fmt.Sprintf("n%d", id)
		id++
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "  %s [shape=none, label=%q, fontcolor=%q];\n",
				name, leafLabel(n, t.Outgroup), color)
			return name
		}
		fmt.Fprintf(&buf, "  %s;\n", name)
		for _, c := range n.Children {
			child := walk(c)
			fmt.Fprintf(&buf, "  %s -> %s;\n", name, child)
		}
		return name
	}
	walk(t.Root)

	buf.WriteString("}\n")
	return buf.String()
}

func leafLabel(n *Node, outgroup string) string {
	label := strings.ReplaceAll(n.Name, "_", " ")
	if n.Name == outgroup {
		label += " *"
	}
	return label
}

// RenderSVG lays out a DOT graph with Graphviz and returns SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// RenderPNG lays out a DOT graph with Graphviz and returns PNG bytes.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render tree panel")
	}
	return buf.Bytes(), nil
}
