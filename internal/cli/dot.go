package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// toDOT converts a workbench graph to Graphviz DOT format. Nodes appear
// in first-mention order and edges in argument order, so output is
// deterministic for a given command line. Edges are labelled with their
// index, since the index is a direction label rather than a position.
func toDOT(w *workbench) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, name := range w.order {
		fmt.Fprintf(&buf, "  %q;\n", name)
	}

	buf.WriteString("\n")
	for _, e := range w.edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.from, e.to, fmt.Sprintf("%d", e.index))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// renderSVG renders a DOT graph to SVG using Graphviz.
func renderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
