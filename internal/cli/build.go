package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/scaffold/pkg/graph"
)

// edge is one parsed from:index:to triple.
type edge struct {
	from  string
	index int
	to    string
}

// workbench is a named view over a graph of string-payload nodes, built
// from command-line edge triples. Node names double as payloads so the
// graph operations stay observable from the outside.
type workbench struct {
	order []string // node names in first-mention order
	nodes map[string]*graph.Node[string]
	names map[*graph.Node[string]]string
	edges []edge
}

// parseEdge parses a "from:index:to" argument.
func parseEdge(arg string) (edge, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return edge{}, fmt.Errorf("edge %q: want from:index:to", arg)
	}
	index, err := strconv.Atoi(parts[1])
	if err != nil || index < 0 {
		return edge{}, fmt.Errorf("edge %q: index must be a non-negative integer", arg)
	}
	return edge{from: parts[0], index: index, to: parts[2]}, nil
}

// buildGraph assembles a workbench graph from edge-triple arguments.
// Nodes are created on first mention; edge containers grow to fit the
// highest index used on each node.
func buildGraph(args []string) (*workbench, error) {
	w := &workbench{
		nodes: make(map[string]*graph.Node[string]),
		names: make(map[*graph.Node[string]]string),
	}

	for _, arg := range args {
		e, err := parseEdge(arg)
		if err != nil {
			return nil, err
		}

		from, err := w.node(e.from)
		if err != nil {
			return nil, err
		}
		to, err := w.node(e.to)
		if err != nil {
			return nil, err
		}

		if from.Edges().Len() <= e.index {
			if err := from.Edges().Resize(e.index + 1); err != nil {
				return nil, fmt.Errorf("grow edges of %s: %w", e.from, err)
			}
		}
		if err := from.SetLink(e.index, to); err != nil {
			return nil, fmt.Errorf("link %s:%d: %w", e.from, e.index, err)
		}
		w.edges = append(w.edges, e)
	}

	if len(w.order) == 0 {
		return nil, fmt.Errorf("no edges given")
	}
	return w, nil
}

// node returns the named node, creating it on first mention.
func (w *workbench) node(name string) (*graph.Node[string], error) {
	if n, ok := w.nodes[name]; ok {
		return n, nil
	}
	payload := name
	n, err := graph.NewNode(&payload, 0)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", name, err)
	}
	w.nodes[name] = n
	w.names[n] = name
	w.order = append(w.order, name)
	return n, nil
}

// origin returns the start node for traversals: the named node when name
// is non-empty, otherwise the first-mentioned node.
func (w *workbench) origin(name string) (*graph.Node[string], error) {
	if name == "" {
		return w.nodes[w.order[0]], nil
	}
	n, ok := w.nodes[name]
	if !ok {
		return nil, fmt.Errorf("unknown node %q", name)
	}
	return n, nil
}
