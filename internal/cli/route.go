package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scaffold/pkg/container"
)

// routeCommand creates the route command.
func (c *CLI) routeCommand() *cobra.Command {
	var (
		from    string
		pathStr string
	)

	cmd := &cobra.Command{
		Use:   "route --path INDICES EDGE...",
		Short: "Follow a route of edge indices through a graph",
		Long: `Build a graph from from:index:to edge triples, then follow the given
comma-separated edge indices one step at a time from the origin node,
printing the node reached after each step. An empty path is the identity
and stays on the origin.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoute(args, from, pathStr)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin node (default: first mentioned)")
	cmd.Flags().StringVar(&pathStr, "path", "", "comma-separated edge indices, e.g. 0,1,0")

	return cmd
}

// parsePath parses a comma-separated index list into a slice.
func parsePath(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	steps := make([]int, len(parts))
	for i, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("path step %d: %q is not an integer", i, part)
		}
		steps[i] = idx
	}
	return steps, nil
}

func (c *CLI) runRoute(args []string, from, pathStr string) error {
	w, err := buildGraph(args)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	origin, err := w.origin(from)
	if err != nil {
		return err
	}

	steps, err := parsePath(pathStr)
	if err != nil {
		return err
	}

	path, err := container.Project(steps, len(steps), 1)
	if err != nil {
		return fmt.Errorf("project path: %w", err)
	}

	dest, err := origin.Route(path)
	if err != nil {
		return fmt.Errorf("route from %s: %w", w.names[origin], err)
	}

	// Replay the route one hop at a time for the trail output.
	cur := origin
	printKeyValue("origin", w.names[cur])
	for i, idx := range steps {
		next, err := cur.Traverse(idx, 1)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		printDetail("%s edge %d %s %s", w.names[cur], idx, iconArrow, w.names[next])
		cur = next
	}

	printSuccess("arrived at %s after %d steps", w.names[dest], len(steps))
	return nil
}
