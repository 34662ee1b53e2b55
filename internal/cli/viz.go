package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// vizCommand creates the viz command.
func (c *CLI) vizCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "viz EDGE...",
		Short: "Visualize a graph as Graphviz DOT or SVG",
		Long: `Build a graph from from:index:to edge triples and emit it as Graphviz
DOT on stdout, or render it with -o to a .dot or .svg file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runViz(cmd, args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.dot or .svg); default stdout DOT")

	return cmd
}

func (c *CLI) runViz(cmd *cobra.Command, args []string, output string) error {
	w, err := buildGraph(args)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	dot := toDOT(w)

	switch {
	case output == "":
		fmt.Print(dot)
		return nil
	case strings.HasSuffix(output, ".dot"):
		if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
	case strings.HasSuffix(output, ".svg"):
		p := newProgress(c.Logger)
		svg, err := renderSVG(cmd.Context(), dot)
		if err != nil {
			return fmt.Errorf("render SVG: %w", err)
		}
		if err := os.WriteFile(output, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		p.done("Rendered SVG")
	default:
		return fmt.Errorf("unsupported output %q: want .dot or .svg", output)
	}

	printSuccess("wrote %s", output)
	return nil
}
