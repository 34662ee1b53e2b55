package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scaffold/pkg/graph"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "check EDGE...",
		Short: "Build a graph from edge triples and report its cyclicity",
		Long: `Build a graph from from:index:to edge triples and report node and
edge counts plus whether the structure reachable from the origin contains
a cycle. A cyclic or shared structure must not be torn down or copied as
a tree; this check is the guard.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(args, from)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "origin node (default: first mentioned)")

	return cmd
}

func (c *CLI) runCheck(args []string, from string) error {
	p := newProgress(c.Logger)

	w, err := buildGraph(args)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	origin, err := w.origin(from)
	if err != nil {
		return err
	}
	c.Logger.Debugf("built %d nodes, %d edges", len(w.order), len(w.edges))

	cyclic := graph.IsCyclic(origin)
	p.done(fmt.Sprintf("Checked %d nodes", len(w.order)))

	printCount("nodes", len(w.order))
	printCount("edges", len(w.edges))
	printKeyValue("origin", w.names[origin])
	if cyclic {
		printWarning("cyclic: structure must not be destroyed or copied as a tree")
	} else {
		printSuccess("acyclic")
	}
	return nil
}
