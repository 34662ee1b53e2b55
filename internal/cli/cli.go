// Package cli implements the scaffold command-line workbench.
//
// The workbench builds directed graphs from edge triples given on the
// command line and runs the toolkit's operations on them: cyclicity
// checking, route following, and Graphviz visualization. It exists for
// poking at structures during development; the toolkit itself has no
// file or wire format, so every input arrives through argv.
//
// # Edge triples
//
// A graph is described as a sequence of "from:index:to" arguments, where
// index is the integer edge label on the from node:
//
//	scaffold check a:0:b a:1:c b:0:d c:0:d
//
// Nodes are created on first mention; their edge containers grow to fit
// the highest index used.
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for display.
const appName = "scaffold"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Scaffold is a workbench for the container and graph toolkit",
		Long:         `Scaffold builds directed graphs from edge triples on the command line and runs the toolkit's operations on them: cyclicity checks, route following, and Graphviz visualization.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.vizCommand())

	return root
}
