package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mapgraph/mapgraph/pkg/buildinfo"
)

// Execute runs the mapgraph CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (export,
// graph, inspect), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "mapgraph",
		Short:        "mapgraph converts ASCII maps into directed adjacency graphs",
		Long:         `mapgraph parses rectangular ASCII maps (entrance, exit, wall, ground) into a grid of typed cells, derives the directed graph of legal movement transitions - moves into walls bounce back as self-loops - and serializes the result as Graphviz DOT or JSON for external visualization.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newExportCmd())
	root.AddCommand(newGraphCmd())
	root.AddCommand(newInspectCmd())

	return root.ExecuteContext(ctx)
}
