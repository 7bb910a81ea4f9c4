package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/mapgraph/mapgraph/pkg/errors"
	"github.com/mapgraph/mapgraph/pkg/graphio"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output string // output file path (stdout if empty)
	config string // optional TOML config path
}

// newGraphCmd creates the graph command for JSON output.
func newGraphCmd() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <map-file>",
		Short: "Convert a map file to a JSON adjacency-graph document",
		Long: `Convert an ASCII map file to a JSON adjacency-graph document.

The document lists every cell (coordinates plus terrain character) and every
directed transition edge. It can be re-imported losslessly, since edges are
fully derived from the grid.

Examples:
  mapgraph graph level.map                  # JSON to stdout
  mapgraph graph level.map -o level.json    # JSON to file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML config file (row order)")

	return cmd
}

// runGraph executes the JSON pipeline: load, parse, build, encode, write.
func runGraph(ctx context.Context, input string, opts graphOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg := config{}
	if opts.config != "" {
		var err error
		if cfg, err = loadConfig(opts.config); err != nil {
			return err
		}
	}
	order, err := cfg.rowOrder()
	if err != nil {
		return err
	}

	g, err := buildGraph(ctx, input, order)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := graphio.WriteJSON(g, &buf); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode graph")
	}
	if err := writeOutput(opts.output, buf.Bytes()); err != nil {
		return err
	}

	if opts.output != "" {
		prog.done(fmt.Sprintf("Exported %d cells", g.CellCount()))
		printSuccess("Wrote JSON graph")
		printStats(g.CellCount(), g.EdgeCount())
		printFile(opts.output)
	}
	return nil
}
