package cli

import (
	"context"
	"errors"

	apperrors "github.com/mapgraph/mapgraph/pkg/errors"
	"github.com/mapgraph/mapgraph/pkg/graph"
	"github.com/mapgraph/mapgraph/pkg/maze"
)

// buildGraph loads a map file, parses it with the given row order, and
// derives its adjacency graph. Domain sentinel errors are wrapped with the
// structured codes the CLI reports to users.
func buildGraph(ctx context.Context, path string, order maze.RowOrder) (*graph.Graph, error) {
	logger := loggerFromContext(ctx)

	rows, err := maze.LoadMap(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "read map %s", path)
	}
	logger.Debugf("Read %d rows from %s", len(rows), path)

	grid, err := maze.ParseGridOrder(rows, order)
	if err != nil {
		switch {
		case errors.Is(err, maze.ErrUnrecognizedTerrain):
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidTerrain, err, "parse map %s", path)
		case errors.Is(err, maze.ErrMalformedGrid), errors.Is(err, maze.ErrEmptyGrid):
			return nil, apperrors.Wrap(apperrors.ErrCodeMalformedGrid, err, "parse map %s", path)
		default:
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "parse map %s", path)
		}
	}
	logger.Debugf("Parsed %dx%d grid", grid.Width(), grid.Height())

	return graph.Build(grid), nil
}
