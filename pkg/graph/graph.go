package graph

import (
	"errors"
	"fmt"

	"github.com/mapgraph/mapgraph/pkg/maze"
)

// ErrUnknownCell is returned by EdgesOf when the queried cell is not a key
// of the graph. Given a graph built from the same grid the cell came from,
// this indicates an internal invariant violation rather than a normal
// runtime condition.
var ErrUnknownCell = errors.New("cell not present in adjacency graph")

// Edge is a directed, direction-labeled transition between two cells.
// A self-loop (From == To) records an attempted move into a wall.
type Edge struct {
	From maze.Cell
	To   maze.Cell
	Dir  Direction
}

// IsSelfLoop reports whether the edge bounces back to its source cell.
func (e Edge) IsSelfLoop() bool { return e.From == e.To }

// Graph maps every cell of a grid to its ordered list of outgoing edges.
// It is immutable after Build and not safe for concurrent mutation, which
// never occurs: all methods are read-only.
type Graph struct {
	grid  maze.Grid
	edges map[maze.Cell][]Edge
	count int
}

// Build derives the adjacency graph for grid. Every cell becomes a key,
// wall cells included (with empty edge lists). Grid rectangularity plus
// per-coordinate cell uniqueness guarantee no key is inserted twice.
func Build(grid maze.Grid) *Graph {
	g := &Graph{
		grid:  grid,
		edges: make(map[maze.Cell][]Edge, grid.Width()*grid.Height()),
	}
	for _, c := range grid.Cells() {
		out := outgoing(grid, c)
		g.edges[c] = out
		g.count += len(out)
	}
	return g
}

// outgoing applies the transition policy to a single cell, independently
// per direction, in the fixed order Up, Down, Left, Right.
func outgoing(grid maze.Grid, c maze.Cell) []Edge {
	if c.Terrain == maze.Wall {
		return nil
	}
	var edges []Edge
	for _, d := range Directions {
		dx, dy := d.Delta()
		neighbor, ok := grid.Cell(c.X+dx, c.Y+dy)
		if !ok {
			continue // off-grid moves are expected, not errors
		}
		if neighbor.Terrain == maze.Wall {
			edges = append(edges, Edge{From: c, To: c, Dir: d})
			continue
		}
		edges = append(edges, Edge{From: c, To: neighbor, Dir: d})
	}
	return edges
}

// Grid returns the grid the graph was built from. Exporters traverse it in
// row-major order so output stays byte-stable.
func (g *Graph) Grid() maze.Grid { return g.grid }

// EdgesOf returns the ordered outgoing edges of c. Wall cells yield an
// empty list. A cell that is not a key - wrong coordinates or a mismatched
// terrain tag - yields ErrUnknownCell.
func (g *Graph) EdgesOf(c maze.Cell) ([]Edge, error) {
	edges, ok := g.edges[c]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCell, c)
	}
	return edges, nil
}

// CellCount returns the number of cells (keys) in the graph.
func (g *Graph) CellCount() int { return len(g.edges) }

// EdgeCount returns the total number of edges, self-loops included.
func (g *Graph) EdgeCount() int { return g.count }

// Incoming returns the incoming-edge index.
//
// The index is intentionally unimplemented and always empty. Callers must
// not expect incoming edges to be populated; tests assert the gap so a
// future implementation is a deliberate change, not an accident.
func (g *Graph) Incoming() map[maze.Cell][]Edge {
	return map[maze.Cell][]Edge{}
}
