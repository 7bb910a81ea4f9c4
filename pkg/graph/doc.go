// Package graph derives a directed adjacency graph from a parsed map grid.
//
// # Overview
//
// Build walks every cell of a maze.Grid in row-major order and computes its
// outgoing edges, one per cardinal Direction, applying the wall-collision
// policy:
//
//   - a neighbor outside the grid produces no edge (silently filtered)
//   - a wall cell has no outgoing edges at all
//   - moving into a wall bounces: the edge becomes a self-loop on the
//     source cell, still labeled with the attempted direction
//   - otherwise a normal edge connects the cell to its neighbor
//
// The per-cell edge list is ordered Up, Down, Left, Right (filtered for
// existence), so a cell has at most four outgoing edges and Build is fully
// deterministic for a given grid.
//
// # Immutability
//
// A Graph is built once from a completed Grid and never mutated. Lookups
// go through EdgesOf, which returns ErrUnknownCell for any cell value that
// is not a key of the graph - including a cell at valid coordinates whose
// terrain tag does not match the grid.
//
// # Known Gap
//
// Incoming always returns an empty map. The incoming-edge index is an
// explicitly unimplemented contract, kept so callers (and tests) can rely
// on the gap instead of discovering it.
package graph
