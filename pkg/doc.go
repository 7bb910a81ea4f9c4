// Package pkg provides the core libraries for mapgraph map-to-graph conversion.
//
// # Overview
//
// mapgraph turns rectangular ASCII maps into directed adjacency graphs and
// serializes them for external visualization. The pkg directory is organized
// into five areas:
//
//  1. [maze] - Map parsing (terrain kinds, cells, rectangular grids)
//  2. [graph] - Adjacency graph derivation (directions, wall-collision policy)
//  3. [render/dot] - Graphviz DOT serialization and validation
//  4. [graphio] - JSON import/export of adjacency graphs
//  5. [errors] - Structured error codes for the CLI boundary
//
// # Architecture
//
// The data flow is a one-way pipeline:
//
//	ASCII map rows
//	      ↓
//	 [maze] package (parse into a Grid of Cells)
//	      ↓
//	 [graph] package (derive directed edges with self-loop bounce semantics)
//	      ↓
//	 [render/dot] or [graphio] (DOT text / JSON output)
//
// # Quick Start
//
//	rows, _ := maze.LoadMap("level.map")
//	grid, err := maze.ParseGrid(rows)
//	if err != nil {
//	    return err
//	}
//	g := graph.Build(grid)
//	fmt.Print(dot.ToDOT(g, dot.Options{}))
package pkg
