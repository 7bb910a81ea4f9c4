// Package maze parses rectangular ASCII maps into grids of typed cells.
//
// # Overview
//
// A map is a list of equal-length text rows built from four terrain
// characters: 'S' (entrance), 'E' (exit), '#' (wall) and ' ' (ground).
// ParseGrid turns those rows into an immutable Grid of Cells, each
// carrying 0-based coordinates and a Terrain kind.
//
// # Coordinate Convention
//
// By default rows are indexed bottom-up: the last text row becomes y=0 and
// the first text row the highest y. The convention lives in a single
// RowOrder policy value at the parse boundary, so it can be flipped with
// RowOrderTopDown without touching any downstream code.
//
// # Usage
//
//	rows, err := maze.LoadMap("level.map")
//	if err != nil { ... }
//	grid, err := maze.ParseGrid(rows)
//	if err != nil { ... }
//
// Parse failures are reported through the typed sentinel errors
// ErrUnrecognizedTerrain, ErrMalformedGrid and ErrEmptyGrid, which can be
// checked with errors.Is.
package maze
