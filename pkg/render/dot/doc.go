// Package dot serializes adjacency graphs to the Graphviz DOT language.
//
// # Overview
//
// ToDOT walks the originating grid in row-major order and emits one node
// line per cell followed by one edge line per outgoing edge, inside a
// `digraph map { ... }` block. Node lines carry circular shape, a label
// with the terrain character and coordinates, a position hint at (2x, 2y)
// to space cells out, and a fill color keyed by terrain kind.
//
// Output is byte-stable for a given grid: same traversal order, same
// formatting. Snapshot tests can compare the full string.
//
// # Validation
//
// Validate parses DOT text with [github.com/goccy/go-graphviz] to confirm
// the output is consumable by Graphviz tooling. No image rendering happens
// here - the package's contract ends at text.
package dot
