// Package graphio serializes adjacency graphs to and from JSON.
//
// The format mirrors the in-memory model: a node per cell (coordinates and
// terrain character) and an edge per transition (endpoints and direction).
// Because edges are fully derived from the grid, ReadJSON reconstructs the
// grid from the node list and rebuilds the graph, then checks the stored
// edge count against the rebuilt one. Import -> export therefore
// round-trips byte-identically.
package graphio
