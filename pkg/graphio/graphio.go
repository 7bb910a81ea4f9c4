package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mapgraph/mapgraph/pkg/graph"
	"github.com/mapgraph/mapgraph/pkg/maze"
)

type document struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Nodes  []node `json:"nodes"`
	Edges  []edge `json:"edges"`
}

type node struct {
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Terrain string `json:"terrain"`
}

type coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type edge struct {
	From coord  `json:"from"`
	To   coord  `json:"to"`
	Dir  string `json:"dir"`
}

// WriteJSON encodes g as indented JSON and writes it to w.
// Nodes follow the grid's row-major order and edges each cell's outgoing
// order, so output is deterministic.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	grid := g.Grid()
	doc := document{
		Width:  grid.Width(),
		Height: grid.Height(),
		Nodes:  make([]node, 0, grid.Width()*grid.Height()),
		Edges:  make([]edge, 0, g.EdgeCount()),
	}

	for _, c := range grid.Cells() {
		doc.Nodes = append(doc.Nodes, node{X: c.X, Y: c.Y, Terrain: string(c.Terrain.Rune())})
		edges, err := g.EdgesOf(c)
		if err != nil {
			return fmt.Errorf("collect edges: %w", err)
		}
		for _, e := range edges {
			doc.Edges = append(doc.Edges, edge{
				From: coord{X: e.From.X, Y: e.From.Y},
				To:   coord{X: e.To.X, Y: e.To.Y},
				Dir:  e.Dir.String(),
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around WriteJSON for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// ReadJSON decodes a graph document from r.
//
// The grid is reconstructed from the node list - every coordinate of the
// declared width x height rectangle must appear exactly once with a valid
// terrain character - and the adjacency graph is rebuilt from it. The
// stored edge count must match the rebuilt one; a mismatch means the
// document was produced by an incompatible transition policy.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Nodes) != doc.Width*doc.Height {
		return nil, fmt.Errorf("node count %d does not fill %dx%d grid",
			len(doc.Nodes), doc.Width, doc.Height)
	}

	rows := make([][]rune, doc.Height)
	for i := range rows {
		rows[i] = make([]rune, doc.Width)
	}
	seen := make(map[coord]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if n.X < 0 || n.X >= doc.Width || n.Y < 0 || n.Y >= doc.Height {
			return nil, fmt.Errorf("node (%d,%d) outside %dx%d grid", n.X, n.Y, doc.Width, doc.Height)
		}
		c := coord{X: n.X, Y: n.Y}
		if seen[c] {
			return nil, fmt.Errorf("duplicate node (%d,%d)", n.X, n.Y)
		}
		seen[c] = true
		runes := []rune(n.Terrain)
		if len(runes) != 1 {
			return nil, fmt.Errorf("node (%d,%d): terrain must be a single character, got %q", n.X, n.Y, n.Terrain)
		}
		rows[n.Y][n.X] = runes[0]
	}

	// rows[0] holds y=0; ParseGridOrder with top-down order maps index 0 to
	// y=0, so textRows needs no flipping here.
	textRows := make([]string, doc.Height)
	for y, row := range rows {
		textRows[y] = string(row)
	}
	grid, err := maze.ParseGridOrder(textRows, maze.RowOrderTopDown)
	if err != nil {
		return nil, fmt.Errorf("reconstruct grid: %w", err)
	}

	g := graph.Build(grid)
	if g.EdgeCount() != len(doc.Edges) {
		return nil, fmt.Errorf("document lists %d edges, rebuilt graph has %d",
			len(doc.Edges), g.EdgeCount())
	}
	return g, nil
}

// ImportJSON reads a JSON graph document from the file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return g, nil
}
