package dot

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mapgraph/mapgraph/pkg/graph"
	"github.com/mapgraph/mapgraph/pkg/maze"
)

// Palette maps terrain kinds to Graphviz fill colors.
type Palette struct {
	Wall     string
	Entrance string
	Exit     string
	Ground   string
}

// DefaultPalette returns the standard terrain colors:
// walls pale green, entrance yellow, exit red, ground white.
func DefaultPalette() Palette {
	return Palette{
		Wall:     "palegreen",
		Entrance: "yellow",
		Exit:     "red",
		Ground:   "white",
	}
}

// color returns the fill color for t, defaulting to the ground color for
// anything unrecognized.
func (p Palette) color(t maze.Terrain) string {
	switch t {
	case maze.Wall:
		return p.Wall
	case maze.Entrance:
		return p.Entrance
	case maze.Exit:
		return p.Exit
	default:
		return p.Ground
	}
}

// Options configures DOT generation.
type Options struct {
	// Palette overrides the terrain fill colors. The zero value selects
	// DefaultPalette.
	Palette Palette
}

// nodeID derives the unique DOT identifier for a cell from its coordinates.
// Nodes and edges share the scheme, so edge lines resolve by construction.
func nodeID(c maze.Cell) string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ToDOT renders g as a DOT digraph.
//
// Cells are visited in row-major order over the originating grid, not the
// adjacency map's iteration order, so repeated calls on equal grids yield
// byte-identical output. Each cell contributes a node declaration followed
// by its outgoing edge declarations; self-loops render as a node pointing
// at itself.
func ToDOT(g *graph.Graph, opts Options) string {
	palette := opts.Palette
	if palette == (Palette{}) {
		palette = DefaultPalette()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph map {\n")

	for _, c := range g.Grid().Cells() {
		fmt.Fprintf(&buf, "  %q [shape=circle, style=filled, fillcolor=%s, label=%q, pos=\"%d,%d!\"];\n",
			nodeID(c), palette.color(c.Terrain), c.String(), 2*c.X, 2*c.Y)

		edges, err := g.EdgesOf(c)
		if err != nil {
			// The cell came straight from the graph's own grid; a miss here
			// is a programming error, not an input problem.
			panic(err)
		}
		for _, e := range edges {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(e.From), nodeID(e.To))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Validate checks that dot is well-formed DOT by parsing it with Graphviz.
func Validate(dot string) error {
	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("parse DOT: %w", err)
	}
	return g.Close()
}
