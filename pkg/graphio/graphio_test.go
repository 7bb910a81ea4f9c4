package graphio

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mapgraph/mapgraph/pkg/graph"
	"github.com/mapgraph/mapgraph/pkg/maze"
)

var testMap = []string{
	"####",
	"# E#",
	"#S #",
	"####",
}

func mustGraph(t *testing.T, rows []string) *graph.Graph {
	t.Helper()
	grid, err := maze.ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}
	return graph.Build(grid)
}

func TestWriteJSON(t *testing.T) {
	g := mustGraph(t, testMap)

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var doc struct {
		Width  int `json:"width"`
		Height int `json:"height"`
		Nodes  []struct {
			X       int    `json:"x"`
			Y       int    `json:"y"`
			Terrain string `json:"terrain"`
		} `json:"nodes"`
		Edges []json.RawMessage `json:"edges"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Width != 4 || doc.Height != 4 {
		t.Errorf("dimensions = %dx%d, want 4x4", doc.Width, doc.Height)
	}
	if len(doc.Nodes) != 16 {
		t.Errorf("node count = %d, want 16", len(doc.Nodes))
	}
	if len(doc.Edges) != g.EdgeCount() {
		t.Errorf("edge count = %d, want %d", len(doc.Edges), g.EdgeCount())
	}

	// Nodes are row-major: the entrance (1,1) is the sixth entry.
	if n := doc.Nodes[5]; n.X != 1 || n.Y != 1 || n.Terrain != "S" {
		t.Errorf("Nodes[5] = %+v, want entrance at (1,1)", n)
	}
}

func TestRoundTrip(t *testing.T) {
	g := mustGraph(t, testMap)

	var first bytes.Buffer
	if err := WriteJSON(g, &first); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	imported, err := ReadJSON(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	var second bytes.Buffer
	if err := WriteJSON(imported, &second); err != nil {
		t.Fatalf("WriteJSON() after import error = %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("export -> import -> export should be byte-identical")
	}
}

func TestExportImportFiles(t *testing.T) {
	g := mustGraph(t, testMap)
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	imported, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if imported.EdgeCount() != g.EdgeCount() {
		t.Errorf("imported edge count = %d, want %d", imported.EdgeCount(), g.EdgeCount())
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "Garbage", in: "not json", want: "decode"},
		{name: "ZeroDimensions", in: `{"width":0,"height":0,"nodes":[],"edges":[]}`, want: "invalid dimensions"},
		{
			name: "NodeCountMismatch",
			in:   `{"width":2,"height":2,"nodes":[{"x":0,"y":0,"terrain":" "}],"edges":[]}`,
			want: "does not fill",
		},
		{
			name: "DuplicateNode",
			in: `{"width":1,"height":2,"nodes":[{"x":0,"y":0,"terrain":" "},{"x":0,"y":0,"terrain":" "}],` +
				`"edges":[]}`,
			want: "duplicate node",
		},
		{
			name: "BadTerrain",
			in:   `{"width":1,"height":1,"nodes":[{"x":0,"y":0,"terrain":"XX"}],"edges":[]}`,
			want: "single character",
		},
		{
			name: "EdgeCountMismatch",
			in: `{"width":1,"height":1,"nodes":[{"x":0,"y":0,"terrain":" "}],` +
				`"edges":[{"from":{"x":0,"y":0},"to":{"x":0,"y":0},"dir":"up"}]}`,
			want: "rebuilt graph",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("ReadJSON() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}
