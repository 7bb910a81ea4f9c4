package maze

import (
	"errors"
	"testing"
)

// testMap is the canonical 4x4 fixture: entrance and exit enclosed by walls.
var testMap = []string{
	"####",
	"# E#",
	"#S #",
	"####",
}

func TestParseGridBottomUp(t *testing.T) {
	grid, err := ParseGrid(testMap)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}

	if grid.Width() != 4 || grid.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 4x4", grid.Width(), grid.Height())
	}

	// The last text row becomes y=0, so the entrance row "#S #" lands at y=1.
	tests := []struct {
		x, y int
		want Terrain
	}{
		{0, 0, Wall},
		{1, 1, Entrance},
		{2, 2, Exit},
		{2, 1, Ground},
		{3, 3, Wall},
	}
	for _, tt := range tests {
		cell, ok := grid.Cell(tt.x, tt.y)
		if !ok {
			t.Fatalf("Cell(%d,%d) not found", tt.x, tt.y)
		}
		if cell.Terrain != tt.want {
			t.Errorf("Cell(%d,%d).Terrain = %v, want %v", tt.x, tt.y, cell.Terrain, tt.want)
		}
		if cell.X != tt.x || cell.Y != tt.y {
			t.Errorf("Cell(%d,%d) carries coordinates (%d,%d)", tt.x, tt.y, cell.X, cell.Y)
		}
	}
}

func TestParseGridTopDown(t *testing.T) {
	grid, err := ParseGridOrder(testMap, RowOrderTopDown)
	if err != nil {
		t.Fatalf("ParseGridOrder() error = %v", err)
	}

	// With top-down order the first text row is y=0: entrance at (1,2).
	cell, ok := grid.Cell(1, 2)
	if !ok || cell.Terrain != Entrance {
		t.Errorf("Cell(1,2) = %v, %v; want entrance", cell, ok)
	}
	cell, ok = grid.Cell(2, 1)
	if !ok || cell.Terrain != Exit {
		t.Errorf("Cell(2,1) = %v, %v; want exit", cell, ok)
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{name: "Empty", rows: nil, want: ErrEmptyGrid},
		{name: "ZeroWidth", rows: []string{""}, want: ErrEmptyGrid},
		{name: "RaggedRows", rows: []string{"###", "##"}, want: ErrMalformedGrid},
		{name: "BadCharacter", rows: []string{"###", "#X#", "###"}, want: ErrUnrecognizedTerrain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(tt.rows)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseGrid(%q) error = %v, want %v", tt.rows, err, tt.want)
			}
		})
	}
}

func TestParseGridMalformedBeforeTerrain(t *testing.T) {
	// Row lengths are validated before any cell is parsed, so a ragged map
	// with a bad character still reports MalformedGrid.
	_, err := ParseGrid([]string{"#X#", "##"})
	if !errors.Is(err, ErrMalformedGrid) {
		t.Errorf("error = %v, want ErrMalformedGrid", err)
	}
}

func TestGridCellBounds(t *testing.T) {
	grid, err := ParseGrid(testMap)
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if _, ok := grid.Cell(pos[0], pos[1]); ok {
			t.Errorf("Cell(%d,%d) = ok, want out of bounds", pos[0], pos[1])
		}
	}
}

func TestGridCellsRowMajor(t *testing.T) {
	grid, err := ParseGrid([]string{"#E", "S "})
	if err != nil {
		t.Fatalf("ParseGrid() error = %v", err)
	}

	cells := grid.Cells()
	if len(cells) != 4 {
		t.Fatalf("len(Cells()) = %d, want 4", len(cells))
	}

	wantOrder := [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, want := range wantOrder {
		if cells[i].X != want[0] || cells[i].Y != want[1] {
			t.Errorf("Cells()[%d] = (%d,%d), want (%d,%d)",
				i, cells[i].X, cells[i].Y, want[0], want[1])
		}
	}
}
