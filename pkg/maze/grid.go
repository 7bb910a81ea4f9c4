package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned by ParseGrid when the input has no rows
	// or the rows have no columns.
	ErrEmptyGrid = errors.New("grid must have at least one row and one column")

	// ErrMalformedGrid is returned by ParseGrid when input rows differ in
	// length. The check runs before any cell is constructed, so a malformed
	// map is never partially parsed.
	ErrMalformedGrid = errors.New("all grid rows must have the same length")
)

// RowOrder selects how text rows map onto y-coordinates.
type RowOrder int

const (
	// RowOrderBottomUp assigns y=0 to the last text row, so y grows upward.
	// This is the default convention.
	RowOrderBottomUp RowOrder = iota
	// RowOrderTopDown assigns y=0 to the first text row.
	RowOrderTopDown
)

// DefaultRowOrder is the coordinate convention used by ParseGrid.
const DefaultRowOrder = RowOrderBottomUp

// Grid is a rectangular, immutable arrangement of Cells.
// cells[y][x] holds the cell at (x, y); exactly one Cell occupies each
// coordinate. The zero value is an empty grid - use ParseGrid to build one.
type Grid struct {
	cells [][]Cell
}

// ParseGrid builds a Grid from equal-length text rows using the default
// bottom-up row order. See ParseGridOrder for the full contract.
func ParseGrid(rows []string) (Grid, error) {
	return ParseGridOrder(rows, DefaultRowOrder)
}

// ParseGridOrder builds a Grid from equal-length text rows.
//
// Every character must be a recognized terrain symbol. It returns
// ErrEmptyGrid for empty input, ErrMalformedGrid when row lengths differ,
// and ErrUnrecognizedTerrain (wrapped with the offending position) for a
// bad character.
func ParseGridOrder(rows []string, order RowOrder) (Grid, error) {
	if len(rows) == 0 {
		return Grid{}, ErrEmptyGrid
	}

	runeRows := make([][]rune, len(rows))
	for i, row := range rows {
		runeRows[i] = []rune(row)
	}

	width := len(runeRows[0])
	if width == 0 {
		return Grid{}, ErrEmptyGrid
	}
	for i, row := range runeRows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrMalformedGrid, i, len(row), width)
		}
	}

	height := len(runeRows)
	cells := make([][]Cell, height)
	for y := 0; y < height; y++ {
		src := runeRows[y]
		if order == RowOrderBottomUp {
			src = runeRows[height-1-y]
		}
		cells[y] = make([]Cell, width)
		for x, r := range src {
			terrain, err := ParseTerrain(r)
			if err != nil {
				return Grid{}, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			cells[y][x] = Cell{X: x, Y: y, Terrain: terrain}
		}
	}

	return Grid{cells: cells}, nil
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g.cells) }

// Cell returns the cell at (x, y) and true, or the zero Cell and false
// when the coordinate lies outside the grid.
func (g Grid) Cell(x, y int) (Cell, bool) {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= len(g.cells[y]) {
		return Cell{}, false
	}
	return g.cells[y][x], true
}

// Cells returns every cell in row-major order: y from 0 upward, x from 0
// rightward. The returned slice is freshly allocated on every call.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, g.Width()*g.Height())
	for _, row := range g.cells {
		out = append(out, row...)
	}
	return out
}
