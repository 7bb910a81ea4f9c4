package maze

import "fmt"

// Cell is a single grid position: 0-based coordinates plus the terrain
// recorded there. Cells are immutable values; two cells are equal only if
// coordinates and terrain all match, so a cell tagged with the wrong
// terrain never aliases the one actually stored in a Grid.
type Cell struct {
	X       int
	Y       int
	Terrain Terrain
}

// Compare orders cells lexicographically by (X, Y, Terrain).
// It returns a negative number when c sorts before other, zero when the
// cells are equal, and a positive number otherwise. The signature matches
// slices.SortFunc.
func Compare(c, other Cell) int {
	if c.X != other.X {
		return c.X - other.X
	}
	if c.Y != other.Y {
		return c.Y - other.Y
	}
	return int(c.Terrain) - int(other.Terrain)
}

// String formats the cell as "<char> (x,y)", e.g. "S (1,2)".
func (c Cell) String() string {
	return fmt.Sprintf("%c (%d,%d)", c.Terrain.Rune(), c.X, c.Y)
}
