package graph

import "fmt"

// Direction is one of the four cardinal movement transitions.
type Direction uint8

const (
	// Up moves to (x, y-1).
	Up Direction = iota
	// Down moves to (x, y+1).
	Down
	// Left moves to (x-1, y).
	Left
	// Right moves to (x+1, y).
	Right
)

// Directions lists all directions in evaluation order.
// Per-cell edge lists follow this order.
var Directions = [...]Direction{Up, Down, Left, Right}

var directionNames = [...]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

// Delta returns the coordinate offset a step in d applies.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// String returns a lowercase name for d.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// ParseDirection is the inverse of String. It reports false for any name
// that is not one of the four directions.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if directionNames[d] == s {
			return d, true
		}
	}
	return 0, false
}
