package maze

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedTerrain is returned by ParseTerrain and ParseGrid when an
// input character is not one of the four recognized terrain symbols.
var ErrUnrecognizedTerrain = errors.New("unrecognized terrain character")

// Terrain is the closed set of cell kinds a map can contain.
// The zero value is Ground.
type Terrain uint8

const (
	// Ground is a walkable empty cell, written as a space.
	Ground Terrain = iota
	// Wall is an impassable cell, written as '#'.
	Wall
	// Entrance is the map entry point, written as 'S'.
	Entrance
	// Exit is the map exit point, written as 'E'.
	Exit
)

// terrainRunes is the total Terrain → character mapping. Every Terrain has
// exactly one canonical character, used both for parsing and for labels.
var terrainRunes = [...]rune{
	Ground:   ' ',
	Wall:     '#',
	Entrance: 'S',
	Exit:     'E',
}

var terrainNames = [...]string{
	Ground:   "ground",
	Wall:     "wall",
	Entrance: "entrance",
	Exit:     "exit",
}

// ParseTerrain maps a single map character to its Terrain kind.
// It returns ErrUnrecognizedTerrain for any character outside
// {'S', 'E', '#', ' '}.
func ParseTerrain(r rune) (Terrain, error) {
	switch r {
	case ' ':
		return Ground, nil
	case '#':
		return Wall, nil
	case 'S':
		return Entrance, nil
	case 'E':
		return Exit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedTerrain, r)
	}
}

// Rune returns the canonical single-character representation of t.
// The mapping is total; unknown values fall back to '?' rather than panic.
func (t Terrain) Rune() rune {
	if int(t) < len(terrainRunes) {
		return terrainRunes[t]
	}
	return '?'
}

// String returns a lowercase human-readable name for t.
func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", uint8(t))
}
