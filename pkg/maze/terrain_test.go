package maze

import (
	"errors"
	"testing"
)

func TestParseTerrain(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want Terrain
	}{
		{name: "Entrance", in: 'S', want: Entrance},
		{name: "Exit", in: 'E', want: Exit},
		{name: "Wall", in: '#', want: Wall},
		{name: "Ground", in: ' ', want: Ground},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTerrain(tt.in)
			if err != nil {
				t.Fatalf("ParseTerrain(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTerrain(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTerrainUnrecognized(t *testing.T) {
	for _, r := range []rune{'X', 's', 'e', '.', '\t'} {
		if _, err := ParseTerrain(r); !errors.Is(err, ErrUnrecognizedTerrain) {
			t.Errorf("ParseTerrain(%q) error = %v, want ErrUnrecognizedTerrain", r, err)
		}
	}
}

func TestTerrainRuneRoundTrip(t *testing.T) {
	for _, terrain := range []Terrain{Ground, Wall, Entrance, Exit} {
		got, err := ParseTerrain(terrain.Rune())
		if err != nil {
			t.Fatalf("ParseTerrain(%v.Rune()) error = %v", terrain, err)
		}
		if got != terrain {
			t.Errorf("round trip of %v via %q = %v", terrain, terrain.Rune(), got)
		}
	}
}

func TestCellCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want int // sign only
	}{
		{name: "Equal", a: Cell{1, 2, Ground}, b: Cell{1, 2, Ground}, want: 0},
		{name: "ByX", a: Cell{0, 9, Exit}, b: Cell{1, 0, Ground}, want: -1},
		{name: "ByY", a: Cell{1, 3, Ground}, b: Cell{1, 2, Exit}, want: 1},
		{name: "ByTerrain", a: Cell{1, 2, Ground}, b: Cell{1, 2, Wall}, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			switch {
			case tt.want == 0 && got != 0:
				t.Errorf("Compare(%v, %v) = %d, want 0", tt.a, tt.b, got)
			case tt.want < 0 && got >= 0:
				t.Errorf("Compare(%v, %v) = %d, want negative", tt.a, tt.b, got)
			case tt.want > 0 && got <= 0:
				t.Errorf("Compare(%v, %v) = %d, want positive", tt.a, tt.b, got)
			}
		})
	}
}

func TestCellEqualityIncludesTerrain(t *testing.T) {
	// Same coordinates, different recorded terrain: distinct values.
	a := Cell{X: 1, Y: 2, Terrain: Ground}
	b := Cell{X: 1, Y: 2, Terrain: Entrance}
	if a == b {
		t.Error("cells with different terrain should not be equal")
	}
}

func TestCellString(t *testing.T) {
	c := Cell{X: 1, Y: 2, Terrain: Entrance}
	if got, want := c.String(), "S (1,2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
