package tet

import "fmt"

// Type identifies a tetromino. TypeFragment marks an irregular post-clear piece that has
// no catalog shape or rotation.
type Type int

const TypeFragment Type = -1

const (
	TypeI Type = iota
	TypeJ
	TypeL
	TypeO
	TypeS
	TypeT
	TypeZ
)

// NumTypes is the number of tetromino types a random spawn picks from.
const NumTypes = 7

var typeNames = [NumTypes]string{"I", "J", "L", "O", "S", "T", "Z"}

func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	if t == TypeFragment {
		return "fragment"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t names one of the seven tetrominoes.
func (t Type) Valid() bool {
	return t >= TypeI && t <= TypeZ
}

// Color is the display color used for the outline of a unit of this type. Fragments and
// unknown types map to Empty, which the palette renders as the fallback color.
func (t Type) Color() Color {
	if !t.Valid() {
		return Empty
	}
	return Color(t + 1)
}

// catalog holds every orientation per type, clockwise from rotation 0. The cell values
// are the piece colors.
var catalog = [NumTypes][]Shape{
	TypeI: {
		{{1, 1, 1, 1}},
		{{1}, {1}, {1}, {1}},
	},
	TypeJ: {
		{{2, 2, 2}, {0, 0, 2}},
		{{0, 2}, {0, 2}, {2, 2}},
		{{2}, {2, 2, 2}},
		{{2, 2}, {2}, {2}},
	},
	TypeL: {
		{{3, 3, 3}, {3}},
		{{3, 3}, {0, 3}, {0, 3}},
		{{0, 0, 3}, {3, 3, 3}},
		{{3}, {3}, {3, 3}},
	},
	TypeO: {
		{{4, 4}, {4, 4}},
	},
	TypeS: {
		{{0, 5, 5}, {5, 5}},
		{{5}, {5, 5}, {0, 5}},
	},
	TypeT: {
		{{6, 6, 6}, {0, 6}},
		{{0, 6}, {6, 6}, {0, 6}},
		{{0, 6}, {6, 6, 6}},
		{{6}, {6, 6}, {6}},
	},
	TypeZ: {
		{{7, 7}, {0, 7, 7}},
		{{0, 7}, {7, 7}, {7}},
	},
}

// Rotations returns how many distinct orientations t has, or 0 for a type without
// catalog entries.
func Rotations(t Type) int {
	if !t.Valid() {
		return 0
	}
	return len(catalog[t])
}

// ShapeFor returns a fresh copy of the orientation of t at the given rotation. The
// rotation index is reduced modulo the type's orientation count. Types without
// orientations yield an empty shape, which callers treat as a rejected rotation.
func ShapeFor(t Type, rotation int) Shape {
	var idx int
	switch n := Rotations(t); n {
	case 1:
		idx = 0
	case 2, 4:
		idx = ((rotation % n) + n) % n
	default:
		return Shape{}
	}
	return catalog[t][idx].Clone()
}
