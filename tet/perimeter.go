package tet

import (
	"github.com/kamstrup/intmap"
	log "github.com/sirupsen/logrus"
)

// Point is a polygon vertex in block units; X runs along columns and Y along rows.
type Point struct {
	X, Y int
}

// Perimeter is a closed outline polygon relative to a piece's Position.
type Perimeter []Point

// Clone returns an independent copy.
func (p Perimeter) Clone() Perimeter {
	if p == nil {
		return nil
	}
	out := make(Perimeter, len(p))
	copy(out, p)
	return out
}

type outlineEntry struct {
	mask    Shape
	outline Perimeter
}

// outlineEntries enumerates every mask a landed unit of one to four blocks can take: the
// sub-fragments of one, two and three blocks followed by every tetromino orientation.
// Masks are stored trimmed, matching catalog shapes and trimmed clump shapes.
var outlineEntries = []outlineEntry{
	{Shape{{1}}, Perimeter{{0, 0}, {0, 1}, {1, 1}, {1, 0}}},
	{Shape{{1, 1}}, Perimeter{{0, 0}, {0, 1}, {2, 1}, {2, 0}}},
	{Shape{{1}, {1}}, Perimeter{{0, 0}, {0, 2}, {1, 2}, {1, 0}}},
	{Shape{{1, 1, 1}}, Perimeter{{0, 0}, {0, 1}, {3, 1}, {3, 0}}},
	{Shape{{1}, {1}, {1}}, Perimeter{{0, 0}, {0, 3}, {1, 3}, {1, 0}}},
	{Shape{{1, 1}, {0, 1}}, Perimeter{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 0}}},
	{Shape{{0, 1}, {1, 1}}, Perimeter{{1, 0}, {1, 1}, {0, 1}, {0, 2}, {2, 2}, {2, 0}}},
	{Shape{{1}, {1, 1}}, Perimeter{{0, 0}, {0, 2}, {2, 2}, {2, 1}, {1, 1}, {1, 0}}},
	{Shape{{1, 1}, {1}}, Perimeter{{0, 0}, {0, 2}, {1, 2}, {1, 1}, {2, 1}, {2, 0}}},

	// I
	{Shape{{1, 1, 1, 1}}, Perimeter{{0, 0}, {0, 1}, {4, 1}, {4, 0}}},
	{Shape{{1}, {1}, {1}, {1}}, Perimeter{{0, 0}, {0, 4}, {1, 4}, {1, 0}}},
	// J
	{Shape{{1, 1, 1}, {0, 0, 1}}, Perimeter{{0, 0}, {0, 1}, {2, 1}, {2, 2}, {3, 2}, {3, 0}}},
	{Shape{{0, 1}, {0, 1}, {1, 1}}, Perimeter{{1, 0}, {1, 2}, {0, 2}, {0, 3}, {2, 3}, {2, 0}}},
	{Shape{{1}, {1, 1, 1}}, Perimeter{{0, 0}, {0, 2}, {3, 2}, {3, 1}, {1, 1}, {1, 0}}},
	{Shape{{1, 1}, {1}, {1}}, Perimeter{{0, 0}, {0, 3}, {1, 3}, {1, 1}, {2, 1}, {2, 0}}},
	// L
	{Shape{{1, 1, 1}, {1}}, Perimeter{{0, 0}, {0, 2}, {1, 2}, {1, 1}, {3, 1}, {3, 0}}},
	{Shape{{1, 1}, {0, 1}, {0, 1}}, Perimeter{{0, 0}, {0, 1}, {1, 1}, {1, 3}, {2, 3}, {2, 0}}},
	{Shape{{0, 0, 1}, {1, 1, 1}}, Perimeter{{2, 0}, {2, 1}, {0, 1}, {0, 2}, {3, 2}, {3, 0}}},
	{Shape{{1}, {1}, {1, 1}}, Perimeter{{0, 0}, {0, 3}, {2, 3}, {2, 2}, {1, 2}, {1, 0}}},
	// O
	{Shape{{1, 1}, {1, 1}}, Perimeter{{0, 0}, {0, 2}, {2, 2}, {2, 0}}},
	// S
	{Shape{{0, 1, 1}, {1, 1}}, Perimeter{{1, 0}, {1, 1}, {0, 1}, {0, 2}, {2, 2}, {2, 1}, {3, 1}, {3, 0}}},
	{Shape{{1}, {1, 1}, {0, 1}}, Perimeter{{0, 0}, {0, 2}, {1, 2}, {1, 3}, {2, 3}, {2, 1}, {1, 1}, {1, 0}}},
	// T
	{Shape{{1, 1, 1}, {0, 1}}, Perimeter{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}, {2, 1}, {3, 1}, {3, 0}}},
	{Shape{{0, 1}, {1, 1}, {0, 1}}, Perimeter{{1, 0}, {1, 1}, {0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}, {2, 0}}},
	{Shape{{0, 1}, {1, 1, 1}}, Perimeter{{1, 0}, {1, 1}, {0, 1}, {0, 2}, {3, 2}, {3, 1}, {2, 1}, {2, 0}}},
	{Shape{{1}, {1, 1}, {1}}, Perimeter{{0, 0}, {0, 3}, {1, 3}, {1, 2}, {2, 2}, {2, 1}, {1, 1}, {1, 0}}},
	// Z
	{Shape{{1, 1}, {0, 1, 1}}, Perimeter{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {3, 2}, {3, 1}, {2, 1}, {2, 0}}},
	{Shape{{0, 1}, {1, 1}, {1}}, Perimeter{{1, 0}, {1, 1}, {0, 1}, {0, 3}, {1, 3}, {1, 2}, {2, 2}, {2, 0}}},
}

// outlines maps a packed mask key to its perimeter.
var outlines = buildOutlines(outlineEntries)

func buildOutlines(entries []outlineEntry) *intmap.Map[uint32, Perimeter] {
	m := intmap.New[uint32, Perimeter](len(entries))
	for _, e := range entries {
		key, ok := maskKey(e.mask)
		if !ok {
			panic("outline mask does not pack: " + e.mask.String())
		}
		m.Put(key, e.outline)
	}
	return m
}

const (
	maxKeyRows    = 4
	maxKeyRowLen  = 4
	keyRowBits    = 7
	keyHeaderBits = 3
)

// maskKey packs a shape's binary structure into a uint32: three bits of row count, then
// per row three bits of length and four bits of occupied cells. Two shapes share a key
// exactly when they have the same rows, the same row lengths and the same occupied
// cells. Shapes larger than 4x4 do not pack.
func maskKey(s Shape) (uint32, bool) {
	if len(s) > maxKeyRows {
		return 0, false
	}
	key := uint32(len(s))
	for i, row := range s {
		if len(row) > maxKeyRowLen {
			return 0, false
		}
		bits := uint32(len(row)) << 4
		for j, c := range row {
			if c != Empty {
				bits |= 1 << j
			}
		}
		key |= bits << (keyHeaderBits + keyRowBits*i)
	}
	return key, true
}

// PerimeterFor looks up the outline of a shape by its exact binary structure. A shape
// with no table entry yields an empty perimeter and a logged warning; callers skip the
// outline in that case.
func PerimeterFor(s Shape) Perimeter {
	if p, ok := lookupPerimeter(s); ok {
		return p
	}
	log.WithFields(log.Fields{
		"shape":  s.Mask().String(),
		"blocks": s.Blocks(),
	}).Warn("no perimeter for shape")
	return Perimeter{}
}

func lookupPerimeter(s Shape) (Perimeter, bool) {
	key, ok := maskKey(s)
	if !ok {
		return nil, false
	}
	p, ok := outlines.Get(key)
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}
