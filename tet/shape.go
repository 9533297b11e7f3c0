package tet

import (
	"strconv"
	"strings"
)

// Color is the value stored in a board or shape cell. Zero is empty, 1..7 are the
// seven piece colors.
type Color int

const (
	Empty Color = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
)

// Position is the board offset of a shape's top-left cell.
type Position struct {
	Row, Col int
}

// Shape is a row-major cell matrix local to a piece. Rows may be ragged: catalog shapes
// omit trailing empty cells, so [[3,3,3],[3]] is a valid L.
type Shape [][]Color

// Clone returns a deep copy that shares no backing arrays with s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = make([]Color, len(row))
		copy(out[i], row)
	}
	return out
}

// Blocks counts the non-empty cells.
func (s Shape) Blocks() int {
	n := 0
	for _, row := range s {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// Mask returns a copy with every non-empty cell set to 1.
func (s Shape) Mask() Shape {
	out := s.Clone()
	for _, row := range out {
		for j, c := range row {
			if c != Empty {
				row[j] = 1
			}
		}
	}
	return out
}

// Trim returns a copy with trailing empty cells removed from every row.
func (s Shape) Trim() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		end := len(row)
		for end > 0 && row[end-1] == Empty {
			end--
		}
		out[i] = make([]Color, end)
		copy(out[i], row[:end])
	}
	return out
}

// Equal reports exact structural equality, row lengths included.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Each calls fn for every non-empty cell with its local row and column.
func (s Shape) Each(fn func(row, col int, c Color)) {
	for i, row := range s {
		for j, c := range row {
			if c != Empty {
				fn(i, j, c)
			}
		}
	}
}

func (s Shape) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for j, c := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(c)))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
