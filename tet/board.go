package tet

// Default board dimensions. The display keeps a 1.6 height to width ratio.
const (
	BoardCols = 10
	BoardRows = 16
)

// Collision describes the first rule a shape placement violates.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
	CollisionOccupied
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left of board"
	case CollisionRight:
		return "right of board"
	case CollisionTop:
		return "above board"
	case CollisionBottom:
		return "below board"
	case CollisionOccupied:
		return "space taken"
	}
	return "unknown"
}

// Board is the fixed-size grid of landed cells. Only cell values change; the
// dimensions are fixed at construction. Each cell also records the id of the landed
// unit it came from, which only the outline ledger reads.
type Board struct {
	rows, cols int
	cells      [][]Color
	owners     [][]uint32
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	b := &Board{
		rows:   rows,
		cols:   cols,
		cells:  make([][]Color, rows),
		owners: make([][]uint32, rows),
	}
	for r := range rows {
		b.cells[r] = make([]Color, cols)
		b.owners[r] = make([]uint32, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the color at (row, col), or Empty off the board.
func (b *Board) At(row, col int) Color {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

// Set writes a color without owner information. Intended for board setup.
func (b *Board) Set(row, col int, c Color) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[row][col] = c
	b.owners[row][col] = 0
}

// SetRow overwrites a whole row from the left; missing trailing cells become Empty.
func (b *Board) SetRow(row int, colors ...Color) {
	for col := range b.cols {
		c := Empty
		if col < len(colors) {
			c = colors[col]
		}
		b.Set(row, col, c)
	}
}

// Cells returns a copy of the grid for rendering.
func (b *Board) Cells() [][]Color {
	out := make([][]Color, b.rows)
	for r, row := range b.cells {
		out[r] = make([]Color, b.cols)
		copy(out[r], row)
	}
	return out
}

// Owner returns the landed unit id recorded for a cell, 0 when none.
func (b *Board) Owner(row, col int) uint32 {
	if !b.InBounds(row, col) {
		return 0
	}
	return b.owners[row][col]
}

// Collide tests every non-empty cell of shape placed at pos against the board edges
// and the landed cells.
func (b *Board) Collide(shape Shape, pos Position) Collision {
	for i, row := range shape {
		for j, c := range row {
			if c == Empty {
				continue
			}
			r, col := pos.Row+i, pos.Col+j
			switch {
			case col < 0:
				return CollisionLeft
			case col >= b.cols:
				return CollisionRight
			case r >= b.rows:
				return CollisionBottom
			case r < 0:
				return CollisionTop
			case b.cells[r][col] != Empty:
				return CollisionOccupied
			}
		}
	}
	return CollisionNone
}

// Fits reports whether shape can be placed at pos.
func (b *Board) Fits(shape Shape, pos Position) bool {
	return b.Collide(shape, pos) == CollisionNone
}

// merge writes the non-empty cells of shape at pos, tagging them with owner. Cells that
// fall off the board are dropped.
func (b *Board) merge(shape Shape, pos Position, owner uint32) {
	shape.Each(func(i, j int, c Color) {
		r, col := pos.Row+i, pos.Col+j
		if !b.InBounds(r, col) {
			return
		}
		b.cells[r][col] = c
		b.owners[r][col] = owner
	})
}

// vacate empties a cell and forgets its owner.
func (b *Board) vacate(row, col int) {
	b.cells[row][col] = Empty
	b.owners[row][col] = 0
}

// Filled reports whether every cell of the row is non-empty.
func (b *Board) Filled(row int) bool {
	if row < 0 || row >= b.rows {
		return false
	}
	for _, c := range b.cells[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// RemoveRow deletes the row and inserts an empty row at the top, so every row above
// the removed one shifts down by one and the row count is unchanged.
func (b *Board) RemoveRow(row int) {
	if row < 0 || row >= b.rows {
		return
	}
	cells, owners := b.cells[row], b.owners[row]
	copy(b.cells[1:row+1], b.cells[:row])
	copy(b.owners[1:row+1], b.owners[:row])
	clear(cells)
	clear(owners)
	b.cells[0], b.owners[0] = cells, owners
}
