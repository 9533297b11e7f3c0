package tet

// SpawnPosition is where a new tetromino enters the board.
var SpawnPosition = Position{Row: 0, Col: 4}

// Piece is a falling or landed unit: a tetromino from the catalog or a fragment split
// off after a line clear.
type Piece struct {
	typ       Type
	rotation  int
	pos       Position
	shape     Shape
	perimeter Perimeter
	owner     uint32
}

// NewPiece creates a tetromino of type t at the spawn position in rotation 0. A type
// without catalog entries produces an empty, inert piece.
func NewPiece(t Type) *Piece {
	shape := ShapeFor(t, 0)
	p := &Piece{
		typ:   t,
		pos:   SpawnPosition,
		shape: shape,
	}
	if shape.Blocks() > 0 {
		p.perimeter = PerimeterFor(shape)
	}
	return p
}

// NewPieceAt creates a tetromino in the given orientation at an arbitrary position.
func NewPieceAt(t Type, rotation int, pos Position) *Piece {
	p := NewPiece(t)
	if r := Rotations(t); r > 0 {
		p.rotation = ((rotation % 4) + 4) % 4
		p.shape = ShapeFor(t, p.rotation)
		p.perimeter = PerimeterFor(p.shape)
	}
	p.pos = pos
	return p
}

// NewFragment wraps an arbitrary shape positioned on the board into a fragment piece.
// The shape is copied and its rows trimmed of trailing empty cells before the
// perimeter lookup; the perimeter is empty when the table has no entry for it.
func NewFragment(shape Shape, pos Position) *Piece {
	trimmed := shape.Trim()
	return &Piece{
		typ:       TypeFragment,
		pos:       pos,
		shape:     trimmed,
		perimeter: PerimeterFor(trimmed),
	}
}

// Type returns the tetromino type, or TypeFragment.
func (p *Piece) Type() Type { return p.typ }

// Rotation returns the rotation index in [0, 3].
func (p *Piece) Rotation() int { return p.rotation }

// Position returns the board offset of the shape's top-left cell.
func (p *Piece) Position() Position { return p.pos }

// Shape returns a copy of the piece's local matrix.
func (p *Piece) Shape() Shape { return p.shape.Clone() }

// Perimeter returns a copy of the outline; empty when no outline is known.
func (p *Piece) Perimeter() Perimeter { return p.perimeter.Clone() }

// Fragment reports whether the piece was split off by a line clear.
func (p *Piece) Fragment() bool { return p.typ == TypeFragment }

// Rotate turns the piece clockwise in place at its current position. There is no
// wall kick: if any cell of the next orientation would leave the board or overlap a
// landed cell the piece is left unchanged and Rotate returns false.
func (p *Piece) Rotate(b *Board) bool {
	next := (p.rotation + 1) % 4
	candidate := ShapeFor(p.typ, next)
	if candidate.Blocks() == 0 {
		return false
	}
	if !b.Fits(candidate, p.pos) {
		return false
	}
	p.shape = candidate
	p.rotation = next
	p.perimeter = PerimeterFor(candidate)
	return true
}

// MoveLeft shifts the piece one column left unless that collides.
func (p *Piece) MoveLeft(b *Board) bool {
	return p.shift(b, -1)
}

// MoveRight shifts the piece one column right unless that collides.
func (p *Piece) MoveRight(b *Board) bool {
	return p.shift(b, 1)
}

func (p *Piece) shift(b *Board, dc int) bool {
	candidate := Position{Row: p.pos.Row, Col: p.pos.Col + dc}
	if !b.Fits(p.shape, candidate) {
		return false
	}
	p.pos = candidate
	return true
}

// step moves the piece down one row if the space below is free.
func (p *Piece) step(b *Board) bool {
	candidate := Position{Row: p.pos.Row + 1, Col: p.pos.Col}
	if !b.Fits(p.shape, candidate) {
		return false
	}
	p.pos = candidate
	return true
}

// Blocked reports whether the piece overlaps landed cells or the board edges where it
// currently sits.
func (p *Piece) Blocked(b *Board) bool {
	return !b.Fits(p.shape, p.pos)
}
