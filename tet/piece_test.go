package tet_test

import (
	"testing"

	"github.com/plus3/tetfall/tet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPiece(t *testing.T) {
	p := tet.NewPiece(tet.TypeT)

	assert.Equal(t, tet.TypeT, p.Type())
	assert.Equal(t, 0, p.Rotation())
	assert.Equal(t, tet.Position{Row: 0, Col: 4}, p.Position())
	assert.True(t, p.Shape().Equal(tet.ShapeFor(tet.TypeT, 0)))
	assert.NotEmpty(t, p.Perimeter())
	assert.False(t, p.Fragment())
}

func TestNewPieceUnknownTypeIsInert(t *testing.T) {
	p := tet.NewPiece(tet.Type(42))
	assert.Empty(t, p.Shape())
	assert.Empty(t, p.Perimeter())

	b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
	assert.False(t, p.Rotate(b))
}

func TestNewFragmentTrimsShape(t *testing.T) {
	f := tet.NewFragment(tet.Shape{{2, 0}, {2, 2}}, tet.Position{Row: 3, Col: 1})

	assert.True(t, f.Fragment())
	assert.Equal(t, tet.TypeFragment, f.Type())
	assert.True(t, f.Shape().Equal(tet.Shape{{2}, {2, 2}}))
	assert.NotEmpty(t, f.Perimeter())
}

func TestPieceShapeIsCopy(t *testing.T) {
	p := tet.NewPiece(tet.TypeO)
	s := p.Shape()
	s[0][0] = tet.Empty
	assert.Equal(t, 4, p.Shape().Blocks())
}

func TestPieceRotate(t *testing.T) {
	b := tet.NewBoard(tet.BoardRows, tet.BoardCols)

	t.Run("cycles through every orientation", func(t *testing.T) {
		p := tet.NewPieceAt(tet.TypeJ, 0, tet.Position{Row: 5, Col: 4})
		for want := 1; want <= 4; want++ {
			require.True(t, p.Rotate(b))
			assert.Equal(t, want%4, p.Rotation())
			assert.True(t, p.Shape().Equal(tet.ShapeFor(tet.TypeJ, want)))
			assert.NotEmpty(t, p.Perimeter())
		}
	})

	t.Run("two orientation pieces alternate", func(t *testing.T) {
		p := tet.NewPieceAt(tet.TypeI, 0, tet.Position{Row: 5, Col: 4})
		require.True(t, p.Rotate(b))
		assert.True(t, p.Shape().Equal(tet.Shape{{1}, {1}, {1}, {1}}))
		require.True(t, p.Rotate(b))
		assert.True(t, p.Shape().Equal(tet.Shape{{1, 1, 1, 1}}))
	})

	t.Run("fragments never rotate", func(t *testing.T) {
		f := tet.NewFragment(tet.Shape{{3, 3}}, tet.Position{Row: 5, Col: 4})
		assert.False(t, f.Rotate(b))
		assert.True(t, f.Shape().Equal(tet.Shape{{3, 3}}))
	})
}

func TestPieceRotateRejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *tet.Board)
		piece *tet.Piece
	}{
		{
			name:  "left wall",
			piece: tet.NewPieceAt(tet.TypeJ, 0, tet.Position{Row: 5, Col: -1}),
		},
		{
			name:  "right wall",
			piece: tet.NewPieceAt(tet.TypeI, 1, tet.Position{Row: 5, Col: 9}),
		},
		{
			name:  "floor",
			piece: tet.NewPieceAt(tet.TypeI, 0, tet.Position{Row: 15, Col: 3}),
		},
		{
			name: "landed cell",
			setup: func(b *tet.Board) {
				b.Set(6, 5, tet.Red)
			},
			piece: tet.NewPieceAt(tet.TypeT, 0, tet.Position{Row: 5, Col: 4}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
			if tt.setup != nil {
				tt.setup(b)
			}
			p := tt.piece
			before := p.Shape()
			rotation := p.Rotation()

			assert.False(t, p.Rotate(b))
			assert.True(t, p.Shape().Equal(before))
			assert.Equal(t, rotation, p.Rotation())
		})
	}
}

func TestPieceSideMoves(t *testing.T) {
	t.Run("open space", func(t *testing.T) {
		b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
		p := tet.NewPiece(tet.TypeO)

		require.True(t, p.MoveLeft(b))
		assert.Equal(t, tet.Position{Row: 0, Col: 3}, p.Position())
		require.True(t, p.MoveRight(b))
		require.True(t, p.MoveRight(b))
		assert.Equal(t, tet.Position{Row: 0, Col: 5}, p.Position())
	})

	t.Run("left wall", func(t *testing.T) {
		b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
		p := tet.NewPieceAt(tet.TypeO, 0, tet.Position{Row: 3, Col: 0})
		assert.False(t, p.MoveLeft(b))
		assert.Equal(t, tet.Position{Row: 3, Col: 0}, p.Position())
	})

	t.Run("right wall", func(t *testing.T) {
		b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
		p := tet.NewPieceAt(tet.TypeI, 0, tet.Position{Row: 3, Col: 6})
		assert.False(t, p.MoveRight(b))
		assert.Equal(t, tet.Position{Row: 3, Col: 6}, p.Position())
	})

	t.Run("occupied cell", func(t *testing.T) {
		b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
		b.Set(4, 3, tet.Blue)
		p := tet.NewPieceAt(tet.TypeO, 0, tet.Position{Row: 3, Col: 4})
		assert.False(t, p.MoveLeft(b))
		assert.Equal(t, tet.Position{Row: 3, Col: 4}, p.Position())
		assert.True(t, p.MoveRight(b))
	})
}
