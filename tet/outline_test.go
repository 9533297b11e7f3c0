package tet_test

import (
	"testing"

	"github.com/plus3/tetfall/tet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutlinesRecordLandedPieces(t *testing.T) {
	g := newSeededGame()

	g.Spawn(tet.TypeO)
	g.HardDrop()
	g.Spawn(tet.TypeI)
	g.HardDrop()

	outlines := g.Outlines()
	require.Len(t, outlines, 2)

	assert.Equal(t, tet.TypeO, outlines[0].Type)
	assert.Equal(t, tet.Position{Row: 14, Col: 4}, outlines[0].Position)
	assert.Equal(t, tet.PerimeterFor(tet.ShapeFor(tet.TypeO, 0)), outlines[0].Perimeter)

	assert.Equal(t, tet.TypeI, outlines[1].Type)
	assert.Equal(t, tet.Position{Row: 13, Col: 4}, outlines[1].Position)
	assert.NotEqual(t, outlines[0].ID, outlines[1].ID)
	assert.Equal(t, outlines[1].ID, g.Board().Owner(13, 7))
}

func TestOutlinesFollowRemovedRows(t *testing.T) {
	b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
	b.SetRow(15, 5, 5, 5, 5, 5, 5, 5, 5)
	g := newSeededGame(tet.WithBoard(b))

	g.Spawn(tet.TypeO)
	for g.MoveLeft() {
	}
	g.HardDrop()
	require.Equal(t, tet.Position{Row: 13, Col: 0}, g.Outlines()[0].Position)

	g.Place(tet.NewFragment(tet.Shape{{6, 6}}, tet.Position{Row: 0, Col: 8}))
	g.HardDrop()
	require.Equal(t, 1, g.Lines())

	outlines := g.Outlines()
	require.Len(t, outlines, 1, "the fragment's only row was cleared")
	assert.Equal(t, tet.TypeO, outlines[0].Type)
	assert.Equal(t, tet.Position{Row: 14, Col: 0}, outlines[0].Position)
	assert.Equal(t, tet.Yellow, b.At(14, 0))
	assert.Equal(t, tet.Yellow, b.At(15, 1))
}

func TestOutlinesReplaceSplitPieces(t *testing.T) {
	b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
	b.SetRow(15, 1, 1, 1, 1, 0, 0, 1, 1, 1, 1)
	g := newSeededGame(tet.WithBoard(b))

	g.Spawn(tet.TypeO)
	g.HardDrop()

	outlines := g.Outlines()
	require.Len(t, outlines, 1)
	assert.Equal(t, tet.TypeFragment, outlines[0].Type)
	assert.Equal(t, tet.Position{Row: 15, Col: 4}, outlines[0].Position)
	assert.Equal(t, tet.PerimeterFor(tet.Shape{{1, 1}}), outlines[0].Perimeter)
}

func TestOutlinesDropUnitsCutByClear(t *testing.T) {
	b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
	b.SetRow(15, 5, 5, 5, 5, 5, 5, 5, 5)
	g := newSeededGame(tet.WithBoard(b))

	g.Place(tet.NewFragment(tet.Shape{{6, 6}, {6, 6}}, tet.Position{Row: 0, Col: 8}))
	g.HardDrop()
	require.Equal(t, 1, g.Lines())

	// The top half of the square dropped into row 15; the old outline no longer fits it.
	assert.Equal(t, tet.Purple, b.At(15, 8))
	assert.Equal(t, tet.Purple, b.At(15, 9))
	assert.Empty(t, g.Outlines())
}

func TestOutlinesOfSplitTetrominoFollowFragments(t *testing.T) {
	b := tet.NewBoard(tet.BoardRows, tet.BoardCols)
	b.SetRow(15, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	g := newSeededGame(tet.WithBoard(b))

	dropVerticalI(t, g, 9)

	outlines := g.Outlines()
	require.Len(t, outlines, 1)
	assert.Equal(t, tet.TypeFragment, outlines[0].Type)
	assert.Equal(t, tet.Position{Row: 13, Col: 9}, outlines[0].Position)
	assert.Equal(t, tet.PerimeterFor(tet.Shape{{1}, {1}, {1}}), outlines[0].Perimeter)
}
