package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tetfall/tet"
)

var (
	panelColor = color.RGBA{20, 20, 24, 255}
	gridColor  = color.RGBA{40, 40, 48, 255}
)

// segment is one edge of an outline in screen pixels.
type segment struct {
	X0, Y0, X1, Y1 float32
}

// outlineSegments converts a perimeter anchored at pos into closed screen-space edges
// for a panel whose top-left corner is at (ox, oy).
func outlineSegments(pos tet.Position, p tet.Perimeter, block, ox, oy float32) []segment {
	if len(p) < 2 {
		return nil
	}
	at := func(pt tet.Point) (float32, float32) {
		return ox + float32(pos.Col+pt.X)*block, oy + float32(pos.Row+pt.Y)*block
	}

	segs := make([]segment, 0, len(p))
	for i := range p {
		x0, y0 := at(p[i])
		x1, y1 := at(p[(i+1)%len(p)])
		if x0 == x1 && y0 == y1 {
			continue
		}
		segs = append(segs, segment{x0, y0, x1, y1})
	}
	return segs
}

// outlineColor picks the stroke color for a unit. Fragments have no piece color and
// are drawn with the fallback.
func outlineColor(t tet.Type) color.Color {
	if !t.Valid() {
		return tet.Fallback
	}
	return tet.Palette(t.Color())
}

func drawPanel(screen *ebiten.Image, ox float32, b *tet.Board, block float32) {
	w, h := float32(b.Cols())*block, float32(b.Rows())*block
	vector.DrawFilledRect(screen, ox, 0, w, h, panelColor, false)
	for c := 1; c < b.Cols(); c++ {
		x := ox + float32(c)*block
		vector.StrokeLine(screen, x, 0, x, h, 1, gridColor, false)
	}
	for r := 1; r < b.Rows(); r++ {
		y := float32(r) * block
		vector.StrokeLine(screen, ox, y, ox+w, y, 1, gridColor, false)
	}
}

// drawCells paints the landed cells and the active piece.
func drawCells(screen *ebiten.Image, ox float32, g *tet.Game, block float32) {
	b := g.Board()
	for r := range b.Rows() {
		for c := range b.Cols() {
			if v := b.At(r, c); v != tet.Empty {
				fillBlock(screen, ox, r, c, v, block)
			}
		}
	}
	if p := g.Active(); p != nil {
		pos := p.Position()
		p.Shape().Each(func(r, c int, v tet.Color) {
			fillBlock(screen, ox, pos.Row+r, pos.Col+c, v, block)
		})
	}
}

func fillBlock(screen *ebiten.Image, ox float32, row, col int, c tet.Color, block float32) {
	vector.DrawFilledRect(screen, ox+float32(col)*block+1, float32(row)*block+1, block-2, block-2, tet.Palette(c), false)
}

// drawOutlines strokes the retained perimeter of every landed unit and the active piece.
func drawOutlines(screen *ebiten.Image, ox float32, g *tet.Game, block float32) {
	for _, o := range g.Outlines() {
		strokeOutline(screen, o.Position, o.Perimeter, outlineColor(o.Type), block, ox)
	}
	if p := g.Active(); p != nil {
		strokeOutline(screen, p.Position(), p.Perimeter(), outlineColor(p.Type()), block, ox)
	}
}

func strokeOutline(screen *ebiten.Image, pos tet.Position, p tet.Perimeter, clr color.Color, block, ox float32) {
	for _, s := range outlineSegments(pos, p, block, ox, 0) {
		vector.StrokeLine(screen, s.X0, s.Y0, s.X1, s.Y1, 2, clr, false)
	}
}
