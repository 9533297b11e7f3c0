package tet

import log "github.com/sirupsen/logrus"

// FloodFillLimit caps the queue pops spent on a single clump. A clump that hits the cap
// is emitted with whatever it collected.
const FloodFillLimit = 1000

// ClumpNode is one cell visited by the flood fill.
type ClumpNode struct {
	Row, Col int
	Color    Color
}

// Clump accumulates the cells of one connected same-colored region.
type Clump struct {
	nodes []ClumpNode
}

// Add appends a visited cell.
func (c *Clump) Add(n ClumpNode) {
	c.nodes = append(c.nodes, n)
}

// Len returns the number of collected cells.
func (c *Clump) Len() int { return len(c.nodes) }

// Shape converts the clump into its minimal bounding-box matrix and the board
// position of the box's top-left cell.
func (c *Clump) Shape() (Shape, Position) {
	if len(c.nodes) == 0 {
		return Shape{}, Position{}
	}
	top, left := c.nodes[0].Row, c.nodes[0].Col
	bottom, right := top, left
	for _, n := range c.nodes[1:] {
		top, bottom = min(top, n.Row), max(bottom, n.Row)
		left, right = min(left, n.Col), max(right, n.Col)
	}
	shape := make(Shape, bottom-top+1)
	for i := range shape {
		shape[i] = make([]Color, right-left+1)
	}
	for _, n := range c.nodes {
		shape[n.Row-top][n.Col-left] = n.Color
	}
	return shape, Position{Row: top, Col: left}
}

// floodFill collects the 4-connected region of cells sharing the color at (row, col),
// clearing each cell as it is claimed so no cell ends up in two clumps. Cells owned by
// a unit in settled were already claimed and are never collected.
func (g *Game) floodFill(row, col int, settled map[uint32]struct{}) *Clump {
	clump := &Clump{}
	color := g.board.At(row, col)
	if color == Empty {
		return clump
	}
	claimed := func(r, c int) bool {
		_, ok := settled[g.board.Owner(r, c)]
		return ok
	}

	queue := []ClumpNode{{Row: row, Col: col, Color: color}}
	pops := 0
	for len(queue) > 0 && pops < FloodFillLimit {
		n := queue[0]
		queue = queue[1:]
		pops++

		if g.board.At(n.Row, n.Col) != color || claimed(n.Row, n.Col) {
			continue
		}
		clump.Add(n)
		g.board.vacate(n.Row, n.Col)

		for _, d := range [...]Position{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			r, c := n.Row+d.Row, n.Col+d.Col
			if g.board.InBounds(r, c) {
				queue = append(queue, ClumpNode{Row: r, Col: c, Color: color})
			}
		}
	}
	if len(queue) > 0 {
		log.WithFields(log.Fields{
			"row":   row,
			"col":   col,
			"cells": clump.Len(),
		}).Debug("flood fill capped")
	}
	return clump
}

// fragment splits the landed cells touching the seed row into connected clumps, left
// to right. Each clump becomes a fragment piece that falls until it lands before the
// next column is examined. A fragment that comes to rest on the seed row is not
// split again. It returns the number of fragments produced.
func (g *Game) fragment(seed int) int {
	count := 0
	settled := make(map[uint32]struct{})
	for col := range g.board.cols {
		if g.board.At(seed, col) == Empty {
			continue
		}
		clump := g.floodFill(seed, col, settled)
		if clump.Len() == 0 {
			continue
		}
		shape, pos := clump.Shape()
		frag := NewFragment(shape, pos)
		if len(frag.perimeter) == 0 {
			g.stats.OutlineMisses++
		}
		g.stats.Fragments++
		count++
		for g.Fall(frag) {
		}
		settled[frag.owner] = struct{}{}
	}
	return count
}
