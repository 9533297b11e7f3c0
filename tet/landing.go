package tet

import log "github.com/sirupsen/logrus"

// land merges p into the board where it stands and runs the landing sequence: full
// rows from the piece's top row down are removed, and if the piece was a tetromino the
// lowest removed row seeds fragmentation. Fragment landings clear rows but never
// fragment again.
func (g *Game) land(p *Piece) {
	p.owner = g.ledger.record(p)
	g.board.merge(p.shape, p.pos, p.owner)
	g.stats.Landed++

	landing := Landing{
		Type:     p.typ,
		Position: p.pos,
		SeedRow:  -1,
	}
	landing.Removed = g.clearRows(p.pos.Row)
	if n := len(landing.Removed); n > 0 && !p.Fragment() {
		landing.SeedRow = landing.Removed[n-1]
		landing.Fragments = g.fragment(landing.SeedRow)
	}

	log.WithFields(log.Fields{
		"type":      p.typ.String(),
		"row":       p.pos.Row,
		"col":       p.pos.Col,
		"removed":   len(landing.Removed),
		"fragments": landing.Fragments,
	}).Debug("piece landed")

	if !p.Fragment() {
		g.last = landing
	}
}

// clearRows scans from top to the bottom row removing every filled row. After a
// removal the same index holds the row that was above it and is checked again. The
// returned indices are in removal order, so the last one is the lowest removed row.
func (g *Game) clearRows(top int) []int {
	var removed []int
	row := max(top, 0)
	for row < g.board.rows {
		if !g.board.Filled(row) {
			row++
			continue
		}
		g.board.RemoveRow(row)
		g.ledger.rowRemoved(row)
		g.stats.Lines++
		removed = append(removed, row)
	}
	return removed
}
