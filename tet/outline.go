package tet

import "github.com/kamstrup/intmap"

// Outline is the identity a landed unit keeps for outline rendering: the position it
// landed at and the perimeter it had. It is cosmetic; the board cells alone decide
// gameplay.
type Outline struct {
	ID        uint32
	Type      Type
	Position  Position
	Perimeter Perimeter
}

// ledger keeps the outlines of landed units keyed by the owner id stamped on their
// board cells.
type ledger struct {
	next    uint32
	order   []uint32
	entries *intmap.Map[uint32, *entry]
}

type entry struct {
	Outline
	rows int
}

// bottom is the last board row the unit covers.
func (e *entry) bottom() int {
	return e.Position.Row + e.rows - 1
}

func newLedger() *ledger {
	return &ledger{
		entries: intmap.New[uint32, *entry](64),
	}
}

func (l *ledger) record(p *Piece) uint32 {
	l.next++
	l.entries.Put(l.next, &entry{
		Outline: Outline{
			ID:        l.next,
			Type:      p.typ,
			Position:  p.pos,
			Perimeter: p.perimeter.Clone(),
		},
		rows: len(p.shape),
	})
	l.order = append(l.order, l.next)
	return l.next
}

// rowRemoved moves every outline lying entirely above the removed row down by one,
// following the rows that shifted. A unit the row cut through no longer matches its
// outline, so the outline is dropped.
func (l *ledger) rowRemoved(row int) {
	kept := l.order[:0]
	for _, id := range l.order {
		e, ok := l.entries.Get(id)
		if !ok {
			continue
		}
		switch {
		case e.bottom() < row:
			e.Position.Row++
		case e.Position.Row <= row:
			l.entries.Del(id)
			continue
		}
		kept = append(kept, id)
	}
	l.order = kept
}

// prune forgets outlines whose cells have all left the board.
func (l *ledger) prune(b *Board) {
	live := make(map[uint32]struct{}, len(l.order))
	for r := range b.rows {
		for _, id := range b.owners[r] {
			if id != 0 {
				live[id] = struct{}{}
			}
		}
	}
	kept := l.order[:0]
	for _, id := range l.order {
		if _, ok := live[id]; ok {
			kept = append(kept, id)
			continue
		}
		l.entries.Del(id)
	}
	l.order = kept
}

// Outlines returns the outlines of landed units that still own at least one board
// cell, in landing order.
func (g *Game) Outlines() []Outline {
	g.ledger.prune(g.board)
	out := make([]Outline, 0, len(g.ledger.order))
	for _, id := range g.ledger.order {
		if e, ok := g.ledger.entries.Get(id); ok {
			c := e.Outline
			c.Perimeter = e.Perimeter.Clone()
			out = append(out, c)
		}
	}
	return out
}
