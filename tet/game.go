package tet

import (
	"math/rand/v2"

	log "github.com/sirupsen/logrus"
)

// Stats counts what happened over a game.
type Stats struct {
	Spawned       int
	Landed        int
	Lines         int
	Fragments     int
	OutlineMisses int
}

// Landing describes the most recent landing of a non-nested unit: the piece that came
// to rest, the rows it completed and how many fragments the clear produced.
type Landing struct {
	Type      Type
	Position  Position
	Removed   []int
	SeedRow   int
	Fragments int
}

// Game owns the board and the active piece. All mutation happens through its methods,
// which are not safe for concurrent use; the driver serializes calls.
type Game struct {
	board  *Board
	active *Piece
	rng    *rand.Rand
	ledger *ledger
	over   bool
	stats  Stats
	last   Landing
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used to pick spawn types.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithBoard starts the game on a prepared board instead of an empty 16x10 one.
func WithBoard(b *Board) Option {
	return func(g *Game) {
		g.board = b
	}
}

// NewGame creates a game with an empty board and no active piece.
func NewGame(opts ...Option) *Game {
	g := &Game{
		ledger: newLedger(),
		last:   Landing{SeedRow: -1},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.board == nil {
		g.board = NewBoard(BoardRows, BoardCols)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return g
}

// Board returns the landed grid.
func (g *Game) Board() *Board { return g.board }

// Active returns the piece under player control, or nil between landing and the next
// spawn.
func (g *Game) Active() *Piece { return g.active }

// Over reports whether a spawn was blocked by landed cells.
func (g *Game) Over() bool { return g.over }

// Lines returns the number of rows cleared so far.
func (g *Game) Lines() int { return g.stats.Lines }

// Stats returns a snapshot of the game counters.
func (g *Game) Stats() Stats { return g.stats }

// LastLanding returns the record of the latest player piece landing.
func (g *Game) LastLanding() Landing {
	l := g.last
	l.Removed = append([]int(nil), g.last.Removed...)
	return l
}

// Spawn creates the next active piece. Without an argument the type is drawn uniformly
// from the seven tetrominoes. If the new piece overlaps landed cells the game is over
// and no piece becomes active.
func (g *Game) Spawn(t ...Type) *Piece {
	if g.over {
		return nil
	}
	typ := Type(g.rng.IntN(NumTypes))
	if len(t) > 0 {
		typ = t[0]
	}
	p := NewPiece(typ)
	g.stats.Spawned++
	if p.Blocked(g.board) {
		g.over = true
		g.active = nil
		log.WithFields(log.Fields{
			"type":  typ.String(),
			"lines": g.stats.Lines,
		}).Info("spawn blocked, game over")
		return nil
	}
	g.active = p
	return p
}

// Place makes p the active piece as is.
func (g *Game) Place(p *Piece) {
	g.active = p
}

// MoveLeft shifts the active piece one column left if it fits.
func (g *Game) MoveLeft() bool {
	if g.active == nil {
		return false
	}
	return g.active.MoveLeft(g.board)
}

// MoveRight shifts the active piece one column right if it fits.
func (g *Game) MoveRight() bool {
	if g.active == nil {
		return false
	}
	return g.active.MoveRight(g.board)
}

// Rotate turns the active piece clockwise if the next orientation fits.
func (g *Game) Rotate() bool {
	if g.active == nil {
		return false
	}
	return g.active.Rotate(g.board)
}

// MoveDown advances the active piece one row. It returns true while the piece is still
// falling. On false the piece has landed: its cells are on the board, full rows are
// cleared, fragments have fallen, and no piece is active until the next Spawn.
func (g *Game) MoveDown() bool {
	if g.active == nil {
		return false
	}
	if g.Fall(g.active) {
		return true
	}
	g.active = nil
	return false
}

// HardDrop lets the active piece fall until it lands and returns how many rows it
// travelled.
func (g *Game) HardDrop() int {
	p := g.active
	if p == nil {
		return 0
	}
	n := 0
	for g.Fall(p) {
		n++
	}
	g.active = nil
	return n
}

// Fall moves any piece down one row, or lands it when the row below is blocked. A
// piece without cells lands at once without touching the board.
func (g *Game) Fall(p *Piece) bool {
	if p.shape.Blocks() == 0 {
		g.stats.Landed++
		return false
	}
	if p.step(g.board) {
		return true
	}
	g.land(p)
	return false
}
