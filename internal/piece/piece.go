// Package piece implements the six chess piece variants and their
// legal-destination computation. Pieces hold a non-owning read view of board
// occupancy and never mutate it.
package piece

import (
	"github.com/CASCAD1AN/basic-chess-game/internal/core"
)

// Kind tags the six piece variants.
type Kind int

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// BoardView is the read-only occupancy view a piece queries while computing
// destinations. The board owns the pieces; this reference never mutates.
type BoardView interface {
	// IsSquareOpen reports whether no piece occupies the square. Squares
	// outside the grid read as open; movement code bounds-checks first.
	IsSquareOpen(core.Square) bool
	// IsOpponent reports whether the square holds a piece of the other color.
	IsOpponent(core.Square, core.Color) bool
}

// Piece is the flat capability surface shared by all six variants.
type Piece interface {
	Kind() Kind
	Color() core.Color
	Position() core.Square
	// MoveTo updates the stored position after an accepted move. For pawns
	// this also permanently clears the initial double-step allowance.
	MoveTo(core.Square)
	Glyph() rune
	// Destinations computes the legal destination set for the current board
	// occupancy. Order is not significant; callers test membership only.
	Destinations() []core.Square
}

// New constructs a piece of the given kind bound to the board view.
func New(k Kind, c core.Color, pos core.Square, view BoardView) Piece {
	b := base{color: c, pos: pos, view: view}
	switch k {
	case Pawn:
		return &pawn{base: b, fresh: true}
	case Rook:
		return &rook{b}
	case Knight:
		return &knight{b}
	case Bishop:
		return &bishop{b}
	case Queen:
		return &queen{b}
	case King:
		return &king{b}
	default:
		return nil
	}
}

type base struct {
	color core.Color
	pos   core.Square
	view  BoardView
}

func (b *base) Color() core.Color     { return b.color }
func (b *base) Position() core.Square { return b.pos }
func (b *base) MoveTo(sq core.Square) { b.pos = sq }

// Direction tables shared by the sweep and step walkers.
var (
	orthogonals = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonals   = [][2]int{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}
	royals      = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightJumps = [][2]int{{2, 1}, {1, 2}, {-1, 2}, {-2, 1}, {-2, -1}, {-1, -2}, {1, -2}, {2, -1}}
)

// sweep scans each direction nearest-to-farthest, accumulating empty squares
// and stopping at the first occupied square. An opponent blocker is included
// as a capturing destination; a friendly blocker is not.
func (b *base) sweep(dirs [][2]int) []core.Square {
	var dst []core.Square
	for _, d := range dirs {
		for sq := b.pos.Offset(d[0], d[1]); sq.InBounds(); sq = sq.Offset(d[0], d[1]) {
			if b.view.IsSquareOpen(sq) {
				dst = append(dst, sq)
				continue
			}
			if b.view.IsOpponent(sq, b.color) {
				dst = append(dst, sq)
			}
			break
		}
	}
	return dst
}

// steps tries each fixed offset once; in-bounds squares that are empty or
// hold an opponent piece are legal.
func (b *base) steps(offsets [][2]int) []core.Square {
	var dst []core.Square
	for _, d := range offsets {
		sq := b.pos.Offset(d[0], d[1])
		if !sq.InBounds() {
			continue
		}
		if b.view.IsSquareOpen(sq) || b.view.IsOpponent(sq, b.color) {
			dst = append(dst, sq)
		}
	}
	return dst
}

type pawn struct {
	base
	fresh bool // still eligible for the initial double step
}

func (p *pawn) Kind() Kind { return Pawn }

func (p *pawn) MoveTo(sq core.Square) {
	p.base.MoveTo(sq)
	p.fresh = false
}

func (p *pawn) Destinations() []core.Square {
	var dst []core.Square
	dir := 1
	if p.color == core.Black {
		dir = -1
	}
	// White advances toward row 0, Black toward row 7.
	forward := p.pos.Offset(0, -dir)
	if forward.InBounds() {
		if p.view.IsSquareOpen(forward) {
			dst = append(dst, forward)
		}
		if p.fresh {
			// The double step checks only its destination; the jumped-over
			// square is deliberately left unchecked (see DESIGN.md).
			double := p.pos.Offset(0, -2*dir)
			if double.InBounds() && p.view.IsSquareOpen(double) {
				dst = append(dst, double)
			}
		}
		for _, dc := range [2]int{-1, 1} {
			capture := forward.Offset(dc, 0)
			if capture.InBounds() && p.view.IsOpponent(capture, p.color) {
				dst = append(dst, capture)
			}
		}
	}
	return dst
}

func (p *pawn) Glyph() rune { return glyph(Pawn, p.color) }

type rook struct{ base }

func (r *rook) Kind() Kind { return Rook }
func (r *rook) Destinations() []core.Square { return r.sweep(orthogonals) }
func (r *rook) Glyph() rune { return glyph(Rook, r.color) }

type knight struct{ base }

func (n *knight) Kind() Kind { return Knight }
func (n *knight) Destinations() []core.Square { return n.steps(knightJumps) }
func (n *knight) Glyph() rune { return glyph(Knight, n.color) }

type bishop struct{ base }

func (b *bishop) Kind() Kind { return Bishop }
func (b *bishop) Destinations() []core.Square { return b.sweep(diagonals) }
func (b *bishop) Glyph() rune { return glyph(Bishop, b.color) }

type queen struct{ base }

func (q *queen) Kind() Kind { return Queen }
func (q *queen) Destinations() []core.Square { return q.sweep(royals) }
func (q *queen) Glyph() rune { return glyph(Queen, q.color) }

type king struct{ base }

// The king has no notion of moving into attack; the only loss condition is
// literal capture.
func (k *king) Kind() Kind { return King }
func (k *king) Destinations() []core.Square { return k.steps(royals) }
func (k *king) Glyph() rune { return glyph(King, k.color) }

var whiteGlyphs = map[Kind]rune{
	Pawn:   '♙',
	Rook:   '♖',
	Knight: '♘',
	Bishop: '♗',
	Queen:  '♕',
	King:   '♔',
}

var blackGlyphs = map[Kind]rune{
	Pawn:   '♟',
	Rook:   '♜',
	Knight: '♞',
	Bishop: '♝',
	Queen:  '♛',
	King:   '♚',
}

func glyph(k Kind, c core.Color) rune {
	if c == core.White {
		return whiteGlyphs[k]
	}
	return blackGlyphs[k]
}
