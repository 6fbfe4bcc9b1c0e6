// Package board owns the square-to-piece mapping that serves as both the
// initial layout and the live mutable game state.
package board

import (
	"strings"

	"github.com/CASCAD1AN/basic-chess-game/internal/core"
	"github.com/CASCAD1AN/basic-chess-game/internal/piece"
)

// Board maps occupied squares to pieces. An absent key is an empty square.
// Invariant: a piece's stored position always matches the key it is filed
// under, and at most one piece occupies a square.
type Board struct {
	squares map[core.Square]piece.Piece
}

// New builds a board populated with the starting layout.
func New() *Board {
	b := NewEmpty()
	b.startingLayout()
	return b
}

// NewEmpty builds a board with no pieces, for custom positions.
func NewEmpty() *Board {
	return &Board{squares: make(map[core.Square]piece.Piece, 32)}
}

// startingLayout places all 32 pieces. Kept as a single function so the
// static template stays auditable apart from later mutation.
func (b *Board) startingLayout() {
	place := func(k piece.Kind, c core.Color, squares ...string) {
		for _, s := range squares {
			b.Spawn(k, c, core.MustSquare(s))
		}
	}

	place(piece.Rook, core.Black, "a8", "h8")
	place(piece.Knight, core.Black, "b8", "g8")
	place(piece.Bishop, core.Black, "c8", "f8")
	place(piece.King, core.Black, "d8")
	place(piece.Queen, core.Black, "e8")
	place(piece.Pawn, core.Black, "a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7")

	place(piece.Pawn, core.White, "a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2")
	place(piece.Rook, core.White, "a1", "h1")
	place(piece.Knight, core.White, "b1", "g1")
	place(piece.Bishop, core.White, "c1", "f1")
	place(piece.Queen, core.White, "d1")
	place(piece.King, core.White, "e1")
}

// Spawn constructs a piece bound to this board and installs it.
func (b *Board) Spawn(k piece.Kind, c core.Color, sq core.Square) piece.Piece {
	p := piece.New(k, c, sq, b)
	b.squares[sq] = p
	return p
}

// PieceAt returns the occupying piece, or nil for an empty square.
func (b *Board) PieceAt(sq core.Square) piece.Piece {
	return b.squares[sq]
}

// PieceAtNotation resolves "e2"-style notation before lookup.
func (b *Board) PieceAtNotation(s string) (piece.Piece, error) {
	sq, err := core.ParseSquare(s)
	if err != nil {
		return nil, err
	}
	return b.PieceAt(sq), nil
}

// IsSquareOpen reports whether no piece occupies the square. Squares outside
// the mapping, including out-of-grid ones, read as open.
func (b *Board) IsSquareOpen(sq core.Square) bool {
	return b.squares[sq] == nil
}

// IsOpponent reports whether the square holds a piece of the other color.
func (b *Board) IsOpponent(sq core.Square, c core.Color) bool {
	p := b.squares[sq]
	return p != nil && p.Color() != c
}

// Move relocates the piece on from to to, returning the captured piece if the
// destination was occupied. The origin entry is removed, the destination
// overwritten, and the piece's stored position updated in the same step.
func (b *Board) Move(from, to core.Square) piece.Piece {
	p := b.squares[from]
	if p == nil {
		return nil
	}
	captured := b.squares[to]
	delete(b.squares, from)
	b.squares[to] = p
	p.MoveTo(to)
	return captured
}

// PieceCount returns the number of pieces on the board.
func (b *Board) PieceCount() int {
	return len(b.squares)
}

// ToText renders the board as plain text with Unicode piece glyphs, file
// labels above and below, rank labels, and the home-rank group labels.
func (b *Board) ToText() string {
	var sb strings.Builder
	sb.WriteString("   A B C D E F G H\n")
	for row := 0; row < 8; row++ {
		rank := 8 - row
		sb.WriteByte(byte('0' + rank))
		sb.WriteString("| ")
		for col := 0; col < 8; col++ {
			p := b.squares[core.Square{Col: col, Row: row}]
			if p == nil {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(p.Glyph())
			}
			sb.WriteByte(' ')
		}
		sb.WriteString("| ")
		sb.WriteString(rankLabel(rank))
		sb.WriteByte('\n')
	}
	sb.WriteString("   A B C D E F G H\n")
	return sb.String()
}

func rankLabel(rank int) string {
	switch {
	case rank == 8:
		return "Black Home Rank"
	case rank == 1:
		return "White Home Rank"
	case rank >= 5:
		return "-"
	default:
		return "+"
	}
}
