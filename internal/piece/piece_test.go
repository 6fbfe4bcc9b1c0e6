package piece_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/CASCAD1AN/basic-chess-game/internal/board"
	"github.com/CASCAD1AN/basic-chess-game/internal/core"
	"github.com/CASCAD1AN/basic-chess-game/internal/piece"
)

var sortSquares = cmpopts.SortSlices(func(a, b core.Square) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
})

func squares(notations ...string) []core.Square {
	out := make([]core.Square, 0, len(notations))
	for _, n := range notations {
		out = append(out, core.MustSquare(n))
	}
	return out
}

func checkDestinations(t *testing.T, p piece.Piece, want []core.Square) {
	t.Helper()
	got := p.Destinations()
	if diff := cmp.Diff(want, got, sortSquares, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s at %s destinations mismatch (-want +got):\n%s", p.Kind(), p.Position(), diff)
	}
}

func TestPawnInitialMoves(t *testing.T) {
	b := board.NewEmpty()
	p := b.Spawn(piece.Pawn, core.White, core.MustSquare("e2"))

	checkDestinations(t, p, squares("e3", "e4"))
}

func TestPawnSingleStepBlocked(t *testing.T) {
	b := board.NewEmpty()
	p := b.Spawn(piece.Pawn, core.White, core.MustSquare("e2"))
	b.Spawn(piece.Pawn, core.Black, core.MustSquare("e3"))

	// A blocked single step removes the forward move; pawns never capture
	// straight ahead. The double step only checks its own destination.
	checkDestinations(t, p, squares("e4"))
}

func TestPawnDoubleStepGoneAfterFirstMove(t *testing.T) {
	b := board.NewEmpty()
	p := b.Spawn(piece.Pawn, core.White, core.MustSquare("e2"))

	b.Move(core.MustSquare("e2"), core.MustSquare("e3"))

	checkDestinations(t, p, squares("e4"))
}

func TestPawnDiagonalCaptures(t *testing.T) {
	b := board.NewEmpty()
	p := b.Spawn(piece.Pawn, core.White, core.MustSquare("e2"))
	b.Move(core.MustSquare("e2"), core.MustSquare("e4"))
	b.Spawn(piece.Pawn, core.Black, core.MustSquare("d5"))
	b.Spawn(piece.Pawn, core.White, core.MustSquare("f5"))

	// d5 is an opponent (capturable); f5 is friendly (not capturable).
	checkDestinations(t, p, squares("e5", "d5"))
}

func TestPawnBlackMovesDownBoard(t *testing.T) {
	b := board.NewEmpty()
	p := b.Spawn(piece.Pawn, core.Black, core.MustSquare("d7"))
	b.Spawn(piece.Pawn, core.White, core.MustSquare("c6"))

	checkDestinations(t, p, squares("d6", "d5", "c6"))
}

func TestRookSweepStopsAtBlockers(t *testing.T) {
	b := board.NewEmpty()
	r := b.Spawn(piece.Rook, core.White, core.MustSquare("d4"))
	b.Spawn(piece.Pawn, core.White, core.MustSquare("d6")) // friendly: excluded, stops sweep
	b.Spawn(piece.Pawn, core.Black, core.MustSquare("f4")) // opponent: included, stops sweep

	checkDestinations(t, r, squares(
		"d5",             // up, stops before d6
		"e4", "f4",       // right, includes capture at f4
		"d3", "d2", "d1", // down
		"c4", "b4", "a4", // left
	))
}

func TestRookBlockedImmediately(t *testing.T) {
	b := board.NewEmpty()
	r := b.Spawn(piece.Rook, core.White, core.MustSquare("a1"))
	b.Spawn(piece.Pawn, core.White, core.MustSquare("a2"))

	// A rook at a1 with a friendly pawn at a2 has no forward moves at all.
	checkDestinations(t, r, squares("b1", "c1", "d1", "e1", "f1", "g1", "h1"))
}

func TestBishopSweep(t *testing.T) {
	b := board.NewEmpty()
	bp := b.Spawn(piece.Bishop, core.White, core.MustSquare("c1"))
	b.Spawn(piece.Pawn, core.Black, core.MustSquare("e3"))

	checkDestinations(t, bp, squares("b2", "a3", "d2", "e3"))
}

func TestQueenCoversRookAndBishopLines(t *testing.T) {
	b := board.NewEmpty()
	q := b.Spawn(piece.Queen, core.White, core.MustSquare("a1"))
	b.Spawn(piece.Pawn, core.Black, core.MustSquare("a3"))
	b.Spawn(piece.Pawn, core.White, core.MustSquare("c3"))

	checkDestinations(t, q, squares(
		"a2", "a3", // file, capture stops the sweep
		"b1", "c1", "d1", "e1", "f1", "g1", "h1", // rank
		"b2", // diagonal, friendly c3 stops the sweep before itself
	))
}

func TestKnightJumpsAndFriendlyExclusion(t *testing.T) {
	b := board.NewEmpty()
	n := b.Spawn(piece.Knight, core.White, core.MustSquare("b1"))
	b.Spawn(piece.Pawn, core.White, core.MustSquare("d2"))
	b.Spawn(piece.Pawn, core.Black, core.MustSquare("c3"))

	// d2 is friendly-occupied and excluded; blocking pieces do not stop the
	// jump to a3 or c3.
	checkDestinations(t, n, squares("a3", "c3"))
}

func TestKnightCornerBounds(t *testing.T) {
	b := board.NewEmpty()
	n := b.Spawn(piece.Knight, core.Black, core.MustSquare("h8"))

	checkDestinations(t, n, squares("f7", "g6"))
}

func TestKingAdjacentSteps(t *testing.T) {
	b := board.NewEmpty()
	k := b.Spawn(piece.King, core.White, core.MustSquare("e1"))
	b.Spawn(piece.Pawn, core.White, core.MustSquare("e2"))
	b.Spawn(piece.Rook, core.Black, core.MustSquare("d2"))

	// No concept of moving into attack: d2 is simply a capture, and f2 is
	// legal even though the rook could take there next.
	checkDestinations(t, k, squares("d1", "f1", "d2", "f2"))
}

func TestKingCornerBounds(t *testing.T) {
	b := board.NewEmpty()
	k := b.Spawn(piece.King, core.White, core.MustSquare("a1"))

	checkDestinations(t, k, squares("a2", "b1", "b2"))
}

func TestSweepNeverPassesFirstBlocker(t *testing.T) {
	b := board.NewEmpty()
	r := b.Spawn(piece.Rook, core.Black, core.MustSquare("a8"))
	b.Spawn(piece.Pawn, core.White, core.MustSquare("a5"))
	b.Spawn(piece.Queen, core.White, core.MustSquare("a2"))

	for _, d := range r.Destinations() {
		if d == core.MustSquare("a4") || d == core.MustSquare("a3") || d == core.MustSquare("a2") || d == core.MustSquare("a1") {
			t.Errorf("sweep passed the first blocker to reach %s", d)
		}
	}
}

func TestKindStrings(t *testing.T) {
	want := map[piece.Kind]string{
		piece.Pawn:   "pawn",
		piece.Rook:   "rook",
		piece.Knight: "knight",
		piece.Bishop: "bishop",
		piece.Queen:  "queen",
		piece.King:   "king",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), s)
		}
	}
}

func TestGlyphsDistinctPerKindAndColor(t *testing.T) {
	b := board.NewEmpty()
	seen := make(map[rune]string)
	kinds := []piece.Kind{piece.Pawn, piece.Rook, piece.Knight, piece.Bishop, piece.Queen, piece.King}
	col := 0
	for _, c := range []core.Color{core.White, core.Black} {
		row := 0
		for _, k := range kinds {
			p := b.Spawn(k, c, core.Square{Col: col, Row: row})
			g := p.Glyph()
			if prev, dup := seen[g]; dup {
				t.Errorf("glyph %c reused by %s %s and %s", g, c, k, prev)
			}
			seen[g] = c.String() + " " + k.String()
			row++
		}
		col++
	}
}
