// Package game orchestrates move validation, application, turn tracking and
// the king-capture win condition.
package game

import (
	"errors"
	"fmt"

	"github.com/CASCAD1AN/basic-chess-game/internal/board"
	"github.com/CASCAD1AN/basic-chess-game/internal/core"
	"github.com/CASCAD1AN/basic-chess-game/internal/piece"
)

// Sentinel move-rejection reasons. Callers wrap or decorate them with the
// user-facing diagnostic.
var (
	ErrGameOver    = errors.New("the game has already finished")
	ErrEmptySquare = errors.New("there is no piece at the starting square")
	ErrWrongTurn   = errors.New("that piece belongs to the other player")
	ErrIllegalMove = errors.New("that move is unavailable for the given piece")
)

// View is the external collaborator that re-renders the position after each
// accepted move. The game never reads it back.
type View interface {
	DisplayBoard(*board.Board)
	ShowStatus(turn core.Color, outcome core.Outcome)
}

// Game holds the live board, whose turn it is, and the outcome. A single
// logical thread of control drives it; moves are processed to completion
// before the next one is accepted.
type Game struct {
	board   *board.Board
	turn    core.Color
	outcome core.Outcome
	view    View // optional
}

// New creates a game with the starting position, White to move.
func New() *Game {
	return &Game{
		board:   board.New(),
		turn:    core.White,
		outcome: core.Unfinished,
	}
}

// AttachView registers the render collaborator.
func (g *Game) AttachView(v View) {
	g.view = v
}

func (g *Game) Board() *board.Board { return g.board }

func (g *Game) Turn() core.Color { return g.turn }

func (g *Game) Outcome() core.Outcome { return g.outcome }

// SetOutcome guards the three recognized states. Anything else is a
// programming-contract violation reported as InvalidOutcomeError.
func (g *Game) SetOutcome(o core.Outcome) error {
	switch o {
	case core.Unfinished, core.WhiteWon, core.BlackWon:
		g.outcome = o
		return nil
	default:
		return &core.InvalidOutcomeError{Value: int(o)}
	}
}

// ValidateMove checks that a piece occupies from and that to is among its
// computed destinations. Whose-turn enforcement belongs to ApplyMove.
func (g *Game) ValidateMove(from, to core.Square) error {
	p := g.board.PieceAt(from)
	if p == nil {
		return fmt.Errorf("%w (%s)", ErrEmptySquare, from)
	}
	for _, d := range p.Destinations() {
		if d == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %s cannot reach %s", ErrIllegalMove, p.Kind(), from, to)
}

// ApplyMove is the orchestrating entry point. It rejects without state change
// when the game is over, the origin is empty, the origin piece is not the
// current player's, or the destination is not legal. On acceptance it mutates
// the board, freezes the outcome if a king was captured, re-renders through
// the attached view, and toggles the turn only while the game is unfinished.
func (g *Game) ApplyMove(from, to core.Square) error {
	if g.outcome != core.Unfinished {
		return fmt.Errorf("%w: %s", ErrGameOver, g.outcome)
	}
	p := g.board.PieceAt(from)
	if p == nil {
		return fmt.Errorf("%w (%s)", ErrEmptySquare, from)
	}
	if p.Color() != g.turn {
		return fmt.Errorf("%w: it is %s's turn", ErrWrongTurn, g.turn)
	}
	if err := g.ValidateMove(from, to); err != nil {
		return err
	}

	// King capture is detected before the turn toggle and freezes the
	// outcome immediately.
	if target := g.board.PieceAt(to); target != nil && target.Kind() == piece.King {
		if err := g.SetOutcome(core.Won(p.Color())); err != nil {
			return err
		}
	}

	g.board.Move(from, to)

	if g.view != nil {
		g.view.DisplayBoard(g.board)
		g.view.ShowStatus(g.turn, g.outcome)
	}

	if g.outcome == core.Unfinished {
		g.toggleTurn()
	}
	return nil
}

func (g *Game) toggleTurn() {
	g.turn = g.turn.Opponent()
}
