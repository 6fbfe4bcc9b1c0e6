package core

import "fmt"

// Color identifies a side. White always moves first.
type Color int

const (
	White Color = iota + 1
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "WHITE"
	case Black:
		return "BLACK"
	default:
		return "-"
	}
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Outcome is the game's terminal/non-terminal status. Once a game leaves
// Unfinished it never transitions again.
type Outcome int

const (
	Unfinished Outcome = iota
	WhiteWon
	BlackWon
)

func (o Outcome) String() string {
	switch o {
	case WhiteWon:
		return "WHITE_WON"
	case BlackWon:
		return "BLACK_WON"
	default:
		return "UNFINISHED"
	}
}

// Won maps a capturing color to its winning outcome.
func Won(c Color) Outcome {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}

// InvalidOutcomeError reports an attempt to set a game outcome outside the
// three recognized states. It is unreachable through the move-making
// interface; seeing one means a core invariant was breached.
type InvalidOutcomeError struct {
	Value int
}

func (e *InvalidOutcomeError) Error() string {
	return fmt.Sprintf("invalid game outcome: %d", e.Value)
}
