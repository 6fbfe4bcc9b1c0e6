package core

import (
	"fmt"
	"testing"
)

func TestSquareRoundTrip(t *testing.T) {
	// Every one of the 64 squares must survive notation -> indices -> notation.
	for file := byte('a'); file <= 'h'; file++ {
		for rank := byte('1'); rank <= '8'; rank++ {
			notation := string([]byte{file, rank})
			sq, err := ParseSquare(notation)
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", notation, err)
			}
			if got := sq.Notation(); got != notation {
				t.Errorf("round trip %q -> %v -> %q", notation, sq, got)
			}
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	for col := 0; col < 8; col++ {
		for row := 0; row < 8; row++ {
			sq := Square{Col: col, Row: row}
			back, err := ParseSquare(sq.Notation())
			if err != nil {
				t.Fatalf("ParseSquare(%q): %v", sq.Notation(), err)
			}
			if back != sq {
				t.Errorf("round trip %v -> %q -> %v", sq, sq.Notation(), back)
			}
		}
	}
}

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{in: "a8", want: Square{Col: 0, Row: 0}},
		{in: "a1", want: Square{Col: 0, Row: 7}},
		{in: "h8", want: Square{Col: 7, Row: 0}},
		{in: "h1", want: Square{Col: 7, Row: 7}},
		{in: "e2", want: Square{Col: 4, Row: 6}},
		{in: "E2", want: Square{Col: 4, Row: 6}}, // case-insensitive
		{in: "i1", wantErr: true},
		{in: "a9", wantErr: true},
		{in: "a0", wantErr: true},
		{in: "a", wantErr: true},
		{in: "a12", wantErr: true},
		{in: "", wantErr: true},
		{in: "11", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSquare(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSquare(%q) = %v, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSquare(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSquare(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSquareInBounds(t *testing.T) {
	if !(Square{Col: 0, Row: 0}).InBounds() {
		t.Error("a8 should be in bounds")
	}
	for _, sq := range []Square{
		{Col: -1, Row: 0}, {Col: 8, Row: 0}, {Col: 0, Row: -1}, {Col: 0, Row: 8},
	} {
		if sq.InBounds() {
			t.Errorf("%+v should be out of bounds", sq)
		}
	}
}

func TestColorOpponent(t *testing.T) {
	if White.Opponent() != Black || Black.Opponent() != White {
		t.Error("Opponent must swap sides")
	}
}

func TestOutcomeStrings(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{Unfinished, "UNFINISHED"},
		{WhiteWon, "WHITE_WON"},
		{BlackWon, "BLACK_WON"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestWon(t *testing.T) {
	if Won(White) != WhiteWon || Won(Black) != BlackWon {
		t.Error("Won must map the capturing color to its winning outcome")
	}
}

func TestInvalidOutcomeError(t *testing.T) {
	err := &InvalidOutcomeError{Value: 42}
	want := fmt.Sprintf("invalid game outcome: %d", 42)
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
