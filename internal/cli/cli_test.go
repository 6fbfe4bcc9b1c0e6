package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/CASCAD1AN/basic-chess-game/internal/board"
	"github.com/CASCAD1AN/basic-chess-game/internal/core"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in       string
		from, to string
		wantErr  bool
	}{
		{in: "a2 a4", from: "a2", to: "a4"},
		{in: "E2 E4", from: "e2", to: "e4"},
		{in: "  g1   f3  ", from: "g1", to: "f3"},
		{in: "a2", wantErr: true},
		{in: "a2 a4 a5", wantErr: true},
		{in: "a9 a4", wantErr: true},
		{in: "i2 a4", wantErr: true},
		{in: "a2 a44", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		from, to, err := ParseMove(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMove(%q) = %s %s, want error", tt.in, from, to)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tt.in, err)
			continue
		}
		if from != core.MustSquare(tt.from) || to != core.MustSquare(tt.to) {
			t.Errorf("ParseMove(%q) = %s %s, want %s %s", tt.in, from, to, tt.from, tt.to)
		}
	}
}

func TestSetTheme(t *testing.T) {
	c := New(&bytes.Buffer{})
	for _, theme := range []ColorTheme{ThemeOff, ThemeBrown, ThemeGreen, ThemeGray} {
		if err := c.SetTheme(theme); err != nil {
			t.Errorf("SetTheme(%s): %v", theme, err)
		}
	}
	if err := c.SetTheme("plaid"); err == nil {
		t.Error("SetTheme(plaid) should fail")
	}
}

func TestDisplayBoardPlain(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.DisplayBoard(board.New())

	out := buf.String()
	for _, want := range []string{"A B C D E F G H", "Black Home Rank", "White Home Rank", "♔", "♚"} {
		if !strings.Contains(out, want) {
			t.Errorf("plain board output missing %q", want)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("theme off must not emit ANSI escapes")
	}
}

func TestDisplayBoardThemed(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	if err := c.SetTheme(ThemeBrown); err != nil {
		t.Fatal(err)
	}
	c.DisplayBoard(board.New())

	if !strings.Contains(buf.String(), "\033[48;5;") {
		t.Error("themed board should emit background escapes")
	}
}

func TestShowStatus(t *testing.T) {
	tests := []struct {
		outcome core.Outcome
		want    string
	}{
		{core.Unfinished, "Player Move: WHITE"},
		{core.WhiteWon, "WHITE wins by capturing the BLACK king!"},
		{core.BlackWon, "BLACK wins by capturing the WHITE king!"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		c := New(&buf)
		c.ShowStatus(core.White, tt.outcome)
		if !strings.Contains(buf.String(), tt.want) {
			t.Errorf("ShowStatus(%s) output %q missing %q", tt.outcome, buf.String(), tt.want)
		}
		if !strings.Contains(buf.String(), "Game State: "+tt.outcome.String()) {
			t.Errorf("ShowStatus(%s) missing game-state line", tt.outcome)
		}
	}
}

func TestShowError(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	_, _, err := ParseMove("nope")
	c.ShowError(err)
	if !strings.Contains(buf.String(), "Please try again") {
		t.Errorf("ShowError output %q should invite a retry", buf.String())
	}
}
