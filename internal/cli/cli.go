// Package cli renders the board and game status to a terminal and parses
// console move input.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/CASCAD1AN/basic-chess-game/internal/board"
	"github.com/CASCAD1AN/basic-chess-game/internal/core"
)

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

type CLI struct {
	output io.Writer
	theme  ColorTheme
}

func New(output io.Writer) *CLI {
	return &CLI{
		output: output,
		theme:  ThemeOff,
	}
}

// DefaultTheme picks a colored theme only when stdout is a terminal, so
// piped output stays plain.
func DefaultTheme() ColorTheme {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return ThemeBrown
	}
	return ThemeOff
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

// ParseMove splits console input like "a2 a4" into origin and destination
// squares. Tokens are case-insensitive.
func ParseMove(input string) (from, to core.Square, err error) {
	tokens := strings.Fields(input)
	if len(tokens) != 2 {
		return core.Square{}, core.Square{}, fmt.Errorf("invalid move format, use two squares like: a2 a4")
	}
	if from, err = core.ParseSquare(tokens[0]); err != nil {
		return core.Square{}, core.Square{}, err
	}
	if to, err = core.ParseSquare(tokens[1]); err != nil {
		return core.Square{}, core.Square{}, err
	}
	return from, to, nil
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v. Please try again.", err))
}

// DisplayBoard prints the full 8x8 grid with Unicode glyphs, file labels
// above and below, rank labels down the left margin and the home-rank group
// labels on the right.
func (c *CLI) DisplayBoard(b *board.Board) {
	if c.theme == ThemeOff {
		c.ShowMessage(b.ToText())
		return
	}

	theme := themes[c.theme]
	var sb strings.Builder
	sb.WriteString("   A B C D E F G H\n")
	for row := 0; row < 8; row++ {
		rank := 8 - row
		sb.WriteByte(byte('0' + rank))
		sb.WriteString("| ")
		for col := 0; col < 8; col++ {
			bg := theme.darkBg
			if (row+col)%2 == 0 {
				bg = theme.lightBg
			}
			p := b.PieceAt(core.Square{Col: col, Row: row})
			if p == nil {
				sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
				continue
			}
			fg := theme.black
			if p.Color() == core.White {
				fg = theme.white
			}
			sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, fg, p.Glyph(), theme.reset))
		}
		sb.WriteString("| ")
		sb.WriteString(rankLabel(rank))
		sb.WriteByte('\n')
	}
	sb.WriteString("   A B C D E F G H")
	c.ShowMessage(sb.String())
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

// ShowStatus prints the whose-turn line while the game runs, or the win
// message naming the capturing color once it ends.
func (c *CLI) ShowStatus(turn core.Color, outcome core.Outcome) {
	switch outcome {
	case core.WhiteWon:
		c.ShowMessage("WHITE wins by capturing the BLACK king!")
	case core.BlackWon:
		c.ShowMessage("BLACK wins by capturing the WHITE king!")
	default:
		c.ShowMessage(fmt.Sprintf("Player Move: %s", turn))
	}
	c.ShowMessage(fmt.Sprintf("Game State: %s\n", outcome))
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Chess!")
	c.ShowMessage("Enter moves as two squares, e.g. 'a2 a4'.")
	c.ShowMessage("Commands: help/?, quit/exit")
	c.ShowMessage("The game ends when a king is captured.")
	c.ShowMessage("")
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <from> <to>      - Make a move (e.g., e2 e4)
  help/?           - Show this help message
  quit/exit        - Exit the program

The board shows Black's pieces on ranks 7-8 and White's on ranks 1-2.
WHITE moves first; capturing the opposing king wins the game.`

	c.ShowMessage(help)
}
