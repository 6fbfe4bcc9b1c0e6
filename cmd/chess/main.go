// Command chess runs the two-player console game.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/CASCAD1AN/basic-chess-game/internal/cli"
	"github.com/CASCAD1AN/basic-chess-game/internal/core"
	"github.com/CASCAD1AN/basic-chess-game/internal/game"
)

func main() {
	theme := flag.String("theme", "", "board color theme (off|brown|green|gray)")
	flag.Parse()

	view := cli.New(os.Stdout)
	selected := cli.DefaultTheme()
	if *theme != "" {
		selected = cli.ColorTheme(*theme)
	}
	if err := view.SetTheme(selected); err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "chess > ",
		HistoryFile:     ".chess_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	g := game.New()
	g.AttachView(view)

	view.ShowWelcome()
	view.DisplayBoard(g.Board())
	view.ShowStatus(g.Turn(), g.Outcome())

	for g.Outcome() == core.Unfinished {
		rl.SetPrompt(fmt.Sprintf("%s > ", g.Turn()))

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "help", "?":
			view.ShowHelp()
			continue
		case "quit", "exit":
			return
		}

		from, to, err := cli.ParseMove(line)
		if err != nil {
			view.ShowError(err)
			continue
		}

		// An accepted move re-renders through the attached view; rejection
		// just re-prompts without consuming the turn.
		if err := g.ApplyMove(from, to); err != nil {
			view.ShowError(err)
		}
	}
}
