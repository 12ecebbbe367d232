package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/console"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/player"
)

func main() {
	config.SetLogLevel()

	cfg := config.LoadGameConfig()

	modeFlag := flag.String("mode", "", "game mode 1-5, asks when empty")
	depth := flag.Int("depth", cfg.SearchDepth, "search depth of the computer players")
	delay := flag.Duration("delay", cfg.TurnDelay, "pause after each computer move")
	start := flag.String("start", "", "custom start board, e.g. 00000008100000000000001008000000-b")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for the random player")
	flag.Parse()

	prompter := console.NewPrompter(os.Stdin, os.Stdout)

	game := othello.NewGame()
	if *start != "" {
		board, err := othello.NewBoardFromString(*start)
		if err != nil {
			slog.Error("Invalid start board", "error", err)
			os.Exit(1)
		}
		game = othello.NewGameWithStart(board)
	}

	var mode player.Mode
	var err error
	if *modeFlag == "" {
		mode, err = prompter.ReadMode()
	} else {
		mode, err = player.ParseMode(*modeFlag)
	}
	if err != nil {
		slog.Error("Failed to choose game mode", "error", err)
		os.Exit(1)
	}

	lineup, err := player.NewLineup(mode, prompter, *depth, *seed)
	if err != nil {
		slog.Error("Failed to create players", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting game", "mode", mode.Description(), "depth", *depth)

	loop := console.NewLoop(game, lineup, os.Stdout)
	loop.TurnDelay = *delay

	if _, err = loop.Run(); err != nil {
		if errors.Is(err, player.ErrInputClosed) {
			slog.Info("Input closed, quitting")
			return
		}
		slog.Error("Game failed", "error", err)
		os.Exit(1)
	}
}
