package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/player"
	"github.com/lk16/othello/internal/repository"
	"github.com/lk16/othello/internal/services"
)

func main() {
	config.SetLogLevel()

	cfg := config.LoadTournamentConfig()

	games := flag.Int("games", 10, "number of games to play")
	dark := flag.String("dark", player.StrategyRandom, "strategy of the dark player")
	light := flag.String("light", player.StrategyPositional, "strategy of the light player")
	depth := flag.Int("depth", config.DefaultSearchDepth, "search depth of both players")
	seed := flag.Uint64("seed", 1, "seed of the first game, incremented per game")
	flag.Parse()

	if err := run(cfg, *games, *dark, *light, *depth, *seed); err != nil {
		slog.Error("Tournament failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.TournamentConfig, games int, dark, light string, depth int, seed uint64) error {
	ctx := context.Background()

	services, err := services.InitServices("", cfg.PostgresURL)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}
	defer services.Close()

	var repo *repository.MatchRepository
	if services.Postgres != nil {
		repo = repository.NewMatchRepository(services.Postgres)
		if err = repo.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	wins := map[string]int{}

	for i := range games {
		match, err := playMatch(dark, light, depth, seed+uint64(i))
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}

		wins[match.Winner]++
		slog.Info("Game finished", "game", i+1, "dark", match.DarkDiscs, "light", match.LightDiscs, "winner", match.Winner)

		if repo != nil {
			if err = repo.Insert(ctx, match); err != nil {
				return err
			}
		}
	}

	slog.Info("Tournament finished",
		"games", games,
		dark+" (dark)", wins[othello.Dark.String()],
		light+" (light)", wins[othello.Light.String()],
		"draws", games-wins[othello.Dark.String()]-wins[othello.Light.String()],
	)

	return nil
}

func playMatch(dark, light string, depth int, seed uint64) (repository.Match, error) {
	darkPlayer, err := player.NewByName(dark, depth, seed)
	if err != nil {
		return repository.Match{}, err
	}

	// Avoid mirrored games when both sides are random.
	lightPlayer, err := player.NewByName(light, depth, seed^0x9e3779b97f4a7c15)
	if err != nil {
		return repository.Match{}, err
	}

	lineup := player.Lineup{othello.Dark: darkPlayer, othello.Light: lightPlayer}
	game := othello.NewGame()

	for !game.IsOver() {
		move, err := lineup.Decide(game.Board())
		if err != nil {
			return repository.Match{}, err
		}

		if err = game.PushMove(move); err != nil {
			return repository.Match{}, err
		}
	}

	return repository.NewMatch(game, dark, light, depth), nil
}
