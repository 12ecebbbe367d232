package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lk16/othello/internal/othello"
)

const draw = "draw"

// Match is the outcome of a finished computer game.
type Match struct {
	ID            uuid.UUID `db:"id"             json:"id"`
	DarkStrategy  string    `db:"dark_strategy"  json:"dark_strategy"`
	LightStrategy string    `db:"light_strategy" json:"light_strategy"`
	Depth         int       `db:"depth"          json:"depth"`
	DarkDiscs     int       `db:"dark_discs"     json:"dark_discs"`
	LightDiscs    int       `db:"light_discs"    json:"light_discs"`
	Winner        string    `db:"winner"         json:"winner"`
	Plies         int       `db:"plies"          json:"plies"`
	PlayedAt      time.Time `db:"played_at"      json:"played_at"`
}

// NewMatch summarizes a finished game.
func NewMatch(game *othello.Game, darkStrategy, lightStrategy string, depth int) Match {
	dark, light := game.Score()

	winner := draw
	if color := game.Winner(); color != othello.Empty {
		winner = color.String()
	}

	return Match{
		ID:            uuid.New(),
		DarkStrategy:  darkStrategy,
		LightStrategy: lightStrategy,
		Depth:         depth,
		DarkDiscs:     dark,
		LightDiscs:    light,
		Winner:        winner,
		Plies:         len(game.Moves()),
		PlayedAt:      time.Now().UTC(),
	}
}

// MatchSummary aggregates all matches between two strategies.
type MatchSummary struct {
	DarkStrategy  string  `db:"dark_strategy"   json:"dark_strategy"`
	LightStrategy string  `db:"light_strategy"  json:"light_strategy"`
	Games         int     `db:"games"           json:"games"`
	DarkWins      int     `db:"dark_wins"       json:"dark_wins"`
	LightWins     int     `db:"light_wins"      json:"light_wins"`
	Draws         int     `db:"draws"           json:"draws"`
	AvgDarkDiscs  float64 `db:"avg_dark_discs"  json:"avg_dark_discs"`
	AvgLightDiscs float64 `db:"avg_light_discs" json:"avg_light_discs"`
}

// MatchRepository handles database operations for matches.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// EnsureSchema creates the matches table if it does not exist yet.
func (repo *MatchRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS matches (
			id UUID PRIMARY KEY,
			dark_strategy TEXT NOT NULL,
			light_strategy TEXT NOT NULL,
			depth INTEGER NOT NULL,
			dark_discs INTEGER NOT NULL,
			light_discs INTEGER NOT NULL,
			winner TEXT NOT NULL,
			plies INTEGER NOT NULL,
			played_at TIMESTAMPTZ NOT NULL
		)
	`

	if _, err := repo.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("error creating matches table: %w", err)
	}

	return nil
}

func (repo *MatchRepository) Insert(ctx context.Context, match Match) error {
	query := `
		INSERT INTO matches (id, dark_strategy, light_strategy, depth, dark_discs, light_discs, winner, plies, played_at)
		VALUES (:id, :dark_strategy, :light_strategy, :depth, :dark_discs, :light_discs, :winner, :plies, :played_at)
	`

	if _, err := repo.db.NamedExecContext(ctx, query, match); err != nil {
		return fmt.Errorf("error inserting match: %w", err)
	}

	return nil
}

// Summary returns the aggregated results per pair of strategies.
func (repo *MatchRepository) Summary(ctx context.Context) ([]MatchSummary, error) {
	query := `
		SELECT
			dark_strategy,
			light_strategy,
			COUNT(*) AS games,
			COUNT(*) FILTER (WHERE winner = $1) AS dark_wins,
			COUNT(*) FILTER (WHERE winner = $2) AS light_wins,
			COUNT(*) FILTER (WHERE winner = $3) AS draws,
			AVG(dark_discs)::FLOAT8 AS avg_dark_discs,
			AVG(light_discs)::FLOAT8 AS avg_light_discs
		FROM matches
		GROUP BY dark_strategy, light_strategy
		ORDER BY dark_strategy, light_strategy
	`

	summaries := make([]MatchSummary, 0)

	err := repo.db.SelectContext(ctx, &summaries, query, othello.Dark.String(), othello.Light.String(), draw)
	if err != nil {
		return nil, fmt.Errorf("error getting match summary: %w", err)
	}

	return summaries, nil
}
