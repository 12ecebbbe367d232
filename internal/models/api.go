package models

import (
	"errors"
	"fmt"
	"slices"
)

// MovesRequest asks for the legal moves of a board.
type MovesRequest struct {
	Board string `json:"board"`
}

// Counts holds the number of squares per color.
type Counts struct {
	Dark  int `json:"dark"`
	Light int `json:"light"`
	Empty int `json:"empty"`
}

// MovesResponse describes a board and the moves of the side to move.
type MovesResponse struct {
	Board      string   `json:"board"`
	Turn       string   `json:"turn"`
	LegalMoves []string `json:"legal_moves"`
	Counts     Counts   `json:"counts"`
	GameOver   bool     `json:"game_over"`
}

// PlaceRequest asks to play a move on a board.
type PlaceRequest struct {
	Board string `json:"board"`
	Move  string `json:"move"`
}

// PlaceResponse is the board after a move, with the turn already handed over.
type PlaceResponse struct {
	Board   string   `json:"board"`
	Turn    string   `json:"turn"`
	Flipped []string `json:"flipped"`

	// Passed is set when the opponent had no moves, so the mover is to move again.
	Passed   bool   `json:"passed"`
	Counts   Counts `json:"counts"`
	GameOver bool   `json:"game_over"`
}

// DecideRequest asks a computer strategy for a move.
type DecideRequest struct {
	Board    string `json:"board"`
	Strategy string `json:"strategy"`
	Depth    int    `json:"depth"`

	// Seed is only used by the random strategy.
	Seed uint64 `json:"seed"`
}

// Validate checks the fields that can be checked without parsing the board.
func (r *DecideRequest) Validate(strategies []string) error {
	if r.Board == "" {
		return errors.New("board is empty")
	}

	if !slices.Contains(strategies, r.Strategy) {
		return fmt.Errorf("strategy must be one of: %v", strategies)
	}

	if r.Depth < 0 {
		return errors.New("depth cannot be negative")
	}

	return nil
}

// DecideResponse holds the chosen move and search statistics.
type DecideResponse struct {
	Move      string  `json:"move"`
	Score     int     `json:"score"`
	Depth     int     `json:"depth"`
	Nodes     uint64  `json:"nodes"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
