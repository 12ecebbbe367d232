package player

import (
	"errors"
	"fmt"

	"github.com/lk16/othello/internal/othello"
)

var ErrUnknownMode = errors.New("unknown game mode")

// Mode decides who plays each color.
type Mode string

const (
	Players  Mode = "1"
	WeakAI   Mode = "2"
	NormalAI Mode = "3"
	StrongAI Mode = "4"
	AIs      Mode = "5"
)

// Modes lists all modes in menu order.
var Modes = []Mode{Players, WeakAI, NormalAI, StrongAI, AIs}

// ParseMode parses a menu choice.
func ParseMode(s string) (Mode, error) {
	for _, mode := range Modes {
		if string(mode) == s {
			return mode, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Description returns the menu text for the mode.
func (m Mode) Description() string {
	switch m {
	case Players:
		return "human vs human"
	case WeakAI:
		return "human vs random computer"
	case NormalAI:
		return "human vs material computer"
	case StrongAI:
		return "human vs positional computer"
	case AIs:
		return "random computer vs positional computer"
	default:
		return "unknown"
	}
}

// Lineup maps each color to the player who moves for it.
type Lineup map[othello.Color]Player

// NewLineup creates the players for a mode. Humans always play dark.
func NewLineup(mode Mode, input Input, depth int, seed uint64) (Lineup, error) {
	switch mode {
	case Players:
		return Lineup{othello.Dark: NewHuman(input), othello.Light: NewHuman(input)}, nil
	case WeakAI:
		return Lineup{othello.Dark: NewHuman(input), othello.Light: NewRandom(seed)}, nil
	case NormalAI:
		return Lineup{othello.Dark: NewHuman(input), othello.Light: NewMaterial(depth)}, nil
	case StrongAI:
		return Lineup{othello.Dark: NewHuman(input), othello.Light: NewPositional(depth)}, nil
	case AIs:
		return Lineup{othello.Dark: NewRandom(seed), othello.Light: NewPositional(depth)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Decide asks the player of the side to move for a move.
func (l Lineup) Decide(board *othello.Board) (othello.Coordinate, error) {
	player, ok := l[board.Turn()]
	if !ok {
		return othello.Coordinate{}, fmt.Errorf("no player for %s", board.Turn())
	}
	return player.Decide(board)
}
