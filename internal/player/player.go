package player

import (
	"errors"
	"fmt"

	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/search"
	"golang.org/x/exp/rand"
)

var (
	// ErrInputClosed is returned when a human can no longer provide input.
	ErrInputClosed = errors.New("input closed")

	// ErrUndo is returned by an Input when the human asks to take back moves.
	ErrUndo = errors.New("undo requested")
)

// Player decides which move to play for the side to move.
type Player interface {
	// Decide returns a legal move. The board must have a legal move and is not modified.
	Decide(board *othello.Board) (othello.Coordinate, error)

	// IsHuman returns whether moves come from a person rather than a computer.
	IsHuman() bool
}

// Input provides coordinates typed by a human.
type Input interface {
	// ReadCoordinate reads a coordinate. Attempt is 0 for the first try and increases
	// every time the previous coordinate was rejected.
	ReadCoordinate(board *othello.Board, attempt int) (othello.Coordinate, error)
}

// Human asks an Input for moves until a legal one is given.
type Human struct {
	input Input
}

// NewHuman creates a new Human.
func NewHuman(input Input) *Human {
	return &Human{input: input}
}

func (h *Human) Decide(board *othello.Board) (othello.Coordinate, error) {
	for attempt := 0; ; attempt++ {
		move, err := h.input.ReadCoordinate(board, attempt)
		if err != nil {
			return othello.Coordinate{}, err
		}

		if board.IsLegalMove(move) {
			return move, nil
		}
	}
}

func (h *Human) IsHuman() bool {
	return true
}

// Random picks a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random player with a fixed seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Decide(board *othello.Board) (othello.Coordinate, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return othello.Coordinate{}, search.ErrNoLegalMoves
	}

	return moves[r.rng.Intn(len(moves))], nil
}

func (r *Random) IsHuman() bool {
	return false
}

// Searcher picks moves with an alpha-beta search.
type Searcher struct {
	depth    int
	evaluate search.Evaluator
}

// NewSearcher creates a Searcher with a custom evaluator.
func NewSearcher(depth int, evaluate search.Evaluator) *Searcher {
	return &Searcher{depth: depth, evaluate: evaluate}
}

// NewMaterial creates a Searcher that only counts discs.
func NewMaterial(depth int) *Searcher {
	return NewSearcher(depth, search.Material)
}

// NewPositional creates a Searcher using square weights and mobility.
func NewPositional(depth int) *Searcher {
	return NewSearcher(depth, search.Positional)
}

func (s *Searcher) Decide(board *othello.Board) (othello.Coordinate, error) {
	return search.Decide(board, s.depth, s.evaluate)
}

func (s *Searcher) IsHuman() bool {
	return false
}

// Strategy names accepted by NewByName.
const (
	StrategyRandom     = "random"
	StrategyMaterial   = "material"
	StrategyPositional = "positional"
)

// Strategies lists all computer strategies.
var Strategies = []string{StrategyRandom, StrategyMaterial, StrategyPositional}

// NewByName creates a computer player from a strategy name.
func NewByName(name string, depth int, seed uint64) (Player, error) {
	switch name {
	case StrategyRandom:
		return NewRandom(seed), nil
	case StrategyMaterial:
		return NewMaterial(depth), nil
	case StrategyPositional:
		return NewPositional(depth), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %q", name)
	}
}
