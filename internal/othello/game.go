package othello

import (
	"errors"
	"fmt"
	"strings"
)

// Game represents an Othello game, either complete or in progress.
type Game struct {
	// board is the live board after all moves.
	board *Board

	// moves is the list of moves in the game. Pass moves are added automatically.
	moves []Coordinate
}

// NewGameWithStart creates a new game with a custom start board. The game takes ownership of start.
func NewGameWithStart(start *Board) *Game {
	return &Game{
		board: start,
		moves: make([]Coordinate, 0),
	}
}

// NewGame creates a new game from the starting position.
func NewGame() *Game {
	return NewGameWithStart(NewBoardStart())
}

// NewGameFromTranscript creates a game from space separated fields, e.g. "d3 c5 f6".
func NewGameFromTranscript(transcript string) (*Game, error) {
	game := NewGame()

	for _, word := range strings.Fields(transcript) {
		move, err := ParseField(word)
		if err != nil {
			return nil, fmt.Errorf("failed to parse move %s: %w", word, err)
		}

		// Passes are inserted by PushMove.
		if move == PassMove {
			continue
		}

		if err = game.PushMove(move); err != nil {
			return nil, fmt.Errorf("failed to push move: %w", err)
		}
	}

	return game, nil
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// Moves returns a copy of the moves played so far, including passes.
func (g *Game) Moves() []Coordinate {
	moves := make([]Coordinate, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// PushMove plays a move for the side to move and hands the turn over.
// If the opponent then has no moves but we do, a pass is recorded.
func (g *Game) PushMove(move Coordinate) error {
	if err := g.board.Place(move); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	g.board.AdvanceTurn()
	g.moves = append(g.moves, move)

	if !g.board.HasLegalMove() && !g.board.IsGameOver() {
		g.pass()
	}

	return nil
}

// Pass hands the turn over when the side to move has no legal moves but the opponent does.
// PushMove already does this automatically, so this is only needed for custom start boards.
func (g *Game) Pass() error {
	if g.board.HasLegalMove() {
		return errors.New("cannot pass when having legal moves")
	}

	if g.board.IsGameOver() {
		return errors.New("cannot pass when game is over")
	}

	g.pass()
	return nil
}

func (g *Game) pass() {
	g.board.AdvanceTurn()
	g.moves = append(g.moves, PassMove)
}

// PopMove undoes the last move, including a pass that followed it.
func (g *Game) PopMove() {
	if len(g.moves) == 0 {
		return
	}

	// Prevent having a last board without moves.
	if g.moves[len(g.moves)-1] == PassMove {
		g.board.AdvanceTurn()
		g.moves = g.moves[:len(g.moves)-1]

		// A custom start board can begin with a pass.
		if len(g.moves) == 0 {
			return
		}
	}

	g.board.Undo(1)
	g.moves = g.moves[:len(g.moves)-1]
}

// IsOver returns whether neither side can move.
func (g *Game) IsOver() bool {
	return g.board.IsGameOver()
}

// Score returns the number of dark and light discs.
func (g *Game) Score() (int, int) {
	return g.board.Count(Dark), g.board.Count(Light)
}

// Winner returns the color with most discs, or Empty on a draw.
func (g *Game) Winner() Color {
	dark, light := g.Score()

	switch {
	case dark > light:
		return Dark
	case light > dark:
		return Light
	default:
		return Empty
	}
}

// Transcript returns the moves in field notation, separated by spaces.
func (g *Game) Transcript() string {
	fields := make([]string, len(g.moves))
	for i, move := range g.moves {
		fields[i] = move.String()
	}
	return strings.Join(fields, " ")
}
