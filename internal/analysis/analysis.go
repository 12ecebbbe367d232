package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/player"
	"github.com/lk16/othello/internal/search"
)

// ErrBadRequest is wrapped by all errors caused by invalid input.
var ErrBadRequest = errors.New("bad request")

func parseBoard(s string) (*othello.Board, error) {
	board, err := othello.NewBoardFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}
	return board, nil
}

func fields(coords []othello.Coordinate) []string {
	fields := make([]string, len(coords))
	for i, coord := range coords {
		fields[i] = coord.String()
	}
	return fields
}

func counts(board *othello.Board) models.Counts {
	pieces := board.PieceCounts()
	return models.Counts{
		Dark:  pieces[othello.Dark],
		Light: pieces[othello.Light],
		Empty: pieces[othello.Empty],
	}
}

// Moves lists the legal moves of a board.
func Moves(req models.MovesRequest) (*models.MovesResponse, error) {
	board, err := parseBoard(req.Board)
	if err != nil {
		return nil, err
	}

	return &models.MovesResponse{
		Board:      board.String(),
		Turn:       board.Turn().String(),
		LegalMoves: fields(board.LegalMoves()),
		Counts:     counts(board),
		GameOver:   board.IsGameOver(),
	}, nil
}

// Place plays a move and hands the turn over, passing back when the opponent cannot move.
func Place(req models.PlaceRequest) (*models.PlaceResponse, error) {
	board, err := parseBoard(req.Board)
	if err != nil {
		return nil, err
	}

	move, err := othello.ParseField(req.Move)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	flipped := board.Flips(move)

	game := othello.NewGameWithStart(board)
	if err = game.PushMove(move); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	moves := game.Moves()
	after := game.Board()

	return &models.PlaceResponse{
		Board:    after.String(),
		Turn:     after.Turn().String(),
		Flipped:  fields(flipped),
		Passed:   moves[len(moves)-1] == othello.PassMove,
		Counts:   counts(after),
		GameOver: after.IsGameOver(),
	}, nil
}

// Decide asks a strategy for a move. Depths above maxDepth are lowered to maxDepth.
func Decide(req models.DecideRequest, maxDepth int) (*models.DecideResponse, error) {
	if err := req.Validate(player.Strategies); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	board, err := parseBoard(req.Board)
	if err != nil {
		return nil, err
	}

	if !board.HasLegalMove() {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, search.ErrNoLegalMoves)
	}

	depth := min(req.Depth, maxDepth)

	if req.Strategy == player.StrategyRandom {
		start := time.Now()

		move, err := player.NewRandom(req.Seed).Decide(board)
		if err != nil {
			return nil, fmt.Errorf("random decision failed: %w", err)
		}

		return &models.DecideResponse{
			Move:      move.String(),
			Depth:     0,
			ElapsedMs: milliseconds(time.Since(start)),
		}, nil
	}

	evaluate, err := search.EvaluatorByName(req.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadRequest, err)
	}

	result, err := search.Analyze(board, depth, evaluate)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return &models.DecideResponse{
		Move:      result.Move.String(),
		Score:     result.Score,
		Depth:     depth,
		Nodes:     result.Nodes,
		ElapsedMs: milliseconds(result.Elapsed),
	}, nil
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / float64(time.Millisecond)
}
