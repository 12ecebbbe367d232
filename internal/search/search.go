package search

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/lk16/othello/internal/othello"
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Result is the outcome of a search.
type Result struct {
	// Move is the best move found for the side to move.
	Move othello.Coordinate

	// Score is the minimax value of Move, from the perspective of the side to move.
	Score int

	// Nodes is the number of visited nodes.
	Nodes uint64

	// Elapsed is the time the search took.
	Elapsed time.Duration
}

// Decide returns the best move for the side to move, searching depth plies ahead.
func Decide(board *othello.Board, depth int, evaluate Evaluator) (othello.Coordinate, error) {
	result, err := Analyze(board, depth, evaluate)
	if err != nil {
		return othello.Coordinate{}, err
	}
	return result.Move, nil
}

// Analyze works like Decide, but also returns the score and search statistics.
// The board is never modified, the search runs on a clone.
func Analyze(board *othello.Board, depth int, evaluate Evaluator) (Result, error) {
	if !board.HasLegalMove() {
		return Result{}, fmt.Errorf("cannot search %s: %w", board, ErrNoLegalMoves)
	}

	bot := NewBot(board.Turn(), evaluate)
	result := bot.decide(board.Clone(), depth)
	bot.logStats()

	return result, nil
}

// Bot runs alpha-beta searches for one color.
type Bot struct {
	me        othello.Color
	evaluate  Evaluator
	startTime time.Time
	nodes     uint64
}

// NewBot creates a new bot playing as me.
func NewBot(me othello.Color, evaluate Evaluator) *Bot {
	return &Bot{
		me:        me,
		evaluate:  evaluate,
		startTime: time.Now(),
		nodes:     0,
	}
}

// decide searches all root moves of board, which is used as scratch space.
// Ties keep the first move in row-major order.
func (b *Bot) decide(board *othello.Board, depth int) Result {
	best := Result{Score: math.MinInt}

	for _, move := range board.LegalMoves() {
		b.doMove(board, move)
		score := b.alphaBeta(board, depth-1, best.Score, math.MaxInt)
		board.Undo(1)

		if score > best.Score {
			best.Move = move
			best.Score = score
		}
	}

	best.Nodes = b.nodes
	best.Elapsed = time.Since(b.startTime)
	return best
}

// doMove plays a move that is known to be legal and hands the turn over.
func (b *Bot) doMove(board *othello.Board, move othello.Coordinate) {
	if err := board.Place(move); err != nil {
		panic(err)
	}
	board.AdvanceTurn()
}

func (b *Bot) alphaBeta(board *othello.Board, depth int, alpha int, beta int) int {
	b.nodes++

	if depth <= 0 {
		return b.evaluate(board, b.me)
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return b.evaluate(board, b.me)
	}

	maximizing := board.Turn() == b.me

	for _, move := range moves {
		b.doMove(board, move)
		score := b.alphaBeta(board, depth-1, alpha, beta)
		board.Undo(1)

		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}

		if alpha >= beta {
			break
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}

func (b *Bot) logStats() {
	elapsedSeconds := time.Since(b.startTime).Seconds()

	nodesPerSecond := int64(0)
	if elapsedSeconds > 0.000001 {
		nodesPerSecond = int64(float64(b.nodes) / elapsedSeconds)
	}

	slog.Debug("search done",
		"color", b.me,
		"nodes", b.nodes,
		"seconds", fmt.Sprintf("%.4f", elapsedSeconds),
		"nodes_per_second", nodesPerSecond,
	)
}
