package search

import (
	"fmt"

	"github.com/lk16/othello/internal/othello"
)

const (
	positionFactor = 3
	mobilityFactor = 10
	materialFactor = 3

	// WinScore dominates every heuristic score once the game has ended.
	WinScore = 99999
)

// Evaluator scores a board from the fixed perspective of me. Higher is better for me.
type Evaluator func(board *othello.Board, me othello.Color) int

// positionWeights rewards corners and punishes the squares next to them,
// which let the opponent take the corner.
var positionWeights = [othello.Size][othello.Size]int{
	{45, -11, 4, -1, -1, 4, -11, 45},
	{-11, -16, -1, -3, -3, -1, -16, -11},
	{4, -1, 2, -1, -1, 2, -1, 4},
	{-1, -3, -1, 0, 0, -1, -3, -1},
	{-1, -3, -1, 0, 0, -1, -3, -1},
	{4, -1, 2, -1, -1, 2, -1, 4},
	{-11, -16, -1, -3, -3, -1, -16, -11},
	{45, -11, 4, -1, -1, 4, -11, 45},
}

// Material counts the discs of me.
func Material(board *othello.Board, me othello.Color) int {
	return board.Count(me)
}

// Positional combines square weights, mobility and material.
// Finished games score WinScore, -WinScore or 0 on top of that.
func Positional(board *othello.Board, me othello.Color) int {
	return positionFactor*positionScore(board, me) +
		mobilityFactor*board.MobilityOf(me) +
		materialFactor*board.Count(me) +
		absoluteScore(board, me)
}

func positionScore(board *othello.Board, me othello.Color) int {
	grid := board.SnapshotGrid()
	opponent := me.Opposite()

	score := 0
	for row := range othello.Size {
		for col := range othello.Size {
			switch grid[row][col] {
			case me:
				score += positionWeights[row][col]
			case opponent:
				score -= positionWeights[row][col]
			}
		}
	}
	return score
}

func absoluteScore(board *othello.Board, me othello.Color) int {
	if !board.IsGameOver() {
		return 0
	}

	mine := board.Count(me)
	theirs := board.Count(me.Opposite())

	switch {
	case mine > theirs:
		return WinScore
	case mine < theirs:
		return -WinScore
	default:
		return 0
	}
}

// EvaluatorByName looks up an evaluator by its name.
func EvaluatorByName(name string) (Evaluator, error) {
	switch name {
	case "material":
		return Material, nil
	case "positional":
		return Positional, nil
	default:
		return nil, fmt.Errorf("unknown evaluator: %q", name)
	}
}
