package console

import (
	"fmt"
	"io"

	"github.com/lk16/othello/internal/othello"
)

// Render prints the board with disc counts and the side to move.
func Render(w io.Writer, board *othello.Board) {
	for _, line := range board.ASCIIArtLines() {
		fmt.Fprintln(w, line)
	}

	counts := board.PieceCounts()
	fmt.Fprintf(w, "%s %s: %d  %s %s: %d\n",
		othello.Dark.Symbol(), othello.Dark, counts[othello.Dark],
		othello.Light.Symbol(), othello.Light, counts[othello.Light],
	)

	if board.IsGameOver() {
		return
	}

	fmt.Fprintf(w, "Turn: %s\n", board.Turn())
}
