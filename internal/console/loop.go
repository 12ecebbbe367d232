package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/player"
)

// Loop plays a game on the console until it is over.
type Loop struct {
	game   *othello.Game
	lineup player.Lineup
	out    io.Writer

	// TurnDelay is how long to wait after a computer move, so humans can follow the game.
	TurnDelay time.Duration

	// sleep is replaced in tests.
	sleep func(time.Duration)
}

// NewLoop creates a Loop for a game and the players of both colors.
func NewLoop(game *othello.Game, lineup player.Lineup, out io.Writer) *Loop {
	return &Loop{
		game:   game,
		lineup: lineup,
		out:    out,
		sleep:  time.Sleep,
	}
}

// Run plays until neither side can move and returns the winner, or Empty on a draw.
func (l *Loop) Run() (othello.Color, error) {
	Render(l.out, l.game.Board())

	for !l.game.IsOver() {
		board := l.game.Board()

		// PushMove handles passes after a move, a custom start board may still be stuck.
		if !board.HasLegalMove() {
			fmt.Fprintf(l.out, "%s cannot move and passes.\n", board.Turn())
			if err := l.game.Pass(); err != nil {
				return othello.Empty, fmt.Errorf("failed to pass: %w", err)
			}
			continue
		}

		if err := l.playTurn(); err != nil {
			return othello.Empty, err
		}
	}

	dark, light := l.game.Score()
	winner := l.game.Winner()

	slog.Info("Game over", "dark", dark, "light", light, "winner", winner, "transcript", l.game.Transcript())

	if winner == othello.Empty {
		fmt.Fprintf(l.out, "Game over: draw with %d-%d.\n", dark, light)
	} else {
		fmt.Fprintf(l.out, "Game over: %s wins with %d-%d.\n", winner, dark, light)
	}

	return winner, nil
}

func (l *Loop) playTurn() error {
	board := l.game.Board()
	turn := board.Turn()

	current, ok := l.lineup[turn]
	if !ok {
		return fmt.Errorf("no player for %s", turn)
	}

	move, err := current.Decide(board)
	if errors.Is(err, player.ErrUndo) {
		l.undo()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get move for %s: %w", turn, err)
	}

	if err = l.game.PushMove(move); err != nil {
		return fmt.Errorf("failed to play move: %w", err)
	}

	slog.Debug("Move played", "color", turn, "move", move.String())
	fmt.Fprintf(l.out, "%s plays %s\n", turn, move)
	Render(l.out, l.game.Board())

	if !current.IsHuman() && l.TurnDelay > 0 {
		l.sleep(l.TurnDelay)
	}

	return nil
}

// undo takes back moves until a human is to move again, normally the last two plies.
func (l *Loop) undo() {
	if len(l.game.Moves()) == 0 {
		fmt.Fprintln(l.out, "Nothing to undo.")
		return
	}

	l.game.PopMove()
	for len(l.game.Moves()) > 0 && !l.lineup[l.game.Board().Turn()].IsHuman() {
		l.game.PopMove()
	}

	fmt.Fprintln(l.out, "Undone.")
	Render(l.out, l.game.Board())
}
