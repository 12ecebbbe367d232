package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/player"
)

const undoCommand = "u"

// Prompter reads moves and menu choices typed by a human.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter creates a Prompter reading lines from in and printing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// readLine reads one trimmed line, returning player.ErrInputClosed on EOF.
func (p *Prompter) readLine() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", player.ErrInputClosed
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// ReadCoordinate implements player.Input.
func (p *Prompter) ReadCoordinate(board *othello.Board, attempt int) (othello.Coordinate, error) {
	if attempt > 0 {
		fmt.Fprintln(p.out, "Invalid move, try again.")
	}

	fmt.Fprintf(p.out, "%s to move, enter row and column (e.g. \"c 4\") or \"%s\" to undo: ", board.Turn(), undoCommand)

	line, err := p.readLine()
	if err != nil {
		return othello.Coordinate{}, err
	}

	if strings.EqualFold(line, undoCommand) {
		return othello.Coordinate{}, player.ErrUndo
	}

	return othello.ParseCoordinate(line), nil
}

// ReadMode shows the mode menu and asks until a valid mode is chosen.
func (p *Prompter) ReadMode() (player.Mode, error) {
	fmt.Fprintln(p.out, "Choose a game mode:")
	for _, mode := range player.Modes {
		fmt.Fprintf(p.out, "  %s: %s\n", mode, mode.Description())
	}

	for {
		fmt.Fprint(p.out, "> ")

		line, err := p.readLine()
		if err != nil {
			return "", err
		}

		mode, err := player.ParseMode(line)
		if err == nil {
			return mode, nil
		}

		fmt.Fprintf(p.out, "Unknown mode %q, try again.\n", line)
	}
}
