package othello

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

const boardStringLength = 34

var (
	ErrInvalidPlacement   = errors.New("invalid placement")
	ErrInvalidBoardString = errors.New("invalid board string")
)

// Grid holds the color of every square, indexed by row and column.
type Grid [Size][Size]Color

// Board represents an Othello board with the side to move and an undo history.
type Board struct {
	grid Grid

	// turn is the side to move, never Empty.
	turn Color

	// history contains the grids before each placement, most recent last.
	history []Grid
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() *Board {
	b := NewBoardEmpty()
	b.grid[3][3] = Light
	b.grid[4][4] = Light
	b.grid[3][4] = Dark
	b.grid[4][3] = Dark
	return b
}

// NewBoardEmpty creates a new board without any discs, with Dark to move.
func NewBoardEmpty() *Board {
	return &Board{turn: Dark}
}

// NewBoard creates a board from a grid and the side to move.
func NewBoard(grid Grid, turn Color) (*Board, error) {
	if turn != Dark && turn != Light {
		return nil, fmt.Errorf("invalid turn: %s", turn)
	}

	return &Board{grid: grid, turn: turn}, nil
}

// NewBoardFromString creates a new board from its String representation.
func NewBoardFromString(s string) (*Board, error) {
	if len(s) != boardStringLength {
		return nil, fmt.Errorf("%w: must be %d characters long, got %d", ErrInvalidBoardString, boardStringLength, len(s))
	}

	dark, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid dark discs: %w", ErrInvalidBoardString, err)
	}

	light, err := strconv.ParseUint(s[16:32], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid light discs: %w", ErrInvalidBoardString, err)
	}

	if dark&light != 0 {
		return nil, fmt.Errorf("%w: dark and light discs cannot overlap", ErrInvalidBoardString)
	}

	var turn Color
	switch s[32:34] {
	case "-b":
		turn = Dark
	case "-w":
		turn = Light
	default:
		return nil, fmt.Errorf("%w: invalid turn: %s", ErrInvalidBoardString, s[32:34])
	}

	var grid Grid
	for index := range Size * Size {
		mask := uint64(1) << index
		switch {
		case dark&mask != 0:
			grid[index/Size][index%Size] = Dark
		case light&mask != 0:
			grid[index/Size][index%Size] = Light
		}
	}

	return &Board{grid: grid, turn: turn}, nil
}

// NewBoardFromStringMust is like NewBoardFromString but panics on error.
func NewBoardFromStringMust(s string) *Board {
	b, err := NewBoardFromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Clone returns a deep copy of the board, including its history.
func (b *Board) Clone() *Board {
	history := make([]Grid, len(b.history))
	copy(history, b.history)

	return &Board{
		grid:    b.grid,
		turn:    b.turn,
		history: history,
	}
}

// Turn returns the side to move.
func (b *Board) Turn() Color {
	return b.turn
}

// AdvanceTurn passes the turn to the opponent.
func (b *Board) AdvanceTurn() {
	b.turn = b.turn.Opposite()
}

// At returns the color at c, or Empty when c is not on the board.
func (b *Board) At(c Coordinate) Color {
	if !c.IsValid() {
		return Empty
	}
	return b.grid[c.Row][c.Col]
}

// SnapshotGrid returns a copy of the grid.
func (b *Board) SnapshotGrid() Grid {
	return b.grid
}

// captureLength returns how many opponent discs color would flip in direction d
// when playing at c. It returns 0 when the ray does not end on a disc of color.
func (b *Board) captureLength(c Coordinate, d Direction, color Color) int {
	opponent := color.Opposite()
	run := 0

	for cur := c.Add(d); cur.IsValid(); cur = cur.Add(d) {
		switch b.grid[cur.Row][cur.Col] {
		case opponent:
			run++
		case color:
			return run
		default:
			return 0
		}
	}

	return 0
}

// isLegalFor checks if color could play at c, regardless of whose turn it is.
func (b *Board) isLegalFor(c Coordinate, color Color) bool {
	if !c.IsValid() || b.grid[c.Row][c.Col] != Empty {
		return false
	}

	for _, d := range Directions {
		if b.captureLength(c, d, color) > 0 {
			return true
		}
	}

	return false
}

func (b *Board) hasMoveFor(color Color) bool {
	for row := range Size {
		for col := range Size {
			if b.isLegalFor(Coordinate{Row: row, Col: col}, color) {
				return true
			}
		}
	}
	return false
}

// IsLegalMove checks if the side to move can play at c. Coordinates outside the board are never legal.
func (b *Board) IsLegalMove(c Coordinate) bool {
	return b.isLegalFor(c, b.turn)
}

// LegalMoves returns all legal moves for the side to move in row-major order.
func (b *Board) LegalMoves() []Coordinate {
	var moves []Coordinate

	for row := range Size {
		for col := range Size {
			c := Coordinate{Row: row, Col: col}
			if b.isLegalFor(c, b.turn) {
				moves = append(moves, c)
			}
		}
	}

	return moves
}

// HasLegalMove checks if the side to move has any legal move.
func (b *Board) HasLegalMove() bool {
	return b.hasMoveFor(b.turn)
}

// MobilityOf returns the number of legal moves color would have if it were to move.
func (b *Board) MobilityOf(color Color) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if b.isLegalFor(Coordinate{Row: row, Col: col}, color) {
				count++
			}
		}
	}
	return count
}

// Flips returns the discs that would be flipped if the side to move played at c.
func (b *Board) Flips(c Coordinate) []Coordinate {
	if !c.IsValid() || b.grid[c.Row][c.Col] != Empty {
		return nil
	}

	var flips []Coordinate
	for _, d := range Directions {
		cur := c
		for range b.captureLength(c, d, b.turn) {
			cur = cur.Add(d)
			flips = append(flips, cur)
		}
	}

	return flips
}

// Place puts a disc of the side to move on c and flips all captured discs.
// The grid before the move is pushed on the history. The turn is not advanced.
// If the move is not legal, the board is left untouched and an error is returned.
func (b *Board) Place(c Coordinate) error {
	if !c.IsValid() {
		return fmt.Errorf("%w: %s is not on the board", ErrInvalidPlacement, c)
	}

	if b.grid[c.Row][c.Col] != Empty {
		return fmt.Errorf("%w: %s is not empty", ErrInvalidPlacement, c)
	}

	flips := b.Flips(c)
	if len(flips) == 0 {
		return fmt.Errorf("%w: %s does not capture any discs", ErrInvalidPlacement, c)
	}

	b.history = append(b.history, b.grid)

	b.grid[c.Row][c.Col] = b.turn
	for _, f := range flips {
		b.grid[f.Row][f.Col] = b.turn
	}

	return nil
}

// Undo restores up to n previous grids, passing the turn back once per restored grid.
func (b *Board) Undo(n int) {
	for range n {
		last := len(b.history) - 1
		if last < 0 {
			return
		}

		b.grid = b.history[last]
		b.history = b.history[:last]
		b.turn = b.turn.Opposite()
	}
}

// HistoryLen returns the number of placements that can be undone.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// IsGameOver returns whether neither side has a legal move.
func (b *Board) IsGameOver() bool {
	return !b.hasMoveFor(b.turn) && !b.hasMoveFor(b.turn.Opposite())
}

// Count returns the number of squares with the given color.
func (b *Board) Count(color Color) int {
	count := 0
	for row := range Size {
		for col := range Size {
			if b.grid[row][col] == color {
				count++
			}
		}
	}
	return count
}

// PieceCounts returns the number of squares per color, including Empty.
func (b *Board) PieceCounts() map[Color]int {
	counts := map[Color]int{Dark: 0, Light: 0, Empty: 0}
	for row := range Size {
		for col := range Size {
			counts[b.grid[row][col]]++
		}
	}
	return counts
}

// bitboards returns the dark and light discs as bitsets, with bit index row*8+col.
func (b *Board) bitboards() (uint64, uint64) {
	var dark, light uint64
	for row := range Size {
		for col := range Size {
			mask := uint64(1) << (row*Size + col)
			switch b.grid[row][col] {
			case Dark:
				dark |= mask
			case Light:
				light |= mask
			}
		}
	}
	return dark, light
}

// CountDiscs returns the number of discs on the board.
func (b *Board) CountDiscs() int {
	dark, light := b.bitboards()
	return bits.OnesCount64(dark | light)
}

// Equal checks if two boards have the same grid and side to move. History is ignored.
func (b *Board) Equal(other *Board) bool {
	return b.grid == other.grid && b.turn == other.turn
}

// ASCIIArtLines returns the ascii art lines for the board.
// Rows are labeled with letters, columns with digits and legal moves are marked.
func (b *Board) ASCIIArtLines() []string {
	lines := make([]string, Size+2)

	lines[0] = "+-1-2-3-4-5-6-7-8-+"
	for row := range Size {
		line := fmt.Sprintf("%c ", rowLetters[row])

		for col := range Size {
			c := Coordinate{Row: row, Col: col}

			switch {
			case b.grid[row][col] != Empty:
				line += b.grid[row][col].Symbol() + " "
			case b.isLegalFor(c, b.turn):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[Size+1] = "+-----------------+"

	return lines
}

// String returns the string representation of the board.
func (b *Board) String() string {
	var turnString string
	if b.turn == Light {
		turnString = "-w"
	} else {
		turnString = "-b"
	}

	dark, light := b.bitboards()
	return fmt.Sprintf("%016x%016x%s", dark, light, turnString)
}
