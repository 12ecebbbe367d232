package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const startBoardString = "00000008100000000000001008000000-b"

func c(row, col int) Coordinate {
	return Coordinate{Row: row, Col: col}
}

// boardFromRows builds a board from 8 strings using 'x' for Dark, 'o' for Light and '.' for Empty.
func boardFromRows(t *testing.T, turn Color, rows ...string) *Board {
	t.Helper()
	require.Len(t, rows, Size)

	var grid Grid
	for row, line := range rows {
		require.Len(t, line, Size)
		for col, ch := range line {
			switch ch {
			case 'x':
				grid[row][col] = Dark
			case 'o':
				grid[row][col] = Light
			}
		}
	}

	board, err := NewBoard(grid, turn)
	require.NoError(t, err)
	return board
}

func requireCountInvariant(t *testing.T, board *Board) {
	t.Helper()
	counts := board.PieceCounts()
	require.Equal(t, Size*Size, counts[Dark]+counts[Light]+counts[Empty])
}

func TestNewBoardStart(t *testing.T) {
	board := NewBoardStart()

	require.Equal(t, Dark, board.Turn())
	require.Equal(t, map[Color]int{Dark: 2, Light: 2, Empty: 60}, board.PieceCounts())

	require.Equal(t, Light, board.At(c(3, 3)))
	require.Equal(t, Light, board.At(c(4, 4)))
	require.Equal(t, Dark, board.At(c(3, 4)))
	require.Equal(t, Dark, board.At(c(4, 3)))
	require.Equal(t, 0, board.HistoryLen())
}

func TestNewBoard_InvalidTurn(t *testing.T) {
	_, err := NewBoard(Grid{}, Empty)
	require.Error(t, err)
}

func TestBoard_LegalMovesStart(t *testing.T) {
	board := NewBoardStart()

	want := []Coordinate{c(2, 3), c(3, 2), c(4, 5), c(5, 4)}
	require.Equal(t, want, board.LegalMoves())
	require.True(t, board.HasLegalMove())
	require.Equal(t, 4, board.MobilityOf(Dark))
	require.Equal(t, 4, board.MobilityOf(Light))
}

func TestBoard_IsLegalMove(t *testing.T) {
	board := NewBoardStart()

	tests := []struct {
		name  string
		coord Coordinate
		want  bool
	}{
		{"legal", c(2, 3), true},
		{"occupied", c(3, 3), false},
		{"no capture", c(0, 0), false},
		{"adjacent own disc only", c(5, 2), false},
		{"negative row", c(-1, 3), false},
		{"column too large", c(3, 8), false},
		{"far away", c(100, -100), false},
		{"pass move", PassMove, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, board.IsLegalMove(test.coord))
		})
	}
}

func TestBoard_PlaceStartScenario(t *testing.T) {
	board := NewBoardStart()

	require.Equal(t, []Coordinate{c(3, 3)}, board.Flips(c(2, 3)))
	require.NoError(t, board.Place(c(2, 3)))

	// Place does not advance the turn.
	require.Equal(t, Dark, board.Turn())
	board.AdvanceTurn()
	require.Equal(t, Light, board.Turn())

	require.Equal(t, Dark, board.At(c(2, 3)))
	require.Equal(t, Dark, board.At(c(3, 3)))
	require.Equal(t, map[Color]int{Dark: 4, Light: 1, Empty: 59}, board.PieceCounts())
	require.Equal(t, 1, board.HistoryLen())
}

func TestBoard_PlaceCapturesOnlyFlankedRuns(t *testing.T) {
	board := boardFromRows(t, Dark,
		"x.......",
		".o......",
		"..o.....",
		"....o...",
		"...o....",
		"...o....",
		"...x....",
		"........",
	)

	require.NoError(t, board.Place(c(3, 3)))

	// Diagonal towards a1 and the column towards row g are flanked.
	require.Equal(t, Dark, board.At(c(1, 1)))
	require.Equal(t, Dark, board.At(c(2, 2)))
	require.Equal(t, Dark, board.At(c(4, 3)))
	require.Equal(t, Dark, board.At(c(5, 3)))

	// Adjacent light disc without a dark disc behind it stays.
	require.Equal(t, Light, board.At(c(3, 4)))
	require.Equal(t, map[Color]int{Dark: 7, Light: 1, Empty: 56}, board.PieceCounts())
}

func TestBoard_PlaceRayStopsAtEmpty(t *testing.T) {
	board := boardFromRows(t, Dark,
		"........",
		"........",
		"........",
		".oo.x...",
		"........",
		"........",
		"........",
		"........",
	)

	// The light run is interrupted by an empty square before the dark disc.
	require.False(t, board.IsLegalMove(c(3, 0)))
	require.ErrorIs(t, board.Place(c(3, 0)), ErrInvalidPlacement)
}

func TestBoard_PlaceInvalid(t *testing.T) {
	tests := []struct {
		name  string
		coord Coordinate
	}{
		{"out of range", c(8, 0)},
		{"negative", c(-1, -1)},
		{"occupied", c(3, 3)},
		{"no capture", c(0, 0)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := NewBoardStart()
			before := board.SnapshotGrid()

			err := board.Place(test.coord)
			require.ErrorIs(t, err, ErrInvalidPlacement)

			require.Equal(t, before, board.SnapshotGrid())
			require.Equal(t, 0, board.HistoryLen())
			require.Equal(t, Dark, board.Turn())
		})
	}
}

func TestBoard_UndoRoundTrip(t *testing.T) {
	board := NewBoardStart()
	before := board.SnapshotGrid()

	plies := 0
	for plies < 10 && board.HasLegalMove() {
		moves := board.LegalMoves()
		require.NoError(t, board.Place(moves[len(moves)/2]))
		board.AdvanceTurn()
		plies++
		requireCountInvariant(t, board)
	}
	require.Equal(t, 10, plies)
	require.Equal(t, 10, board.HistoryLen())

	board.Undo(plies)

	require.Equal(t, before, board.SnapshotGrid())
	require.Equal(t, Dark, board.Turn())
	require.Equal(t, 0, board.HistoryLen())
}

func TestBoard_UndoSteps(t *testing.T) {
	board := NewBoardStart()

	require.NoError(t, board.Place(c(2, 3)))
	board.AdvanceTurn()
	afterFirst := board.SnapshotGrid()

	require.NoError(t, board.Place(c(2, 2)))
	board.AdvanceTurn()

	board.Undo(1)
	require.Equal(t, afterFirst, board.SnapshotGrid())
	require.Equal(t, Light, board.Turn())

	// Undoing more than available stops early.
	board.Undo(5)
	require.Equal(t, NewBoardStart().SnapshotGrid(), board.SnapshotGrid())
	require.Equal(t, Dark, board.Turn())

	board.Undo(1)
	require.Equal(t, Dark, board.Turn())
}

func TestBoard_IsGameOver(t *testing.T) {
	tests := []struct {
		name string
		turn Color
		rows []string
		want bool
	}{
		{
			name: "start",
			turn: Dark,
			rows: []string{
				"........", "........", "........", "...ox...",
				"...xo...", "........", "........", "........",
			},
			want: false,
		},
		{
			name: "dark has no discs",
			turn: Dark,
			rows: []string{
				"oooo....", "........", "........", "...oo...",
				"...oo...", "........", "........", "........",
			},
			want: true,
		},
		{
			name: "full board",
			turn: Light,
			rows: []string{
				"xxxxxxxx", "xxxxxxxx", "oooooooo", "oooooooo",
				"xxxxxxxx", "xxxxxxxx", "oooooooo", "oooooooo",
			},
			want: true,
		},
		{
			name: "side to move stuck, opponent can move",
			turn: Dark,
			rows: []string{
				"ox......", "........", "........", "........",
				"........", "........", "........", "........",
			},
			want: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := boardFromRows(t, test.turn, test.rows...)
			require.Equal(t, test.want, board.IsGameOver())
			require.Equal(t, test.turn, board.Turn())
		})
	}
}

func TestBoard_StuckSidePasses(t *testing.T) {
	board := boardFromRows(t, Dark,
		"ox......", "........", "........", "........",
		"........", "........", "........", "........",
	)

	require.False(t, board.HasLegalMove())
	require.Empty(t, board.LegalMoves())
	require.Equal(t, 1, board.MobilityOf(Light))

	board.AdvanceTurn()
	require.Equal(t, []Coordinate{c(0, 2)}, board.LegalMoves())
}

func TestBoard_Clone(t *testing.T) {
	board := NewBoardStart()
	require.NoError(t, board.Place(c(2, 3)))
	board.AdvanceTurn()

	clone := board.Clone()
	require.True(t, clone.Equal(board))

	require.NoError(t, clone.Place(clone.LegalMoves()[0]))
	clone.AdvanceTurn()
	require.False(t, clone.Equal(board))
	require.Equal(t, 1, board.HistoryLen())

	clone.Undo(2)
	require.True(t, clone.Equal(NewBoardStart()))
	require.Equal(t, 1, board.HistoryLen())
}

func TestBoard_SnapshotGridIsCopy(t *testing.T) {
	board := NewBoardStart()
	grid := board.SnapshotGrid()
	grid[0][0] = Dark

	require.Equal(t, Empty, board.At(c(0, 0)))
}

func TestBoard_String(t *testing.T) {
	require.Equal(t, startBoardString, NewBoardStart().String())

	board, err := NewBoardFromString(startBoardString)
	require.NoError(t, err)
	require.True(t, board.Equal(NewBoardStart()))

	board.AdvanceTurn()
	require.Equal(t, "00000008100000000000001008000000-w", board.String())
}

func TestNewBoardFromString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		s    string
	}{
		{"too short", "0000-b"},
		{"bad hex", "0000000810000000000000100800000z-b"},
		{"overlap", "00000008100000000000000810000000-b"},
		{"bad turn", "00000008100000000000001008000000-x"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewBoardFromString(test.s)
			require.ErrorIs(t, err, ErrInvalidBoardString)
			require.Panics(t, func() { NewBoardFromStringMust(test.s) })
		})
	}
}

func TestBoard_ASCIIArtLines(t *testing.T) {
	lines := NewBoardStart().ASCIIArtLines()

	require.Len(t, lines, 10)
	require.Equal(t, "+-1-2-3-4-5-6-7-8-+", lines[0])
	require.Equal(t, "c "+"      "+"· "+"        "+"|", lines[3])
	require.Equal(t, "d "+"    "+"· ○ ● "+"      "+"|", lines[4])
	require.Equal(t, "+-----------------+", lines[9])
}
