package search //nolint:testpackage

import (
	"testing"

	"github.com/lk16/othello/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestPositionWeights_Symmetric(t *testing.T) {
	last := othello.Size - 1
	for row := range othello.Size {
		for col := range othello.Size {
			weight := positionWeights[row][col]
			require.Equal(t, weight, positionWeights[col][row])
			require.Equal(t, weight, positionWeights[last-row][col])
			require.Equal(t, weight, positionWeights[row][last-col])
		}
	}

	// Corners are the best squares, diagonal neighbours of corners the worst.
	require.Equal(t, 45, positionWeights[0][0])
	require.Equal(t, -16, positionWeights[1][1])

	// Inner edge squares next to the x-squares match their mirror images.
	require.Equal(t, -1, positionWeights[1][5])
	require.Equal(t, -1, positionWeights[6][5])
	require.Equal(t, positionWeights[1][2], positionWeights[1][5])
}

func TestMaterial(t *testing.T) {
	board := othello.NewBoardStart()
	require.Equal(t, 2, Material(board, othello.Dark))

	require.NoError(t, board.Place(c(2, 3)))
	require.Equal(t, 4, Material(board, othello.Dark))
	require.Equal(t, 1, Material(board, othello.Light))
}

func TestPositional_Start(t *testing.T) {
	board := othello.NewBoardStart()

	// Center squares weigh 0: only mobility and material count.
	want := mobilityFactor*4 + materialFactor*2
	require.Equal(t, want, Positional(board, othello.Dark))
	require.Equal(t, want, Positional(board, othello.Light))
}

func TestPositional_PerspectiveIsFixed(t *testing.T) {
	board := boardFromRows(t, othello.Light,
		"x.......",
		"........",
		"........",
		"...ox...",
		"...xo...",
		"........",
		"........",
		"........",
	)

	// The side to move does not change the score of a color.
	dark := Positional(board, othello.Dark)
	board.AdvanceTurn()
	require.Equal(t, dark, Positional(board, othello.Dark))

	require.Equal(t, 45, positionScore(board, othello.Dark))
	require.Equal(t, -45, positionScore(board, othello.Light))
}

func TestAbsoluteScore(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		me   othello.Color
		want int
	}{
		{
			name: "not over",
			rows: []string{"........", "........", "........", "...ox...", "...xo...", "........", "........", "........"},
			me:   othello.Dark,
			want: 0,
		},
		{
			name: "dark wins",
			rows: []string{"xxxxxxxx", "xxxxxxxx", "xxxxxxxx", "xxxxxxxx", "xxxxxxxx", "oooooooo", "oooooooo", "oooooooo"},
			me:   othello.Dark,
			want: WinScore,
		},
		{
			name: "light loses",
			rows: []string{"xxxxxxxx", "xxxxxxxx", "xxxxxxxx", "xxxxxxxx", "xxxxxxxx", "oooooooo", "oooooooo", "oooooooo"},
			me:   othello.Light,
			want: -WinScore,
		},
		{
			name: "draw",
			rows: []string{"xxxxxxxx", "xxxxxxxx", "xxxxxxxx", "xxxxxxxx", "oooooooo", "oooooooo", "oooooooo", "oooooooo"},
			me:   othello.Dark,
			want: 0,
		},
		{
			name: "wiped out",
			rows: []string{"oo......", "........", "........", "........", "........", "........", "........", "........"},
			me:   othello.Dark,
			want: -WinScore,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := boardFromRows(t, othello.Dark, test.rows...)
			require.Equal(t, test.want, absoluteScore(board, test.me))
		})
	}
}

func TestEvaluatorByName(t *testing.T) {
	for _, name := range []string{"material", "positional"} {
		evaluate, err := EvaluatorByName(name)
		require.NoError(t, err)
		require.NotNil(t, evaluate)
	}

	_, err := EvaluatorByName("random")
	require.Error(t, err)
}
