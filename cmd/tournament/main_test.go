package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/othello"
)

func TestPlayMatch(t *testing.T) {
	match, err := playMatch("random", "material", 1, 42)
	require.NoError(t, err)

	require.Equal(t, "random", match.DarkStrategy)
	require.Equal(t, "material", match.LightStrategy)
	require.Contains(t, []string{othello.Dark.String(), othello.Light.String(), "draw"}, match.Winner)
	require.LessOrEqual(t, match.DarkDiscs+match.LightDiscs, othello.Size*othello.Size)
	require.Positive(t, match.Plies)

	again, err := playMatch("random", "material", 1, 42)
	require.NoError(t, err)
	require.Equal(t, match.DarkDiscs, again.DarkDiscs)
	require.Equal(t, match.Plies, again.Plies)
}

func TestPlayMatch_UnknownStrategy(t *testing.T) {
	_, err := playMatch("edax", "random", 1, 0)
	require.Error(t, err)
}

func TestRun_WithoutDatabase(t *testing.T) {
	require.NoError(t, run(&config.TournamentConfig{}, 2, "random", "random", 0, 7))
}
