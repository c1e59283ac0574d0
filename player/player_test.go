package player

import (
	"testing"

	"circles/engine"
	"circles/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomPlay(t *testing.T) {
	t.Run("playing the default board to completion", func(t *testing.T) {
		src := rand.New(rand.NewSource(11))
		g := engine.NewGame(game.DefaultBoard(), engine.WithSource(src))
		p := NewRandom(g, src, 2)

		moves, err := p.Play()

		require.NoError(t, err)
		require.True(t, g.Complete())
		require.Len(t, moves, 19, "19 cells and 20 choices: every cell gets a value")
		require.True(t, g.Board().Complete())

		_, err = g.Scores().ScorePaths()
		require.NoError(t, err, "Only valued cells are linked")
	})

	t.Run("moves respect the selection", func(t *testing.T) {
		src := rand.New(rand.NewSource(5))
		g := engine.NewGame(game.DefaultBoard(), engine.WithSource(src))
		p := NewRandom(g, src, 3)

		moves, err := p.Play()
		require.NoError(t, err)

		seen := map[int]bool{}
		for i, m := range moves {
			require.Equal(t, i+1, m.Turn)
			require.False(t, seen[m.Cell], "cell %d valued twice", m.Cell)
			seen[m.Cell] = true
			require.LessOrEqual(t, len(m.Links), 3)

			c, err := g.Board().Cell(m.Cell)
			require.NoError(t, err)
			v, ok := c.Value()
			require.True(t, ok)
			require.Equal(t, m.Value, v)
		}
	})

	t.Run("stops when choices run out", func(t *testing.T) {
		rules := game.NewStandardRules()
		rules.MaxChoicesPerPairing = 1
		src := rand.New(rand.NewSource(9))
		g := engine.NewGame(game.DefaultBoard(), engine.WithSource(src), engine.WithRules(rules))

		moves, err := NewRandom(g, src, 0).Play()

		require.NoError(t, err)
		require.Len(t, moves, game.NumPairings)
		require.True(t, g.Choices().Exhausted())
		require.Equal(t, 0, g.Paths().Len(), "No links with maxLinks 0")
	})
}
