package engine

import (
	"testing"

	"circles/game"
	"circles/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixedSource always samples the same offset, so with the standard dice
// offsets 4 and 5 every throw is (5, 5).
type fixedSource struct {
	values []int
	next   int
}

func (s *fixedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func fives() *fixedSource {
	return &fixedSource{values: []int{4, 5}}
}

func lineBoard(t *testing.T, n int) *game.Board {
	t.Helper()
	adjacency := map[int][]int{}
	for i := 0; i+1 < n; i++ {
		adjacency[i] = append(adjacency[i], i+1)
		adjacency[i+1] = append(adjacency[i+1], i)
	}
	b, err := game.NewBoard(n, adjacency)
	require.NoError(t, err)
	return b
}

func value(t *testing.T, g *Game, id int) (int, bool) {
	t.Helper()
	c, err := g.Board().Cell(id)
	require.NoError(t, err)
	return c.Value()
}

func TestNewGame(t *testing.T) {
	id := uuid.New()
	g := NewGame(lineBoard(t, 3), WithSource(fives()), WithID(id))

	require.Equal(t, id, g.ID())
	require.Equal(t, 1, g.Turns(), "First turn should start immediately")
	require.Equal(t, AwaitingPairing, g.State())
	pairs, err := g.Dice().Pairing()
	require.NoError(t, err, "Dice should be thrown")
	require.Equal(t, game.Pair(5, 5), pairs)
	require.Equal(t, 4, g.Choices().Max())
}

func TestSelectionFlow(t *testing.T) {
	t.Run("pairing then cell", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))

		require.NoError(t, g.SelectPairing(game.Sum))
		require.Equal(t, AwaitingCell, g.State())
		pending, ok := g.Pending()
		require.True(t, ok)
		require.Equal(t, 10, pending)
		require.Equal(t, 1, g.Choices().Count(game.Sum))

		require.NoError(t, g.SelectCell(2))
		require.Equal(t, Linking, g.State())
		v, ok := value(t, g, 2)
		require.True(t, ok)
		require.Equal(t, 10, v)
	})

	t.Run("cell then pairing", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))

		require.NoError(t, g.SelectCell(1))
		require.Equal(t, Linking, g.State())
		_, ok := value(t, g, 1)
		require.False(t, ok, "No value until a pairing is chosen")

		require.NoError(t, g.SelectPairing(game.Diff))
		v, ok := value(t, g, 1)
		require.True(t, ok)
		require.Equal(t, 0, v)
	})

	t.Run("turn clears the selection", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))
		require.NoError(t, g.SelectPairing(game.Min))
		require.NoError(t, g.SelectCell(0))

		g.Turn()

		require.Equal(t, AwaitingPairing, g.State())
		require.Nil(t, g.Anchor())
		_, ok := g.Pending()
		require.False(t, ok)
		require.Equal(t, 2, g.Turns())
	})

	t.Run("reselecting a pairing mid turn", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))
		require.NoError(t, g.SelectPairing(game.Sum))
		require.NoError(t, g.SelectCell(0))

		require.NoError(t, g.SelectPairing(game.Product))

		pending, _ := g.Pending()
		require.Equal(t, 25, pending, "Pending value should be overwritten")
		v, _ := value(t, g, 0)
		require.Equal(t, 10, v, "Anchor value should not be reassigned")
		require.Equal(t, 1, g.Choices().Count(game.Product))
	})

	t.Run("anchor with a value keeps it", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))
		require.NoError(t, g.SelectPairing(game.Sum))
		require.NoError(t, g.SelectCell(0))
		g.Turn()

		require.NoError(t, g.SelectCell(0))
		require.NoError(t, g.SelectPairing(game.Min))

		v, _ := value(t, g, 0)
		require.Equal(t, 10, v)
	})
}

func TestSelectCellLinking(t *testing.T) {
	t.Run("every link goes back to the anchor", func(t *testing.T) {
		g := NewGame(lineBoard(t, 5), WithSource(fives()))
		require.NoError(t, g.SelectPairing(game.Max))
		require.NoError(t, g.SelectCell(0))

		require.NoError(t, g.SelectCell(1))
		require.NoError(t, g.SelectCell(3))
		require.NoError(t, g.SelectCell(4))

		require.Equal(t, 0, g.Anchor().ID(), "Anchor should not move")
		paths := g.Paths().All()
		require.Len(t, paths, 1)
		got := []int{}
		for _, c := range paths[0].Cells() {
			got = append(got, c.ID())
		}
		require.ElementsMatch(t, []int{0, 1, 3, 4}, got)
	})

	t.Run("links notify path score listeners", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))
		updates := 0
		g.Scores().Subscribe(game.PathScore, func() { updates++ })
		require.NoError(t, g.SelectCell(0))

		require.NoError(t, g.SelectCell(1))

		require.Equal(t, 1, updates)
	})
}

func TestSelectionErrors(t *testing.T) {
	t.Run("pairing beyond the cap", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))
		for i := 0; i < 4; i++ {
			require.NoError(t, g.SelectPairing(game.Sum))
			g.Turn()
		}
		updates := 0
		g.Choices().Subscribe(notify.Update, func() { updates++ })

		err := g.SelectPairing(game.Sum)

		require.ErrorIs(t, err, game.ErrInvalidSelection)
		require.Equal(t, 4, g.Choices().Count(game.Sum), "Counter should be unchanged")
		require.Equal(t, 0, updates)
		require.Equal(t, AwaitingPairing, g.State(), "No pending value should be set")
	})

	t.Run("unknown pairing", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))
		require.ErrorIs(t, g.SelectPairing(game.Pairing(12)), game.ErrInvalidSelection)
	})

	t.Run("cell outside the board", func(t *testing.T) {
		g := NewGame(lineBoard(t, 3), WithSource(fives()))
		require.NoError(t, g.SelectPairing(game.Sum))

		require.ErrorIs(t, g.SelectCell(3), game.ErrInvalidSelection)
		require.ErrorIs(t, g.SelectCell(-1), game.ErrInvalidSelection)
		require.Equal(t, AwaitingCell, g.State())
		require.Nil(t, g.Anchor())
	})
}

func TestMapping(t *testing.T) {
	g := NewGame(lineBoard(t, 3), WithSource(fives()))
	mapUpdates := 0
	g.Scores().Subscribe(game.MapScore, func() { mapUpdates++ })

	require.NoError(t, g.SelectPairing(game.Max))
	require.NoError(t, g.SelectCell(0))
	require.Equal(t, 0, mapUpdates, "Lone value should not form a map")
	g.Turn()
	require.NoError(t, g.SelectPairing(game.Min))
	require.NoError(t, g.SelectCell(1))

	for _, id := range []int{0, 1} {
		c, err := g.Board().Cell(id)
		require.NoError(t, err)
		require.True(t, c.Mapped(), "cell %d should be mapped", id)
	}
	c, _ := g.Board().Cell(2)
	require.False(t, c.Mapped())
	require.Equal(t, 1, mapUpdates)

	score := g.Scores().ScoreMaps()
	require.Equal(t, []int{6}, score.Points)
	require.Equal(t, 0, score.Bonus)
	require.Equal(t, 6, score.Total)
}

func TestComplete(t *testing.T) {
	t.Run("full board", func(t *testing.T) {
		g := NewGame(lineBoard(t, 2), WithSource(fives()))
		for id := 0; id < 2; id++ {
			require.False(t, g.Complete())
			require.NoError(t, g.SelectPairing(game.Sum))
			require.NoError(t, g.SelectCell(id))
			g.Turn()
		}
		require.True(t, g.Complete())
	})

	t.Run("every pairing capped", func(t *testing.T) {
		rules := game.NewStandardRules()
		rules.MaxChoicesPerPairing = 1
		g := NewGame(lineBoard(t, 10), WithSource(fives()), WithRules(rules))
		for _, p := range game.Pairings {
			require.NoError(t, g.SelectPairing(p))
			g.Turn()
		}
		require.True(t, g.Complete())
	})
}

func TestStateString(t *testing.T) {
	require.Equal(t, "linking", Linking.String())
	require.Equal(t, "State(9)", State(9).String())
}
