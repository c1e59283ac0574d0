package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource returns its values in order, wrapped into [0, n).
type scriptedSource struct {
	values []int
	next   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

// lineBoard builds cells 0..n-1 where each cell neighbours the next.
func lineBoard(t *testing.T, n int) *Board {
	t.Helper()
	adjacency := map[int][]int{}
	for i := 0; i+1 < n; i++ {
		adjacency[i] = append(adjacency[i], i+1)
		adjacency[i+1] = append(adjacency[i+1], i)
	}
	b, err := NewBoard(n, adjacency)
	require.NoError(t, err)
	return b
}

func setValues(t *testing.T, b *Board, values map[int]int) {
	t.Helper()
	for id, v := range values {
		require.NoError(t, b.SetValue(id, v))
	}
}

func cell(t *testing.T, b *Board, id int) *Cell {
	t.Helper()
	c, err := b.Cell(id)
	require.NoError(t, err)
	return c
}

func ids(cells []*Cell) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = c.ID()
	}
	return out
}
