package game

import (
	"fmt"

	"circles/notify"
)

const (
	// PathScore is published by Scores whenever the paths change.
	PathScore notify.Event = "path"
	// MapScore is published by Scores whenever a new map is formed.
	MapScore notify.Event = "map"
)

// Score is the outcome of one scoring pass.
type Score struct {
	Points []int
	Bonus  int
	Total  int
}

func newScore(points []int, largest int, bonus func(int) int) Score {
	s := Score{Points: points, Bonus: bonus(largest)}
	for _, p := range points {
		s.Total += p
	}
	s.Total += s.Bonus
	return s
}

// Group is a set of connected cells sharing a value.
type Group struct {
	Value int
	Cells []*Cell
}

// touches reports whether any member lists c as a neighbour.
func (g *Group) touches(c *Cell) bool {
	for _, m := range g.Cells {
		if m.IsConnected(c.ID()) {
			return true
		}
	}
	return false
}

// Scores computes path and map scores from the current state. Both passes
// are pure: they read the board and paths without changing them.
type Scores struct {
	events notify.Notifier
	board  *Board
	paths  *Paths
	bonus  func(size int) int
}

func NewScores(board *Board, paths *Paths, rules Rules) *Scores {
	s := &Scores{
		board: board,
		paths: paths,
		bonus: rules.Bonus,
	}
	paths.Subscribe(notify.Update, func() { s.events.Publish(PathScore) })
	return s
}

func (s *Scores) Subscribe(event notify.Event, handler notify.Handler) {
	s.events.Subscribe(event, handler)
}

// MapsChanged tells listeners that the map score must be recomputed.
func (s *Scores) MapsChanged() {
	s.events.Publish(MapScore)
}

// ScorePaths scores every path by its tail value plus its length minus one.
// The bonus goes to the longest path.
func (s *Scores) ScorePaths() (Score, error) {
	paths := s.paths.All()
	points := make([]int, 0, len(paths))
	largest := 0
	for _, p := range paths {
		tail := p.Tail()
		v, ok := tail.Value()
		if !ok {
			return Score{}, fmt.Errorf("%w: path ending at cell %d has no value", ErrIncompleteScore, tail.ID())
		}
		points = append(points, v+p.Len()-1)
		largest = max(largest, p.Len())
	}
	return newScore(points, largest, s.bonus), nil
}

// Maps groups valued cells into same-value connected regions of at least
// two cells, in the order the regions were first seen.
func (s *Scores) Maps() []*Group {
	var groups []*Group
	for _, c := range s.board.cells {
		v, ok := c.Value()
		if !ok {
			continue
		}
		var first *Group
		next := make([]*Group, 0, len(groups)+1)
		for _, g := range groups {
			if g.Value != v || !g.touches(c) {
				next = append(next, g)
				continue
			}
			if first == nil {
				g.Cells = append(g.Cells, c)
				first = g
				next = append(next, g)
				continue
			}
			// c bridges two regions
			first.Cells = append(first.Cells, g.Cells...)
		}
		if first == nil {
			next = append(next, &Group{Value: v, Cells: []*Cell{c}})
		}
		groups = next
	}

	maps := groups[:0]
	for _, g := range groups {
		if len(g.Cells) > 1 {
			maps = append(maps, g)
		}
	}
	return maps
}

// ScoreMaps scores every map by its value plus its size minus one. The
// bonus goes to the largest map.
func (s *Scores) ScoreMaps() Score {
	maps := s.Maps()
	points := make([]int, 0, len(maps))
	largest := 0
	for _, g := range maps {
		points = append(points, g.Value+len(g.Cells)-1)
		largest = max(largest, len(g.Cells))
	}
	return newScore(points, largest, s.bonus)
}
