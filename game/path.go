package game

import (
	"sort"

	"circles/notify"
	"circles/utils"
)

// Path is an ordered group of linked cells, sorted by value ascending at
// the time of the last link. Cells without a value sort after valued ones.
type Path struct {
	cells []*Cell
}

func newPath(cells ...*Cell) *Path {
	p := &Path{cells: cells}
	p.sort()
	return p
}

func (p *Path) sort() {
	sort.SliceStable(p.cells, func(i, j int) bool {
		vi, oki := p.cells[i].Value()
		vj, okj := p.cells[j].Value()
		if oki != okj {
			return oki
		}
		return vi < vj
	})
}

func (p *Path) Contains(c *Cell) bool {
	return utils.FindIndex(p.cells, c) >= 0
}

func (p *Path) Len() int {
	return len(p.cells)
}

// Cells returns the members in path order.
func (p *Path) Cells() []*Cell {
	cells := make([]*Cell, len(p.cells))
	copy(cells, p.cells)
	return cells
}

// Tail returns the last cell, the highest valued at the last sort.
func (p *Path) Tail() *Cell {
	return p.cells[len(p.cells)-1]
}

func (p *Path) add(c *Cell) {
	p.cells = append(p.cells, c)
	p.sort()
}

func (p *Path) merge(other *Path) {
	p.cells = append(p.cells, other.cells...)
	p.sort()
}

// Paths is the partition of linked cells into disjoint paths.
type Paths struct {
	events notify.Notifier
	paths  []*Path
}

func NewPaths() *Paths {
	return &Paths{}
}

func (ps *Paths) Subscribe(event notify.Event, handler notify.Handler) {
	ps.events.Subscribe(event, handler)
}

// Find returns the path containing c, or nil.
func (ps *Paths) Find(c *Cell) *Path {
	for _, p := range ps.paths {
		if p.Contains(c) {
			return p
		}
	}
	return nil
}

func (ps *Paths) Len() int {
	return len(ps.paths)
}

// All returns the paths in creation order.
func (ps *Paths) All() []*Path {
	paths := make([]*Path, len(ps.paths))
	copy(paths, ps.paths)
	return paths
}

// Connect links other to anchor:
//   - other already in a path: anchor joins it, bringing its own path along
//   - otherwise other joins the anchor's path, or a new path holds both
//
// Linking two cells already sharing a path only re-sorts it. Linking a cell
// to itself changes nothing unless it already belongs to a path.
func (ps *Paths) Connect(anchor, other *Cell) {
	pathOfAnchor := ps.Find(anchor)
	found := ps.Find(other)

	switch {
	case found != nil && pathOfAnchor == nil:
		found.add(anchor)
	case found != nil && pathOfAnchor != found:
		found.merge(pathOfAnchor)
		ps.paths = utils.Remove(ps.paths, pathOfAnchor)
	case found != nil:
		found.sort()
	case pathOfAnchor != nil:
		pathOfAnchor.add(other)
	case anchor == other:
		return
	default:
		ps.paths = append(ps.paths, newPath(other, anchor))
	}
	ps.events.Publish(notify.Update)
}

// Largest returns the size of the longest path, 0 when there is none.
func (ps *Paths) Largest() int {
	largest := 0
	for _, p := range ps.paths {
		largest = max(largest, p.Len())
	}
	return largest
}
