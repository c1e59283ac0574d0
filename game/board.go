package game

import (
	"fmt"

	"circles/notify"
)

// Cell is a circle of the board. It starts without a value and may be
// mapped once it joins a same-value neighbour.
type Cell struct {
	events    notify.Notifier
	id        int
	value     int
	valued    bool
	mapped    bool
	neighbors []int
}

func (c *Cell) String() string {
	if !c.valued {
		return fmt.Sprintf("C%d:/", c.id)
	}
	return fmt.Sprintf("C%d:%d", c.id, c.value)
}

func (c *Cell) Subscribe(event notify.Event, handler notify.Handler) {
	c.events.Subscribe(event, handler)
}

func (c *Cell) ID() int {
	return c.id
}

func (c *Cell) Value() (int, bool) {
	return c.value, c.valued
}

func (c *Cell) HasValue() bool {
	return c.valued
}

func (c *Cell) Mapped() bool {
	return c.mapped
}

// Neighbors returns the ids adjacent to the cell, in the order supplied.
func (c *Cell) Neighbors() []int {
	neighbors := make([]int, len(c.neighbors))
	copy(neighbors, c.neighbors)
	return neighbors
}

// IsConnected reports whether id is listed as a neighbour of the cell.
func (c *Cell) IsConnected(id int) bool {
	return contains(c.neighbors, id)
}

// Board is the fixed graph of cells. Cell ids are indices into Cells and
// never change after construction.
type Board struct {
	cells []*Cell
}

// NewBoard builds a board of cellCount cells. Adjacency is kept as given,
// directed or not; duplicate neighbours are dropped.
func NewBoard(cellCount int, adjacency map[int][]int) (*Board, error) {
	if cellCount <= 0 {
		return nil, fmt.Errorf("board must have at least one cell, got %d", cellCount)
	}
	b := &Board{cells: make([]*Cell, cellCount)}
	for id := range b.cells {
		b.cells[id] = &Cell{id: id}
	}
	for id, neighbors := range adjacency {
		if !b.valid(id) {
			return nil, fmt.Errorf("adjacency lists unknown cell %d", id)
		}
		for _, n := range neighbors {
			if !b.valid(n) {
				return nil, fmt.Errorf("cell %d lists unknown neighbour %d", id, n)
			}
			b.addNeighbor(id, n)
		}
	}
	return b, nil
}

// addNeighbor adds a directed link from one cell to another.
func (b *Board) addNeighbor(id, neighbor int) {
	if !contains(b.cells[id].neighbors, neighbor) {
		b.cells[id].neighbors = append(b.cells[id].neighbors, neighbor)
	}
}

// contains checks if a slice contains a specific item. (avoid duplicate neighbours)
func contains(slice []int, item int) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}

func (b *Board) valid(id int) bool {
	return id >= 0 && id < len(b.cells)
}

func (b *Board) Len() int {
	return len(b.cells)
}

// Cells returns the cells in id order.
func (b *Board) Cells() []*Cell {
	cells := make([]*Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

func (b *Board) Cell(id int) (*Cell, error) {
	if !b.valid(id) {
		return nil, fmt.Errorf("%w: cell %d is not on the board", ErrInvalidSelection, id)
	}
	return b.cells[id], nil
}

func (b *Board) Neighbors(id int) ([]int, error) {
	c, err := b.Cell(id)
	if err != nil {
		return nil, err
	}
	return c.Neighbors(), nil
}

// AreAdjacent checks if id2 is listed as a neighbour of id1.
func (b *Board) AreAdjacent(id1, id2 int) bool {
	return b.valid(id1) && b.cells[id1].IsConnected(id2)
}

// SetValue assigns v to the cell and notifies its listeners.
func (b *Board) SetValue(id, v int) error {
	c, err := b.Cell(id)
	if err != nil {
		return err
	}
	c.value = v
	c.valued = true
	c.events.Publish(notify.Update)
	return nil
}

// SetMapped marks the cell as part of a map. The flag is never cleared.
func (b *Board) SetMapped(id int) error {
	c, err := b.Cell(id)
	if err != nil {
		return err
	}
	c.mapped = true
	c.events.Publish(notify.Update)
	return nil
}

// Complete reports whether every cell has a value.
func (b *Board) Complete() bool {
	for _, c := range b.cells {
		if !c.valued {
			return false
		}
	}
	return true
}

// Free returns the ids of the cells without a value.
func (b *Board) Free() []int {
	var free []int
	for _, c := range b.cells {
		if !c.valued {
			free = append(free, c.id)
		}
	}
	return free
}
