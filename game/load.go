package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed boards/default.yaml
var defaultBoard []byte

// boardFile is the YAML form of a board topology. Either adjacency or edges
// may be given; edges are directed (i, j) pairs.
type boardFile struct {
	Cells     int           `yaml:"cells"`
	Adjacency map[int][]int `yaml:"adjacency"`
	Edges     [][]int       `yaml:"edges"`
}

// LoadBoard reads a board topology from YAML. When cells is omitted the
// count is one more than the highest id mentioned.
func LoadBoard(r io.Reader) (*Board, error) {
	var bf boardFile
	if err := yaml.NewDecoder(r).Decode(&bf); err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}

	adjacency := make(map[int][]int, len(bf.Adjacency))
	highest := -1
	for id, neighbors := range bf.Adjacency {
		adjacency[id] = append(adjacency[id], neighbors...)
		highest = max(highest, id)
		for _, n := range neighbors {
			highest = max(highest, n)
		}
	}
	for i, edge := range bf.Edges {
		if len(edge) != 2 {
			return nil, fmt.Errorf("edge %d has %d ends, want 2", i, len(edge))
		}
		adjacency[edge[0]] = append(adjacency[edge[0]], edge[1])
		highest = max(highest, edge[0], edge[1])
	}

	cells := bf.Cells
	if cells == 0 {
		cells = highest + 1
	}
	return NewBoard(cells, adjacency)
}

func LoadBoardFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open board file: %w", err)
	}
	defer f.Close()
	return LoadBoard(f)
}

// DefaultBoard returns a fresh copy of the embedded hexagonal board.
func DefaultBoard() *Board {
	b, err := LoadBoard(bytes.NewReader(defaultBoard))
	if err != nil {
		panic(fmt.Sprintf("embedded board is invalid: %v", err))
	}
	return b
}
