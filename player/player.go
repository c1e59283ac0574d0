package player

import (
	"circles/engine"
	"circles/game"
)

// Move records what a player did in one turn.
type Move struct {
	Turn    int
	Pairing game.Pairing
	Value   int
	Cell    int
	Links   []int
}

// Random plays a game by choosing an available pairing and a free cell at
// random each turn, then linking the cell to a few valued neighbours.
type Random struct {
	game     *engine.Game
	src      game.Source
	maxLinks int
}

func NewRandom(g *engine.Game, src game.Source, maxLinks int) *Random {
	return &Random{
		game:     g,
		src:      src,
		maxLinks: maxLinks,
	}
}

// Play takes turns until the game is complete and returns the moves made.
func (p *Random) Play() ([]Move, error) {
	var moves []Move
	for !p.game.Complete() {
		move, ok, err := p.TakeTurn()
		if err != nil {
			return moves, err
		}
		if !ok {
			break
		}
		moves = append(moves, move)
		p.game.Turn()
	}
	return moves, nil
}

// TakeTurn plays the current turn. It reports false when no pairing or no
// free cell is left.
func (p *Random) TakeTurn() (Move, bool, error) {
	pairings := p.availablePairings()
	free := p.game.Board().Free()
	if len(pairings) == 0 || len(free) == 0 {
		return Move{}, false, nil
	}

	move := Move{
		Turn:    p.game.Turns(),
		Pairing: pairings[p.src.Intn(len(pairings))],
		Cell:    free[p.src.Intn(len(free))],
	}
	if err := p.game.SelectPairing(move.Pairing); err != nil {
		return move, false, err
	}
	if err := p.game.SelectCell(move.Cell); err != nil {
		return move, false, err
	}
	move.Value, _ = p.game.Pending()

	// Only valued cells are linked so every path keeps a scorable tail.
	candidates := p.valuedNeighbors(move.Cell)
	for len(move.Links) < p.maxLinks && len(candidates) > 0 {
		i := p.src.Intn(len(candidates))
		id := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)
		if err := p.game.SelectCell(id); err != nil {
			return move, false, err
		}
		move.Links = append(move.Links, id)
	}
	return move, true, nil
}

func (p *Random) availablePairings() []game.Pairing {
	var pairings []game.Pairing
	for _, pairing := range game.Pairings {
		if p.game.Choices().Available(pairing) {
			pairings = append(pairings, pairing)
		}
	}
	return pairings
}

func (p *Random) valuedNeighbors(id int) []int {
	neighbors, err := p.game.Board().Neighbors(id)
	if err != nil {
		return nil
	}
	var valued []int
	for _, n := range neighbors {
		c, err := p.game.Board().Cell(n)
		if err == nil && c.HasValue() {
			valued = append(valued, n)
		}
	}
	return valued
}
