package engine

import (
	"fmt"

	"circles/game"

	"github.com/google/uuid"
)

// State is the selection phase of the current turn.
type State int

const (
	// AwaitingPairing: dice thrown, no pairing chosen and no cell selected.
	AwaitingPairing State = iota
	// AwaitingCell: a pairing value is pending, no anchor cell yet.
	AwaitingCell
	// Linking: an anchor cell is selected; further cells link to it.
	Linking
)

func (s State) String() string {
	switch s {
	case AwaitingPairing:
		return "awaiting-pairing"
	case AwaitingCell:
		return "awaiting-cell"
	case Linking:
		return "linking"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Commands is the surface the presentation layer drives.
type Commands interface {
	Turn()
	SelectPairing(p game.Pairing) error
	SelectCell(id int) error
}

type Option func(g *Game)

func WithRules(rules game.Rules) Option {
	return func(g *Game) {
		if rules != nil {
			g.rules = rules
		}
	}
}

// WithSource sets the randomness used for dice throws.
func WithSource(src game.Source) Option {
	return func(g *Game) {
		if src != nil {
			g.src = src
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}
