package engine

import (
	"fmt"
	"time"

	"circles/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var _ Commands = (*Game)(nil)

// Game sequences turns, applies selections and assigns values. All commands
// run synchronously; listeners fire before a command returns.
type Game struct {
	id      uuid.UUID
	rules   game.Rules
	src     game.Source
	dice    *game.Dice
	choices *game.Choices
	board   *game.Board
	paths   *game.Paths
	scores  *game.Scores

	pending    int
	hasPending bool
	anchor     *game.Cell
	turns      int
}

// NewGame starts a game on board and throws the dice for the first turn.
func NewGame(board *game.Board, options ...Option) *Game {
	g := &Game{ // Default values
		id:    uuid.New(),
		rules: game.NewStandardRules(),
		board: board,
	}
	for _, option := range options {
		option(g)
	}
	if g.src == nil {
		g.src = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	g.dice = game.NewDice(g.rules.PrimaryDie(), g.rules.SecondaryDie(), g.src)
	g.choices = game.NewChoices(g.rules.MaxChoices())
	g.paths = game.NewPaths()
	g.scores = game.NewScores(board, g.paths, g.rules)

	log.Debug().Str("game", g.id.String()).Int("cells", board.Len()).Msg("game created")
	g.Turn()
	return g
}

// Turn throws the dice and clears the selection of the previous turn.
func (g *Game) Turn() {
	g.dice.Throw()
	g.hasPending = false
	g.pending = 0
	g.anchor = nil
	g.turns++

	pairs, _ := g.dice.Pairing()
	log.Debug().Str("game", g.id.String()).Int("turn", g.turns).Ints("pairs", pairs[:]).Msg("dice thrown")
}

// SelectPairing uses one of the pairing's choices and makes its value the
// pending value of the turn. A capped pairing is rejected without changes.
func (g *Game) SelectPairing(p game.Pairing) error {
	if !g.choices.Available(p) {
		log.Warn().Str("game", g.id.String()).Stringer("pairing", p).Msg("pairing rejected")
		return fmt.Errorf("%w: pairing %s has no choices left", game.ErrInvalidSelection, p)
	}
	v, err := g.dice.Value(p)
	if err != nil {
		return err
	}

	g.choices.Check(p)
	g.pending = v
	g.hasPending = true
	log.Debug().Str("game", g.id.String()).Stringer("pairing", p).Int("value", v).Msg("pairing selected")

	g.assign()
	return nil
}

// SelectCell sets the anchor of the turn, or links the cell to the anchor
// once one is set. The anchor never moves within a turn.
func (g *Game) SelectCell(id int) error {
	c, err := g.board.Cell(id)
	if err != nil {
		log.Warn().Str("game", g.id.String()).Int("cell", id).Msg("cell rejected")
		return err
	}

	if g.anchor == nil {
		g.anchor = c
		log.Debug().Str("game", g.id.String()).Int("cell", id).Msg("anchor selected")
		g.assign()
		return nil
	}

	log.Debug().Str("game", g.id.String()).Int("anchor", g.anchor.ID()).Int("cell", id).Msg("cells linked")
	g.paths.Connect(g.anchor, c)
	return nil
}

// assign gives the pending value to an anchor without a value, then maps it
// with the first neighbour holding the same value.
func (g *Game) assign() {
	if !g.hasPending || g.anchor == nil || g.anchor.HasValue() {
		return
	}
	anchor := g.anchor
	if err := g.board.SetValue(anchor.ID(), g.pending); err != nil {
		panic(fmt.Sprintf("anchor %d is not on the board: %v", anchor.ID(), err))
	}
	log.Debug().Str("game", g.id.String()).Int("cell", anchor.ID()).Int("value", g.pending).Msg("value assigned")

	if anchor.Mapped() {
		return
	}
	for _, id := range anchor.Neighbors() {
		neighbor, err := g.board.Cell(id)
		if err != nil {
			continue
		}
		if v, ok := neighbor.Value(); ok && v == g.pending {
			g.board.SetMapped(anchor.ID())
			g.board.SetMapped(id)
			log.Debug().Str("game", g.id.String()).Int("cell", anchor.ID()).Int("neighbor", id).Msg("map formed")
			g.scores.MapsChanged()
			return
		}
	}
}

func (g *Game) State() State {
	switch {
	case g.anchor != nil:
		return Linking
	case g.hasPending:
		return AwaitingCell
	default:
		return AwaitingPairing
	}
}

// Pending returns the value waiting to be assigned this turn.
func (g *Game) Pending() (int, bool) {
	return g.pending, g.hasPending
}

// Anchor returns the anchor cell of the turn, or nil.
func (g *Game) Anchor() *game.Cell {
	return g.anchor
}

// Complete reports whether the board is full or no pairing can be chosen.
// The engine never stops on its own; callers decide when to end.
func (g *Game) Complete() bool {
	return g.board.Complete() || g.choices.Exhausted()
}

func (g *Game) ID() uuid.UUID { return g.id }
func (g *Game) Turns() int { return g.turns }
func (g *Game) Rules() game.Rules { return g.rules }
func (g *Game) Dice() *game.Dice { return g.dice }
func (g *Game) Choices() *game.Choices { return g.choices }
func (g *Game) Board() *game.Board { return g.board }
func (g *Game) Paths() *game.Paths { return g.paths }
func (g *Game) Scores() *game.Scores { return g.scores }
