package game

import (
	"fmt"

	"circles/notify"
)

// Choices counts how often each pairing has been used in the game.
type Choices struct {
	events notify.Notifier
	counts [NumPairings]int
	max    int
}

func NewChoices(max int) *Choices {
	return &Choices{max: max}
}

func (c *Choices) Subscribe(event notify.Event, handler notify.Handler) {
	c.events.Subscribe(event, handler)
}

// Check records one use of p. Callers must test Available first; checking a
// capped pairing is a programming error.
func (c *Choices) Check(p Pairing) {
	if !c.Available(p) {
		panic(fmt.Sprintf("pairing %s checked beyond its cap of %d", p, c.max))
	}
	c.counts[p]++
	c.events.Publish(notify.Update)
}

func (c *Choices) Count(p Pairing) int {
	return c.counts[p]
}

func (c *Choices) Max() int {
	return c.max
}

func (c *Choices) Available(p Pairing) bool {
	return p.Valid() && c.counts[p] < c.max
}

// Remaining returns the number of checks left across all pairings.
func (c *Choices) Remaining() int {
	remaining := 0
	for _, count := range c.counts {
		remaining += c.max - count
	}
	return remaining
}

func (c *Choices) Exhausted() bool {
	return c.Remaining() == 0
}
