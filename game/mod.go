package game

import "circles/notify"

// Source supplies randomness for dice throws. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Source interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}

// Subscriber is implemented by every stateful entity of the game.
type Subscriber interface {
	Subscribe(event notify.Event, handler notify.Handler)
}

var (
	_ Subscriber = (*Die)(nil)
	_ Subscriber = (*Dice)(nil)
	_ Subscriber = (*Choices)(nil)
	_ Subscriber = (*Cell)(nil)
	_ Subscriber = (*Paths)(nil)
	_ Subscriber = (*Scores)(nil)
	_ Rules      = (*StandardRules)(nil)
)
