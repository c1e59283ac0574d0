package game

import (
	"fmt"

	"circles/notify"
)

// Die is a single die with inclusive bounds. It has no value until thrown.
type Die struct {
	events notify.Notifier
	Min    int
	Max    int
	value  int
	thrown bool
}

func NewDie(r DieRange) *Die {
	if r.Max < r.Min {
		panic(fmt.Sprintf("die range [%d, %d] is empty", r.Min, r.Max))
	}
	return &Die{Min: r.Min, Max: r.Max}
}

func (d *Die) Subscribe(event notify.Event, handler notify.Handler) {
	d.events.Subscribe(event, handler)
}

// Throw samples a value uniformly from [Min, Max] and notifies.
func (d *Die) Throw(src Source) int {
	d.value = d.Min + src.Intn(d.Max-d.Min+1)
	d.thrown = true
	d.events.Publish(notify.Update)
	return d.value
}

func (d *Die) Value() (int, bool) {
	return d.value, d.thrown
}

// Dice is the pair of dice thrown every turn. Every update of either die is
// re-published by the pair.
type Dice struct {
	events    notify.Notifier
	Primary   *Die
	Secondary *Die
	src       Source
}

func NewDice(primary, secondary DieRange, src Source) *Dice {
	d := &Dice{
		Primary:   NewDie(primary),
		Secondary: NewDie(secondary),
		src:       src,
	}
	d.Primary.Subscribe(notify.Update, d.bubble)
	d.Secondary.Subscribe(notify.Update, d.bubble)
	return d
}

func (d *Dice) bubble() {
	d.events.Publish(notify.Update)
}

func (d *Dice) Subscribe(event notify.Event, handler notify.Handler) {
	d.events.Subscribe(event, handler)
}

func (d *Dice) Throw() {
	d.Primary.Throw(d.src)
	d.Secondary.Throw(d.src)
}

// Pairing returns the value of every pairing for the current throw.
func (d *Dice) Pairing() (Pairs, error) {
	a, okA := d.Primary.Value()
	b, okB := d.Secondary.Value()
	if !okA || !okB {
		return Pairs{}, fmt.Errorf("%w: dice have not been thrown", ErrIncompleteScore)
	}
	return Pair(a, b), nil
}

func (d *Dice) Value(p Pairing) (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: unknown pairing %d", ErrInvalidSelection, int(p))
	}
	pairs, err := d.Pairing()
	if err != nil {
		return 0, err
	}
	return pairs.Value(p), nil
}
