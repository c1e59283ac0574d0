package game

type Rules interface {
	MaxChoices() int
	PrimaryDie() DieRange
	SecondaryDie() DieRange
	Bonus(size int) int
}

// DieRange holds the inclusive bounds of a die.
type DieRange struct {
	Min int
	Max int
}
