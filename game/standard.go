package game

import "circles/meta"

// bonusPoints are awarded to groups of size 3, 4 and 5.
var bonusPoints = []int{1, 3, 6}

type StandardRules struct {
	MaxChoicesPerPairing int
	Primary              DieRange
	Secondary            DieRange
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		MaxChoicesPerPairing: meta.MAX_CHOICES,
		Primary:              DieRange{Min: meta.PRIMARY_MIN, Max: meta.PRIMARY_MAX},
		Secondary:            DieRange{Min: meta.SECONDARY_MIN, Max: meta.SECONDARY_MAX},
	}
}

func (sr *StandardRules) MaxChoices() int {
	return sr.MaxChoicesPerPairing
}

func (sr *StandardRules) PrimaryDie() DieRange {
	return sr.Primary
}

func (sr *StandardRules) SecondaryDie() DieRange {
	return sr.Secondary
}

func (sr *StandardRules) Bonus(size int) int {
	return BonusFor(size)
}

// BonusFor returns the bonus granted to the largest group of a scoring pass.
// Groups under 3 cells earn nothing, sizes 3 to 5 follow bonusPoints and
// every larger group earns 5 points per cell beyond the fourth.
func BonusFor(size int) int {
	if size < 3 {
		return 0
	}
	if size < 3+len(bonusPoints) {
		return bonusPoints[size-3]
	}
	return 5 * (size - 4)
}
