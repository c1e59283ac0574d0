package game

import "fmt"

// Pairing selects how the two die values combine into a cell value.
type Pairing int

const (
	Min Pairing = iota
	Max
	Diff
	Sum
	Product
)

const NumPairings = 5

// Pairings lists every pairing in declaration order.
var Pairings = []Pairing{Min, Max, Diff, Sum, Product}

var pairingNames = [NumPairings]string{"min", "max", "diff", "sum", "product"}

func (p Pairing) Valid() bool {
	return p >= Min && p <= Product
}

func (p Pairing) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pairing(%d)", int(p))
	}
	return pairingNames[p]
}

// Pairs holds the derived value of every pairing, indexed by Pairing.
type Pairs [NumPairings]int

func (ps Pairs) Value(p Pairing) int {
	return ps[p]
}

// Pair computes the derived values of two die values.
func Pair(a, b int) Pairs {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	return Pairs{
		Min:     lo,
		Max:     hi,
		Diff:    hi - lo,
		Sum:     a + b,
		Product: a * b,
	}
}
