package core

import (
	"fmt"
	"math"
)

// Weight is an edge cost: either a non-negative finite value or Infinity.
// The zero value is the finite weight 0.
type Weight struct {
	n   int32
	inf bool
}

// Infinity is the "no edge / unreachable" weight. It compares greater than
// every finite weight and absorbs any addition.
var Infinity = Weight{inf: true}

// NewWeight returns the finite weight n. Negative values are rejected with
// ErrNegativeWeight.
func NewWeight(n int32) (Weight, error) {
	if n < 0 {
		return Weight{}, fmt.Errorf("%w: %d", ErrNegativeWeight, n)
	}

	return Weight{n: n}, nil
}

// MustWeight is like NewWeight but panics on a negative value. Use it for
// constants and literals.
func MustWeight(n int32) Weight {
	w, err := NewWeight(n)
	if err != nil {
		panic(err)
	}

	return w
}

// IsFinite reports whether w is not Infinity.
func (w Weight) IsFinite() bool { return !w.inf }

// Value returns the finite value of w and true, or 0 and false for Infinity.
func (w Weight) Value() (int32, bool) {
	if w.inf {
		return 0, false
	}

	return w.n, true
}

// Add returns the saturating sum w+o. A finite sum that overflows int32 is
// reported as Infinity.
func (w Weight) Add(o Weight) Weight {
	if w.inf || o.inf {
		return Infinity
	}
	s := int64(w.n) + int64(o.n)
	if s > math.MaxInt32 {
		return Infinity
	}

	return Weight{n: int32(s)}
}

// Compare returns -1, 0 or +1 as w is less than, equal to or greater than o.
func (w Weight) Compare(o Weight) int {
	switch {
	case w.inf && o.inf:
		return 0
	case w.inf:
		return 1
	case o.inf:
		return -1
	case w.n < o.n:
		return -1
	case w.n > o.n:
		return 1
	default:
		return 0
	}
}

// Less reports whether w < o.
func (w Weight) Less(o Weight) bool { return w.Compare(o) < 0 }

// String renders w as "Some(n)" or "Infinity".
func (w Weight) String() string {
	if w.inf {
		return "Infinity"
	}

	return fmt.Sprintf("Some(%d)", w.n)
}

// Sum folds ws with Add starting from Some(0).
func Sum(ws ...Weight) Weight {
	var total Weight
	for _, w := range ws {
		total = total.Add(w)
	}

	return total
}
