// Package bounded implements numbers bounded by lower and upper limits of
// uncertainty, and the interval arithmetic that propagates those limits.
//
// A Bounded is a sequence of elements, each a central value c with bounds
// l <= c <= u. Operators work elementwise and yield, for every element, the
// smallest interval containing every result obtainable from values picked
// inside the operand intervals.
package bounded

import (
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Bounded is an immutable sequence of central values with lower and upper bounds.
//
// The zero value is an empty Bounded; use one of the constructors (Exact,
// FromDelta, FromAsymmetricDelta, FromBounds, FromCandidates, FromTable) to
// obtain a valid one.
type Bounded struct {
	central []float64
	lower   []float64
	upper   []float64
}

func (b Bounded) Len() int {
	return len(b.central)
}

// Central returns a copy of the central values.
func (b Bounded) Central() []float64 {
	return slices.Clone(b.central)
}

// Lower returns a copy of the lower bounds.
func (b Bounded) Lower() []float64 {
	return slices.Clone(b.lower)
}

// Upper returns a copy of the upper bounds.
func (b Bounded) Upper() []float64 {
	return slices.Clone(b.upper)
}

// At returns the i-th element. It panics if i is out of range.
func (b Bounded) At(i int) Interval {
	return Interval{Central: b.central[i], Lower: b.lower[i], Upper: b.upper[i]}
}

// Intervals returns every element as an Interval.
func (b Bounded) Intervals() []Interval {
	out := make([]Interval, b.Len())
	for i := range out {
		out[i] = b.At(i)
	}
	return out
}

// Delta returns the symmetric errors max(central-lower, upper-central).
func (b Bounded) Delta() []float64 {
	below, above := b.errors()
	for i := range below {
		below[i] = max(below[i], above[i])
	}
	return below
}

// AsymmetricError returns the 2×N matrix whose row 0 is central-lower and row 1 is upper-central.
// It is nil for the empty zero value, since mat has no zero-width matrices.
func (b Bounded) AsymmetricError() *mat.Dense {
	if b.Len() == 0 {
		return nil
	}
	below, above := b.errors()
	return mat.NewDense(2, b.Len(), append(below, above...))
}

func (b Bounded) errors() (below, above []float64) {
	below = make([]float64, b.Len())
	above = make([]float64, b.Len())
	floats.SubTo(below, b.central, b.lower)
	floats.SubTo(above, b.upper, b.central)
	return below, above
}

// Equal reports whether b and other hold exactly the same central, lower and upper values.
func (b Bounded) Equal(other Bounded) bool {
	return floats.Equal(b.central, other.central) &&
		floats.Equal(b.lower, other.lower) &&
		floats.Equal(b.upper, other.upper)
}

func (b Bounded) String() string {
	parts := make([]string, b.Len())
	for i := range parts {
		parts[i] = b.At(i).String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
