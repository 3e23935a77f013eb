package bounded

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Exact returns values without uncertainty: lower = upper = central.
func Exact(central []float64) (Bounded, error) {
	if _, err := commonLen(len(central)); err != nil {
		return Bounded{}, err
	}
	return newBounded(slices.Clone(central), slices.Clone(central), slices.Clone(central))
}

// FromDelta returns central ∓ |delta|.
//
// A central or delta of length 1 is broadcast to the length of the other.
func FromDelta(central, delta []float64) (Bounded, error) {
	n, err := commonLen(len(central), len(delta))
	if err != nil {
		return Bounded{}, fmt.Errorf("delta: %w", err)
	}
	c := stretch(central, n)
	d := absolute(delta, n)
	lo := make([]float64, n)
	hi := make([]float64, n)
	floats.SubTo(lo, c, d)
	floats.AddTo(hi, c, d)
	return newBounded(c, lo, hi)
}

// FromAsymmetricDelta returns [central - |deltaLow|, central + |deltaHigh|].
//
// Any of the three sequences of length 1 is broadcast to the common length.
func FromAsymmetricDelta(central, deltaLow, deltaHigh []float64) (Bounded, error) {
	n, err := commonLen(len(central), len(deltaLow), len(deltaHigh))
	if err != nil {
		return Bounded{}, fmt.Errorf("asymmetric delta: %w", err)
	}
	c := stretch(central, n)
	lo := make([]float64, n)
	hi := make([]float64, n)
	floats.SubTo(lo, c, absolute(deltaLow, n))
	floats.AddTo(hi, c, absolute(deltaHigh, n))
	return newBounded(c, lo, hi)
}

// FromBounds returns central with the explicit bounds lower and upper.
//
// lower and upper must have the same length; a central of length 1 is broadcast to it.
func FromBounds(central, lower, upper []float64) (Bounded, error) {
	if len(lower) != len(upper) {
		return Bounded{}, fmt.Errorf("%w: lower has length %d, upper has length %d", ErrShapeMismatch, len(lower), len(upper))
	}
	n, err := commonLen(len(central), len(lower))
	if err != nil {
		return Bounded{}, fmt.Errorf("bounds: %w", err)
	}
	if len(lower) != n {
		return Bounded{}, fmt.Errorf("%w: lower and upper must have the same length as central (%d)", ErrShapeMismatch, n)
	}
	return newBounded(stretch(central, n), slices.Clone(lower), slices.Clone(upper))
}

// FromCandidates returns central bounded by the elementwise minimum and maximum over xs.
func FromCandidates(central []float64, xs ...[]float64) (Bounded, error) {
	if len(xs) == 0 {
		return Bounded{}, fmt.Errorf("%w: no candidates", ErrInvalidArgument)
	}
	lens := []int{len(central)}
	for _, x := range xs {
		lens = append(lens, len(x))
	}
	n, err := commonLen(lens...)
	if err != nil {
		return Bounded{}, fmt.Errorf("candidates: %w", err)
	}
	lo := stretch(xs[0], n)
	hi := slices.Clone(lo)
	for _, x := range xs[1:] {
		x = stretch(x, n)
		for i := range x {
			lo[i] = min(lo[i], x[i])
			hi[i] = max(hi[i], x[i])
		}
	}
	return newBounded(stretch(central, n), lo, hi)
}

// FromTable builds values from a table with one row per element. The columns are
//
//	[central]                        -> Exact
//	[central, delta]                 -> FromDelta
//	[central, deltaLow, deltaHigh]   -> FromAsymmetricDelta
//
// Every row must have the same number of columns.
func FromTable(rows [][]float64) (Bounded, error) {
	if len(rows) == 0 {
		return Bounded{}, fmt.Errorf("%w: empty table", ErrInvalidArgument)
	}
	width := len(rows[0])
	if width < 1 || width > 3 {
		return Bounded{}, fmt.Errorf("%w: table has invalid shape (%d, %d)", ErrShapeMismatch, len(rows), width)
	}
	cols := make([][]float64, width)
	for i := range cols {
		cols[i] = make([]float64, len(rows))
	}
	for r, row := range rows {
		if len(row) != width {
			return Bounded{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShapeMismatch, r, len(row), width)
		}
		for c, v := range row {
			cols[c][r] = v
		}
	}
	switch width {
	case 1:
		return Exact(cols[0])
	case 2:
		return FromDelta(cols[0], cols[1])
	default:
		return FromAsymmetricDelta(cols[0], cols[1], cols[2])
	}
}

// FromIntervals joins single elements into one Bounded.
func FromIntervals(ivs []Interval) (Bounded, error) {
	c := make([]float64, len(ivs))
	lo := make([]float64, len(ivs))
	hi := make([]float64, len(ivs))
	for i, iv := range ivs {
		c[i], lo[i], hi[i] = iv.Central, iv.Lower, iv.Upper
	}
	return FromBounds(c, lo, hi)
}

// newBounded is the single place every Bounded is created; it enforces lower <= central <= upper.
func newBounded(central, lower, upper []float64) (Bounded, error) {
	if len(central) != len(lower) || len(central) != len(upper) {
		return Bounded{}, fmt.Errorf("%w: central, lower, upper values must have the same length", ErrShapeMismatch)
	}
	for i := range central {
		if iv := (Interval{Central: central[i], Lower: lower[i], Upper: upper[i]}); !iv.IsNotEmpty() {
			return Bounded{}, fmt.Errorf("%w: element %d is %s", ErrOutOfRange, i, iv)
		}
	}
	return Bounded{central: central, lower: lower, upper: upper}, nil
}

// commonLen returns the length all inputs broadcast to. A length of 1 stretches
// to match the others; any other disagreement is a shape mismatch.
func commonLen(lens ...int) (int, error) {
	n := 1
	for _, l := range lens {
		switch {
		case l == 0:
			return 0, fmt.Errorf("%w: empty sequence", ErrInvalidArgument)
		case l == 1:
		case n == 1:
			n = l
		case l != n:
			return 0, fmt.Errorf("%w: lengths %v cannot be broadcast together", ErrShapeMismatch, lens)
		}
	}
	return n, nil
}

// stretch returns a fresh copy of xs with length n, repeating xs[0] when len(xs) == 1.
func stretch(xs []float64, n int) []float64 {
	if len(xs) == n {
		return slices.Clone(xs)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = xs[0]
	}
	return out
}

func absolute(xs []float64, n int) []float64 {
	out := stretch(xs, n)
	for i, v := range out {
		out[i] = math.Abs(v)
	}
	return out
}
