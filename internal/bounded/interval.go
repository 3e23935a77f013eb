package bounded

import (
	"fmt"
	"math"
	"strconv"
)

// Interval is a single element of a Bounded: a central value together with
// the closed range [Lower, Upper] that bounds it.
//
// An infinite Lower (-Inf) or Upper (+Inf) means that side is unbounded.
type Interval struct {
	Central float64
	Lower   float64
	Upper   float64
}

// NewInterval returns the interval [lower, upper] around central.
// It fails with ErrOutOfRange unless lower <= central <= upper.
func NewInterval(central, lower, upper float64) (Interval, error) {
	iv := Interval{Central: central, Lower: lower, Upper: upper}
	if !iv.IsNotEmpty() {
		return Interval{}, fmt.Errorf("%w: %s", ErrOutOfRange, iv.format(-1, true))
	}
	return iv, nil
}

// NewSingleValueInterval returns the zero-width interval [v, v].
func NewSingleValueInterval(v float64) Interval {
	return Interval{Central: v, Lower: v, Upper: v}
}

// IsNotEmpty reports whether Lower <= Central <= Upper. NaN on any side makes it false.
func (iv Interval) IsNotEmpty() bool {
	return iv.Lower <= iv.Central && iv.Central <= iv.Upper
}

// Contains reports whether v lies within [Lower, Upper].
// Returns false if the interval itself is invalid.
func (iv Interval) Contains(v float64) bool {
	if !iv.IsNotEmpty() {
		return false
	}
	return iv.Lower <= v && v <= iv.Upper
}

// ContainsZero reports whether the interval crosses (or touches) zero, i.e. Lower <= 0 <= Upper.
func (iv Interval) ContainsZero() bool {
	return iv.Lower <= 0 && 0 <= iv.Upper
}

func (iv Interval) IsLowerBounded() bool {
	return !math.IsInf(iv.Lower, -1)
}

func (iv Interval) IsUpperBounded() bool {
	return !math.IsInf(iv.Upper, 1)
}

func (iv Interval) IsUnbounded() bool {
	return !iv.IsLowerBounded() && !iv.IsUpperBounded()
}

// IsSingleValue reports whether the interval has zero width.
func (iv Interval) IsSingleValue() bool {
	return iv.Lower == iv.Upper
}

func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// Reciprocal returns the smallest interval containing 1/v for every v in [Lower, Upper].
//
// An interval that touches or crosses zero has an unbounded reciprocal:
//   - Lower < 0 < Upper, or Lower == Upper == 0 -> [-Inf, +Inf]
//   - Lower == 0 < Upper                       -> [1/Upper, +Inf]
//   - Lower < 0 == Upper                       -> [-Inf, 1/Lower]
//
// A zero Central maps to the infinity on the side the interval extends to.
func (iv Interval) Reciprocal() Interval {
	if !iv.ContainsZero() {
		return Interval{Central: 1 / iv.Central, Lower: 1 / iv.Upper, Upper: 1 / iv.Lower}
	}
	r := Interval{Central: 1 / iv.Central, Lower: math.Inf(-1), Upper: math.Inf(1)}
	switch {
	case iv.Lower == 0 && iv.Upper > 0:
		r.Lower = 1 / iv.Upper
		if iv.Central == 0 {
			r.Central = math.Inf(1)
		}
	case iv.Lower < 0 && iv.Upper == 0:
		r.Upper = 1 / iv.Lower
		if iv.Central == 0 {
			r.Central = math.Inf(-1)
		}
	}
	return r
}

func formatFloat(v float64, prec int, showInfty bool) string {
	if showInfty {
		if math.IsInf(v, 1) {
			return "∞"
		}
		if math.IsInf(v, -1) {
			return "-∞"
		}
	}
	return strconv.FormatFloat(v, 'g', prec, 64)
}

// format returns a string representation of the interval.
// If showInfty=true it uses "∞"/"-∞" for unbounded sides; if false it writes them as "+Inf"/"-Inf"
// (useful for producing parseable strings consumed by ParseInterval).
//
// Rules:
//  1. A zero-width interval is written as its central value, "C".
//  2. Otherwise the bounds follow the central value: "C[L,U]" (parseable) or "C [L, U]" (human).
func (iv Interval) format(prec int, showInfty bool) string {
	c := formatFloat(iv.Central, prec, showInfty)
	if iv.IsSingleValue() && iv.Central == iv.Lower {
		return c
	}
	lo := formatFloat(iv.Lower, prec, showInfty)
	hi := formatFloat(iv.Upper, prec, showInfty)
	if showInfty {
		return fmt.Sprintf("%s [%s, %s]", c, lo, hi)
	}
	return fmt.Sprintf("%s[%s,%s]", c, lo, hi)
}

// Format returns the human-friendly representation with prec significant digits (-1 for the shortest exact form).
func (iv Interval) Format(prec int) string {
	return iv.format(prec, true)
}

// String implements fmt.Stringer, returning a human-friendly representation (unbounded sides shown with ∞).
func (iv Interval) String() string {
	return iv.format(-1, true)
}

// ToParseableString returns a string that can be parsed back by ParseInterval.
func (iv Interval) ToParseableString() string {
	return iv.format(-1, false)
}
