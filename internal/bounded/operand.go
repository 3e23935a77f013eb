package bounded

import (
	"fmt"
	"math"
)

// Operand is one side of a binary operator: a Bounded, a Scalar or an Array.
//
// Scalar and Array are plain numbers, treated as zero-width intervals.
// The set of implementations is closed.
type Operand interface {
	isOperand()
}

// Scalar is a plain number applied to every element.
type Scalar float64

// Array is a sequence of plain numbers applied elementwise.
type Array []float64

func (Bounded) isOperand() {}
func (Scalar) isOperand()  {}
func (Array) isOperand()   {}

func ScalarOf[T Number](v T) Scalar {
	return Scalar(float64(v))
}

func ArrayOf[T Number](vs []T) Array {
	return Array(Floats(vs...))
}

// Floats converts any numeric slice to []float64.
func Floats[T Number](vs ...T) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}

// triple is the elementwise view of an operand; plain operands have c == lo == hi.
type triple struct {
	c, lo, hi []float64
}

func (t triple) interval(i int) Interval {
	return Interval{Central: t.c[i], Lower: t.lo[i], Upper: t.hi[i]}
}

func lift(x Operand) (triple, bool, error) {
	switch x := x.(type) {
	case Bounded:
		if x.Len() == 0 {
			return triple{}, false, fmt.Errorf("%w: empty Bounded operand", ErrInvalidArgument)
		}
		return triple{c: x.central, lo: x.lower, hi: x.upper}, true, nil
	case Scalar:
		if math.IsNaN(float64(x)) {
			return triple{}, false, fmt.Errorf("%w: NaN operand", ErrInvalidArgument)
		}
		s := []float64{float64(x)}
		return triple{c: s, lo: s, hi: s}, false, nil
	case Array:
		if len(x) == 0 {
			return triple{}, false, fmt.Errorf("%w: empty Array operand", ErrInvalidArgument)
		}
		for i, v := range x {
			if math.IsNaN(v) {
				return triple{}, false, fmt.Errorf("%w: NaN operand at element %d", ErrInvalidArgument, i)
			}
		}
		return triple{c: x, lo: x, hi: x}, false, nil
	default:
		return triple{}, false, fmt.Errorf("%w: operand of type %T", ErrUnsupported, x)
	}
}

// operands lifts x and y and broadcasts them to a common length.
// At least one of them must be a Bounded; yBounded reports whether y is.
func operands(op string, x, y Operand) (a, b triple, yBounded bool, err error) {
	a, xBounded, err := lift(x)
	if err != nil {
		return triple{}, triple{}, false, fmt.Errorf("%s: left operand: %w", op, err)
	}
	b, yBounded, err = lift(y)
	if err != nil {
		return triple{}, triple{}, false, fmt.Errorf("%s: right operand: %w", op, err)
	}
	if !xBounded && !yBounded {
		return triple{}, triple{}, false, fmt.Errorf("%w: %s of %T and %T", ErrUnsupported, op, x, y)
	}
	n, err := commonLen(len(a.c), len(b.c))
	if err != nil {
		return triple{}, triple{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return a.broadcast(n), b.broadcast(n), yBounded, nil
}

func (t triple) broadcast(n int) triple {
	return triple{c: stretch(t.c, n), lo: stretch(t.lo, n), hi: stretch(t.hi, n)}
}
