package bounded

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Pos returns b unchanged.
func (b Bounded) Pos() Bounded {
	return b
}

// Neg returns -b; the bounds swap sides.
func (b Bounded) Neg() (Bounded, error) {
	c := b.Central()
	lo := b.Lower()
	hi := b.Upper()
	floats.Scale(-1, c)
	floats.Scale(-1, lo)
	floats.Scale(-1, hi)
	return FromCandidates(c, lo, hi)
}

func (b Bounded) Add(y Operand) (Bounded, error) { return Add(b, y) }
func (b Bounded) Sub(y Operand) (Bounded, error) { return Sub(b, y) }
func (b Bounded) Mul(y Operand) (Bounded, error) { return Mul(b, y) }
func (b Bounded) Div(y Operand) (Bounded, error) { return Div(b, y) }

// Add returns x + y. Addition is monotonic in both operands, so the bounds add independently.
func Add(x, y Operand) (Bounded, error) {
	a, b, _, err := operands("add", x, y)
	if err != nil {
		return Bounded{}, err
	}
	floats.Add(a.c, b.c)
	floats.Add(a.lo, b.lo)
	floats.Add(a.hi, b.hi)
	return FromBounds(a.c, a.lo, a.hi)
}

// Sub returns x - y: [x.lower - y.upper, x.upper - y.lower].
func Sub(x, y Operand) (Bounded, error) {
	a, b, _, err := operands("sub", x, y)
	if err != nil {
		return Bounded{}, err
	}
	n := len(a.c)
	c := make([]float64, n)
	lo := make([]float64, n)
	hi := make([]float64, n)
	floats.SubTo(c, a.c, b.c)
	floats.SubTo(lo, a.lo, b.hi)
	floats.SubTo(hi, a.hi, b.lo)
	return FromBounds(c, lo, hi)
}

// Mul returns x * y, bounded by the extremes of the four corner products.
func Mul(x, y Operand) (Bounded, error) {
	a, b, _, err := operands("mul", x, y)
	if err != nil {
		return Bounded{}, err
	}
	return mul(a, b)
}

// Div returns x / y.
//
// A Bounded divisor is replaced by its reciprocal interval (see Interval.Reciprocal),
// which is unbounded when the divisor touches zero. A plain divisor divides both
// bounds directly and must not be zero.
func Div(x, y Operand) (Bounded, error) {
	a, b, yBounded, err := operands("div", x, y)
	if err != nil {
		return Bounded{}, err
	}
	if yBounded {
		r := triple{
			c:  make([]float64, len(b.c)),
			lo: make([]float64, len(b.c)),
			hi: make([]float64, len(b.c)),
		}
		for i := range b.c {
			iv := b.interval(i).Reciprocal()
			r.c[i], r.lo[i], r.hi[i] = iv.Central, iv.Lower, iv.Upper
		}
		return mul(a, r)
	}
	for i, v := range b.c {
		if v == 0 {
			return Bounded{}, fmt.Errorf("div: %w at element %d", ErrDivideByZero, i)
		}
	}
	floats.Div(a.c, b.c)
	floats.Div(a.lo, b.c)
	floats.Div(a.hi, b.c)
	return FromCandidates(a.c, a.lo, a.hi)
}

// Pow returns b**n for a positive integer n.
//
// Odd powers are monotonic. Even powers fold negative values onto positive ones,
// so an element whose interval contains zero gets a lower bound of exactly 0.
func (b Bounded) Pow(n int) (Bounded, error) {
	if n < 1 {
		return Bounded{}, fmt.Errorf("%w: exponent %d, want a positive integer", ErrUnsupported, n)
	}
	c := make([]float64, b.Len())
	lo := make([]float64, b.Len())
	hi := make([]float64, b.Len())
	for i := range c {
		iv := b.At(i)
		c[i] = ipow(iv.Central, n)
		l, u := ipow(iv.Lower, n), ipow(iv.Upper, n)
		switch {
		case n%2 == 1:
			lo[i], hi[i] = l, u
		case iv.ContainsZero():
			lo[i], hi[i] = 0, max(l, u)
		default:
			lo[i], hi[i] = min(l, u), max(l, u)
		}
	}
	return FromBounds(c, lo, hi)
}

func mul(a, b triple) (Bounded, error) {
	n := len(a.c)
	c := make([]float64, n)
	corners := make([][]float64, 4)
	for k := range corners {
		corners[k] = make([]float64, n)
	}
	for i := range c {
		c[i] = mulBound(a.c[i], b.c[i])
		corners[0][i] = mulBound(a.lo[i], b.lo[i])
		corners[1][i] = mulBound(a.lo[i], b.hi[i])
		corners[2][i] = mulBound(a.hi[i], b.lo[i])
		corners[3][i] = mulBound(a.hi[i], b.hi[i])
	}
	return FromCandidates(c, corners...)
}

// mulBound multiplies two bounds with 0 × ±Inf = 0.
func mulBound(p, q float64) float64 {
	if p == 0 || q == 0 {
		return 0
	}
	return p * q
}

func ipow(x float64, n int) float64 {
	r := 1.0
	for n > 0 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	return r
}
