package bounded

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"
)

var (
	inf = math.Inf(1)
	nan = math.NaN()
)

// b is a test shorthand for FromBounds with scalar arguments.
func b(t *testing.T, central, lower, upper float64) Bounded {
	t.Helper()
	v, err := FromBounds([]float64{central}, []float64{lower}, []float64{upper})
	if err != nil {
		t.Fatalf("FromBounds(%v, %v, %v): %v", central, lower, upper, err)
	}
	return v
}

func bs(t *testing.T, central, lower, upper []float64) Bounded {
	t.Helper()
	v, err := FromBounds(central, lower, upper)
	if err != nil {
		t.Fatalf("FromBounds(%v, %v, %v): %v", central, lower, upper, err)
	}
	return v
}

func TestConstructors_EquivalentToBounds(t *testing.T) {
	f := Floats[float64]
	cases := []struct {
		name  string
		build func() (Bounded, error)
		want  [3][]float64
	}{
		{
			"exact",
			func() (Bounded, error) { return Exact(f(1, 2, 3)) },
			[3][]float64{f(1, 2, 3), f(1, 2, 3), f(1, 2, 3)},
		},
		{
			"scalar_delta",
			func() (Bounded, error) { return FromDelta(f(1, 2, 3), f(2)) },
			[3][]float64{f(1, 2, 3), f(-1, 0, 1), f(3, 4, 5)},
		},
		{
			"array_delta",
			func() (Bounded, error) { return FromDelta(f(1, 2, 3), f(1, 2, 1)) },
			[3][]float64{f(1, 2, 3), f(0, 0, 2), f(2, 4, 4)},
		},
		{
			"negative_delta_uses_abs",
			func() (Bounded, error) { return FromDelta(f(1, 2, 3), f(-1, -2, -1)) },
			[3][]float64{f(1, 2, 3), f(0, 0, 2), f(2, 4, 4)},
		},
		{
			"scalar_asymmetric",
			func() (Bounded, error) { return FromAsymmetricDelta(f(1, 2, 3), f(2), f(3)) },
			[3][]float64{f(1, 2, 3), f(-1, 0, 1), f(4, 5, 6)},
		},
		{
			"array_asymmetric",
			func() (Bounded, error) { return FromAsymmetricDelta(f(1, 2, 3), f(1, 1, 2), f(1, 2, 1)) },
			[3][]float64{f(1, 2, 3), f(0, 1, 1), f(2, 4, 4)},
		},
		{
			"broadcast_central_delta",
			func() (Bounded, error) { return FromDelta(f(5), f(1, 1, 2)) },
			[3][]float64{f(5, 5, 5), f(4, 4, 3), f(6, 6, 7)},
		},
		{
			"broadcast_central_asymmetric",
			func() (Bounded, error) { return FromAsymmetricDelta(f(5), f(1, 1, 2), f(1, 2, 1)) },
			[3][]float64{f(5, 5, 5), f(4, 4, 3), f(6, 7, 6)},
		},
		{
			"broadcast_central_bounds",
			func() (Bounded, error) { return FromBounds(f(5), f(4, 3), f(6, 7)) },
			[3][]float64{f(5, 5), f(4, 3), f(6, 7)},
		},
		{
			"candidates",
			func() (Bounded, error) { return FromCandidates(f(0, 0), f(1, -2), f(-3, 4), f(2, 0)) },
			[3][]float64{f(0, 0), f(-3, -2), f(2, 4)},
		},
		{
			"table_one_column",
			func() (Bounded, error) { return FromTable([][]float64{{1}, {2}}) },
			[3][]float64{f(1, 2), f(1, 2), f(1, 2)},
		},
		{
			"table_two_columns",
			func() (Bounded, error) { return FromTable([][]float64{{1, 1}, {2, 2}, {3, 1}}) },
			[3][]float64{f(1, 2, 3), f(0, 0, 2), f(2, 4, 4)},
		},
		{
			"table_three_columns",
			func() (Bounded, error) { return FromTable([][]float64{{1, 1, 1}, {2, 1, 2}, {3, 2, 1}}) },
			[3][]float64{f(1, 2, 3), f(0, 1, 1), f(2, 4, 4)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.build()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := bs(t, tc.want[0], tc.want[1], tc.want[2])
			if !got.Equal(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
		})
	}
}

func TestConstructors_Errors(t *testing.T) {
	f := Floats[float64]
	cases := []struct {
		name  string
		build func() (Bounded, error)
		want  error
	}{
		{"empty_exact", func() (Bounded, error) { return Exact(nil) }, ErrInvalidArgument},
		{"delta_shape", func() (Bounded, error) { return FromDelta(f(1, 2, 3), f(1, 2)) }, ErrShapeMismatch},
		{"asymmetric_shape", func() (Bounded, error) { return FromAsymmetricDelta(f(1, 2), f(1), f(1, 2, 3)) }, ErrShapeMismatch},
		{"bounds_lower_upper_differ", func() (Bounded, error) { return FromBounds(f(1, 2), f(0, 1), f(2)) }, ErrShapeMismatch},
		{"bounds_central_differs", func() (Bounded, error) { return FromBounds(f(1, 2, 3), f(0, 1), f(2, 3)) }, ErrShapeMismatch},
		{"bounds_not_broadcast", func() (Bounded, error) { return FromBounds(f(1, 2), f(0), f(3)) }, ErrShapeMismatch},
		{"bounds_out_of_range", func() (Bounded, error) { return FromBounds(f(1, 5), f(0, 0), f(2, 4)) }, ErrOutOfRange},
		{"lower_above_central", func() (Bounded, error) { return FromBounds(f(1), f(2), f(3)) }, ErrOutOfRange},
		{"nan_central", func() (Bounded, error) { return Exact(f(1, nan)) }, ErrOutOfRange},
		{"no_candidates", func() (Bounded, error) { return FromCandidates(f(1)) }, ErrInvalidArgument},
		{"candidates_shape", func() (Bounded, error) { return FromCandidates(f(1, 2), f(0, 1), f(2, 3, 4)) }, ErrShapeMismatch},
		{"candidates_exclude_central", func() (Bounded, error) { return FromCandidates(f(10), f(1), f(2)) }, ErrOutOfRange},
		{"table_empty", func() (Bounded, error) { return FromTable(nil) }, ErrInvalidArgument},
		{"table_wide", func() (Bounded, error) { return FromTable([][]float64{{1, 2, 3, 4}}) }, ErrShapeMismatch},
		{"table_ragged", func() (Bounded, error) { return FromTable([][]float64{{1, 2}, {1}}) }, ErrShapeMismatch},
	}

	for _, tc := range cases {
		if _, err := tc.build(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got error %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestBounded_AccessorsReturnCopies(t *testing.T) {
	v := bs(t, Floats(1.0, 2), Floats(0.0, 1), Floats(2.0, 3))
	c := v.Central()
	c[0] = 100
	lo := v.Lower()
	lo[0] = -100
	if got := v.Central()[0]; got != 1 {
		t.Fatalf("Central() leaked internal storage: %v", got)
	}
	if got := v.Lower()[0]; got != 0 {
		t.Fatalf("Lower() leaked internal storage: %v", got)
	}
}

func TestBounded_Delta(t *testing.T) {
	v := bs(t, Floats(10.0, 10, 10), Floats(9.0, 7, 6), Floats(12.0, 11, 14))
	if diff := cmp.Diff([]float64{2, 3, 4}, v.Delta()); diff != "" {
		t.Fatalf("Delta() mismatch (-want +got):\n%s", diff)
	}
}

func TestBounded_AsymmetricError(t *testing.T) {
	v := bs(t, Floats(10.0, 10, 10), Floats(9.0, 7, 6), Floats(12.0, 11, 14))
	want := mat.NewDense(2, 3, []float64{
		1, 3, 4,
		2, 1, 4,
	})
	if got := v.AsymmetricError(); !mat.Equal(got, want) {
		t.Fatalf("AsymmetricError() = %v, want %v", mat.Formatted(got), mat.Formatted(want))
	}
}

func TestBounded_ZeroValue(t *testing.T) {
	var v Bounded
	if v.Len() != 0 || len(v.Delta()) != 0 {
		t.Fatalf("zero value: Len() = %d, Delta() = %v", v.Len(), v.Delta())
	}
	if e := v.AsymmetricError(); e != nil {
		t.Fatalf("zero value: AsymmetricError() = %v, want nil", mat.Formatted(e))
	}
	if got := v.String(); got != "[]" {
		t.Fatalf("zero value: String() = %q, want []", got)
	}
	if !v.Equal(Bounded{}) {
		t.Fatalf("zero value should equal itself")
	}
}

type meters float64

type count uint8

func TestNumber_NamedTypes(t *testing.T) {
	if got := ScalarOf(meters(2.5)); got != Scalar(2.5) {
		t.Fatalf("ScalarOf(meters) = %v", got)
	}
	if diff := cmp.Diff(Array{1, 2}, ArrayOf([]count{1, 2})); diff != "" {
		t.Fatalf("ArrayOf(count) mismatch (-want +got):\n%s", diff)
	}
	v, err := FromDelta(Floats(meters(10)), Floats(meters(2)))
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(b(t, 10, 8, 12)) {
		t.Fatalf("FromDelta(meters) = %v", v)
	}
}

func TestBounded_Equal(t *testing.T) {
	x := b(t, 10, 9, 12)
	y := b(t, 10, 9, 12)
	z := b(t, 10, 9, 13)
	long := bs(t, Floats(10.0, 10), Floats(9.0, 9), Floats(12.0, 12))

	if !x.Equal(x) {
		t.Fatalf("equality is not reflexive")
	}
	if !x.Equal(y) || !y.Equal(x) {
		t.Fatalf("equality is not symmetric")
	}
	if x.Equal(z) || z.Equal(x) {
		t.Fatalf("%v and %v should differ", x, z)
	}
	if x.Equal(long) {
		t.Fatalf("values of different length should differ")
	}
}

func TestBounded_BoundsCandidatesRoundTrip(t *testing.T) {
	c := Floats(-4.0, -2, 1, 8)
	lo := Floats(-5.0, -7, -4, 7)
	hi := Floats(-3.0, 3, 5, 9)
	x := bs(t, c, lo, hi)
	y, err := FromCandidates(c, lo, hi)
	if err != nil {
		t.Fatalf("FromCandidates: %v", err)
	}
	if !x.Equal(y) {
		t.Fatalf("got %v, want %v", y, x)
	}
	z, err := FromIntervals(x.Intervals())
	if err != nil {
		t.Fatalf("FromIntervals: %v", err)
	}
	if !x.Equal(z) {
		t.Fatalf("got %v, want %v", z, x)
	}
}

func TestBounded_String(t *testing.T) {
	v := bs(t, Floats(1.0, 10), Floats(1.0, 9), Floats(1.0, 12))
	if got, want := v.String(), "[1 10 [9, 12]]"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
