package bounded

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseInterval parses value and returns an Interval.
//
// Supported formats:
//   - C             exact value
//   - C±D, C+-D     symmetric delta
//   - C+H-L, C-L+H  asymmetric delta
//   - C[L,U]        explicit bounds
//
// Spaces are ignored and deltas are taken by absolute value. Numbers follow
// strconv.ParseFloat, so "inf", "-Inf" and exponents are accepted.
// The boolean result reports whether value carried any uncertainty
// notation; "C[C,C]" does, "C" does not.
//
// Examples:
//
//	ParseInterval("10±2")     -> 10 [8, 12]
//	ParseInterval("10+2-1")   -> 10 [9, 12]
//	ParseInterval("6[-9,12]") -> 6 [-9, 12]
func ParseInterval(value string) (Interval, bool, error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
	if s == "" {
		return Interval{}, false, fmt.Errorf("%w: empty value", ErrInvalidArgument)
	}

	c, rest, err := scanNumber(s)
	if err != nil {
		return Interval{}, false, fmt.Errorf("invalid central value in %q: %w", value, err)
	}
	if rest == "" {
		return NewSingleValueInterval(c), false, nil
	}

	var iv Interval
	switch {
	case strings.HasPrefix(rest, "±"), strings.HasPrefix(rest, "+-"), strings.HasPrefix(rest, "+/-"):
		tok := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(rest, "±"), "+-"), "+/-")
		d, tail, err := scanNumber(tok)
		if err != nil || tail != "" {
			return Interval{}, false, fmt.Errorf("invalid delta in %q", value)
		}
		d = math.Abs(d)
		iv = Interval{Central: c, Lower: c - d, Upper: c + d}
	case strings.HasPrefix(rest, "[") && strings.HasSuffix(rest, "]"):
		parts := strings.SplitN(rest[1:len(rest)-1], ",", 2)
		if len(parts) != 2 {
			return Interval{}, false, fmt.Errorf("invalid bounds syntax: %s", value)
		}
		lo, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return Interval{}, false, fmt.Errorf("invalid lower bound: %w", err)
		}
		hi, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return Interval{}, false, fmt.Errorf("invalid upper bound: %w", err)
		}
		iv = Interval{Central: c, Lower: lo, Upper: hi}
	case strings.HasPrefix(rest, "+"), strings.HasPrefix(rest, "-"):
		first, tail, err := scanNumber(rest[1:])
		if err != nil || tail == "" || tail[0] == rest[0] || (tail[0] != '+' && tail[0] != '-') {
			return Interval{}, false, fmt.Errorf("invalid asymmetric delta in %q", value)
		}
		second, tail, err := scanNumber(tail[1:])
		if err != nil || tail != "" {
			return Interval{}, false, fmt.Errorf("invalid asymmetric delta in %q", value)
		}
		high, low := math.Abs(first), math.Abs(second)
		if rest[0] == '-' {
			high, low = low, high
		}
		iv = Interval{Central: c, Lower: c - low, Upper: c + high}
	default:
		return Interval{}, false, fmt.Errorf("%w: unrecognized value format: %s", ErrInvalidArgument, value)
	}

	if !iv.IsNotEmpty() {
		return Interval{}, false, fmt.Errorf("%w: %s", ErrOutOfRange, value)
	}
	return iv, true, nil
}

// Parse parses every value with ParseInterval and joins them into one Bounded.
func Parse(values []string) (Bounded, error) {
	b, _, err := parseAll(values)
	return b, err
}

// ParseOperand parses values into an Operand. When none of them carries
// uncertainty notation the result is a plain Scalar (one value) or Array;
// otherwise it is a Bounded.
func ParseOperand(values []string) (Operand, error) {
	b, uncertain, err := parseAll(values)
	if err != nil {
		return nil, err
	}
	if uncertain {
		return b, nil
	}
	if b.Len() == 1 {
		return Scalar(b.central[0]), nil
	}
	return Array(b.Central()), nil
}

func parseAll(values []string) (Bounded, bool, error) {
	if len(values) == 0 {
		return Bounded{}, false, fmt.Errorf("%w: no values", ErrInvalidArgument)
	}
	ivs := make([]Interval, len(values))
	uncertain := false
	for i, v := range values {
		iv, u, err := ParseInterval(v)
		if err != nil {
			return Bounded{}, false, fmt.Errorf("element %d: %w", i, err)
		}
		ivs[i] = iv
		uncertain = uncertain || u
	}
	b, err := FromIntervals(ivs)
	return b, uncertain, err
}

// scanNumber parses the longest float literal at the start of s and returns the remainder.
func scanNumber(s string) (float64, string, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if rest := strings.ToLower(s[i:]); strings.HasPrefix(rest, "infinity") {
		i += len("infinity")
	} else if strings.HasPrefix(rest, "inf") {
		i += len("inf")
	} else {
		digits := 0
		for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
			i++
			digits++
		}
		if digits == 0 {
			return 0, s, fmt.Errorf("%w: expected a number at %q", ErrInvalidArgument, s)
		}
		if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
			j := i + 1
			if j < len(s) && (s[j] == '+' || s[j] == '-') {
				j++
			}
			k := j
			for k < len(s) && s[k] >= '0' && s[k] <= '9' {
				k++
			}
			if k > j {
				i = k
			}
		}
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, s, err
	}
	return v, s[i:], nil
}
