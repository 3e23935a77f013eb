package cli

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vipcxj/bounded/internal/bounded"
)

// IndexFilter selects element indices; it is composed of one or more ranges combined with logical OR.
// - Ranges holds closed index ranges, as bounded.Interval values with Upper = +Inf for "N-".
// - An index is accepted if it falls within any of the ranges.
// - A filter with no ranges accepts every index (the --select flag was not given).
type IndexFilter struct {
	Ranges []bounded.Interval
}

func indexRange(lo, hi float64) bounded.Interval {
	return bounded.Interval{Central: lo, Lower: lo, Upper: hi}
}

// NewIndexFilter parses the string v and returns an IndexFilter or an error.
//
// Syntax (tokens are separated by underscore '_' characters):
//
//	"all"    -> every index
//	"N"      -> a single index
//	"N-M"    -> closed range [N, M]
//	"N-"     -> >= N
//	"-M"     -> <= M
//
// Constraint: all numbers must be non-decreasing when read left to right, so
// "1_3-5_7" is valid whereas "3_1-4" is not.
func NewIndexFilter(v string) (IndexFilter, error) {
	var f IndexFilter
	v = strings.TrimSpace(v)
	if v == "" {
		return f, nil
	}
	if v == "all" {
		f.Ranges = []bounded.Interval{indexRange(0, math.Inf(1))}
		return f, nil
	}

	prev := 0
	checkOrder := func(n int) error {
		if n < prev {
			return fmt.Errorf("numbers must be non-decreasing: %d < %d", n, prev)
		}
		prev = n
		return nil
	}

	for i, tok := range strings.Split(v, "_") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return IndexFilter{}, fmt.Errorf("empty token at position %d", i)
		}
		if strings.Count(tok, "-") > 1 {
			return IndexFilter{}, fmt.Errorf("invalid token %q", tok)
		}

		left, right, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := parseIndex(tok)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid token %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return IndexFilter{}, err
			}
			f.Ranges = append(f.Ranges, indexRange(float64(n), float64(n)))
			continue
		}

		switch {
		case left == "" && right == "":
			return IndexFilter{}, fmt.Errorf("invalid token %q", tok)
		case left != "" && right != "":
			n1, err := parseIndex(left)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid left bound in %q: %w", tok, err)
			}
			n2, err := parseIndex(right)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid right bound in %q: %w", tok, err)
			}
			if n1 > n2 {
				return IndexFilter{}, fmt.Errorf("invalid range %q: min > max", tok)
			}
			if err := checkOrder(n1); err != nil {
				return IndexFilter{}, err
			}
			if err := checkOrder(n2); err != nil {
				return IndexFilter{}, err
			}
			f.Ranges = append(f.Ranges, indexRange(float64(n1), float64(n2)))
		case left != "": // "N-"
			n, err := parseIndex(left)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return IndexFilter{}, err
			}
			f.Ranges = append(f.Ranges, indexRange(float64(n), math.Inf(1)))
		default: // "-M"
			n, err := parseIndex(right)
			if err != nil {
				return IndexFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return IndexFilter{}, err
			}
			f.Ranges = append(f.Ranges, indexRange(0, float64(n)))
		}
	}

	return f, nil
}

// parseIndex parses s as a non-negative integer.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not an index: %q", s)
	}
	return n, nil
}

// Test reports whether index i is accepted by the filter.
func (f IndexFilter) Test(i int) bool {
	if i < 0 {
		return false
	}
	if len(f.Ranges) == 0 {
		return true
	}
	for _, r := range f.Ranges {
		if r.Contains(float64(i)) {
			return true
		}
	}
	return false
}

// Apply returns the accepted elements of b; it fails when nothing is selected.
func (f IndexFilter) Apply(b bounded.Bounded) (bounded.Bounded, error) {
	if len(f.Ranges) == 0 {
		return b, nil
	}
	var ivs []bounded.Interval
	for i := range b.Len() {
		if f.Test(i) {
			ivs = append(ivs, b.At(i))
		}
	}
	if len(ivs) == 0 {
		return bounded.Bounded{}, fmt.Errorf("selection %q matches none of %d elements", f, b.Len())
	}
	return bounded.FromIntervals(ivs)
}

// Normalize returns the ranges sorted and merged, with integer-adjacent ranges joined.
func (f IndexFilter) Normalize() []bounded.Interval {
	rs := make([]bounded.Interval, len(f.Ranges))
	copy(rs, f.Ranges)
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].Lower != rs[j].Lower {
			return rs[i].Lower < rs[j].Lower
		}
		return rs[i].Upper < rs[j].Upper
	})

	var merged []bounded.Interval
	for _, cur := range rs {
		if len(merged) == 0 {
			merged = append(merged, cur)
			continue
		}
		last := &merged[len(merged)-1]
		if last.Upper+1 >= cur.Lower {
			last.Upper = max(last.Upper, cur.Upper)
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}

// String 先 Normalize 再生成可被 NewIndexFilter 逆解析的字符串。
// 规则输出： "all" / "N-" / "N" / "N-M"，用 '_' 连接。
func (f IndexFilter) String() string {
	norm := f.Normalize()
	if len(norm) == 1 && norm[0].Lower == 0 && !norm[0].IsUpperBounded() {
		return "all"
	}
	var parts []string
	for _, r := range norm {
		lo := int(r.Lower)
		switch {
		case !r.IsUpperBounded():
			parts = append(parts, fmt.Sprintf("%d-", lo))
		case r.IsSingleValue():
			parts = append(parts, strconv.Itoa(lo))
		default:
			parts = append(parts, fmt.Sprintf("%d-%d", lo, int(r.Upper)))
		}
	}
	return strings.Join(parts, "_")
}
