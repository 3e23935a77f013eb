package bounded

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// record is the serialized form of a Bounded.
type record struct {
	Central []number `json:"central" yaml:"central"`
	Lower   []number `json:"lower" yaml:"lower"`
	Upper   []number `json:"upper" yaml:"upper"`
}

// number is a float64 whose JSON form carries infinities as the strings "+Inf" / "-Inf".
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsInf(v, 0) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

func (n *number) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %s: %w", data, err)
	}
	*n = number(v)
	return nil
}

func toNumbers(xs []float64) []number {
	out := make([]number, len(xs))
	for i, v := range xs {
		out[i] = number(v)
	}
	return out
}

func fromNumbers(ns []number) []float64 {
	out := make([]float64, len(ns))
	for i, v := range ns {
		out[i] = float64(v)
	}
	return out
}

func (b Bounded) record() record {
	return record{
		Central: toNumbers(b.central),
		Lower:   toNumbers(b.lower),
		Upper:   toNumbers(b.upper),
	}
}

func (r record) bounded() (Bounded, error) {
	return FromBounds(fromNumbers(r.Central), fromNumbers(r.Lower), fromNumbers(r.Upper))
}

func (b Bounded) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.record())
}

// UnmarshalJSON decodes {"central": [...], "lower": [...], "upper": [...]} and validates it like FromBounds.
func (b *Bounded) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	v, err := r.bounded()
	if err != nil {
		return err
	}
	*b = v
	return nil
}

func (b Bounded) MarshalYAML() (any, error) {
	return b.record(), nil
}

// UnmarshalYAML decodes the same mapping as UnmarshalJSON and validates it like FromBounds.
func (b *Bounded) UnmarshalYAML(node *yaml.Node) error {
	var r record
	if err := node.Decode(&r); err != nil {
		return err
	}
	v, err := r.bounded()
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*b = v
	return nil
}
