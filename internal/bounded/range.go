package bounded

import "golang.org/x/exp/constraints"

// Number 限定为可参与区间运算的数值类型（整型/无符号/浮点）
type Number interface {
	constraints.Integer | constraints.Float
}

type Range[T Number] interface {

	// Contains 判断 v 是否在区间内（闭区间）
	Contains(v T) bool
	IsNotEmpty() bool
	IsLowerBounded() bool
	IsUpperBounded() bool
}

var _ Range[float64] = Interval{}
