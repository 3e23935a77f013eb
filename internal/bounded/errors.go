package bounded

import "errors"

var (
	// ErrInvalidArgument reports an argument combination no constructor accepts.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrShapeMismatch reports sequences whose lengths cannot be broadcast together.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrOutOfRange reports a central value outside of [lower, upper].
	ErrOutOfRange = errors.New("central value out of range")
	// ErrUnsupported reports an operand combination or exponent the operators do not handle.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrDivideByZero reports division by a plain zero.
	ErrDivideByZero = errors.New("division by zero")
)
