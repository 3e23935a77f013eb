package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/vipcxj/bounded/internal/bounded"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

const CalcShortDesc = "Evaluate interval arithmetic on bounded values"

const CalcLongDesc = `Calc applies one operator to bounded values and prints the result.

Operands are written as "C", "C±D", "C+-D", "C+H-L" or "C[L,U]". An operand made of
several elements is split according to --multi-format. Operands without any uncertainty
are plain numbers; at least one side of a binary operator must carry bounds.

Binary operators: add (+), sub (-), mul (*, x), div (/), pow (^, **; integer exponent).
Unary operators: neg, pos.`

const ShowShortDesc = "Describe the elements of a bounded value"

const ShowLongDesc = `Show prints every element of a bounded value with its delta and asymmetric error,
followed by the 2xN asymmetric error matrix.`

var opSymbols = map[string]Op{
	"+":  OpAdd,
	"-":  OpSub,
	"*":  OpMul,
	"x":  OpMul,
	"/":  OpDiv,
	"^":  OpPow,
	"**": OpPow,
}

// ParseOp accepts an operator name ("add", "neg", ...) or symbol ("+", "^", ...).
func ParseOp(s string) (Op, error) {
	if op, ok := opSymbols[s]; ok {
		return op, nil
	}
	op, err := OpString(strings.ToLower(s))
	if err != nil {
		return op, fmt.Errorf("unknown operator %q, allowed are %v or %s", s, OpStrings(), "+ - * x / ^ **")
	}
	return op, nil
}

// Evaluate applies op to x and y. y is ignored by unary operators.
func Evaluate(op Op, x, y bounded.Operand) (bounded.Bounded, error) {
	switch op {
	case OpAdd:
		return bounded.Add(x, y)
	case OpSub:
		return bounded.Sub(x, y)
	case OpMul:
		return bounded.Mul(x, y)
	case OpDiv:
		return bounded.Div(x, y)
	}

	base, ok := x.(bounded.Bounded)
	if !ok {
		return bounded.Bounded{}, fmt.Errorf("%w: %s needs a bounded operand", bounded.ErrUnsupported, op)
	}
	switch op {
	case OpNeg:
		return base.Neg()
	case OpPos:
		return base.Pos(), nil
	case OpPow:
		s, ok := y.(bounded.Scalar)
		if !ok || float64(s) != math.Trunc(float64(s)) || math.IsInf(float64(s), 0) {
			return bounded.Bounded{}, fmt.Errorf("%w: exponent must be a single integer", bounded.ErrUnsupported)
		}
		if s < math.MinInt32 || s > math.MaxInt32 {
			return bounded.Bounded{}, fmt.Errorf("%w: exponent %g out of range", bounded.ErrUnsupported, float64(s))
		}
		return base.Pow(int(s))
	default:
		return bounded.Bounded{}, fmt.Errorf("%w: operator %v", bounded.ErrUnsupported, op)
	}
}

func parseOperand(opts Options, raw string, name string) (bounded.Operand, error) {
	values, err := ParseMultiValues(opts.MultiFormat, []string{raw}, name)
	if err != nil {
		return nil, err
	}
	v, err := bounded.ParseOperand(values)
	if err != nil {
		return nil, fmt.Errorf("operand %s: %w", name, err)
	}
	return v, nil
}

func parseBounded(opts Options, raw string, name string) (bounded.Bounded, error) {
	values, err := ParseMultiValues(opts.MultiFormat, []string{raw}, name)
	if err != nil {
		return bounded.Bounded{}, err
	}
	v, err := bounded.Parse(values)
	if err != nil {
		return bounded.Bounded{}, fmt.Errorf("operand %s: %w", name, err)
	}
	return v, nil
}

// RunCalc evaluates "OP X" or "X OP Y" and writes the result to w.
func RunCalc(w io.Writer, opts Options, args []string) error {
	if err := checkMultiFormat(opts.MultiFormat); err != nil {
		return err
	}
	var (
		op     Op
		x, y   bounded.Operand
		err    error
		result bounded.Bounded
	)
	switch len(args) {
	case 2:
		if op, err = ParseOp(args[0]); err != nil {
			return err
		}
		if !op.IsUnary() {
			return fmt.Errorf("operator %s needs two operands: X %s Y", op, op)
		}
		if x, err = parseBounded(opts, args[1], "X"); err != nil {
			return err
		}
	case 3:
		if op, err = ParseOp(args[1]); err != nil {
			return err
		}
		if op.IsUnary() {
			return fmt.Errorf("operator %s takes one operand: %s X", op, op)
		}
		if x, err = parseOperand(opts, args[0], "X"); err != nil {
			return err
		}
		if y, err = parseOperand(opts, args[2], "Y"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("expected \"OP X\" or \"X OP Y\", got %d arguments", len(args))
	}

	klog.V(2).InfoS("Evaluating", "op", op, "x", x, "y", y)
	if result, err = Evaluate(op, x, y); err != nil {
		return err
	}
	klog.V(2).InfoS("Evaluated", "op", op, "result", result)
	return writeResult(w, opts, result)
}

// RunShow describes the single operand in args.
func RunShow(w io.Writer, opts Options, args []string) error {
	if err := checkMultiFormat(opts.MultiFormat); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("expected one operand, got %d arguments", len(args))
	}
	b, err := parseBounded(opts, args[0], "X")
	if err != nil {
		return err
	}
	if b, err = opts.Select.Apply(b); err != nil {
		return err
	}
	if opts.Export != "" || opts.Output != OutputFormatText {
		return emit(w, opts, b)
	}

	delta := b.Delta()
	errs := b.AsymmetricError()
	for i, iv := range b.Intervals() {
		fmt.Fprintf(w, "%d: %s delta=%s err=-%s/+%s\n", i, iv.Format(opts.Precision),
			formatNumber(delta[i], opts.Precision),
			formatNumber(errs.At(0, i), opts.Precision),
			formatNumber(errs.At(1, i), opts.Precision))
	}
	fmt.Fprintf(w, "asymmetric error:\n%v\n", mat.Formatted(errs, mat.Squeeze()))
	return nil
}

func formatNumber(v float64, prec int) string {
	return bounded.NewSingleValueInterval(v).Format(prec)
}

func writeResult(w io.Writer, opts Options, b bounded.Bounded) error {
	b, err := opts.Select.Apply(b)
	if err != nil {
		return err
	}
	return emit(w, opts, b)
}

func emit(w io.Writer, opts Options, b bounded.Bounded) error {
	if opts.Export != "" {
		out, err := ExportValue(opts.ShellType, opts.Export, b, opts.MultiFormat, opts.Persist)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	switch opts.Output {
	case OutputFormatText:
		for _, iv := range b.Intervals() {
			if _, err := fmt.Fprintln(w, iv.Format(opts.Precision)); err != nil {
				return err
			}
		}
		return nil
	case OutputFormatYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(b); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case OutputFormatJson:
		if err := json.NewEncoder(w).Encode(b); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return errors.New("unsupported output format: " + opts.Output.String())
	}
}
