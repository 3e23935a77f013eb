//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=OutputFormat -trimprefix=OutputFormat -transform=kebab
//go:generate go run github.com/dmarkham/enumer -type=Op -trimprefix=Op -transform=kebab
package cli

// Options are the resolved output settings shared by the calc and show commands.
type Options struct {
	MultiFormat []string
	Select      IndexFilter
	Output      OutputFormat
	Precision   int
	Export      string
	Persist     bool
	ShellType   ShellType
}

type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

type OutputFormat int

const (
	OutputFormatText OutputFormat = iota
	OutputFormatYaml
	OutputFormatJson
)

// Op is an operator accepted by the calc command.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpNeg
	OpPos
)

// IsUnary reports whether op takes a single operand.
func (op Op) IsUnary() bool {
	return op == OpNeg || op == OpPos
}
