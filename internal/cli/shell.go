package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/vipcxj/bounded/internal/bounded"
)

// quoteSh wraps s in single quotes for POSIX shells; embedded quotes become '\”.
func quoteSh(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// quotePowershell emits a PowerShell expression; newlines are spliced in as "`n" segments.
func quotePowershell(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = "'" + strings.ReplaceAll(line, "'", "''") + "'"
	}
	return strings.Join(out, " + \"`n\" + ")
}

// quoteCmd 在 cmd 里用双引号包裹，换行写成字面的 \n。
func quoteCmd(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, "\n", `\n`)
}

func exportLine(shellType ShellType, name, val string, persist bool) (string, error) {
	switch shellType {
	case ShellTypeSh:
		if persist {
			return fmt.Sprintf("export %s=%s", name, quoteSh(val)), nil
		}
		return fmt.Sprintf("%s=%s", name, quoteSh(val)), nil
	case ShellTypePowershell:
		if persist {
			return fmt.Sprintf("[System.Environment]::SetEnvironmentVariable('%s',%s,'User')", name, quotePowershell(val)), nil
		}
		return fmt.Sprintf("$Env:%s = %s", name, quotePowershell(val)), nil
	case ShellTypeCmd:
		if persist {
			return fmt.Sprintf("setx %s \"%s\"", name, quoteCmd(val)), nil
		}
		return fmt.Sprintf("set \"%s=%s\"", name, quoteCmd(val)), nil
	default:
		return "", fmt.Errorf("unsupported shell type: %v", shellType)
	}
}

// envName turns a user supplied name into a variable name: upper case, '-' and '.' become '_'.
func envName(name string) (string, error) {
	name = strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(strings.TrimSpace(name)))
	if name == "" {
		return "", fmt.Errorf("empty export name")
	}
	for i, r := range name {
		ok := r == '_' || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9')
		if !ok {
			return "", fmt.Errorf("invalid export name %q", name)
		}
	}
	return name, nil
}

// ExportValue renders the statements that store b in NAME, NAME_LOWER and NAME_UPPER.
// Every variable holds one literal per element, joined according to formats.
func ExportValue(shellType ShellType, name string, b bounded.Bounded, formats []string, persist bool) (string, error) {
	shellType, err := decideShellType(shellType)
	if err != nil {
		return "", err
	}
	name, err = envName(name)
	if err != nil {
		return "", err
	}

	fmtRow := func(row []float64) []string {
		out := make([]string, len(row))
		for i, v := range row {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return out
	}
	intervals := b.Intervals()
	literals := make([]string, len(intervals))
	for i, iv := range intervals {
		literals[i] = iv.ToParseableString()
	}

	vars := []struct {
		name   string
		values []string
	}{
		{name, literals},
		{name + "_LOWER", fmtRow(b.Lower())},
		{name + "_UPPER", fmtRow(b.Upper())},
	}
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		val, err := OutputMultiValues(formats, v.values)
		if err != nil {
			return "", fmt.Errorf("variable %s: %w", v.name, err)
		}
		line, err := exportLine(shellType, v.name, val, persist)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

func decideShellType(shellType ShellType) (ShellType, error) {
	switch shellType {
	case ShellTypeSh, ShellTypePowershell, ShellTypeCmd:
		return shellType, nil
	}
	shellName, err := detectUserShell()
	if err != nil {
		return ShellTypeAuto, fmt.Errorf("cannot detect user shell: %w", err)
	}
	switch strings.TrimSuffix(strings.ToLower(shellName), ".exe") {
	case "powershell", "pwsh":
		return ShellTypePowershell, nil
	case "cmd":
		return ShellTypeCmd, nil
	default:
		return ShellTypeSh, nil
	}
}

var knownShells = []string{"bash", "zsh", "fish", "ksh", "dash", "tcsh", "csh", "sh", "pwsh", "powershell", "cmd"}

// detectUserShell 沿父进程链查找已知 shell，找不到时回退到 SHELL / COMSPEC。
func detectUserShell() (string, error) {
	p, err := process.NewProcess(int32(os.Getppid()))
	if err != nil {
		return "", fmt.Errorf("cannot get parent process: %w", err)
	}
	seen := map[int32]struct{}{}
	for p != nil {
		if _, ok := seen[p.Pid]; ok {
			break
		}
		seen[p.Pid] = struct{}{}

		name, _ := p.Name()
		if name == "" {
			if exe, _ := p.Exe(); exe != "" {
				name = filepath.Base(exe)
			}
		}
		base := strings.TrimSuffix(strings.ToLower(name), ".exe")
		for _, k := range knownShells {
			if base == k {
				return name, nil
			}
		}

		parent, perr := p.Parent()
		if perr != nil || parent == nil {
			break
		}
		p = parent
	}

	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh), nil
	}
	if com := os.Getenv("COMSPEC"); com != "" {
		return filepath.Base(com), nil
	}
	return "", fmt.Errorf("user shell not detected")
}
