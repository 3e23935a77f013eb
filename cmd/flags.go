package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vipcxj/bounded/internal/cli"
	"github.com/vipcxj/bounded/internal/config"
)

// outputFlags are the flags shared by calc and show.
type outputFlags struct {
	multiFormat []string
	selection   string
	output      string
	precision   int
	export      string
	shell       string
	persist     bool
}

func addOutputFlags(cmd *cobra.Command, cfg config.Config) *outputFlags {
	f := &outputFlags{}
	fs := cmd.Flags()
	fs.StringSliceVarP(&f.multiFormat, "multi-format", "m", cfg.MultiFormat,
		fmt.Sprintf("How elements of one operand are separated, a combination of %s or %s",
			strings.Join(cli.AllowedMultiFormats[0:3], ", "), cli.AllowedMultiFormats[3]))
	fs.StringVar(&f.selection, "select", "", `Elements to keep, e.g. "all", "2", "1-3", "4-", "-2" joined by "_"`)
	fs.StringVarP(&f.output, "output", "o", cfg.Output, fmt.Sprintf("Output format, one of %v", cli.OutputFormatStrings()))
	fs.IntVar(&f.precision, "precision", cfg.Precision, "Significant digits in text output, -1 for the shortest exact form")
	fs.StringVarP(&f.export, "export", "e", "", "Emit shell statements assigning the result to NAME, NAME_LOWER and NAME_UPPER")
	fs.StringVar(&f.shell, "shell", cfg.Shell, fmt.Sprintf("Shell syntax used by --export, one of %v", cli.ShellTypeStrings()))
	fs.BoolVar(&f.persist, "persist", false, "With --export, persist the variables (export / setx / user environment)")

	registerChoices(cmd, "output", cli.OutputFormatStrings())
	registerChoices(cmd, "shell", cli.ShellTypeStrings())
	registerChoices(cmd, "multi-format", cli.AllowedMultiFormats)
	return f
}

func registerChoices(cmd *cobra.Command, flagName string, choices []string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		var completions []cobra.Completion
		for _, choice := range choices {
			if strings.HasPrefix(choice, toComplete) {
				completions = append(completions, choice)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	})
}

func (f *outputFlags) options(fs *pflag.FlagSet) (cli.Options, error) {
	opts := cli.Options{
		MultiFormat: f.multiFormat,
		Precision:   f.precision,
		Export:      f.export,
		Persist:     f.persist,
	}
	var err error
	if opts.Output, err = cli.OutputFormatString(f.output); err != nil {
		return opts, fmt.Errorf("invalid --output %q, allowed are %v", f.output, cli.OutputFormatStrings())
	}
	if opts.ShellType, err = cli.ShellTypeString(f.shell); err != nil {
		return opts, fmt.Errorf("invalid --shell %q, allowed are %v", f.shell, cli.ShellTypeStrings())
	}
	if opts.Select, err = cli.NewIndexFilter(f.selection); err != nil {
		return opts, fmt.Errorf("invalid --select: %w", err)
	}
	if opts.Persist && opts.Export == "" {
		return opts, fmt.Errorf("--persist requires --export")
	}
	if fs.Changed("export") && opts.Export == "" {
		return opts, fmt.Errorf("--export needs a variable name")
	}
	return opts, nil
}
