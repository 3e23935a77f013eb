package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vipcxj/bounded/internal/cli"
	"github.com/vipcxj/bounded/internal/config"
)

func newCalcCmd(cfg config.Config) *cobra.Command {
	var flags *outputFlags
	calcCmd := &cobra.Command{
		Use:   "calc [flags] [--] (OP X | X OP Y)",
		Short: cli.CalcShortDesc,
		Long:  cli.CalcLongDesc,
		Example: `  bounded calc 10±2 add 5
  bounded calc -m comma 1,2,3 mul 2[1,3]
  bounded calc -- -8+1-2 div 2
  bounded calc neg 10[9,12] --export len --shell sh`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Flags())
			if err != nil {
				return err
			}
			return cli.RunCalc(cmd.OutOrStdout(), opts, args)
		},
	}
	flags = addOutputFlags(calcCmd, cfg)
	return calcCmd
}
