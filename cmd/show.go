package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vipcxj/bounded/internal/cli"
	"github.com/vipcxj/bounded/internal/config"
)

func newShowCmd(cfg config.Config) *cobra.Command {
	var flags *outputFlags
	showCmd := &cobra.Command{
		Use:   "show [flags] [--] X",
		Short: cli.ShowShortDesc,
		Long:  cli.ShowLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Flags())
			if err != nil {
				return err
			}
			return cli.RunShow(cmd.OutOrStdout(), opts, args)
		},
	}
	flags = addOutputFlags(showCmd, cfg)
	return showCmd
}
