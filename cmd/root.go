package cmd

import (
	goflag "flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vipcxj/bounded/internal/config"
	"k8s.io/klog/v2"
)

const rootLong = `Bounded evaluates interval arithmetic on values that carry a central value
together with a lower and an upper bound, and exports the results to shell scripts.

Values are written as "C", "C±D", "C+-D", "C+H-L" or "C[L,U]". Use "--" before
arguments that start with a minus sign.`

// NewRootCommand builds the bounded command tree with defaults taken from cfg.
func NewRootCommand(cfg config.Config, out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bounded",
		Short:         "Interval arithmetic for values with bounds",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.AddCommand(newCalcCmd(cfg))
	rootCmd.AddCommand(newShowCmd(cfg))
	return rootCmd
}

// Execute runs the command line in os.Args and returns the process exit code.
func Execute() int {
	defer klog.Flush()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	rootCmd := NewRootCommand(cfg, os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
