package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/logutil"
)

const (
	defaultInputPath  = "data/input.json"
	defaultOutputPath = "data/output.json"
)

// rootOptions carries the persistent flags and the logger built from them.
type rootOptions struct {
	logLevel  string
	logFormat string
	logger    *zap.Logger
}

// NewRootCmd builds a fresh command tree. Every call returns independent
// flag state.
func NewRootCmd() *cobra.Command {
	ro := &rootOptions{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "mstbench",
		Short:         "Benchmark Prim and Kruskal minimum spanning tree algorithms on generated graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			l, err := logutil.New(ro.logLevel, ro.logFormat)
			if err != nil {
				return err
			}
			ro.logger = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = ro.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&ro.logFormat, "log-format", logutil.FormatConsole, "log encoding: console or json")

	rootCmd.AddCommand(
		newGenerateCmd(ro),
		newAnalyzeCmd(ro),
		newRunCmd(ro),
	)
	return rootCmd
}

// Execute executes the root command. Cancelling ctx stops the batch from
// starting new graphs and makes Execute return context.Canceled.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
