package cmd

import (
	"github.com/spf13/cobra"
)

func newRunCmd(ro *rootOptions) *cobra.Command {
	gen := &generateOptions{}
	an := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a dataset, then analyze it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := gen.resolve(cmd); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			path, err := gen.writeDataset(cmd, ro, "input", out)
			if err != nil {
				return err
			}

			an.input = path
			if p := gen.planned; p != nil {
				if !cmd.Flags().Changed("output") && p.Report != "" {
					an.output = p.Report
				}
				if !cmd.Flags().Changed("workers") {
					an.workers = p.WorkerCount(an.workers)
				}
			}
			return an.analyze(cmd.Context(), ro.logger, out)
		},
	}
	gen.addFlags(cmd)
	an.addFlags(cmd)
	cmd.Flags().StringVarP(&gen.output, "input", "i", defaultInputPath, "dataset file to write and then analyze")
	cmd.Flags().StringVarP(&an.output, "output", "o", defaultOutputPath, "report file to write")
	return cmd
}
