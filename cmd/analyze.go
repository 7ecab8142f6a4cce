package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/analyzer"
	"github.com/katalvlaran/mstbench/dataset"
)

type analyzeOptions struct {
	input   string
	output  string
	workers int
}

func (o *analyzeOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.workers, "workers", "w", runtime.NumCPU(), "graphs analyzed in parallel")
}

// analyze runs both algorithms on every graph of the input file, writes
// the report and prints the summary table to out.
func (o *analyzeOptions) analyze(ctx context.Context, logger *zap.Logger, out io.Writer) error {
	items, err := dataset.ReadItems(o.input)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", zap.String("path", o.input), zap.Int("graphs", len(items)))

	outcomes := analyzer.Batch(ctx, items,
		analyzer.WithWorkers(o.workers),
		analyzer.WithLogger(logger))
	if err = ctx.Err(); err != nil {
		return err
	}

	report := dataset.NewReport(outcomes)
	if err = dataset.WriteReport(o.output, report); err != nil {
		return err
	}
	logger.Info("report written", zap.String("path", o.output))

	return writeSummary(out, outcomes)
}

// writeSummary prints one row per analyzed graph, then the success count.
func writeSummary(out io.Writer, outcomes []analyzer.Outcome) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Graph\tV\tE\tPrim ms\tKruskal ms\tPrim ops\tKruskal ops\tPrim theory\tKruskal theory\tCost\t")

	succeeded := 0
	for _, o := range outcomes {
		if !o.OK() {
			continue
		}
		succeeded++
		c := o.Comparison
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
			o.ID, c.Vertices, c.Edges,
			c.Prim.ElapsedMillis(), c.Kruskal.ElapsedMillis(),
			c.Prim.Operations, c.Kruskal.Operations,
			c.PrimTheoretical, c.KruskalTheoretical,
			c.Prim.TotalCost)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, o := range outcomes {
		if !o.OK() {
			fmt.Fprintf(out, "Graph %d failed: %v\n", o.ID, o.Err)
		}
	}
	_, err := fmt.Fprintf(out, "Successfully analyzed: %d/%d graphs\n", succeeded, len(outcomes))
	return err
}

func newAnalyzeCmd(ro *rootOptions) *cobra.Command {
	o := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run Prim and Kruskal on every graph of a dataset and write the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.analyze(cmd.Context(), ro.logger, cmd.OutOrStdout())
		},
	}
	o.addFlags(cmd)
	cmd.Flags().StringVarP(&o.input, "input", "i", defaultInputPath, "dataset file to read")
	cmd.Flags().StringVarP(&o.output, "output", "o", defaultOutputPath, "report file to write")
	return cmd
}
