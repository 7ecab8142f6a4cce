package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/builder"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/dataset"
)

const suiteAll = "all"

// generateOptions selects what to generate. Exactly one source applies:
// a plan file, a single graph (vertices set), or named preset suites.
type generateOptions struct {
	suite    string
	plan     string
	splitDir string

	single      bool
	vertices    int
	density     float64
	seed        int64
	sparse      bool
	probability float64

	output string

	// planned is the plan loaded by resolve, nil without --plan.
	planned *dataset.Plan
}

func (o *generateOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.suite, "suite", suiteAll, "preset suite: small, medium, large, xlarge or all")
	f.StringVar(&o.plan, "plan", "", "HCL plan file listing the suites to generate")
	f.StringVar(&o.splitDir, "split-dir", "", "also write every suite to <dir>/<suite>_graphs.json")
	f.IntVar(&o.vertices, "vertices", 0, "generate one graph with this many vertices")
	f.Float64Var(&o.density, "density", 0.3, "edge density of the single graph, in [0, 1]")
	f.Int64Var(&o.seed, "seed", dataset.DefaultSuiteSeed, "random seed of the single graph")
	f.Float64Var(&o.probability, "probability", 0, "generate the single graph as G(n, p) with this edge probability; may be disconnected")
	cmd.MarkFlagsMutuallyExclusive("suite", "plan", "vertices")
	cmd.MarkFlagsMutuallyExclusive("density", "probability")
}

// resolve reads which flags were set and loads the plan, if any.
func (o *generateOptions) resolve(cmd *cobra.Command) error {
	f := cmd.Flags()
	o.single = f.Changed("vertices")
	o.sparse = f.Changed("probability")
	if o.sparse && !o.single {
		return errors.New("--probability requires --vertices")
	}
	if o.plan == "" {
		return nil
	}
	p, err := dataset.LoadPlan(o.plan)
	if err != nil {
		return err
	}
	o.planned = p
	return nil
}

// suites lists the suites to generate from the plan or the --suite flag.
func (o *generateOptions) suites() ([]dataset.Suite, error) {
	if o.planned != nil {
		return o.planned.Suites(), nil
	}
	if strings.EqualFold(o.suite, suiteAll) {
		return dataset.AllSuites(), nil
	}
	s, err := dataset.SuiteByName(o.suite)
	if err != nil {
		return nil, err
	}
	return []dataset.Suite{s}, nil
}

// generate builds the dataset the options describe.
func (o *generateOptions) generate(ctx context.Context, logger *zap.Logger) (dataset.InputData, error) {
	if o.single {
		var (
			g   *core.Graph
			err error
		)
		if o.sparse {
			g, err = builder.GenerateSparse(o.vertices, o.probability, o.seed)
		} else {
			g, err = builder.GenerateGraph(o.vertices, o.density, o.seed)
		}
		if err != nil {
			return dataset.InputData{}, err
		}
		logger.Info("graph generated", zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))
		return dataset.InputData{Graphs: []dataset.GraphRecord{dataset.FromGraph(1, g)}}, nil
	}

	suites, err := o.suites()
	if err != nil {
		return dataset.InputData{}, err
	}
	parts := make([]dataset.InputData, 0, len(suites))
	for _, s := range suites {
		if err = ctx.Err(); err != nil {
			return dataset.InputData{}, err
		}
		data, err := dataset.GenerateSuite(s)
		if err != nil {
			return dataset.InputData{}, err
		}
		logger.Info("suite generated", zap.String("suite", s.Name), zap.Ints("sizes", s.Sizes))
		if o.splitDir != "" {
			path := filepath.Join(o.splitDir, s.Name+"_graphs.json")
			if err = dataset.WriteInput(path, data); err != nil {
				return dataset.InputData{}, err
			}
		}
		parts = append(parts, data)
	}
	return dataset.Combine(parts...), nil
}

// outputPath is --output, or the plan's output when the flag was left alone.
func (o *generateOptions) outputPath(cmd *cobra.Command, flag string) string {
	if !cmd.Flags().Changed(flag) && o.planned != nil && o.planned.Output != "" {
		return o.planned.Output
	}
	return o.output
}

// writeDataset generates and stores the dataset, returning where it went.
func (o *generateOptions) writeDataset(cmd *cobra.Command, ro *rootOptions, flag string, out io.Writer) (string, error) {
	data, err := o.generate(cmd.Context(), ro.logger)
	if err != nil {
		return "", err
	}
	path := o.outputPath(cmd, flag)
	if err = dataset.WriteInput(path, data); err != nil {
		return "", err
	}
	ro.logger.Info("dataset written", zap.String("path", path), zap.Int("graphs", len(data.Graphs)))
	fmt.Fprintf(out, "Generated %d graphs: %s\n", len(data.Graphs), path)
	return path, nil
}

func newGenerateCmd(ro *rootOptions) *cobra.Command {
	o := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random connected graphs and write them as a JSON dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := o.resolve(cmd); err != nil {
				return err
			}
			_, err := o.writeDataset(cmd, ro, "output", cmd.OutOrStdout())
			return err
		},
	}
	o.addFlags(cmd)
	cmd.Flags().StringVarP(&o.output, "output", "o", defaultInputPath, "dataset file to write")
	return cmd
}
