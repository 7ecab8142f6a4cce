package dataset

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// ErrInvalidPlan marks a plan that decodes but cannot be run.
var ErrInvalidPlan = errors.New("dataset: invalid plan")

// Plan is a decoded benchmark plan file.
//
//	output  = "data/input.json"
//	report  = "data/output.json"
//	workers = cpu_count
//
//	suite "small" {}           # the preset as is
//	suite "dense" {            # a custom suite
//	  sizes       = [10, 20]
//	  density_min = 0.8
//	  density_max = 1.0
//	  seed        = 7
//	}
type Plan struct {
	Output  string        `hcl:"output,optional"`
	Report  string        `hcl:"report,optional"`
	Workers *int          `hcl:"workers,optional"`
	Blocks  []*SuiteBlock `hcl:"suite,block"`
}

// SuiteBlock is one `suite "name" {}` block. Unset attributes fall back to
// the preset of the same name.
type SuiteBlock struct {
	Name       string   `hcl:"name,label"`
	Sizes      []int    `hcl:"sizes,optional"`
	DensityMin *float64 `hcl:"density_min,optional"`
	DensityMax *float64 `hcl:"density_max,optional"`
	Seed       *int64   `hcl:"seed,optional"`
}

// planEvalContext exposes the variables a plan may reference.
func planEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpu_count": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

// LoadPlan parses and decodes the HCL plan at path, then validates it.
func LoadPlan(path string) (*Plan, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse plan file %s: %w", path, diags)
	}

	var p Plan
	diags = gohcl.DecodeBody(file.Body, planEvalContext(), &p)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode plan file %s: %w", path, diags)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("plan file %s: %w", path, err)
	}
	return &p, nil
}

func (p *Plan) validate() error {
	if len(p.Blocks) == 0 {
		return fmt.Errorf("%w: no suite blocks", ErrInvalidPlan)
	}
	if p.Workers != nil && *p.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidPlan, *p.Workers)
	}
	seen := make(map[string]struct{}, len(p.Blocks))
	for _, b := range p.Blocks {
		if _, dup := seen[b.Name]; dup {
			return fmt.Errorf("%w: suite %q declared twice", ErrInvalidPlan, b.Name)
		}
		seen[b.Name] = struct{}{}

		s := b.suite()
		if len(s.Sizes) == 0 {
			return fmt.Errorf("%w: suite %q has no sizes", ErrInvalidPlan, b.Name)
		}
		for _, n := range s.Sizes {
			if n < 0 {
				return fmt.Errorf("%w: suite %q has negative size %d", ErrInvalidPlan, b.Name, n)
			}
		}
		if s.DensityMin < 0 || s.DensityMax > 1 || s.DensityMin > s.DensityMax {
			return fmt.Errorf("%w: suite %q density range [%v, %v] is outside [0, 1] or inverted",
				ErrInvalidPlan, b.Name, s.DensityMin, s.DensityMax)
		}
	}
	return nil
}

// Suites resolves every block against the presets, in file order.
func (p *Plan) Suites() []Suite {
	out := make([]Suite, len(p.Blocks))
	for i, b := range p.Blocks {
		out[i] = b.suite()
	}
	return out
}

// WorkerCount returns the plan's workers, or def when the plan leaves it unset.
func (p *Plan) WorkerCount(def int) int {
	if p.Workers == nil {
		return def
	}
	return *p.Workers
}

func (b *SuiteBlock) suite() Suite {
	s, err := SuiteByName(b.Name)
	if err != nil {
		s = Suite{Name: b.Name, Seed: DefaultSuiteSeed}
	}
	if b.Sizes != nil {
		s.Sizes = append([]int(nil), b.Sizes...)
	}
	if b.DensityMin != nil {
		s.DensityMin = *b.DensityMin
	}
	if b.DensityMax != nil {
		s.DensityMax = *b.DensityMax
	}
	if b.Seed != nil {
		s.Seed = *b.Seed
	}
	return s
}
