package dataset_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/dataset"
)

func writePlan(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadPlan(t *testing.T) {
	path := writePlan(t, `
output  = "out/input.json"
report  = "out/output.json"
workers = cpu_count

suite "small" {}

suite "dense" {
  sizes       = [4, 5]
  density_min = 0.8
  density_max = 1.0
  seed        = 7
}

suite "medium" {
  seed = 1
}
`)

	p, err := dataset.LoadPlan(path)
	require.NoError(t, err)

	assert.Equal(t, "out/input.json", p.Output)
	assert.Equal(t, "out/output.json", p.Report)
	assert.Equal(t, runtime.NumCPU(), p.WorkerCount(1))

	suites := p.Suites()
	require.Len(t, suites, 3)
	assert.Equal(t, dataset.Small, suites[0])
	assert.Equal(t, dataset.Suite{
		Name:       "dense",
		Sizes:      []int{4, 5},
		DensityMin: 0.8,
		DensityMax: 1.0,
		Seed:       7,
	}, suites[1])

	medium := dataset.Medium
	medium.Seed = 1
	assert.Equal(t, medium, suites[2])
}

func TestLoadPlan_Defaults(t *testing.T) {
	p, err := dataset.LoadPlan(writePlan(t, `suite "large" {}`))
	require.NoError(t, err)

	assert.Empty(t, p.Output)
	assert.Empty(t, p.Report)
	assert.Equal(t, 3, p.WorkerCount(3))
	assert.Equal(t, []dataset.Suite{dataset.Large}, p.Suites())
}

func TestLoadPlan_Errors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		invalid bool
		msg     string
	}{
		{name: "syntax", body: `suite "small" {`, msg: "failed to parse"},
		{name: "unknown attribute", body: "colour = \"red\"\nsuite \"small\" {}", msg: "failed to decode"},
		{name: "unknown variable", body: "workers = gpu_count\nsuite \"small\" {}", msg: "failed to decode"},
		{name: "no suites", body: `output = "x.json"`, invalid: true},
		{name: "zero workers", body: "workers = 0\nsuite \"small\" {}", invalid: true},
		{name: "custom without sizes", body: `suite "mine" {}`, invalid: true},
		{name: "duplicate suite", body: "suite \"small\" {}\nsuite \"small\" {}", invalid: true},
		{name: "negative size", body: `suite "mine" { sizes = [-3] }`, invalid: true},
		{name: "density out of range", body: "suite \"small\" {\n  density_max = 1.5\n}", invalid: true},
		{name: "density inverted", body: "suite \"small\" {\n  density_min = 0.9\n  density_max = 0.1\n}", invalid: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dataset.LoadPlan(writePlan(t, tc.body))
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, dataset.ErrInvalidPlan)
			} else {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := dataset.LoadPlan(filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
