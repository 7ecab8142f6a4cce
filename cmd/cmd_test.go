package cmd_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/cmd"
	"github.com/katalvlaran/mstbench/dataset"
)

func execute(ctx context.Context, args ...string) (string, error) {
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.ExecuteContext(ctx)

	return out.String(), err
}

func TestGenerateThenAnalyze(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	out := filepath.Join(dir, "reports", "out.json")

	stdout, err := execute(context.Background(), "generate", "--vertices", "10", "--density", "0.5", "--seed", "3", "-o", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated 1 graphs")

	data, err := dataset.ReadInput(in)
	require.NoError(t, err)
	require.Len(t, data.Graphs, 1)
	assert.Len(t, data.Graphs[0].Nodes, 10)
	assert.Len(t, data.Graphs[0].Edges, 23)

	stdout, err = execute(context.Background(), "analyze", "-i", in, "-o", out, "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Kruskal ops")
	assert.Contains(t, stdout, "Successfully analyzed: 1/1 graphs")

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestGenerateSparse(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.json")
	_, err := execute(context.Background(), "generate", "--vertices", "30", "--probability", "0.05", "--seed", "1", "-o", in)
	require.NoError(t, err)

	data, err := dataset.ReadInput(in)
	require.NoError(t, err)
	require.Len(t, data.Graphs, 1)
	assert.Len(t, data.Graphs[0].Nodes, 30)
}

func TestRun_Suite(t *testing.T) {
	dir := t.TempDir()
	split := filepath.Join(dir, "split")
	stdout, err := execute(context.Background(), "run",
		"--suite", "small",
		"--split-dir", split,
		"-i", filepath.Join(dir, "in.json"),
		"-o", filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Generated 5 graphs")
	assert.Contains(t, stdout, "Successfully analyzed: 5/5 graphs")

	_, err = os.Stat(filepath.Join(split, "small_graphs.json"))
	assert.NoError(t, err)
}

func TestRun_Plan(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "planned-in.json")
	out := filepath.Join(dir, "planned-out.json")
	plan := filepath.Join(dir, "plan.hcl")
	body := "output  = \"" + filepath.ToSlash(in) + "\"\n" +
		"report  = \"" + filepath.ToSlash(out) + "\"\n" +
		"workers = 2\n" +
		"suite \"tiny\" {\n  sizes = [3, 4, 5]\n  density_max = 1\n}\n"
	require.NoError(t, os.WriteFile(plan, []byte(body), 0o644))

	stdout, err := execute(context.Background(), "run", "--plan", plan)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Successfully analyzed: 3/3 graphs")

	r, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(r), `"graph_id": 3`)
}

func TestAnalyze_MalformedGraph(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	doc := `{"graphs": [
  {"id": 1, "nodes": ["A", "B"], "edges": [{"from": "A", "to": "B", "weight": 2}]},
  {"id": 2, "nodes": ["A"], "edges": [{"from": "A", "to": "Q", "weight": 2}]}
]}`
	require.NoError(t, os.WriteFile(in, []byte(doc), 0o644))

	stdout, err := execute(context.Background(), "analyze", "-i", in, "-o", filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Graph 2 failed")
	assert.Contains(t, stdout, "Successfully analyzed: 1/2 graphs")
}

func TestAnalyze_BadRecordType(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	doc := `{"graphs": [
  {"id": 1, "nodes": ["A", "B"], "edges": [{"from": "A", "to": "B", "weight": 2}]},
  {"id": 2, "nodes": ["A", "B"], "edges": [{"from": "A", "to": "B", "weight": 1.5}]}
]}`
	require.NoError(t, os.WriteFile(in, []byte(doc), 0o644))

	stdout, err := execute(context.Background(), "analyze", "-i", in, "-o", filepath.Join(dir, "out.json"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "Graph 2 failed")
	assert.Contains(t, stdout, "Successfully analyzed: 1/2 graphs")
}

func TestAnalyze_Cancelled(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.json")
	_, err := execute(context.Background(), "generate", "--suite", "small", "-o", in)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = execute(ctx, "analyze", "-i", in, "-o", filepath.Join(dir, "out.json"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFlagErrors(t *testing.T) {
	cases := [][]string{
		{"generate", "--probability", "0.2"},
		{"generate", "--suite", "small", "--vertices", "5"},
		{"generate", "--suite", "gigantic"},
		{"generate", "--log-format", "xml"},
		{"analyze", "-i", filepath.Join(t.TempDir(), "missing.json")},
	}
	for _, args := range cases {
		_, err := execute(context.Background(), args...)
		assert.Error(t, err, "%v", args)
	}
}
