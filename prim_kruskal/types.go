package prim_kruskal

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/core"
)

// ErrInvalidGraph indicates that Compute received a nil graph.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates that MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrRootNotFound indicates that the requested Prim start vertex is absent.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result is the immutable outcome of one algorithm invocation.
type Result struct {
	// Algorithm is MethodPrim or MethodKruskal.
	Algorithm string

	// Edges are the selected edges in the order the algorithm accepted them.
	Edges []core.Edge

	// TotalCost is the sum of the selected edge weights.
	TotalCost int64

	// Operations is the algorithm-defined count of dominant primitive operations.
	Operations int64

	// Elapsed is the wall-clock duration of the call.
	Elapsed time.Duration

	// Vertices is |V| of the input graph.
	Vertices int

	// Covered is the number of vertices reached by the result. Prim counts
	// the grown tree including its root; Kruskal counts the vertices touched
	// by accepted edges. Equals Vertices when the result is spanning.
	Covered int
}

// Spanning reports whether the result connects every vertex, which holds
// iff the input graph is connected. Graphs with ≤ 1 vertex are spanning.
func (r Result) Spanning() bool {
	if r.Vertices <= 1 {
		return true
	}

	return len(r.Edges) == r.Vertices-1
}

// Partial reports whether the input was disconnected and the result only
// covers part of it.
func (r Result) Partial() bool { return !r.Spanning() }

// ElapsedMillis returns Elapsed in whole milliseconds.
func (r Result) ElapsedMillis() int64 { return r.Elapsed.Milliseconds() }

// MSTOptions configures which MST algorithm to run and how it reports.
// Use DefaultOptions() to get a default setup (Kruskal, no-op logger).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal. Only read by Compute.
	Method string

	// Root is the start vertex for Prim. Empty means the first vertex in
	// insertion order. Unused by Kruskal.
	Root string

	// Logger receives informational entries such as partial coverage.
	Logger *zap.Logger

	// Clock reads the current time for the elapsed measurement.
	Clock func() time.Time
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod sets the algorithm Compute dispatches to.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithLogger routes informational entries to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(opts *MSTOptions) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// WithClock replaces time.Now for the elapsed measurement.
func WithClock(now func() time.Time) Option {
	return func(opts *MSTOptions) {
		if now != nil {
			opts.Clock = now
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (first vertex, ignored by Kruskal)
//	– Logger = zap.NewNop()
//	– Clock  = time.Now
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
		Logger: zap.NewNop(),
		Clock:  time.Now,
	}
}

func resolve(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute validates the input and runs the algorithm selected by Method.
//
//	– If Method == MethodKruskal: calls Kruskal(graph).
//	– If Method == MethodPrim:    calls Prim(graph) after checking Root.
//	– Otherwise:                   returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Result, error) {
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	o := resolve(opts)

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, opts...), nil
	case MethodPrim:
		if o.Root != "" && !graph.HasVertex(o.Root) {
			return Result{}, fmt.Errorf("%w: %q", ErrRootNotFound, o.Root)
		}
		return Prim(graph, opts...), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// emptyResult is the base-case result for graphs with ≤ 1 vertex.
func emptyResult(method string, vertices int) Result {
	return Result{Algorithm: method, Edges: []core.Edge{}, Vertices: vertices, Covered: vertices}
}

// logPartial writes the informational disconnected-graph entry.
func logPartial(l *zap.Logger, r Result) {
	if r.Spanning() {
		return
	}
	l.Info("graph is not connected, MST covers only part of it",
		zap.String("algorithm", r.Algorithm),
		zap.Int("covered", r.Covered),
		zap.Int("vertices", r.Vertices),
		zap.Int("edges", len(r.Edges)))
}
