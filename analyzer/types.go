package analyzer

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
)

// ErrContractViolation marks a graph whose analysis panicked on a broken
// internal contract, such as a Union-Find lookup of an unknown vertex.
var ErrContractViolation = errors.New("analyzer: contract violation")

// ErrNilGraph is recorded for an Item whose loader returned no graph and no error.
var ErrNilGraph = errors.New("analyzer: loader returned a nil graph")

// Comparison is the side-by-side result of both algorithms on one graph.
type Comparison struct {
	Vertices   int
	Edges      int
	Components int
	Connected  bool

	Prim    prim_kruskal.Result
	Kruskal prim_kruskal.Result

	PrimTheoretical    int64
	KruskalTheoretical int64
}

// CostsAgree reports whether both algorithms found the same total cost.
// Always true on connected graphs; on disconnected graphs Prim covers one
// component only, so the costs usually differ.
func (c Comparison) CostsAgree() bool {
	return c.Prim.TotalCost == c.Kruskal.TotalCost
}

// Item is one unit of batch work. Load is called on the worker goroutine;
// a returned error marks the item failed.
type Item struct {
	ID   int
	Load func() (*core.Graph, error)
}

// Outcome is the batch result for one Item. Exactly one of Comparison
// and Err is meaningful: Err == nil means Comparison is set.
type Outcome struct {
	ID         int
	Comparison Comparison
	Err        error
}

// OK reports whether the item was analyzed.
func (o Outcome) OK() bool { return o.Err == nil }

type config struct {
	logger  *zap.Logger
	workers int
	clock   func() time.Time
}

// Option configures Analyze and Batch.
type Option func(*config)

// WithLogger routes per-graph entries to l. A nil l keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers bounds Batch parallelism. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithClock replaces time.Now for the per-algorithm elapsed measurement.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.clock = now
		}
	}
}

func newConfig(opts []Option) config {
	c := config{logger: zap.NewNop(), workers: 1, clock: time.Now}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
