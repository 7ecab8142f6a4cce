package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

var (
	// ErrStartVertexNotFound means the start ID is not a vertex of the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil means BFS was called with a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation means an Option received an unusable value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option adjusts Options. An Option that rejects its argument records the
// failure and BFS returns it before walking.
type Option func(*Options)

// Options is the resolved walk configuration.
type Options struct {
	Ctx context.Context

	// OnVisit runs once per dequeued vertex; an error stops the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the walk when positive.
	MaxDepth int

	// EdgeFilter decides whether the walk may cross e.
	EdgeFilter func(e core.Edge) bool

	err error
}

// DefaultOptions walks the whole reachable set with a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		EdgeFilter: func(core.Edge) bool { return true },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to vertices at most d edges from the start.
// Zero removes the limit; negative values yield ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithEdgeFilter restricts the walk to edges for which keep returns true,
// e.g. to explore only edges up to a weight threshold.
func WithEdgeFilter(keep func(e core.Edge) bool) Option {
	return func(o *Options) {
		if keep != nil {
			o.EdgeFilter = keep
		}
	}
}

// Result is what one walk discovered. Depth and Parent are keyed by vertex
// ID; the start vertex has depth 0 and no parent.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether the walk visited id.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]

	return ok
}

// PathTo follows Parent links back from dest and returns the vertices from
// the start to dest inclusive.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := make([]string, r.Depth[dest]+1)
	cur := dest
	for i := len(path) - 1; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
