package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker is the state of one BFS call.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]struct{}
	res     *Result
}

// BFS walks g breadth-first from startID, returning vertices in
// non-decreasing edge distance. Weights are ignored.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation before
// the walk; ctx.Err() or the wrapped OnVisit error during it, together with
// the partial Result.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]struct{}, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.push(startID, 0, "")

	return w.res, w.run()
}

func (w *walker) push(id string, d int, parent string) {
	w.visited[id] = struct{}{}
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) run() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		w.expand(item)
	}

	return nil
}

// expand pushes the far end of every admitted edge of item, in edge
// encounter order.
func (w *walker) expand(item queueItem) {
	// item.id was pushed, so it exists
	edges, _ := w.graph.IncidentEdges(item.id)
	for _, e := range edges {
		if !w.opts.EdgeFilter(e) {
			continue
		}
		nbr, _ := e.Other(item.id)
		if _, seen := w.visited[nbr]; seen {
			continue
		}
		w.push(nbr, item.depth+1, item.id)
	}
}
