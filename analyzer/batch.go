package analyzer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/prim_kruskal"
	"github.com/katalvlaran/mstbench/unionfind"
)

// Batch analyzes every item and returns one Outcome per item, in input order.
//
// Up to WithWorkers items run concurrently. A failing item never stops the
// others: load errors, nil graphs and recovered contract violations are
// recorded in that item's Outcome.Err. Once ctx is done no new item starts;
// unstarted items carry ctx.Err().
func Batch(ctx context.Context, items []Item, opts ...Option) []Outcome {
	c := newConfig(opts)
	out := make([]Outcome, len(items))

	var eg errgroup.Group
	eg.SetLimit(c.workers)
	for i := range items {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(items); j++ {
				out[j] = Outcome{ID: items[j].ID, Err: err}
			}
			break
		}
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i] = Outcome{ID: items[i].ID, Err: err}
				return nil
			}
			out[i] = runItem(items[i], opts)
			return nil
		})
	}
	// workers never return errors; failures live in the outcomes
	_ = eg.Wait()

	failed := 0
	for _, o := range out {
		if !o.OK() {
			failed++
		}
	}
	c.logger.Info("batch finished",
		zap.Int("total", len(out)),
		zap.Int("succeeded", len(out)-failed),
		zap.Int("failed", failed))

	return out
}

// runItem loads and analyzes one item, converting contract-violation panics
// into ErrContractViolation. Other panics propagate.
func runItem(it Item, opts []Option) (o Outcome) {
	c := newConfig(opts)
	o.ID = it.ID
	logger := c.logger.With(zap.Int("graph_id", it.ID))

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok || !isContractViolation(err) {
			panic(r)
		}
		o = Outcome{ID: it.ID, Err: fmt.Errorf("%w: %w", ErrContractViolation, err)}
		logger.Error("analysis aborted", zap.Error(o.Err))
	}()

	var (
		g   *core.Graph
		err error
	)
	if it.Load != nil {
		g, err = it.Load()
	}
	if err != nil {
		o.Err = err
		logger.Warn("graph skipped", zap.Error(err))
		return o
	}
	if g == nil {
		o.Err = ErrNilGraph
		logger.Warn("graph skipped", zap.Error(o.Err))
		return o
	}

	itemOpts := make([]Option, 0, len(opts)+1)
	itemOpts = append(itemOpts, opts...)
	itemOpts = append(itemOpts, WithLogger(logger))
	o.Comparison = Analyze(g, itemOpts...)
	logComparison(logger, o.Comparison)

	return o
}

// isContractViolation matches the panics raised by unionfind and by Prim on
// an unknown root.
func isContractViolation(err error) bool {
	var cv *unionfind.ContractViolation

	return errors.As(err, &cv) || errors.Is(err, prim_kruskal.ErrRootNotFound)
}
