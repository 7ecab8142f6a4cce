// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, density).
//
// Model:
//   1. Spanning-tree phase: a "connected" pool seeded with vertex 0 and an
//      "unconnected" pool with 1..n-1. Until the second pool is empty, draw a
//      random member of each, join them, and move the new vertex across.
//      Produces exactly n-1 edges.
//   2. Densification phase: draw two random vertices; if they differ and the
//      unordered pair is unused, join them. Repeat until TargetEdges(n, density).
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices). n ≤ 1 adds the vertices and no edges.
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   - cfg.rng must be non-nil when n ≥ 2 (else ErrNeedRandSource).
//   - Never emits a self-loop or a repeated unordered pair.
//
// Determinism:
//   - For a fixed rng state, weightFn and idFn, the edge list (order,
//     endpoints, weights) is identical across runs.
//
// Complexity:
//   - Time: O(n + m) expected draws while m ≪ n²/2; densities near 1
//     degrade towards O(m log m) from resampling.
//   - Space: O(n + m) for the pools and the used-pair set.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstbench/core"
)

// TargetEdges returns clamp(round(density·MaxEdges(n)), n−1, MaxEdges(n)),
// the edge count RandomConnected aims for. Returns 0 for n ≤ 1.
func TargetEdges(n int, density float64) int {
	if n <= 1 {
		return 0
	}
	maxEdges := core.MaxEdges(n)
	target := int(math.Round(density * float64(maxEdges)))
	if target < n-1 {
		target = n - 1
	}
	if target > maxEdges {
		target = maxEdges
	}

	return target
}

// RandomConnected returns a Constructor that builds a random connected simple
// graph over n vertices whose edge count is TargetEdges(n, density).
func RandomConnected(n int, density float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < min=0: %w", MethodRandomConnected, n, ErrTooFewVertices)
		}
		if err := validateDensity(MethodRandomConnected, density); err != nil {
			return err
		}
		if n >= 2 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		ids, err := addVertices(MethodRandomConnected, g, n, cfg.idFn)
		if err != nil || n < 2 {
			return err
		}

		rng := cfg.rng
		target := TargetEdges(n, density)
		used := make(map[int64]struct{}, target)

		// 1) Spanning-tree phase.
		connected := make([]int, 1, n)
		connected[0] = 0
		unconnected := make([]int, 0, n-1)
		for i := 1; i < n; i++ {
			unconnected = append(unconnected, i)
		}
		for len(unconnected) > 0 {
			from := connected[rng.Intn(len(connected))]
			k := rng.Intn(len(unconnected))
			to := unconnected[k]

			if err = addWeightedEdge(MethodRandomConnected, g, cfg, ids[from], ids[to]); err != nil {
				return err
			}
			used[pairKey(from, to, n)] = struct{}{}

			connected = append(connected, to)
			last := len(unconnected) - 1
			unconnected[k] = unconnected[last]
			unconnected = unconnected[:last]
		}

		// 2) Densification phase.
		for edges := n - 1; edges < target; {
			u, v := rng.Intn(n), rng.Intn(n)
			if u == v {
				continue
			}
			key := pairKey(u, v, n)
			if _, dup := used[key]; dup {
				continue
			}
			if err = addWeightedEdge(MethodRandomConnected, g, cfg, ids[u], ids[v]); err != nil {
				return err
			}
			used[key] = struct{}{}
			edges++
		}

		return nil
	}
}
