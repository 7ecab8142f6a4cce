// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n, p): include each unordered pair {i,j}, i<j,
//     independently with probability p. The result may be disconnected,
//     which makes it the fixture for partial MST results.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - Trial order is i asc, then j asc; one rng.Float64 per pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

const minRandomSparseVertices = 1

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if !(p >= MinDensity && p <= MaxDensity) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinDensity, MaxDensity, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(MethodRandomSparse, g, n, cfg.idFn)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !bernoulli(cfg, p) {
					continue
				}
				if err = addWeightedEdge(MethodRandomSparse, g, cfg, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// bernoulli reports a success with probability p; p ∈ {0,1} never draws.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
