// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path edges (i-1)-i for i=1..n-1, then the closing edge (n-1)-0.
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"github.com/katalvlaran/mstbench/core"
)

// Cycle returns a Constructor that builds a simple ring C_n.
// Any MST of C_n drops exactly one edge of maximum weight.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}

		ids, err := addVertices(MethodCycle, g, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addWeightedEdge(MethodCycle, g, cfg, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return addWeightedEdge(MethodCycle, g, cfg, ids[n-1], ids[0])
	}
}
