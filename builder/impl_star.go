// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds CenterVertexID first, then n-1 leaves idFn(0..n-2).
//   - Emits spokes Center-leaf in leaf order.
//
// Complexity: O(n) time, O(n) space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// Star returns a Constructor that builds a star with hub CenterVertexID and
// n-1 leaves. A star is its own spanning tree.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}

		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", MethodStar, CenterVertexID, err)
		}
		leaves, err := addVertices(MethodStar, g, n-1, cfg.idFn)
		if err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err = addWeightedEdge(MethodStar, g, cfg, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
