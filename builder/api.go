// SPDX-License-Identifier: MIT
// Package: mstbench/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors and preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// GenerateGraph builds a random connected graph with vertices "N0".."N(n-1)"
// and integer weights uniform in [1, DefaultMaxWeight]. Identical
// (n, density, seed) reproduce an identical edge list.
//
// Errors: ErrTooFewVertices for n < 0, ErrInvalidDensity for density ∉ [0,1].
func GenerateGraph(n int, density float64, seed int64) (*core.Graph, error) {
	if err := validateDensity(MethodRandomConnected, density); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	gopts := []core.GraphOption{
		core.WithVertexCapacity(n),
		core.WithEdgeCapacity(TargetEdges(n, density)),
	}
	bopts := []BuilderOption{
		WithSeed(seed),
		WithPrefixIDs(GeneratedVertexPrefix),
		WithUniformWeight(DefaultEdgeWeight, DefaultMaxWeight),
	}

	return BuildGraph(gopts, bopts, RandomConnected(n, density))
}

// GenerateSparse builds a G(n, p) graph with the same ID and weight policy as
// GenerateGraph. The result may be disconnected.
//
// Errors: ErrTooFewVertices for n < 1, ErrInvalidProbability for p ∉ [0,1].
func GenerateSparse(n int, p float64, seed int64) (*core.Graph, error) {
	bopts := []BuilderOption{
		WithSeed(seed),
		WithPrefixIDs(GeneratedVertexPrefix),
		WithUniformWeight(DefaultEdgeWeight, DefaultMaxWeight),
	}

	return BuildGraph([]core.GraphOption{core.WithVertexCapacity(n)}, bopts, RandomSparse(n, p))
}
