// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"
)

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateDensity enforces density ∈ [MinDensity, MaxDensity]; NaN is rejected.
// Complexity: O(1).
func validateDensity(method string, density float64) error {
	if !(density >= MinDensity && density <= MaxDensity) {
		return fmt.Errorf("%s: density=%g not in [%.1f,%.1f]: %w",
			method, density, MinDensity, MaxDensity, ErrInvalidDensity)
	}

	return nil
}
