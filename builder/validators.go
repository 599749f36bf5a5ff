// Package builder provides validation helpers to enforce
// parameter contracts in Build.
//
// Each function returns a sentinel-wrapped error via builderErrorf
// when its precondition is violated.
package builder

import (
	"math"

	"github.com/katalvlaran/cloth2d/core"
)

// validateDims ensures rows and cols are each ≥ MinGridDim.
// Complexity: O(1).
func validateDims(method string, rows, cols int) error {
	if rows < MinGridDim || cols < MinGridDim {
		return builderErrorf(method, ErrTooFewPoints,
			"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, MinGridDim)
	}

	return nil
}

// finitePositive reports v > 0 and v < +Inf (NaN fails).
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// validateConfig checks every numeric knob of cfg in a fixed priority order:
// spacing, mass, stiffness, tear threshold.
// Complexity: O(1).
func validateConfig(method string, cfg builderConfig) error {
	if !finitePositive(cfg.dx) || !finitePositive(cfg.dy) {
		return builderErrorf(method, ErrBadSpacing, "dx=%g, dy=%g", cfg.dx, cfg.dy)
	}
	if !finitePositive(cfg.mass) {
		return builderErrorf(method, core.ErrBadMass, "mass=%g", cfg.mass)
	}
	if !(cfg.stiffness >= 0) || math.IsInf(cfg.stiffness, 1) {
		return builderErrorf(method, core.ErrBadStiffness, "stiffness=%g", cfg.stiffness)
	}
	if !(cfg.tear > 0) {
		return builderErrorf(method, core.ErrBadTearThreshold, "tear=%g", cfg.tear)
	}

	return nil
}
