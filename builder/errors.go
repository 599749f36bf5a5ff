// SPDX-License-Identifier: MIT
// Package: cloth2d/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Mass, stiffness and tear threshold violations surface the core sentinels
//     (core.ErrBadMass, core.ErrBadStiffness, core.ErrBadTearThreshold).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that rows or cols is below MinGridDim.
// Usage: if errors.Is(err, ErrTooFewPoints) { /* report invalid size */ }.
var ErrTooFewPoints = errors.New("builder: grid dimension too small")

// ErrBadSpacing indicates a non-positive (or non-finite) horizontal or vertical spacing.
// Usage: if errors.Is(err, ErrBadSpacing) { /* reject spacing */ }.
var ErrBadSpacing = errors.New("builder: spacing must be > 0")

// ErrConstructFailed indicates that a constructor could not produce a valid
// topology (nil constructor, or a link the mesh refused).
// Usage: if errors.Is(err, ErrConstructFailed) { /* fix constructor list */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps sentinel err with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <err>".
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
