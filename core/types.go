// SPDX-License-Identifier: MIT
// Package: cloth2d/core
//
// types.go - identifiers, spring categories, relaxation outcomes, physical
// constants and sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the call site, never baked into sentinels.
//   • Simulation paths (Integrate, Update, Relax) never return errors.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrBadMass indicates a non-positive (or NaN) point mass.
	ErrBadMass = errors.New("core: mass must be > 0")

	// ErrBadStiffness indicates a negative (or NaN) spring stiffness.
	ErrBadStiffness = errors.New("core: stiffness must be ≥ 0")

	// ErrBadTearThreshold indicates a non-positive (or NaN) tear threshold.
	ErrBadTearThreshold = errors.New("core: tear threshold must be > 0")

	// ErrPointNotFound indicates a PointID outside the arena.
	ErrPointNotFound = errors.New("core: point not found")

	// ErrSelfSpring indicates a spring whose endpoints are the same point.
	ErrSelfSpring = errors.New("core: spring endpoints must differ")
)

// Physical constants shared by every point in a mesh.
const (
	// DefaultGravity is the vertical gravitational acceleration (y points up).
	DefaultGravity = -9.8

	// Damping scales the implicit Verlet velocity every integration step.
	Damping = 0.99
)

// PointID addresses a PointMass inside a Mesh (index into the point arena).
type PointID int

// SpringID addresses a Spring inside a Mesh (index into the spring arena).
type SpringID int

// NoPoint is the zero-value sentinel for "no point" in APIs that return a PointID.
const NoPoint PointID = -1

// Category tags a spring with the rule that generated it. It is metadata for
// visualization grouping only and never affects physics.
type Category uint8

const (
	// Structural connects direct grid neighbors (left/right/up/down).
	Structural Category = iota
	// Shear connects diagonal neighbors within a grid cell.
	Shear
	// Flexion connects neighbors two steps apart along a row or column.
	Flexion
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Structural:
		return "structural"
	case Shear:
		return "shear"
	case Flexion:
		return "flexion"
	default:
		return fmt.Sprintf("category(%d)", uint8(c))
	}
}

// Outcome reports what a single Spring.Update call did.
type Outcome uint8

const (
	// Inactive: the spring was already torn; nothing happened.
	Inactive Outcome = iota
	// Slack: current distance ≤ resting distance; no force.
	Slack
	// Degenerate: endpoints coincide; force skipped for this call.
	Degenerate
	// Torn: distance exceeded the tear threshold; spring deactivated, no force.
	Torn
	// Pulled: endpoints were moved toward each other.
	Pulled
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case Inactive:
		return "inactive"
	case Slack:
		return "slack"
	case Degenerate:
		return "degenerate"
	case Torn:
		return "torn"
	case Pulled:
		return "pulled"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}
