// SPDX-License-Identifier: MIT
// Package: cloth2d/core
//
// spring.go - Spring: a stretch-only, tearable distance constraint.
//
// Contract:
//   • Rest is fixed at construction (|B − A| at that moment) and never recomputed.
//   • Compression is ignored: d ≤ Rest applies no force.
//   • Once torn a spring is inactive for the rest of its lifetime.
//   • The correction strength is Stiffness / mass(A); masses are uniform per cloth.

package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Spring is a pairwise distance constraint between two points of a Mesh.
// A is the point that attached the spring, B the other endpoint.
type Spring struct {
	A, B PointID

	// Rest is the resting distance captured at construction.
	Rest float64
	// Stiffness is the correction coefficient (divided by the endpoint mass).
	Stiffness float64
	// TearThreshold is the distance beyond which the spring tears.
	TearThreshold float64
	// Category is visualization metadata; physics ignores it.
	Category Category

	active bool
}

// Active reports whether the spring is still intact.
func (s *Spring) Active() bool { return s.active }

// Other returns the endpoint opposite to id, or NoPoint if id is not an endpoint.
func (s *Spring) Other(id PointID) PointID {
	switch id {
	case s.A:
		return s.B
	case s.B:
		return s.A
	default:
		return NoPoint
	}
}

// Length returns the current Euclidean distance between a and b.
func Length(a, b *PointMass) float64 {
	return a.pos.Sub(b.pos).Len()
}

// Update relaxes the spring once, moving the free endpoints a and b toward
// each other when the spring is stretched. a and b must be the points
// addressed by s.A and s.B.
//
// Implementation:
//   - Stage 1: Inactive springs return Inactive without touching anything.
//   - Stage 2: d ≤ Rest → Slack; d == 0 → Degenerate (division guard).
//   - Stage 3: d > TearThreshold → deactivate, Torn, no force on this call.
//   - Stage 4: displacement = (Rest − d)/d (negative), k = Stiffness/mass(a);
//     a += k·diff·displacement, b −= k·diff·displacement, skipping static endpoints.
//
// Returns:
//   - Outcome: what happened on this call.
//
// Complexity: O(1).
func (s *Spring) Update(a, b *PointMass) Outcome {
	if !s.active {
		return Inactive
	}

	diff := a.pos.Sub(b.pos)
	dist := diff.Len()

	// Coincident endpoints: no direction to pull along.
	if dist == 0 || math.IsNaN(dist) {
		return Degenerate
	}
	if dist <= s.Rest {
		return Slack
	}
	if dist > s.TearThreshold {
		s.active = false
		return Torn
	}

	displacement := (s.Rest - dist) / dist
	k := s.Stiffness * a.invMass
	corr := diff.Mul(k * displacement)

	if !a.static {
		a.pos = a.pos.Add(corr)
	}
	if !b.static {
		b.pos = b.pos.Sub(corr)
	}

	return Pulled
}

// restOf returns the resting distance for a spring between a and b.
func restOf(a, b mgl64.Vec2) float64 {
	return b.Sub(a).Len()
}
