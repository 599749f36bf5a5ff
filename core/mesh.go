// SPDX-License-Identifier: MIT
// Package: cloth2d/core
//
// mesh.go - Mesh: the arena owning every point and spring of one cloth
// generation.
//
// Determinism:
//   • Points are stored in insertion order; PointID is the insertion index.
//   • Springs are stored in registration order; Relax visits them in that order.
//
// Lifecycle:
//   • Points are never removed; springs are never removed, only torn.
//   • A new generation is a new Mesh; nothing is shared between generations.

package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is the point/spring arena of a single cloth generation.
type Mesh struct {
	points  []PointMass
	springs []Spring
}

// NewMesh returns an empty Mesh with room for the given number of points and springs.
// Negative hints are treated as zero.
func NewMesh(pointHint, springHint int) *Mesh {
	return &Mesh{
		points:  make([]PointMass, 0, max(pointHint, 0)),
		springs: make([]Spring, 0, max(springHint, 0)),
	}
}

// AddPoint appends a resting point and returns its ID.
// Returns ErrBadMass for mass ≤ 0.
// Complexity: O(1) amortized.
func (m *Mesh) AddPoint(pos mgl64.Vec2, mass float64) (PointID, error) {
	p, err := NewPointMass(pos, mass)
	if err != nil {
		return NoPoint, fmt.Errorf("AddPoint: %w", err)
	}
	m.points = append(m.points, p)

	return PointID(len(m.points) - 1), nil
}

// AddSpring registers an active spring from a to b and records it on both
// endpoints. The resting distance is the distance between the endpoints now.
//
// Errors:
//   - ErrPointNotFound: a or b outside the arena.
//   - ErrSelfSpring: a == b.
//   - ErrBadStiffness: stiffness < 0 or NaN.
//   - ErrBadTearThreshold: tear ≤ 0 or NaN.
//
// Complexity: O(1) amortized.
func (m *Mesh) AddSpring(a, b PointID, stiffness, tear float64, cat Category) (SpringID, error) {
	if !m.has(a) || !m.has(b) {
		return -1, fmt.Errorf("AddSpring(%d→%d): %w", a, b, ErrPointNotFound)
	}
	if a == b {
		return -1, fmt.Errorf("AddSpring(%d→%d): %w", a, b, ErrSelfSpring)
	}
	if !(stiffness >= 0) || math.IsInf(stiffness, 0) {
		return -1, fmt.Errorf("AddSpring(%d→%d): stiffness=%g: %w", a, b, stiffness, ErrBadStiffness)
	}
	if !(tear > 0) {
		return -1, fmt.Errorf("AddSpring(%d→%d): tear=%g: %w", a, b, tear, ErrBadTearThreshold)
	}

	id := SpringID(len(m.springs))
	m.springs = append(m.springs, Spring{
		A:             a,
		B:             b,
		Rest:          restOf(m.points[a].pos, m.points[b].pos),
		Stiffness:     stiffness,
		TearThreshold: tear,
		Category:      cat,
		active:        true,
	})
	m.points[a].attach(id)
	m.points[b].attach(id)

	return id, nil
}

func (m *Mesh) has(id PointID) bool {
	return id >= 0 && int(id) < len(m.points)
}

// Point returns the live point addressed by id, or ErrPointNotFound.
// The pointer is invalidated by the next AddPoint.
func (m *Mesh) Point(id PointID) (*PointMass, error) {
	if !m.has(id) {
		return nil, fmt.Errorf("Point(%d): %w", id, ErrPointNotFound)
	}

	return &m.points[id], nil
}

// Spring returns a copy of the spring addressed by id.
func (m *Mesh) Spring(id SpringID) (Spring, bool) {
	if id < 0 || int(id) >= len(m.springs) {
		return Spring{}, false
	}

	return m.springs[id], true
}

// PointCount returns the number of points.
func (m *Mesh) PointCount() int { return len(m.points) }

// SpringCount returns the number of springs, torn ones included.
func (m *Mesh) SpringCount() int { return len(m.springs) }

// ActiveSpringCount returns the number of intact springs.
// Complexity: O(S).
func (m *Mesh) ActiveSpringCount() int {
	n := 0
	for i := range m.springs {
		if m.springs[i].active {
			n++
		}
	}

	return n
}

// EachPoint calls fn for every point in insertion order.
func (m *Mesh) EachPoint(fn func(id PointID, p *PointMass)) {
	for i := range m.points {
		fn(PointID(i), &m.points[i])
	}
}

// EachSpring calls fn for every spring in registration order, torn ones included.
func (m *Mesh) EachSpring(fn func(id SpringID, s Spring)) {
	for i := range m.springs {
		fn(SpringID(i), m.springs[i])
	}
}

// Relax runs one Gauss–Seidel pass: every active spring is updated once in
// registration order. It never aborts; degenerate springs are skipped.
//
// Returns:
//   - int: number of springs torn during this pass.
//
// Complexity: O(S).
func (m *Mesh) Relax() int {
	torn := 0
	for i := range m.springs {
		s := &m.springs[i]
		if !s.active {
			continue
		}
		if s.Update(&m.points[s.A], &m.points[s.B]) == Torn {
			torn++
		}
	}

	return torn
}

// Integrate advances every point except skip by one Verlet step.
// Pass NoPoint to integrate all points.
// Complexity: O(P).
func (m *Mesh) Integrate(dt float64, gravity mgl64.Vec2, skip PointID) {
	for i := range m.points {
		if PointID(i) == skip {
			continue
		}
		m.points[i].Integrate(dt, gravity)
	}
}

// SetStiffness rewrites the stiffness of every spring, torn ones included,
// so the new value applies from the next relaxation pass.
// Returns ErrBadStiffness for k < 0 or NaN.
// Complexity: O(S).
func (m *Mesh) SetStiffness(k float64) error {
	if !(k >= 0) || math.IsInf(k, 0) {
		return fmt.Errorf("SetStiffness(%g): %w", k, ErrBadStiffness)
	}
	for i := range m.springs {
		m.springs[i].Stiffness = k
	}

	return nil
}
