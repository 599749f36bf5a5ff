// SPDX-License-Identifier: MIT
// Package: cloth2d/core
//
// point.go - PointMass: Verlet state, mass bookkeeping, static flag and
// non-owning references to incident springs.
//
// Invariants:
//   • invMass == 1/mass, recomputed whenever mass changes.
//   • A static point never moves through Integrate or Spring.Update.
//   • acc is cleared by every non-static Integrate call.

package core

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PointMass is a simulated node. Velocity is implicit (pos − prev).
type PointMass struct {
	pos  mgl64.Vec2 // current position
	prev mgl64.Vec2 // position at the previous tick
	acc  mgl64.Vec2 // accumulated acceleration (force / mass)

	mass    float64
	invMass float64

	static  bool
	springs []SpringID // incident springs; the Mesh owns them
}

// NewPointMass returns a resting point at pos with the given mass.
// Returns ErrBadMass if mass ≤ 0 or NaN.
// Complexity: O(1).
func NewPointMass(pos mgl64.Vec2, mass float64) (PointMass, error) {
	p := PointMass{pos: pos, prev: pos}
	if err := p.SetMass(mass); err != nil {
		return PointMass{}, err
	}

	return p, nil
}

// validMass reports whether m is a usable, strictly positive mass.
func validMass(m float64) bool {
	return m > 0 && !math.IsInf(m, 0)
}

// SetMass updates mass and the derived inverse mass.
// Returns ErrBadMass if m ≤ 0, NaN or infinite; the point is left untouched.
func (p *PointMass) SetMass(m float64) error {
	if !validMass(m) {
		return fmt.Errorf("SetMass(%g): %w", m, ErrBadMass)
	}
	p.mass = m
	p.invMass = 1 / m

	return nil
}

// Mass returns the point mass.
func (p *PointMass) Mass() float64 { return p.mass }

// InverseMass returns 1/Mass.
func (p *PointMass) InverseMass() float64 { return p.invMass }

// Position returns the current position.
func (p *PointMass) Position() mgl64.Vec2 { return p.pos }

// Previous returns the position recorded at the previous integration.
func (p *PointMass) Previous() mgl64.Vec2 { return p.prev }

// Static reports whether the point is pinned.
func (p *PointMass) Static() bool { return p.static }

// SetStatic pins or frees the point. The current position is not altered.
func (p *PointMass) SetStatic(static bool) { p.static = static }

// Speed returns the magnitude of the implicit velocity |pos − prev|.
func (p *PointMass) Speed() float64 { return p.pos.Sub(p.prev).Len() }

// MoveTo sets the current position without touching the previous one.
// Used for dragging: the implicit velocity is whatever the drag leaves behind.
func (p *PointMass) MoveTo(pos mgl64.Vec2) { p.pos = pos }

// Translate shifts the current position by d.
func (p *PointMass) Translate(d mgl64.Vec2) { p.pos = p.pos.Add(d) }

// ApplyForce accumulates f/mass into the acceleration accumulator.
// The accumulator is cleared after the next Integrate call.
// Complexity: O(1).
func (p *PointMass) ApplyForce(f mgl64.Vec2) {
	p.acc = p.acc.Add(f.Mul(p.invMass))
}

// Integrate advances the point by one Verlet step of length dt under gravity.
//
// Implementation:
//   - Stage 1: Static points return immediately (no state change at all).
//   - Stage 2: Gravity is applied as a force g·m, so the resulting acceleration is mass-independent.
//   - Stage 3: next = pos + (pos − prev)·Damping + acc·dt².
//   - Stage 4: prev ← pos, pos ← next, acc ← 0.
//
// Complexity: O(1).
func (p *PointMass) Integrate(dt float64, gravity mgl64.Vec2) {
	if p.static {
		return
	}

	p.ApplyForce(gravity.Mul(p.mass))

	vel := p.pos.Sub(p.prev).Mul(Damping)
	next := p.pos.Add(vel).Add(p.acc.Mul(dt * dt))

	p.prev = p.pos
	p.pos = next
	p.acc = mgl64.Vec2{}
}

// Springs returns a copy of the incident spring IDs in attachment order.
func (p *PointMass) Springs() []SpringID {
	out := make([]SpringID, len(p.springs))
	copy(out, p.springs)

	return out
}

// SpringCount returns the number of incident springs (active or torn).
func (p *PointMass) SpringCount() int { return len(p.springs) }

// attach records an incident spring; only the Mesh calls it.
func (p *PointMass) attach(id SpringID) { p.springs = append(p.springs, id) }
