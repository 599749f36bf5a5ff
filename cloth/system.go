// SPDX-License-Identifier: MIT
// Package: cloth2d/cloth
//
// system.go - System: the per-tick loop, interaction and regeneration.
//
// Invariants:
//   • Exactly one generation is reachable at any time; Regenerate swaps the
//     whole mesh or nothing.
//   • A static point never moves through Step, held or not.
//   • The held ID always addresses a point of the current generation.

package cloth

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/cloth2d/builder"
	"github.com/katalvlaran/cloth2d/core"
	"github.com/katalvlaran/cloth2d/meshgraph"
)

// System owns one cloth generation and the interaction state around it.
// It is not safe for concurrent use.
type System struct {
	cfg   Config
	mesh  *core.Mesh
	hold  HoldState
	mouse mgl64.Vec2

	generation int
}

// New validates cfg and builds the first generation.
// Errors match ErrInvalidConfig (see Config.Validate).
func New(cfg Config) (*System, error) {
	if err := cfg.validate("New"); err != nil {
		return nil, err
	}
	m, err := build(cfg)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &System{cfg: cfg, mesh: m, generation: 1}, nil
}

func build(cfg Config) (*core.Mesh, error) {
	return builder.Build(cfg.Height, cfg.Width, cfg.options()...)
}

// Step advances the cloth by dt.
//
// Implementation:
//   - Stage 1: Iterations relaxation passes, each over every spring in
//     registration order (Gauss–Seidel; later springs see earlier corrections).
//   - Stage 2: Verlet-integrate every point except the held one.
//   - Stage 3: Move the held point onto mouse unless it is static. Its
//     previous position is left alone, so releasing it keeps the drag velocity.
//
// Returns:
//   - int: springs torn during this step.
//
// Complexity: O(Iterations·S + P).
func (s *System) Step(dt float64, mouse mgl64.Vec2) int {
	s.mouse = mouse

	torn := 0
	for i := 0; i < s.cfg.Iterations; i++ {
		torn += s.mesh.Relax()
	}

	held, ok := s.hold.Held()
	s.mesh.Integrate(dt, mgl64.Vec2{0, s.cfg.Gravity}, held)
	if ok {
		if p, err := s.mesh.Point(held); err == nil && !p.Static() {
			p.MoveTo(mouse)
		}
	}

	return torn
}

// SelectNearest captures the point closest to pos among those strictly
// closer than radius. Exact ties go to the point registered first.
// On a miss the hold state is left unchanged.
// Complexity: O(P).
func (s *System) SelectNearest(pos mgl64.Vec2, radius float64) bool {
	best, bestDist := core.NoPoint, radius
	s.mesh.EachPoint(func(id core.PointID, p *core.PointMass) {
		if d := p.Position().Sub(pos).Len(); d < bestDist {
			best, bestDist = id, d
		}
	})
	if best == core.NoPoint {
		return false
	}
	s.hold = Held(best)

	return true
}

// Grab records pos as the mouse position and selects the nearest point
// within the configured MouseRadius.
func (s *System) Grab(pos mgl64.Vec2) bool {
	s.mouse = pos

	return s.SelectNearest(pos, s.cfg.MouseRadius)
}

// Release lets go of the held point. No-op when Free.
func (s *System) Release() { s.hold = Free() }

// ToggleHeldStatic flips the static flag of the held point and reports
// whether a point was toggled. No-op when Free.
func (s *System) ToggleHeldStatic() bool {
	id, ok := s.hold.Held()
	if !ok {
		return false
	}
	p, err := s.mesh.Point(id)
	if err != nil {
		return false
	}
	p.SetStatic(!p.Static())

	return true
}

// Regenerate discards the current generation and builds a new one from the
// current configuration. On success the held point is released and the
// generation counter advances; on failure nothing changes.
// Complexity: O(P + S·log S).
func (s *System) Regenerate() error {
	m, err := build(s.cfg)
	if err != nil {
		return fmt.Errorf("Regenerate: %w", err)
	}
	s.mesh = m
	s.hold = Free()
	s.generation++

	return nil
}

// SetStiffness rewrites the coefficient of every spring; effective next Step.
func (s *System) SetStiffness(k float64) error {
	next := s.cfg
	next.Stiffness = k
	if err := next.validate("SetStiffness"); err != nil {
		return err
	}
	if err := s.mesh.SetStiffness(k); err != nil {
		return configError("SetStiffness", err)
	}
	s.cfg = next

	return nil
}

// SetIterations sets the relaxation passes per Step (≥ 0).
func (s *System) SetIterations(n int) error {
	return s.update("SetIterations", func(c *Config) { c.Iterations = n })
}

// SetMouseRadius sets the capture radius used by Grab (> 0).
func (s *System) SetMouseRadius(r float64) error {
	return s.update("SetMouseRadius", func(c *Config) { c.MouseRadius = r })
}

// SetGravity sets the vertical acceleration applied from the next Step.
func (s *System) SetGravity(g float64) error {
	return s.update("SetGravity", func(c *Config) { c.Gravity = g })
}

// SetSize sets the grid size applied by the next Regenerate.
func (s *System) SetSize(width, height int) error {
	return s.update("SetSize", func(c *Config) { c.Width, c.Height = width, height })
}

// SetSpacing sets the point spacing applied by the next Regenerate.
func (s *System) SetSpacing(dx, dy float64) error {
	return s.update("SetSpacing", func(c *Config) { c.SpacingX, c.SpacingY = dx, dy })
}

// SetMass sets the point mass applied by the next Regenerate.
func (s *System) SetMass(m float64) error {
	return s.update("SetMass", func(c *Config) { c.Mass = m })
}

// SetTearThreshold sets the tear distance applied by the next Regenerate.
func (s *System) SetTearThreshold(t float64) error {
	return s.update("SetTearThreshold", func(c *Config) { c.TearThreshold = t })
}

// SetPinPolicy sets the static boundary applied by the next Regenerate.
func (s *System) SetPinPolicy(p builder.PinPolicy) error {
	return s.update("SetPinPolicy", func(c *Config) { c.Pin = p })
}

// update applies fn to a copy of the configuration and keeps it only if the
// result validates.
func (s *System) update(method string, fn func(c *Config)) error {
	next := s.cfg
	fn(&next)
	if err := next.validate(method); err != nil {
		return err
	}
	s.cfg = next

	return nil
}

// Config returns the current configuration, including regeneration-bound
// values not yet applied.
func (s *System) Config() Config { return s.cfg }

// Hold returns the interaction state.
func (s *System) Hold() HoldState { return s.hold }

// Mouse returns the last mouse position passed to Step or Grab.
func (s *System) Mouse() mgl64.Vec2 { return s.mouse }

// Mesh returns the current generation. Callers must treat it as read-only;
// it is replaced by the next successful Regenerate.
func (s *System) Mesh() *core.Mesh { return s.mesh }

// Points returns a snapshot of every point in registration order.
// Complexity: O(P).
func (s *System) Points() []PointView {
	out := make([]PointView, 0, s.mesh.PointCount())
	s.mesh.EachPoint(func(id core.PointID, p *core.PointMass) {
		out = append(out, PointView{ID: id, Pos: p.Position(), Static: p.Static()})
	})

	return out
}

// Springs returns a snapshot of every spring, torn ones included, in
// registration order.
// Complexity: O(S).
func (s *System) Springs() []SpringView {
	out := make([]SpringView, 0, s.mesh.SpringCount())
	s.mesh.EachSpring(func(id core.SpringID, sp core.Spring) {
		out = append(out, springView(id, sp))
	})

	return out
}

// VisibleSprings returns the active springs shown under v, in registration order.
// Complexity: O(S).
func (s *System) VisibleSprings(v View) []SpringView {
	var out []SpringView
	s.mesh.EachSpring(func(id core.SpringID, sp core.Spring) {
		if sp.Active() && v.Includes(sp.Category) {
			out = append(out, springView(id, sp))
		}
	})

	return out
}

func springView(id core.SpringID, sp core.Spring) SpringView {
	return SpringView{ID: id, A: sp.A, B: sp.B, Category: sp.Category, Active: sp.Active()}
}

// Stats summarizes the current generation.
// Complexity: O(P + S).
func (s *System) Stats() Stats {
	springs, active := s.mesh.SpringCount(), s.mesh.ActiveSpringCount()

	return Stats{
		Points:     s.mesh.PointCount(),
		Springs:    springs,
		Active:     active,
		Torn:       springs - active,
		Fragments:  meshgraph.Fragments(s.mesh),
		Generation: s.generation,
	}
}

// KineticEnergy returns Σ ½·m·|pos − prev|² over the free points, a cheap
// measure of how much the cloth is still moving (velocity in units per tick).
// Complexity: O(P).
func (s *System) KineticEnergy() float64 {
	e := 0.0
	s.mesh.EachPoint(func(_ core.PointID, p *core.PointMass) {
		if p.Static() {
			return
		}
		v := p.Speed()
		e += 0.5 * p.Mass() * v * v
	})

	return e
}
