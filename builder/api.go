// SPDX-License-Identifier: MIT
// Package: cloth2d/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(rows, cols, opts...). Validates, lays out points,
//     runs constructors, registers springs. Returns a fresh *core.Mesh.
//   - Constructors only emit links into a Plan; they never touch the mesh,
//     so a failed build never leaks a half-registered topology.
//   - Determinism: same inputs/options ⇒ identical meshes and spring order.
//   - Safety: never panic; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/cloth2d/core"
)

// Constructor emits spring links for the grid described by p, using the
// resolved builderConfig. Constructors MUST:
//   - Emit links between in-bounds points only.
//   - Preserve determinism for the same grid and config.
//   - Return errors instead of panicking.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(p *Plan, cfg builderConfig) error

// DefaultConstructors returns Structural, Shear and Flexion.
func DefaultConstructors() []Constructor {
	return []Constructor{Structural(), Shear(), Flexion()}
}

// Custom adapts fn into a Constructor for topologies the built-in
// constructors do not cover. fn emits links through Plan.Add.
// A nil fn yields a Constructor that fails with ErrConstructFailed.
func Custom(fn func(p *Plan) error) Constructor {
	return func(p *Plan, _ builderConfig) error {
		if fn == nil {
			return fmt.Errorf("Custom: nil function: %w", ErrConstructFailed)
		}

		return fn(p)
	}
}

// Validate runs the checks Build performs before doing any work and reports
// the first violation. A nil result guarantees Build succeeds with the
// default constructors.
// Complexity: O(len(opts)).
func Validate(rows, cols int, opts ...Option) error {
	cfg := newBuilderConfig(opts...)
	if err := validateDims(MethodValidate, rows, cols); err != nil {
		return err
	}

	return validateConfig(MethodValidate, cfg)
}

// Build creates a rows×cols cloth mesh.
//
// Implementation:
//   - Stage 1: Resolve options and validate dimensions, spacing, mass, stiffness, tear.
//   - Stage 2: Add points row-major; x = origin.x + c·dx, y = origin.y − r·dy;
//     apply the pin policy to row 0 before any spring exists.
//   - Stage 3: Run constructors in order; each emits links into the Plan.
//   - Stage 4: Register links in final order (see Plan.Links).
//
// Errors:
//   - ErrTooFewPoints, ErrBadSpacing, core.ErrBadMass, core.ErrBadStiffness,
//     core.ErrBadTearThreshold, ErrConstructFailed; all wrapped with "Build".
//
// Complexity:
//   - Time O(rows·cols + S·log S), Space O(rows·cols + S).
func Build(rows, cols int, opts ...Option) (*core.Mesh, error) {
	cfg := newBuilderConfig(opts...)

	// Stage 1: validation (fail fast; no partial work).
	if err := validateDims(MethodBuild, rows, cols); err != nil {
		return nil, err
	}
	if err := validateConfig(MethodBuild, cfg); err != nil {
		return nil, err
	}

	// Stage 2: points.
	st, sh, fl := ExpectedSprings(rows, cols)
	m := core.NewMesh(rows*cols, st+sh+fl)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := cfg.origin.Add(mgl64.Vec2{float64(c) * cfg.dx, -float64(r) * cfg.dy})
			id, err := m.AddPoint(pos, cfg.mass)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", MethodBuild, err)
			}
			if cfg.pin.Pinned(r, c, cols) {
				p, _ := m.Point(id)
				p.SetStatic(true)
			}
		}
	}

	// Stage 3: links.
	plan := &Plan{Grid: Grid{Rows: rows, Cols: cols}}
	for i, con := range cfg.constructors {
		if con == nil {
			return nil, builderErrorf(MethodBuild, ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := con(plan, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuild, err)
		}
	}

	// Stage 4: registration.
	for _, l := range plan.Links() {
		if _, err := m.AddSpring(l.A, l.B, cfg.stiffness, cfg.tear, l.Category); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", MethodBuild, ErrConstructFailed, err)
		}
	}

	return m, nil
}
