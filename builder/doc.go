// Package builder generates cloth topologies: a rows×cols grid of point
// masses joined by structural, shear and flexion springs.
//
// The package offers the following key components:
//
//   - Entry point:
//     – Build(rows, cols, opts...): validate, lay out the grid, run constructors,
//     register springs into a fresh *core.Mesh.
//     – Validate(rows, cols, opts...): the same checks, without building.
//   - Configuration primitives:
//     – Option:          a function that mutates builderConfig before use.
//     – WithSpacing, WithMass, WithStiffness, WithTearThreshold,
//     WithPinPolicy, WithOrigin, WithConstructors.
//   - Spring constructors (Constructor closures, composable):
//     – Structural():    right/down neighbors + last column and last row chains.
//     – Shear():         both diagonals of every grid cell.
//     – Flexion():       skip-one right/down neighbors + last two columns/rows.
//     – Custom(fn):      user links emitted through Plan.Add.
//   - Boundary policy:
//     – PinPolicy bit set: PinTopRow | PinTopRight | PinTopCorners.
//   - Grid bookkeeping:
//     – Grid.Index(r,c), Grid.Coord(id), ExpectedSprings(rows, cols).
//
// Layout:
//
//	(0,0)───(0,1)───(0,2)      x grows by dx per column
//	  │ ╲   ╱ │ ╲   ╱ │        y shrinks by dy per row
//	  │  ╳    │  ╳    │        row 0 is the top edge (pinning applies there)
//	  │ ╱   ╲ │ ╱   ╲ │
//	(1,0)───(1,1)───(1,2)
//
// Guarantees:
//
//   - Deterministic: identical inputs produce identical meshes, including the
//     spring registration order that drives Gauss–Seidel relaxation.
//   - Registration order does not depend on the order constructors are given:
//     springs are grouped by the point that attaches them (row-major), and
//     within a point by generation phase, cell and slot.
//   - Structured errors: invalid sizes, spacing, mass, stiffness or tear
//     threshold return sentinel errors wrapped with the method name.
//     Build never panics and never returns a partially built mesh.
//
// See individual function documentation for exact coverage contracts.
package builder
