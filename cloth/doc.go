// Package cloth runs a real-time 2D mass-spring cloth: a grid of Verlet point
// masses joined by tearable springs, relaxed a fixed number of times per tick,
// with one point that can be grabbed and dragged.
//
// What:
//
//   - System owns one generation of the cloth (a *core.Mesh built by builder).
//   - Step(dt, mouse) relaxes every spring Iterations times in registration
//     order, then integrates every point except the held one, which is moved
//     onto the mouse position instead.
//   - Interaction is a two-state machine, Free or Held(id): SelectNearest/Grab
//     capture the closest point strictly inside a radius, Release lets go,
//     ToggleHeldStatic pins or frees the held point.
//   - Regenerate discards the current generation and builds a fresh one from
//     the current Config. The swap is atomic; a failed build keeps the old mesh.
//
// Configuration:
//
//   - Live (next Step): SetStiffness, SetIterations, SetMouseRadius, SetGravity.
//   - Regeneration-bound (validated immediately, applied by Regenerate):
//     SetSize, SetSpacing, SetMass, SetTearThreshold, SetPinPolicy.
//
// Errors:
//
//   - Every configuration error matches ErrInvalidConfig and, in addition, the
//     specific sentinel: builder.ErrTooFewPoints, builder.ErrBadSpacing,
//     core.ErrBadMass, core.ErrBadStiffness, core.ErrBadTearThreshold,
//     ErrBadIterations, ErrBadRadius or ErrBadGravity.
//   - Interaction with nothing held is a no-op, never an error.
//   - Step never fails: degenerate springs are skipped, torn ones ignored.
//
// Concurrency:
//
//   - A System is not safe for concurrent use. The host drives Step,
//     interaction and setters from a single goroutine.
//
// Complexity:
//
//   - Step: O(Iterations·S + P). SelectNearest: O(P). Regenerate: O(P + S·log S).
package cloth
