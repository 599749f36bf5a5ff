// Package cloth2d is a real-time 2D mass-spring cloth simulator: Verlet
// point masses joined by tearable springs, relaxed iteratively each tick,
// with grab-and-drag interaction and a procedural structural/shear/flexion
// topology over a rectangular grid.
//
// Packages, leaf-first:
//
//	core/      - PointMass, Spring and the Mesh arena that owns them
//	builder/   - grid layout, pin policies and the spring constructors
//	meshgraph/ - connected pieces of a torn mesh
//	cloth/     - System: per-tick loop, Free/Held interaction, regeneration
//	cmd/clothsim - terminal host (tcell screen, mouse drag, tear clicks)
//
// Quick start:
//
//	sys, err := cloth.New(cloth.DefaultConfig())
//	if err != nil { ... }
//	sys.Grab(mgl64.Vec2{7, -9})
//	for range ticks {
//		torn := sys.Step(dt, mouse)
//		for _, sp := range sys.VisibleSprings(cloth.ViewAll) { draw(sp) }
//	}
//
// Physics in one paragraph: each Step first runs Iterations Gauss–Seidel
// passes over the springs in registration order. A spring only pulls when
// stretched beyond its resting length, and tears for good once stretched
// past its tear threshold. Then every free point integrates
// pos' = pos + (pos − prev)·0.99 + g·dt². The held point is placed on the
// mouse instead.
//
// Everything is deterministic: same configuration and same input sequence
// give bit-identical results.
package cloth2d
