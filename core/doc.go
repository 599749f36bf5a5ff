// Package core provides the physics primitives of a 2D mass-spring cloth:
// Verlet-integrated point masses, tearable stretch-only springs, and the
// Mesh arena that owns both.
//
// The Mesh M = (P,S) keeps:
//
//   - Points in insertion order, addressed by PointID (index into the arena)
//   - Springs in registration order, addressed by SpringID
//   - Per-point lists of incident SpringIDs (non-owning back-references)
//
// Why an arena?
//
//   - Endpoints are shared: a spring never owns a point, both endpoints outlive it.
//   - Tearing flips a flag instead of mutating lists, so removal is never partial.
//   - Stable integer IDs make relaxation order explicit and reproducible.
//
// Physics:
//
//	PointMass.Integrate(dt, g)
//	    v    = (Pos − Prev) · Damping
//	    a   += g                     (applied as force g·m, divided back by m)
//	    next = Pos + v + a·dt²
//	    Prev, Pos = Pos, next
//
//	Spring.Update(a, b)
//	    d = |a − b|
//	    d ≤ Rest        → Slack       (no compression resistance)
//	    d == 0          → Degenerate  (skipped, never fatal)
//	    d > Tear        → Torn        (deactivated, no force this call)
//	    otherwise       → Pulled      (each free endpoint moved by ±k·(a−b)·(Rest−d)/d)
//
// Core Methods:
//
//	// Arena lifecycle
//	AddPoint(pos, mass) (PointID, error)                      // O(1)
//	AddSpring(a, b, stiffness, tear, cat) (SpringID, error)   // O(1)
//
//	// Query
//	Point(id) / Spring(id)                                    // O(1)
//	PointCount() / SpringCount() / ActiveSpringCount()        // O(1) / O(1) / O(S)
//
//	// Simulation
//	Relax() int                                               // O(S): one relaxation pass
//	SetStiffness(k) error                                     // O(S)
//
// Errors:
//
//	ErrBadMass          – mass ≤ 0 or NaN
//	ErrBadStiffness     – stiffness < 0 or NaN
//	ErrBadTearThreshold – tear threshold ≤ 0 or NaN
//	ErrPointNotFound    – PointID outside the arena
//	ErrSelfSpring       – spring endpoints are the same point
//
// A Mesh is not safe for concurrent use; the owning cloth system drives it
// from a single goroutine.
package core
