package core_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/cloth2d/core"
)

// ExampleMesh_Relax builds a pinned pendulum, stretches it, and relaxes it
// until the spring tears.
func ExampleMesh_Relax() {
	m := core.NewMesh(2, 1)
	pin, _ := m.AddPoint(mgl64.Vec2{0, 0}, 1)
	bob, _ := m.AddPoint(mgl64.Vec2{0, -1}, 1)
	_, _ = m.AddSpring(pin, bob, 0.5, 4, core.Structural)

	p, _ := m.Point(pin)
	p.SetStatic(true)

	b, _ := m.Point(bob)
	b.MoveTo(mgl64.Vec2{0, -3})
	torn := m.Relax()
	fmt.Printf("torn=%d bob=(%.1f, %.1f)\n", torn, b.Position().X(), b.Position().Y())

	b.MoveTo(mgl64.Vec2{0, -5})
	torn = m.Relax()
	fmt.Printf("torn=%d active=%d\n", torn, m.ActiveSpringCount())

	// Output:
	// torn=0 bob=(0.0, -2.0)
	// torn=1 active=0
}
