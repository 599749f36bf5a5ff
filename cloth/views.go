package cloth

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/cloth2d/core"
)

// PointView is a read-only snapshot of one point for rendering.
type PointView struct {
	ID     core.PointID
	Pos    mgl64.Vec2
	Static bool
}

// SpringView is a read-only snapshot of one spring for rendering.
// Torn springs have Active == false and should not be drawn.
type SpringView struct {
	ID       core.SpringID
	A, B     core.PointID
	Category core.Category
	Active   bool
}

// View selects which spring categories a host draws.
type View uint8

const (
	// ViewAll shows every category.
	ViewAll View = iota
	// ViewStructural shows structural springs only.
	ViewStructural
	// ViewShear shows shear springs only.
	ViewShear
	// ViewFlexion shows flexion springs only.
	ViewFlexion

	viewCount
)

// Next cycles All → Structural → Shear → Flexion → All.
func (v View) Next() View { return (v + 1) % viewCount }

// Includes reports whether springs of category c are shown under v.
func (v View) Includes(c core.Category) bool {
	switch v {
	case ViewAll:
		return true
	case ViewStructural:
		return c == core.Structural
	case ViewShear:
		return c == core.Shear
	case ViewFlexion:
		return c == core.Flexion
	default:
		return false
	}
}

// String returns "all" or the name of the shown category.
func (v View) String() string {
	switch v {
	case ViewAll:
		return "all"
	case ViewStructural:
		return core.Structural.String()
	case ViewShear:
		return core.Shear.String()
	case ViewFlexion:
		return core.Flexion.String()
	default:
		return "view(?)"
	}
}

// Stats summarizes the current generation.
type Stats struct {
	Points     int
	Springs    int // torn ones included
	Active     int
	Torn       int
	Fragments  int // connected pieces over active springs
	Generation int // 1 for the mesh built by New, +1 per Regenerate
}
