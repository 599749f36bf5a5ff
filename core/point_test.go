package core_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloth2d/core"
)

const eps = 1e-12

var noGravity = mgl64.Vec2{}

func TestNewPointMass_RejectsBadMass(t *testing.T) {
	t.Parallel()

	for _, m := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := core.NewPointMass(mgl64.Vec2{}, m)
		assert.ErrorIs(t, err, core.ErrBadMass, "mass=%v", m)
	}
}

func TestPointMass_InverseMassTracksMass(t *testing.T) {
	t.Parallel()

	p, err := core.NewPointMass(mgl64.Vec2{1, 2}, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.25, p.InverseMass())

	require.NoError(t, p.SetMass(0.5))
	assert.Equal(t, 0.5, p.Mass())
	assert.Equal(t, 2.0, p.InverseMass())

	// A rejected update leaves the previous mass in place.
	assert.ErrorIs(t, p.SetMass(-3), core.ErrBadMass)
	assert.Equal(t, 0.5, p.Mass())
	assert.Equal(t, 2.0, p.InverseMass())
}

func TestPointMass_IntegrateStaticIsNoop(t *testing.T) {
	t.Parallel()

	p, err := core.NewPointMass(mgl64.Vec2{3, 4}, 1)
	require.NoError(t, err)
	p.SetStatic(true)

	for i := 0; i < 100; i++ {
		p.Integrate(0.02, mgl64.Vec2{0, core.DefaultGravity})
	}
	assert.Equal(t, mgl64.Vec2{3, 4}, p.Position())
	assert.Equal(t, mgl64.Vec2{3, 4}, p.Previous())
}

func TestPointMass_SetStaticKeepsPosition(t *testing.T) {
	t.Parallel()

	p, err := core.NewPointMass(mgl64.Vec2{1, 1}, 1)
	require.NoError(t, err)
	p.MoveTo(mgl64.Vec2{2, 5})
	p.SetStatic(true)
	assert.True(t, p.Static())
	assert.Equal(t, mgl64.Vec2{2, 5}, p.Position())
	p.SetStatic(false)
	assert.False(t, p.Static())
	assert.Equal(t, mgl64.Vec2{2, 5}, p.Position())
}

func TestPointMass_GravityIsMassIndependent(t *testing.T) {
	t.Parallel()

	const dt = 0.1
	g := mgl64.Vec2{0, core.DefaultGravity}

	light, err := core.NewPointMass(mgl64.Vec2{}, 0.1)
	require.NoError(t, err)
	heavy, err := core.NewPointMass(mgl64.Vec2{}, 50)
	require.NoError(t, err)

	light.Integrate(dt, g)
	heavy.Integrate(dt, g)

	want := core.DefaultGravity * dt * dt
	assert.InDelta(t, want, light.Position().Y(), eps)
	assert.InDelta(t, want, heavy.Position().Y(), eps)
	assert.Equal(t, mgl64.Vec2{}, light.Previous())
}

func TestPointMass_VerletDampsVelocity(t *testing.T) {
	t.Parallel()

	p, err := core.NewPointMass(mgl64.Vec2{0, 0}, 1)
	require.NoError(t, err)
	// Give the point an implicit velocity of (1,0).
	p.MoveTo(mgl64.Vec2{1, 0})

	p.Integrate(1, noGravity)
	assert.InDelta(t, 1+core.Damping, p.Position().X(), eps)
	assert.Equal(t, mgl64.Vec2{1, 0}, p.Previous())
	assert.InDelta(t, core.Damping, p.Speed(), eps)
}

func TestPointMass_ApplyForceClearedAfterIntegrate(t *testing.T) {
	t.Parallel()

	p, err := core.NewPointMass(mgl64.Vec2{}, 2)
	require.NoError(t, err)

	p.ApplyForce(mgl64.Vec2{4, 0}) // a = 2
	p.Integrate(1, noGravity)
	assert.InDelta(t, 2.0, p.Position().X(), eps)

	// Next step coasts on the implicit velocity only.
	p.Integrate(1, noGravity)
	assert.InDelta(t, 2.0+2.0*core.Damping, p.Position().X(), eps)
}
