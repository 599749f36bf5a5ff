package core_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloth2d/core"
)

// pair builds a two-point mesh joined by one spring and returns handles to all three.
func pair(t *testing.T, a, b mgl64.Vec2, k, tear float64) (*core.Mesh, *core.PointMass, *core.PointMass, core.SpringID) {
	t.Helper()

	m := core.NewMesh(2, 1)
	ia, err := m.AddPoint(a, 1)
	require.NoError(t, err)
	ib, err := m.AddPoint(b, 1)
	require.NoError(t, err)
	sid, err := m.AddSpring(ia, ib, k, tear, core.Structural)
	require.NoError(t, err)

	pa, err := m.Point(ia)
	require.NoError(t, err)
	pb, err := m.Point(ib)
	require.NoError(t, err)

	return m, pa, pb, sid
}

func TestSpring_RestIsConstructionDistance(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b mgl64.Vec2
	}{
		{"unit", mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}},
		{"diagonal", mgl64.Vec2{0, 0}, mgl64.Vec2{1, -1}},
		{"3-4-5", mgl64.Vec2{1, 1}, mgl64.Vec2{4, 5}},
		{"tiny", mgl64.Vec2{0.1, 0.2}, mgl64.Vec2{0.3, -0.7}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, _, _, sid := pair(t, tc.a, tc.b, 0.5, 100)
			s, ok := m.Spring(sid)
			require.True(t, ok)
			want := math.Hypot(tc.b.X()-tc.a.X(), tc.b.Y()-tc.a.Y())
			assert.InDelta(t, want, s.Rest, eps)
			assert.True(t, s.Active())
		})
	}
}

func TestSpring_AtRestAppliesNoForce(t *testing.T) {
	t.Parallel()

	m, pa, pb, sid := pair(t, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 0.7, 10)
	s, _ := m.Spring(sid)

	out := s.Update(pa, pb)
	assert.Equal(t, core.Slack, out)
	assert.Equal(t, mgl64.Vec2{0, 0}, pa.Position())
	assert.Equal(t, mgl64.Vec2{1, 0}, pb.Position())
}

func TestSpring_CompressionAppliesNoForce(t *testing.T) {
	t.Parallel()

	m, pa, pb, sid := pair(t, mgl64.Vec2{0, 0}, mgl64.Vec2{2, 0}, 0.7, 10)
	pb.MoveTo(mgl64.Vec2{0.5, 0})
	s, _ := m.Spring(sid)

	assert.Equal(t, core.Slack, s.Update(pa, pb))
	assert.Equal(t, mgl64.Vec2{0, 0}, pa.Position())
	assert.Equal(t, mgl64.Vec2{0.5, 0}, pb.Position())
}

func TestSpring_StretchPullsEndpointsTogether(t *testing.T) {
	t.Parallel()

	m, pa, pb, sid := pair(t, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 0.5, 10)
	pb.MoveTo(mgl64.Vec2{2, 0})
	s, _ := m.Spring(sid)

	require.Equal(t, core.Pulled, s.Update(pa, pb))
	// diff = a−b = (−2,0); displacement = (1−2)/2 = −0.5; corr = 0.5·(−2)·(−0.5) = 0.5
	assert.InDelta(t, 0.5, pa.Position().X(), eps)
	assert.InDelta(t, 1.5, pb.Position().X(), eps)
	assert.True(t, s.Active())
}

func TestSpring_StaticEndpointDoesNotMove(t *testing.T) {
	t.Parallel()

	m, pa, pb, sid := pair(t, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 0.5, 10)
	pa.SetStatic(true)
	pb.MoveTo(mgl64.Vec2{3, 0})
	s, _ := m.Spring(sid)

	require.Equal(t, core.Pulled, s.Update(pa, pb))
	assert.Equal(t, mgl64.Vec2{0, 0}, pa.Position())
	assert.InDelta(t, 2.0, pb.Position().X(), eps)
}

func TestSpring_TearIsIrreversibleAndForceless(t *testing.T) {
	t.Parallel()

	m, pa, pb, sid := pair(t, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 0.5, 3)
	pb.MoveTo(mgl64.Vec2{5, 0})

	// Go through the mesh so the torn state is stored in the arena.
	assert.Equal(t, 1, m.Relax())
	assert.Equal(t, mgl64.Vec2{5, 0}, pb.Position(), "no force on the tearing call")
	assert.Equal(t, mgl64.Vec2{0, 0}, pa.Position())

	s, _ := m.Spring(sid)
	assert.False(t, s.Active())

	// Bring the points back within range: the spring stays torn.
	pb.MoveTo(mgl64.Vec2{1.5, 0})
	assert.Equal(t, 0, m.Relax())
	s, _ = m.Spring(sid)
	assert.False(t, s.Active())
	assert.Equal(t, core.Inactive, s.Update(pa, pb))
	assert.Equal(t, mgl64.Vec2{1.5, 0}, pb.Position())
	assert.Equal(t, 0, m.ActiveSpringCount())
}

func TestSpring_CoincidentEndpointsAreDegenerate(t *testing.T) {
	t.Parallel()

	m, pa, pb, sid := pair(t, mgl64.Vec2{0, 0}, mgl64.Vec2{1, 0}, 0.5, 10)
	pb.MoveTo(mgl64.Vec2{0, 0})
	s, _ := m.Spring(sid)

	assert.Equal(t, core.Degenerate, s.Update(pa, pb))
	assert.Equal(t, mgl64.Vec2{0, 0}, pa.Position())
	assert.Equal(t, mgl64.Vec2{0, 0}, pb.Position())
	assert.True(t, s.Active())
}

func TestSpring_Other(t *testing.T) {
	t.Parallel()

	s := core.Spring{A: 3, B: 7}
	assert.Equal(t, core.PointID(7), s.Other(3))
	assert.Equal(t, core.PointID(3), s.Other(7))
	assert.Equal(t, core.NoPoint, s.Other(1))
}

func TestCategoryAndOutcomeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "structural", core.Structural.String())
	assert.Equal(t, "shear", core.Shear.String())
	assert.Equal(t, "flexion", core.Flexion.String())
	assert.Equal(t, "category(9)", core.Category(9).String())
	assert.Equal(t, "torn", core.Torn.String())
	assert.Equal(t, "pulled", core.Pulled.String())
}
