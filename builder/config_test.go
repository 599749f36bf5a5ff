// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cloth2d/core"
)

// TestDefaults verifies the deterministic defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, DefaultSpacing, cfg.dx)
	assert.Equal(t, DefaultSpacing, cfg.dy)
	assert.Equal(t, DefaultMass, cfg.mass)
	assert.Equal(t, DefaultStiffness, cfg.stiffness)
	assert.Equal(t, DefaultTearThreshold, cfg.tear)
	assert.Equal(t, PinNone, cfg.pin)
	assert.Equal(t, mgl64.Vec2{}, cfg.origin)
	assert.Len(t, cfg.constructors, 3)
}

// TestOptionsLastWins verifies options apply in order and nil options are skipped.
func TestOptionsLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithMass(2),
		nil,
		WithMass(3),
		WithSpacing(0.5, 0.25),
		WithPinPolicy(PinTopRow),
		WithPinPolicy(PinTopCorners),
		WithConstructors(Shear()),
	)
	assert.Equal(t, 3.0, cfg.mass)
	assert.Equal(t, 0.5, cfg.dx)
	assert.Equal(t, 0.25, cfg.dy)
	assert.Equal(t, PinTopCorners, cfg.pin)
	assert.Len(t, cfg.constructors, 1)

	// An explicit empty constructor list is kept empty, not replaced by defaults.
	assert.Empty(t, newBuilderConfig(WithConstructors()).constructors)
}

// TestBuildValidation table-tests every configuration error class.
func TestBuildValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows, cols int
		opts       []Option
		want       error
	}{
		{"zero rows", 0, 3, nil, ErrTooFewPoints},
		{"negative cols", 3, -1, nil, ErrTooFewPoints},
		{"zero dx", 2, 2, []Option{WithSpacing(0, 1)}, ErrBadSpacing},
		{"negative dy", 2, 2, []Option{WithSpacing(1, -1)}, ErrBadSpacing},
		{"NaN spacing", 2, 2, []Option{WithSpacing(math.NaN(), 1)}, ErrBadSpacing},
		{"infinite spacing", 2, 2, []Option{WithSpacing(math.Inf(1), 1)}, ErrBadSpacing},
		{"zero mass", 2, 2, []Option{WithMass(0)}, core.ErrBadMass},
		{"negative mass", 2, 2, []Option{WithMass(-2)}, core.ErrBadMass},
		{"negative stiffness", 2, 2, []Option{WithStiffness(-0.1)}, core.ErrBadStiffness},
		{"zero tear", 2, 2, []Option{WithTearThreshold(0)}, core.ErrBadTearThreshold},
	}
	for _, tc := range tests {
		m, err := Build(tc.rows, tc.cols, tc.opts...)
		assert.Nil(t, m, tc.name)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}

	// Size errors take priority over option errors.
	_, err := Build(0, 0, WithMass(-1))
	assert.ErrorIs(t, err, ErrTooFewPoints)
	assert.NotErrorIs(t, err, core.ErrBadMass)

	// Zero stiffness is legal: springs exist but never pull.
	m, err := Build(2, 2, WithStiffness(0))
	require.NoError(t, err)
	assert.Equal(t, 6, m.SpringCount())
}

func TestPinPolicy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", PinNone.String())
	assert.Equal(t, "top-row|top-corners", (PinTopRow | PinTopCorners).String())
	assert.True(t, (PinTopRow | PinTopRight).Has(PinTopRight))
	assert.False(t, PinTopRow.Has(PinTopRight))

	assert.True(t, PinTopRight.Pinned(0, 4, 5))
	assert.False(t, PinTopRight.Pinned(0, 3, 5))
	assert.False(t, PinTopRow.Pinned(1, 0, 5))
	assert.True(t, PinTopCorners.Pinned(0, 0, 5))
	assert.False(t, PinNone.Pinned(0, 0, 5))
}

func TestGridIndexing(t *testing.T) {
	t.Parallel()

	g := Grid{Rows: 3, Cols: 4}
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			id := g.Index(r, c)
			gr, gc := g.Coord(id)
			assert.Equal(t, [2]int{r, c}, [2]int{gr, gc})
			assert.True(t, g.InBounds(r, c))
		}
	}
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, -1))
	assert.Equal(t, 12, g.Len())

	st, sh, fl := ExpectedSprings(0, 5)
	assert.Equal(t, [3]int{}, [3]int{st, sh, fl})
}

func TestLastTwo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0}, lastTwo(1))
	assert.Equal(t, []int{1, 0}, lastTwo(2))
	assert.Equal(t, []int{6, 5}, lastTwo(7))
}
