package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestFitViewport(t *testing.T) {
	t.Parallel()

	vp := fitViewport(80, 24, 14, 9)
	assert.InDelta(t, 20.0/9, vp.scale, 1e-12, "height bound")

	// The cloth is centered horizontally and hangs from row 2.
	x0, y0 := vp.toCell(mgl64.Vec2{0, 0})
	x1, y1 := vp.toCell(mgl64.Vec2{14, -9})
	assert.Equal(t, 2, y0)
	assert.InDelta(t, 80-x1, x0, 1)
	assert.LessOrEqual(t, y1, 24)

	// Tiny screens never yield a zero scale.
	assert.Equal(t, 1.0, fitViewport(3, 3, 100, 100).scale)
}

func TestViewportRoundTrip(t *testing.T) {
	t.Parallel()

	vp := fitViewport(120, 40, 14, 9)
	for _, w := range []mgl64.Vec2{{0, 0}, {3.3, -1.7}, {14, -9}, {-2, 4}} {
		x, y := vp.toCell(w)
		back := vp.toWorld(x, y)
		assert.InDelta(t, w.X(), back.X(), 0.5/vp.scale+1e-9, "x of %v", w)
		assert.InDelta(t, w.Y(), back.Y(), 0.5*cellAspect/vp.scale+1e-9, "y of %v", w)
	}
}

func TestLine(t *testing.T) {
	t.Parallel()

	collect := func(x0, y0, x1, y1 int) [][2]int {
		var out [][2]int
		line(x0, y0, x1, y1, func(x, y int) { out = append(out, [2]int{x, y}) })
		return out
	}

	assert.Equal(t, [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, collect(0, 0, 3, 0))
	assert.Equal(t, [][2]int{{2, 2}, {1, 1}, {0, 0}}, collect(2, 2, 0, 0))
	assert.Equal(t, [][2]int{{5, 5}}, collect(5, 5, 5, 5))

	steep := collect(0, 0, 1, 4)
	assert.Len(t, steep, 5)
	assert.Equal(t, [2]int{0, 0}, steep[0])
	assert.Equal(t, [2]int{1, 4}, steep[len(steep)-1])
}
