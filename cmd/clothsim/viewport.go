package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// viewport maps world coordinates (y up) to terminal cells (y down).
// A world unit spans scale columns and scale/cellAspect rows.
type viewport struct {
	scale  float64
	origin mgl64.Vec2 // cell position of world (0,0), fractional
}

// fitViewport frames a cloth spanning width×height world units, hanging
// down from world (0,0), in a cols×rows screen. The top two rows and the
// bottom row are kept for the status line and headroom.
func fitViewport(cols, rows int, width, height float64) viewport {
	availX := float64(max(cols-4, 1))
	availY := float64(max(rows-4, 1)) * cellAspect / 2 // leave half the screen to fall into

	scale := availX
	if width > 0 {
		scale = availX / width
	}
	if height > 0 {
		scale = math.Min(scale, availY/height)
	}
	scale = math.Max(scale, 1)

	return viewport{
		scale:  scale,
		origin: mgl64.Vec2{(float64(cols) - width*scale) / 2, 2},
	}
}

// toCell returns the cell that contains world position w.
func (v viewport) toCell(w mgl64.Vec2) (x, y int) {
	cx := v.origin.X() + w.X()*v.scale
	cy := v.origin.Y() - w.Y()*v.scale/cellAspect

	return int(math.Round(cx)), int(math.Round(cy))
}

// toWorld returns the world position at the center of cell (x, y).
func (v viewport) toWorld(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(x) - v.origin.X()) / v.scale,
		(v.origin.Y() - float64(y)) * cellAspect / v.scale,
	}
}

// line calls plot for every cell of the Bresenham line from (x0,y0) to
// (x1,y1), both ends included.
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
