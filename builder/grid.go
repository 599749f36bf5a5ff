// SPDX-License-Identifier: MIT
// Package: cloth2d/builder
//
// grid.go - row-major grid indexing and the link plan constructors write to.
//
// Determinism:
//   • PointID(r,c) = r*cols + c (row-major, matches insertion order).
//   • Every link carries an emission key (phase, cell, slot) so the final
//     registration order is independent of constructor call order.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cloth2d/core"
)

// Grid describes a rows×cols row-major point layout.
type Grid struct {
	Rows, Cols int
}

// Index returns the PointID of (r,c). No bounds checking.
func (g Grid) Index(r, c int) core.PointID {
	return core.PointID(r*g.Cols + c)
}

// Coord converts a PointID back to (r,c).
func (g Grid) Coord(id core.PointID) (r, c int) {
	return int(id) / g.Cols, int(id) % g.Cols
}

// InBounds reports whether (r,c) lies within the grid.
func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

// Len returns the number of points.
func (g Grid) Len() int { return g.Rows * g.Cols }

// Generation phases, in emission order.
const (
	phaseCellSweep     = iota // structural right/down + both shear diagonals, per cell
	phaseLastColumn           // structural chain down the last column
	phaseLastRow              // structural chain along the last row
	phaseFlexSweep            // flexion right/down, per interior anchor
	phaseFlexColumns          // flexion down the last two columns
	phaseFlexRows             // flexion along the last two rows
	phaseCustom               // links added through Plan.Add
)

// Slots within one cell/anchor of a phase.
const (
	slotRight = iota
	slotDown
	slotDiagonal
	slotAntiDiagonal
	slotCount
)

// Link is a pending spring between two grid points. A is the attaching point.
type Link struct {
	A, B     core.PointID
	Category core.Category

	key int // emission key: (phase, cell, slot) flattened
}

// Plan collects links emitted by constructors for one grid.
type Plan struct {
	Grid
	links []Link
}

// link appends a pending spring. cell is the row-major index of the cell or
// anchor that emitted it.
func (p *Plan) link(a, b core.PointID, cat core.Category, phase, cell, slot int) {
	key := (phase*p.Len()+cell)*slotCount + slot
	p.links = append(p.links, Link{A: a, B: b, Category: cat, key: key})
}

// Add emits a link from a to b for a custom constructor. Custom links sort
// after every built-in link of the same attaching point, in call order.
// Returns ErrConstructFailed for out-of-range or identical endpoints.
func (p *Plan) Add(a, b core.PointID, cat core.Category) error {
	n := core.PointID(p.Len())
	if a < 0 || a >= n || b < 0 || b >= n || a == b {
		return fmt.Errorf("Plan.Add(%d→%d): %w", a, b, ErrConstructFailed)
	}
	p.link(a, b, cat, phaseCustom, int(a), 0)

	return nil
}

// Links returns the pending links in final registration order.
func (p *Plan) Links() []Link {
	out := make([]Link, len(p.links))
	copy(out, p.links)
	sortLinks(out)

	return out
}

// sortLinks orders links by attaching point, then by emission key. Relaxing
// in this order reproduces a cloth where every point relaxes the springs it
// attached, points visited in grid order.
func sortLinks(links []Link) {
	sort.SliceStable(links, func(i, j int) bool {
		if links[i].A != links[j].A {
			return links[i].A < links[j].A
		}

		return links[i].key < links[j].key
	})
}

// ExpectedSprings returns the number of springs per category that the
// default constructors generate for a rows×cols grid.
// Complexity: O(1).
func ExpectedSprings(rows, cols int) (structural, shear, flexion int) {
	if rows < MinGridDim || cols < MinGridDim {
		return 0, 0, 0
	}
	structural = rows*(cols-1) + cols*(rows-1)
	shear = 2 * (rows - 1) * (cols - 1)
	flexion = rows*max(cols-2, 0) + cols*max(rows-2, 0)

	return structural, shear, flexion
}
