// SPDX-License-Identifier: MIT
// Package: cloth2d/builder
//
// impl_structural.go - Structural() constructor.
//
// Contract:
//   • For every (r,c) with r < rows−1 and c < cols−1: (r,c)→(r,c+1) and (r,c)→(r+1,c).
//   • Edge completion: the last column is chained top-to-bottom and the last
//     row left-to-right, since the sweep above never reaches them.
//   • Attaching point is always the upper/left endpoint.
//
// Complexity:
//   • Time O(rows·cols), Space O(rows·cols) links.

package builder

import "github.com/katalvlaran/cloth2d/core"

// Structural returns a Constructor that links every point to its right and
// down neighbors.
func Structural() Constructor {
	return func(p *Plan, _ builderConfig) error {
		rows, cols := p.Rows, p.Cols

		// 1) Interior sweep: right and down.
		for r := 0; r < rows-1; r++ {
			for c := 0; c < cols-1; c++ {
				u := p.Index(r, c)
				cell := int(u)
				p.link(u, p.Index(r, c+1), core.Structural, phaseCellSweep, cell, slotRight)
				p.link(u, p.Index(r+1, c), core.Structural, phaseCellSweep, cell, slotDown)
			}
		}

		// 2) Last column, top-to-bottom.
		for r := 0; r < rows-1; r++ {
			u := p.Index(r, cols-1)
			p.link(u, p.Index(r+1, cols-1), core.Structural, phaseLastColumn, int(u), slotDown)
		}

		// 3) Last row, left-to-right.
		for c := 0; c < cols-1; c++ {
			u := p.Index(rows-1, c)
			p.link(u, p.Index(rows-1, c+1), core.Structural, phaseLastRow, int(u), slotRight)
		}

		return nil
	}
}
