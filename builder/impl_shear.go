// SPDX-License-Identifier: MIT
// Package: cloth2d/builder
//
// impl_shear.go - Shear() constructor.
//
// Contract:
//   • For every cell whose top-left corner is (r,c), r < rows−1, c < cols−1:
//     (r,c)→(r+1,c+1)   "╲" attached by the top-left point
//     (r,c+1)→(r+1,c)   "╱" attached by the top-right point
//   • Grids with a single row or column have no cells and no shear springs.
//
// Complexity:
//   • Time O(rows·cols), Space O(rows·cols) links.

package builder

import "github.com/katalvlaran/cloth2d/core"

// Shear returns a Constructor that adds both diagonals of every grid cell.
func Shear() Constructor {
	return func(p *Plan, _ builderConfig) error {
		for r := 0; r < p.Rows-1; r++ {
			for c := 0; c < p.Cols-1; c++ {
				cell := int(p.Index(r, c))
				p.link(p.Index(r, c), p.Index(r+1, c+1), core.Shear, phaseCellSweep, cell, slotDiagonal)
				p.link(p.Index(r, c+1), p.Index(r+1, c), core.Shear, phaseCellSweep, cell, slotAntiDiagonal)
			}
		}

		return nil
	}
}
