// SPDX-License-Identifier: MIT
// Package: cloth2d/builder
//
// impl_flexion.go - Flexion() constructor.
//
// Contract:
//   • Sweep: for (r,c) with r < rows−2 and c < cols−2:
//     (r,c)→(r,c+2) and (r,c)→(r+2,c).
//   • Edge completion, two lines deep:
//     columns cols−1 and cols−2: (r,k)→(r+2,k) for r < rows−2;
//     rows    rows−1 and rows−2: (k,c)→(k,c+2) for c < cols−2.
//   • An axis with fewer than MinFlexionSpan points gets no flexion along it;
//     the second-to-last line is skipped when it does not exist (single row/column).
//   • Totals: rows·max(cols−2,0) horizontal + cols·max(rows−2,0) vertical.
//
// Complexity:
//   • Time O(rows·cols), Space O(rows·cols) links.

package builder

import "github.com/katalvlaran/cloth2d/core"

// Flexion returns a Constructor that adds skip-one links along rows and columns.
func Flexion() Constructor {
	return func(p *Plan, _ builderConfig) error {
		rows, cols := p.Rows, p.Cols

		// 1) Sweep over anchors that have both a right and a down partner.
		for r := 0; r < rows-2; r++ {
			for c := 0; c < cols-2; c++ {
				u := p.Index(r, c)
				p.link(u, p.Index(r, c+2), core.Flexion, phaseFlexSweep, int(u), slotRight)
				p.link(u, p.Index(r+2, c), core.Flexion, phaseFlexSweep, int(u), slotDown)
			}
		}

		// 2) Vertical links down the last two columns.
		for r := 0; r < rows-2; r++ {
			for _, k := range lastTwo(cols) {
				u := p.Index(r, k)
				p.link(u, p.Index(r+2, k), core.Flexion, phaseFlexColumns, int(u), slotDown)
			}
		}

		// 3) Horizontal links along the last two rows.
		for c := 0; c < cols-2; c++ {
			for _, k := range lastTwo(rows) {
				u := p.Index(k, c)
				p.link(u, p.Index(k, c+2), core.Flexion, phaseFlexRows, int(u), slotRight)
			}
		}

		return nil
	}
}

// lastTwo returns the indices of the last and second-to-last lines of an
// axis with n lines, omitting the second when n == 1.
func lastTwo(n int) []int {
	if n < 2 {
		return []int{n - 1}
	}

	return []int{n - 1, n - 2}
}
