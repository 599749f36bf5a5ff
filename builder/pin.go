package builder

import "strings"

// PinPolicy is a bit set of static-boundary rules applied to row 0.
// Rules combine with |; a point is pinned if any rule selects it.
type PinPolicy uint8

// PinNone leaves every point free.
const PinNone PinPolicy = 0

const (
	// PinTopRow pins the entire top row.
	PinTopRow PinPolicy = 1 << iota
	// PinTopRight pins only the top-right corner.
	PinTopRight
	// PinTopCorners pins the top-left and top-right corners.
	PinTopCorners
)

// Has reports whether every rule in q is set in p.
func (p PinPolicy) Has(q PinPolicy) bool { return p&q == q }

// Pinned reports whether the point at (r,c) of a grid with cols columns
// starts static under p.
func (p PinPolicy) Pinned(r, c, cols int) bool {
	if r != 0 {
		return false
	}
	last := cols - 1

	return p.Has(PinTopRow) ||
		(p.Has(PinTopRight) && c == last) ||
		(p.Has(PinTopCorners) && (c == 0 || c == last))
}

// String lists the active rules, e.g. "top-row|top-corners", or "none".
func (p PinPolicy) String() string {
	if p == PinNone {
		return "none"
	}
	var parts []string
	if p.Has(PinTopRow) {
		parts = append(parts, "top-row")
	}
	if p.Has(PinTopRight) {
		parts = append(parts, "top-right")
	}
	if p.Has(PinTopCorners) {
		parts = append(parts, "top-corners")
	}

	return strings.Join(parts, "|")
}
