// SPDX-License-Identifier: MIT
// Package: cloth2d/builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Options never panic; invalid values are reported by Build as sentinel
//     errors, because cloth configuration usually comes from live user input.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "github.com/go-gl/mathgl/mgl64"

// Option customizes Build by mutating a builderConfig before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithSpacing sets the horizontal (dx) and vertical (dy) distance between
// neighboring points. Both must be > 0 (checked by Build).
func WithSpacing(dx, dy float64) Option {
	return func(c *builderConfig) {
		c.dx, c.dy = dx, dy
	}
}

// WithMass sets the mass of every generated point (> 0, checked by Build).
func WithMass(m float64) Option {
	return func(c *builderConfig) {
		c.mass = m
	}
}

// WithStiffness sets the coefficient of every generated spring (≥ 0).
func WithStiffness(k float64) Option {
	return func(c *builderConfig) {
		c.stiffness = k
	}
}

// WithTearThreshold sets the distance beyond which generated springs tear (> 0).
func WithTearThreshold(t float64) Option {
	return func(c *builderConfig) {
		c.tear = t
	}
}

// WithPinPolicy selects which row-0 points start static.
func WithPinPolicy(p PinPolicy) Option {
	return func(c *builderConfig) {
		c.pin = p
	}
}

// WithOrigin places point (0,0) at o. Defaults to the world origin.
func WithOrigin(o mgl64.Vec2) Option {
	return func(c *builderConfig) {
		c.origin = o
	}
}

// WithConstructors replaces the default Structural/Shear/Flexion set.
// Passing no constructors yields a grid of unconnected points.
// A nil entry makes Build fail with ErrConstructFailed.
func WithConstructors(cons ...Constructor) Option {
	return func(c *builderConfig) {
		c.constructors = append(make([]Constructor, 0, len(cons)), cons...)
	}
}
