// SPDX-License-Identifier: MIT
// Package: cloth2d/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//   • Options only record values; Build validates them and returns errors.
//
// Deterministic defaults:
//   • dx, dy       = DefaultSpacing     (1.0)
//   • mass         = DefaultMass        (1.0)
//   • stiffness    = DefaultStiffness   (0.03)
//   • tear         = DefaultTearThreshold (6.0)
//   • pin          = PinNone
//   • origin       = (0,0)
//   • constructors = Structural(), Shear(), Flexion()

package builder

import "github.com/go-gl/mathgl/mgl64"

// builderConfig aggregates all knobs used by Build and the constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	dx, dy float64 // column / row spacing
	origin mgl64.Vec2

	mass      float64
	stiffness float64
	tear      float64

	pin PinPolicy

	constructors []Constructor
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		dx:        DefaultSpacing,
		dy:        DefaultSpacing,
		mass:      DefaultMass,
		stiffness: DefaultStiffness,
		tear:      DefaultTearThreshold,
		pin:       PinNone,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.constructors == nil {
		cfg.constructors = DefaultConstructors()
	}

	return cfg
}
