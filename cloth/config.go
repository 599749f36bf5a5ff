// SPDX-License-Identifier: MIT
// Package: cloth2d/cloth
//
// config.go - Config, its defaults and validation.

package cloth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cloth2d/builder"
	"github.com/katalvlaran/cloth2d/core"
)

// Config holds every tunable of a cloth System.
type Config struct {
	// Width and Height are the grid size in points (columns, rows), each ≥ 1.
	Width, Height int
	// SpacingX and SpacingY are the distances between neighboring points.
	SpacingX, SpacingY float64
	// Mass is the mass of every point (> 0).
	Mass float64
	// Stiffness is the spring coefficient (≥ 0).
	Stiffness float64
	// TearThreshold is the distance beyond which a spring tears (> 0).
	TearThreshold float64
	// Iterations is the number of relaxation passes per Step (≥ 0).
	Iterations int
	// MouseRadius bounds Grab: only points strictly closer are captured.
	MouseRadius float64
	// Gravity is the vertical acceleration; negative pulls down.
	Gravity float64
	// Pin selects which top-row points start static.
	Pin builder.PinPolicy
}

// DefaultConfig returns the reference cloth: 15×10 points, unit spacing and
// mass, stiffness 0.03, tear threshold 6, 6 iterations, mouse radius 1,
// gravity −9.8, top row pinned.
func DefaultConfig() Config {
	return Config{
		Width:         15,
		Height:        10,
		SpacingX:      builder.DefaultSpacing,
		SpacingY:      builder.DefaultSpacing,
		Mass:          builder.DefaultMass,
		Stiffness:     builder.DefaultStiffness,
		TearThreshold: builder.DefaultTearThreshold,
		Iterations:    6,
		MouseRadius:   1,
		Gravity:       core.DefaultGravity,
		Pin:           builder.PinTopRow,
	}
}

// Validate reports the first invalid field of c. Grid fields are checked in
// builder order (size, spacing, mass, stiffness, tear), then iterations,
// mouse radius and gravity. The error matches ErrInvalidConfig.
func (c Config) Validate() error {
	return c.validate("Validate")
}

func (c Config) validate(method string) error {
	if err := builder.Validate(c.Height, c.Width, c.options()...); err != nil {
		return configError(method, err)
	}
	if c.Iterations < 0 {
		return configError(method, fmt.Errorf("iterations=%d: %w", c.Iterations, ErrBadIterations))
	}
	if !(c.MouseRadius > 0) || math.IsInf(c.MouseRadius, 1) {
		return configError(method, fmt.Errorf("radius=%g: %w", c.MouseRadius, ErrBadRadius))
	}
	if math.IsNaN(c.Gravity) || math.IsInf(c.Gravity, 0) {
		return configError(method, fmt.Errorf("gravity=%g: %w", c.Gravity, ErrBadGravity))
	}

	return nil
}

// options translates the grid fields of c into builder options.
func (c Config) options() []builder.Option {
	return []builder.Option{
		builder.WithSpacing(c.SpacingX, c.SpacingY),
		builder.WithMass(c.Mass),
		builder.WithStiffness(c.Stiffness),
		builder.WithTearThreshold(c.TearThreshold),
		builder.WithPinPolicy(c.Pin),
	}
}
