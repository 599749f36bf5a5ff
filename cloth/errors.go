package cloth

import (
	"errors"
	"fmt"
)

// Sentinel errors for cloth configuration.
var (
	// ErrInvalidConfig is matched by every configuration error of this package.
	ErrInvalidConfig = errors.New("cloth: invalid configuration")

	// ErrBadIterations indicates a negative constraint iteration count.
	ErrBadIterations = errors.New("cloth: iterations must be ≥ 0")

	// ErrBadRadius indicates a non-positive (or non-finite) mouse radius.
	ErrBadRadius = errors.New("cloth: mouse radius must be > 0")

	// ErrBadGravity indicates a NaN or infinite gravity.
	ErrBadGravity = errors.New("cloth: gravity must be finite")
)

// configError tags err as a configuration error raised by method.
// The result matches both ErrInvalidConfig and err under errors.Is.
func configError(method string, err error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrInvalidConfig, err)
}
