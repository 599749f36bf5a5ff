// Package builder defines shared constants used by the cloth builder, ensuring
// consistent defaults and validation across all spring constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the entry-point name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build entry point.
	MethodBuild = "Build"
	// MethodValidate is the canonical name for the Validate entry point.
	MethodValidate = "Validate"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinGridDim is the smallest allowed dimension (rows or cols).
// A 1×1 grid has no springs, but is considered valid.
const MinGridDim = 1

// MinFlexionSpan is the number of points an axis needs before flexion
// springs appear along it (a skip-one link spans three points).
const MinFlexionSpan = 3

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

const (
	// DefaultSpacing is the horizontal and vertical distance between neighbors.
	DefaultSpacing = 1.0
	// DefaultMass is the mass of every generated point.
	DefaultMass = 1.0
	// DefaultStiffness is the spring coefficient of every generated spring.
	DefaultStiffness = 0.03
	// DefaultTearThreshold is the distance at which generated springs tear.
	DefaultTearThreshold = 6.0
)
