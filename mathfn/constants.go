package mathfn

import stdmath "math"

// =============================================================================
// Constants shared by the numeric functions
// =============================================================================

const (
	// Epsilon is the tolerance below which a computed trigonometric
	// result is snapped to exactly zero, and within which an angle is
	// considered to sit on a tangent asymptote.
	Epsilon = 1e-10

	// HalfPi is π/2, the first tangent asymptote in [0, 2π).
	HalfPi = stdmath.Pi / 2

	// ThreeHalfPi is 3π/2, the second tangent asymptote in [0, 2π).
	ThreeHalfPi = 3 * stdmath.Pi / 2

	// TwoPi is the trigonometric period.
	TwoPi = 2 * stdmath.Pi

	// DegToRad converts degrees to radians.
	DegToRad = stdmath.Pi / 180
)
