package mathfn

import stdmath "math"

// Sin computes sin(x), where x is interpreted according to unit.
//
// Results within Epsilon of zero are snapped to exactly 0, compensating
// for floating-point rounding noise (sin(π) evaluates to roughly 1.2e-16
// rather than 0).
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin[T Floats](x T, unit AngleUnit) T {
	rad := toRadians(float64(x), unit)
	return T(snapZero(stdmath.Sin(rad)))
}

// Cos computes cos(x), where x is interpreted according to unit.
//
// Results within Epsilon of zero are snapped to exactly 0, so
// Cos(π/2) and the degrees-mode Cos(90) both return exactly 0.
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos[T Floats](x T, unit AngleUnit) T {
	rad := toRadians(float64(x), unit)
	return T(snapZero(stdmath.Cos(rad)))
}

// Tan computes tan(x), where x is interpreted according to unit.
//
// Angles within Epsilon of an asymptote are detected before evaluation,
// because the native tangent near these points returns a large finite
// value rather than an infinity: angles congruent to π/2 (mod 2π)
// return +Inf and angles congruent to 3π/2 (mod 2π) return -Inf.
// All other results within Epsilon of zero are snapped to exactly 0.
//
// Special cases:
//   - Tan(±0) = ±0
//   - Tan(π/2 mod 2π) = +Inf
//   - Tan(3π/2 mod 2π) = -Inf
//   - Tan(±Inf) = NaN
//   - Tan(NaN) = NaN
func Tan[T Floats](x T, unit AngleUnit) T {
	rad := toRadians(float64(x), unit)

	// Reduce into [0, 2π) so that angles beyond one period, and degree
	// inputs like 450 or 630, still hit the asymptote guard.
	reduced := stdmath.Mod(rad, TwoPi)
	if reduced < 0 {
		reduced += TwoPi
	}
	switch {
	case stdmath.Abs(reduced-HalfPi) < Epsilon:
		return T(stdmath.Inf(1))
	case stdmath.Abs(reduced-ThreeHalfPi) < Epsilon:
		return T(stdmath.Inf(-1))
	}

	return T(snapZero(stdmath.Tan(rad)))
}

// toRadians normalizes an angle to radians.
func toRadians(x float64, unit AngleUnit) float64 {
	if unit == Degrees {
		return x * DegToRad
	}
	return x
}

// snapZero replaces results within Epsilon of zero with exactly 0.
func snapZero(x float64) float64 {
	if stdmath.Abs(x) < Epsilon {
		return 0
	}
	return x
}
