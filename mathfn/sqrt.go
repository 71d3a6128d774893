package mathfn

import stdmath "math"

// Sqrt returns the principal (non-negative) square root of x.
//
// The function is total: no input produces an error.
//
// Special cases:
//   - Sqrt(+Inf) = +Inf
//   - Sqrt(±0) = ±0
//   - Sqrt(x < 0) = NaN
//   - Sqrt(NaN) = NaN
func Sqrt[T Floats](x T) T {
	return T(stdmath.Sqrt(float64(x)))
}
