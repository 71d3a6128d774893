// Copyright 2025 go-mathfn Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mathfn provides a small set of elementary numeric functions:
// aggregation and doubling over signed integers, square root, trigonometric
// functions with an optional degrees mode, and the ReLU, sigmoid and softmax
// activations.
//
// Every function is pure and stateless; all of them may be called
// concurrently without coordination. Functions that can fail (the
// overflow-checked integer family and softmax) report errors as their
// direct result. Everything else is total over finite inputs.
//
// # Supported Operations
//
// Integer aggregation (overflow-checked, signed):
//   - Sum - arithmetic sum of a slice, empty slice sums to 0
//   - Double - n * 2
//   - DoubleAll - element-wise doubling, order preserving
//
// Floating point:
//   - Sqrt - principal square root, NaN for negative input
//   - Sin, Cos, Tan - with degrees mode and near-zero snapping
//   - ReLU, Sigmoid, Softmax - standard activation functions
//
// # Example Usage
//
//	import "github.com/ajroetker/go-mathfn/mathfn"
//
//	func Probabilities(logits []float64) ([]float64, error) {
//	    return mathfn.Softmax(logits)
//	}
//
//	func TanDegrees(angle float64) float64 {
//	    return mathfn.Tan(angle, mathfn.Degrees)
//	}
package mathfn
