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

package mathfn

import (
	"fmt"
	stdmath "math"
)

// ReLU computes the Rectified Linear Unit activation: max(0, x).
func ReLU[T Floats](x T) T {
	if x > 0 {
		return x
	}
	return 0
}

// Sigmoid computes the logistic function 1 / (1 + e^(-x)).
//
// The function is total and saturating: for large |x| the result
// approaches 0 or 1 per IEEE-754 exponential underflow/overflow, with
// no explicit clamping. Sigmoid(0) = 0.5 exactly.
func Sigmoid[T Floats](x T) T {
	return T(1.0 / (1.0 + stdmath.Exp(-float64(x))))
}

// Softmax normalizes values into a probability distribution.
//
// softmax(x_i) = exp(x_i - max(x)) / sum(exp(x_j - max(x)))
//
// The max subtraction provides numerical stability by preventing
// overflow in the exponential computation; it is mathematically
// equivalent to the direct formula. Output preserves order and length,
// every element lies in (0, 1), and the elements sum to 1 within
// floating-point tolerance.
//
// An empty slice fails with ErrEmptyInput: an empty probability
// distribution is not meaningful.
func Softmax[T Floats](values []T) ([]T, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("softmax: %w", ErrEmptyInput)
	}
	output := make([]T, len(values))
	softmaxInto(values, output)
	return output, nil
}

// SoftmaxInPlace applies softmax in-place, modifying the input slice.
func SoftmaxInPlace[T Floats](values []T) error {
	if len(values) == 0 {
		return fmt.Errorf("softmax: %w", ErrEmptyInput)
	}
	softmaxInto(values, values)
	return nil
}

func softmaxInto[T Floats](input, output []T) {
	maxVal := input[0]
	for i := 1; i < len(input); i++ {
		if input[i] > maxVal {
			maxVal = input[i]
		}
	}

	// Accumulate in float64 regardless of T to keep the normalization
	// accurate for float32 inputs.
	var expSum float64
	for i, x := range input {
		e := stdmath.Exp(float64(x - maxVal))
		output[i] = T(e)
		expSum += e
	}

	invSum := 1.0 / expSum
	for i := range output {
		output[i] = T(float64(output[i]) * invSum)
	}
}
