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

import "fmt"

// Sum returns the arithmetic sum of all elements.
//
// An empty or nil slice sums to 0. Every intermediate addition is
// overflow-checked; if the running total leaves the representable range
// of T the call fails with ErrOverflow instead of wrapping silently.
func Sum[T SignedInts](values []T) (T, error) {
	var total T
	for _, v := range values {
		next, ok := checkedAdd(total, v)
		if !ok {
			return 0, fmt.Errorf("sum: %w", ErrOverflow)
		}
		total = next
	}
	return total, nil
}

// Double returns n * 2, failing with ErrOverflow if the result does not
// fit in T.
func Double[T SignedInts](n T) (T, error) {
	d, ok := checkedAdd(n, n)
	if !ok {
		return 0, fmt.Errorf("double: %w", ErrOverflow)
	}
	return d, nil
}

// DoubleAll doubles every element, preserving order and length.
//
// The input slice is not modified. The first element that would
// overflow aborts the call with ErrOverflow and no partial result.
func DoubleAll[T SignedInts](values []T) ([]T, error) {
	result := make([]T, len(values))
	for i, v := range values {
		d, ok := checkedAdd(v, v)
		if !ok {
			return nil, fmt.Errorf("double_all: element %d: %w", i, ErrOverflow)
		}
		result[i] = d
	}
	return result, nil
}

// checkedAdd computes a+b, reporting false on two's-complement wraparound.
func checkedAdd[T SignedInts](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}
