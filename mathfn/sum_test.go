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
	"errors"
	stdmath "math"
	"testing"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   int64
	}{
		{"empty", nil, 0},
		{"single", []int64{42}, 42},
		{"simple", []int64{1, 2, 3, 4}, 10},
		{"negative", []int64{-1, -2, -3}, -6},
		{"mixed", []int64{-5, 10, -5}, 0},
		{"cancellation near limit", []int64{stdmath.MaxInt64, -stdmath.MaxInt64, 7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(tt.values)
			if err != nil {
				t.Fatalf("Sum(%v) returned error: %v", tt.values, err)
			}
			if got != tt.want {
				t.Errorf("Sum(%v) = %d, want %d", tt.values, got, tt.want)
			}
		})
	}
}

func TestSumOrderIndependence(t *testing.T) {
	values := []int64{3, -7, 12, 0, 5, -1}
	reversed := make([]int64, len(values))
	for i, v := range values {
		reversed[len(values)-1-i] = v
	}

	a, err := Sum(values)
	if err != nil {
		t.Fatalf("Sum(values) returned error: %v", err)
	}
	b, err := Sum(reversed)
	if err != nil {
		t.Fatalf("Sum(reversed) returned error: %v", err)
	}
	if a != b {
		t.Errorf("Sum(values) = %d, Sum(reversed) = %d, want equal", a, b)
	}
}

func TestSumOverflow(t *testing.T) {
	t.Run("int64 positive", func(t *testing.T) {
		_, err := Sum([]int64{stdmath.MaxInt64, 1})
		if !errors.Is(err, ErrOverflow) {
			t.Fatalf("Sum = %v, want ErrOverflow", err)
		}
	})

	t.Run("int64 negative", func(t *testing.T) {
		_, err := Sum([]int64{stdmath.MinInt64, -1})
		if !errors.Is(err, ErrOverflow) {
			t.Fatalf("Sum = %v, want ErrOverflow", err)
		}
	})

	t.Run("int8", func(t *testing.T) {
		_, err := Sum([]int8{100, 100})
		if !errors.Is(err, ErrOverflow) {
			t.Fatalf("Sum = %v, want ErrOverflow", err)
		}
	})
}

func TestDouble(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  int64
	}{
		{"zero", 0, 0},
		{"positive", 21, 42},
		{"negative", -8, -16},
		{"max half", stdmath.MaxInt64 / 2, stdmath.MaxInt64 - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Double(tt.input)
			if err != nil {
				t.Fatalf("Double(%d) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Double(%d) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestDoubleOverflow(t *testing.T) {
	if _, err := Double(int64(stdmath.MaxInt64/2 + 1)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Double(MaxInt64/2+1) = %v, want ErrOverflow", err)
	}
	if _, err := Double(int8(stdmath.MinInt8)); !errors.Is(err, ErrOverflow) {
		t.Errorf("Double(MinInt8) = %v, want ErrOverflow", err)
	}
}

func TestDoubleAll(t *testing.T) {
	input := []int64{1, -2, 0, 7, 30}
	got, err := DoubleAll(input)
	if err != nil {
		t.Fatalf("DoubleAll returned error: %v", err)
	}
	if len(got) != len(input) {
		t.Fatalf("DoubleAll returned %d elements, want %d", len(got), len(input))
	}
	for i := range input {
		if got[i] != 2*input[i] {
			t.Errorf("DoubleAll[%d] = %d, want %d", i, got[i], 2*input[i])
		}
	}

	// The input slice must not be mutated.
	if input[1] != -2 || input[4] != 30 {
		t.Errorf("DoubleAll mutated its input: %v", input)
	}
}

func TestDoubleAllEmpty(t *testing.T) {
	got, err := DoubleAll([]int64{})
	if err != nil {
		t.Fatalf("DoubleAll(empty) returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("DoubleAll(empty) = %v, want empty", got)
	}
}

func TestDoubleAllOverflow(t *testing.T) {
	_, err := DoubleAll([]int8{1, 2, 100, 3})
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("DoubleAll = %v, want ErrOverflow", err)
	}
}
