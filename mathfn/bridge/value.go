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

package bridge

import (
	"strconv"
	"strings"
)

// Kind identifies the dynamic type of a Value crossing the host boundary.
type Kind int

const (
	// Int is a 64-bit signed integer scalar.
	Int Kind = iota
	// Float is a 64-bit floating-point scalar.
	Float
	// Bool is a boolean flag.
	Bool
	// IntSlice is an ordered sequence of 64-bit signed integers.
	IntSlice
	// FloatSlice is an ordered sequence of 64-bit floats.
	FloatSlice
)

// String returns the lowercase name of the kind as shown in signatures.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case IntSlice:
		return "[]int"
	case FloatSlice:
		return "[]float"
	}
	return "invalid"
}

// Value is a tagged argument or result crossing the host boundary.
// The zero Value is an Int with value 0.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	is   []int64
	fs   []float64
}

// IntOf returns an Int value.
func IntOf(v int64) Value { return Value{kind: Int, i: v} }

// FloatOf returns a Float value.
func FloatOf(v float64) Value { return Value{kind: Float, f: v} }

// BoolOf returns a Bool value.
func BoolOf(v bool) Value { return Value{kind: Bool, b: v} }

// IntsOf returns an IntSlice value. The slice is not copied.
func IntsOf(v []int64) Value { return Value{kind: IntSlice, is: v} }

// FloatsOf returns a FloatSlice value. The slice is not copied.
func FloatsOf(v []float64) Value { return Value{kind: FloatSlice, fs: v} }

// Kind returns the dynamic kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Int returns the integer payload; zero if the value is not an Int.
func (v Value) Int() int64 { return v.i }

// Float returns the float payload; zero if the value is not a Float.
func (v Value) Float() float64 { return v.f }

// Bool returns the bool payload; false if the value is not a Bool.
func (v Value) Bool() bool { return v.b }

// Ints returns the integer sequence payload; nil if the value is not an
// IntSlice.
func (v Value) Ints() []int64 { return v.is }

// Floats returns the float sequence payload; nil if the value is not a
// FloatSlice.
func (v Value) Floats() []float64 { return v.fs }

// seqLen returns the sequence length for slice kinds and -1 otherwise.
func (v Value) seqLen() int {
	switch v.kind {
	case IntSlice:
		return len(v.is)
	case FloatSlice:
		return len(v.fs)
	}
	return -1
}

// String formats the payload the way a host would print it: scalars
// bare, sequences comma-separated.
func (v Value) String() string {
	switch v.kind {
	case Int:
		return strconv.FormatInt(v.i, 10)
	case Float:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Bool:
		return strconv.FormatBool(v.b)
	case IntSlice:
		parts := make([]string, len(v.is))
		for i, n := range v.is {
			parts[i] = strconv.FormatInt(n, 10)
		}
		return strings.Join(parts, ",")
	case FloatSlice:
		parts := make([]string, len(v.fs))
		for i, f := range v.fs {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		return strings.Join(parts, ",")
	}
	return "invalid"
}
