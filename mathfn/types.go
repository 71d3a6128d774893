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

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
//
// The integer family (Sum, Double, DoubleAll) is defined over signed
// integers only: earlier revisions of this module used unsigned widths,
// but doubling and summing negative quantities is unremarkable and the
// signed contract subsumes the unsigned one.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// AngleUnit selects how trigonometric functions interpret their angle
// argument. The zero value is Radians, which is the default everywhere
// an angle unit is optional.
type AngleUnit int

const (
	// Radians interprets the angle argument as radians.
	Radians AngleUnit = iota
	// Degrees converts the angle argument from degrees to radians
	// before evaluation.
	Degrees
)

// String returns the lowercase name of the unit.
func (u AngleUnit) String() string {
	if u == Degrees {
		return "degrees"
	}
	return "radians"
}
