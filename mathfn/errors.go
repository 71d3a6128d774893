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

import "errors"

var (
	// ErrEmptyInput reports an aggregate operation that is undefined on
	// an empty sequence, such as softmax over zero elements.
	ErrEmptyInput = errors.New("empty input sequence")

	// ErrOverflow reports that an integer operation exceeded the
	// representable range of its operand type.
	ErrOverflow = errors.New("integer overflow")

	// ErrDomain reports an input outside the mathematically valid
	// domain of a function. The core functions in this package are
	// total (Sqrt of a negative returns NaN rather than failing), but
	// callers that prefer failure over NaN propagation can use this
	// sentinel for their own checks.
	ErrDomain = errors.New("input outside function domain")
)
