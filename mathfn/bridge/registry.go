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
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ajroetker/go-mathfn/mathfn"
)

var (
	// ErrUnknownFunction reports a call to a name that is not registered.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrBadArity reports a call with the wrong number of arguments.
	ErrBadArity = errors.New("wrong number of arguments")

	// ErrBadArgument reports an argument whose kind does not match the
	// function signature.
	ErrBadArgument = errors.New("argument kind mismatch")

	// ErrSequenceTooLong reports a sequence argument exceeding the
	// registry's configured bound.
	ErrSequenceTooLong = errors.New("sequence exceeds length limit")
)

// DefaultMaxSequenceLen bounds sequence arguments accepted from the
// host. Every registered function is linear in its input size, so this
// only guards against pathologically large requests from untrusted
// callers.
const DefaultMaxSequenceLen = 1 << 20

// Func describes one registered function.
type Func struct {
	// Name is the snake_case name the host calls.
	Name string
	// Params are the required positional parameter kinds.
	Params []Kind
	// Result is the kind of the returned value.
	Result Kind
	// OptBool, when non-empty, names an optional trailing Bool
	// parameter that defaults to false when omitted.
	OptBool string
	// Doc is a one-line description shown in listings.
	Doc string

	impl func(args []Value) (Value, error)
}

// Signature renders the function the way a host listing shows it, e.g.
// "tan(float, degrees bool = false) float".
func (f Func) Signature() string {
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	if f.OptBool != "" {
		if len(f.Params) > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.OptBool)
		b.WriteString(" bool = false")
	}
	b.WriteString(") ")
	b.WriteString(f.Result.String())
	return b.String()
}

// Registry is an immutable table of host-callable functions.
type Registry struct {
	funcs  map[string]Func
	maxSeq int
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithMaxSequenceLen bounds the length of sequence arguments. Values
// below 1 disable the bound.
func WithMaxSequenceLen(n int) Option {
	return func(r *Registry) { r.maxSeq = n }
}

// New builds a registry with the full function table registered.
func New(opts ...Option) *Registry {
	r := &Registry{
		funcs:  make(map[string]Func),
		maxSeq: DefaultMaxSequenceLen,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerAll()
	return r
}

// Lookup returns the registered function for name.
func (r *Registry) Lookup(name string) (Func, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Names returns the registered function names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MaxSequenceLen returns the configured sequence bound; values below 1
// mean unbounded.
func (r *Registry) MaxSequenceLen() int { return r.maxSeq }

// Call validates and dispatches a host call.
//
// Validation order: name, arity, argument kinds, sequence bound. The
// wrapped sentinel (ErrUnknownFunction, ErrBadArity, ErrBadArgument,
// ErrSequenceTooLong, or an error from the function itself) is
// recoverable via errors.Is.
func (r *Registry) Call(name string, args ...Value) (Value, error) {
	f, ok := r.funcs[name]
	if !ok {
		return Value{}, fmt.Errorf("call %q: %w", name, ErrUnknownFunction)
	}

	want := len(f.Params)
	if n := len(args); n != want && !(f.OptBool != "" && n == want+1) {
		if f.OptBool != "" {
			return Value{}, fmt.Errorf("call %q: got %d arguments, want %d or %d: %w",
				name, n, want, want+1, ErrBadArity)
		}
		return Value{}, fmt.Errorf("call %q: got %d arguments, want %d: %w",
			name, n, want, ErrBadArity)
	}

	for i, p := range f.Params {
		if args[i].Kind() != p {
			return Value{}, fmt.Errorf("call %q: argument %d is %s, want %s: %w",
				name, i, args[i].Kind(), p, ErrBadArgument)
		}
	}
	if len(args) == want+1 && args[want].Kind() != Bool {
		return Value{}, fmt.Errorf("call %q: argument %d is %s, want bool: %w",
			name, want, args[want].Kind(), ErrBadArgument)
	}

	if r.maxSeq > 0 {
		for i, a := range args {
			if n := a.seqLen(); n > r.maxSeq {
				return Value{}, fmt.Errorf("call %q: argument %d has %d elements, limit %d: %w",
					name, i, n, r.maxSeq, ErrSequenceTooLong)
			}
		}
	}

	return f.impl(args)
}

func (r *Registry) register(f Func) {
	r.funcs[f.Name] = f
}

// registerAll wires the mathfn functions into the host table under the
// extension module's original snake_case names.
func (r *Registry) registerAll() {
	r.register(Func{
		Name: "sum", Params: []Kind{IntSlice}, Result: Int,
		Doc: "arithmetic sum of a sequence of integers (empty sums to 0)",
		impl: func(args []Value) (Value, error) {
			v, err := mathfn.Sum(args[0].Ints())
			if err != nil {
				return Value{}, err
			}
			return IntOf(v), nil
		},
	})
	r.register(Func{
		Name: "double", Params: []Kind{Int}, Result: Int,
		Doc: "n * 2",
		impl: func(args []Value) (Value, error) {
			v, err := mathfn.Double(args[0].Int())
			if err != nil {
				return Value{}, err
			}
			return IntOf(v), nil
		},
	})
	r.register(Func{
		Name: "double_all", Params: []Kind{IntSlice}, Result: IntSlice,
		Doc: "element-wise doubling, order preserving",
		impl: func(args []Value) (Value, error) {
			v, err := mathfn.DoubleAll(args[0].Ints())
			if err != nil {
				return Value{}, err
			}
			return IntsOf(v), nil
		},
	})
	r.register(Func{
		Name: "sqrt", Params: []Kind{Float}, Result: Float,
		Doc: "principal square root (NaN for negative input)",
		impl: func(args []Value) (Value, error) {
			return FloatOf(mathfn.Sqrt(args[0].Float())), nil
		},
	})
	r.register(Func{
		Name: "sin", Params: []Kind{Float}, Result: Float, OptBool: "degrees",
		Doc: "sine with near-zero snapping",
		impl: func(args []Value) (Value, error) {
			return FloatOf(mathfn.Sin(args[0].Float(), angleUnit(args, 1))), nil
		},
	})
	r.register(Func{
		Name: "cos", Params: []Kind{Float}, Result: Float, OptBool: "degrees",
		Doc: "cosine with near-zero snapping",
		impl: func(args []Value) (Value, error) {
			return FloatOf(mathfn.Cos(args[0].Float(), angleUnit(args, 1))), nil
		},
	})
	r.register(Func{
		Name: "tan", Params: []Kind{Float}, Result: Float, OptBool: "degrees",
		Doc: "tangent with asymptote detection at odd multiples of pi/2",
		impl: func(args []Value) (Value, error) {
			return FloatOf(mathfn.Tan(args[0].Float(), angleUnit(args, 1))), nil
		},
	})
	r.register(Func{
		Name: "relu", Params: []Kind{Float}, Result: Float,
		Doc: "rectified linear unit: max(0, x)",
		impl: func(args []Value) (Value, error) {
			return FloatOf(mathfn.ReLU(args[0].Float())), nil
		},
	})
	r.register(Func{
		Name: "sigmoid", Params: []Kind{Float}, Result: Float,
		Doc: "logistic function 1 / (1 + e^-x)",
		impl: func(args []Value) (Value, error) {
			return FloatOf(mathfn.Sigmoid(args[0].Float())), nil
		},
	})
	r.register(Func{
		Name: "softmax", Params: []Kind{FloatSlice}, Result: FloatSlice,
		Doc: "normalize a sequence into a probability distribution",
		impl: func(args []Value) (Value, error) {
			v, err := mathfn.Softmax(args[0].Floats())
			if err != nil {
				return Value{}, err
			}
			return FloatsOf(v), nil
		},
	})
}

// angleUnit reads the optional trailing degrees flag, defaulting to
// radians when absent.
func angleUnit(args []Value, pos int) mathfn.AngleUnit {
	if len(args) > pos && args[pos].Bool() {
		return mathfn.Degrees
	}
	return mathfn.Radians
}
