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

// Package bridge exposes the mathfn functions to a host runtime through a
// name-based call boundary.
//
// A Registry maps snake_case function names to typed signatures and
// dispatches calls with tagged Value arguments, validating existence,
// arity and argument kinds before invoking the underlying function.
// This is the function table a host scripting runtime binds against:
//
//	r := bridge.New()
//	v, err := r.Call("tan", bridge.FloatOf(90), bridge.BoolOf(true))
//
// The trigonometric functions accept an optional trailing bool argument
// selecting degrees mode; it defaults to false (radians) when omitted.
//
// Registries are immutable after construction and safe for concurrent
// use.
package bridge
