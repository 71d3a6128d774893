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

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-mathfn/mathfn/bridge"
)

func evalCmd(env *environment) *cobra.Command {
	var degrees bool

	c := &cobra.Command{
		Use:   "eval <function> [arg...]",
		Short: "Evaluate a registered function",
		Long: `Evaluate a registered function with positional arguments.

Scalar arguments are plain numbers; sequence arguments are
comma-separated, e.g.:

  mathfn eval sqrt 2
  mathfn eval sum 1,2,3,4
  mathfn eval tan 90 --degrees
  mathfn eval softmax 1.0,2.0,3.0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := env.cfg.newRegistry()

			name := args[0]
			fn, ok := reg.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown function %q (see \"mathfn list\")", name)
			}

			raw := args[1:]
			if len(raw) != len(fn.Params) {
				return fmt.Errorf("%s: got %d arguments, want %d", fn.Signature(), len(raw), len(fn.Params))
			}

			vals := make([]bridge.Value, 0, len(raw)+1)
			for i, s := range raw {
				v, err := parseValue(fn.Params[i], s)
				if err != nil {
					return fmt.Errorf("argument %d of %s: %w", i+1, fn.Signature(), err)
				}
				vals = append(vals, v)
			}

			if fn.OptBool != "" {
				useDegrees := env.cfg.DegreesDefault
				if cmd.Flags().Changed("degrees") {
					useDegrees = degrees
				}
				if useDegrees {
					vals = append(vals, bridge.BoolOf(true))
				}
			}

			start := time.Now()
			result, err := reg.Call(name, vals...)
			env.log.Debug().
				Str("function", name).
				Int("args", len(vals)).
				Dur("elapsed", time.Since(start)).
				Msg("call")
			if err != nil {
				env.log.Error().Err(err).Str("function", name).Msg("call failed")
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}

	c.Flags().BoolVar(&degrees, "degrees", false, "interpret the angle argument as degrees")
	return c
}
