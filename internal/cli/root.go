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

// Package cli implements the mathfn command line host: a thin caller
// that builds a bridge registry from configuration and evaluates calls.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var debug bool

	cmd := &cobra.Command{
		Use:          "mathfn",
		Short:        "mathfn — evaluate the numeric function library from the command line",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")

	env := &environment{}
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		env.cfg = cfg
		env.log = newLogger(cfg.LogLevel, debug)
		return nil
	}

	cmd.AddCommand(evalCmd(env))
	cmd.AddCommand(listCmd(env))
	cmd.AddCommand(versionCmd())
	return cmd
}

// environment is the shared state resolved once per invocation.
type environment struct {
	cfg Config
	log zerolog.Logger
}

func newLogger(level string, debug bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	if debug {
		lvl = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
