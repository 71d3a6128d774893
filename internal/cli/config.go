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

	"github.com/BurntSushi/toml"

	"github.com/ajroetker/go-mathfn/mathfn/bridge"
)

// Config holds the resolved runtime settings for the CLI host.
type Config struct {
	// DegreesDefault makes trigonometric calls interpret angles as
	// degrees unless overridden per call.
	DegreesDefault bool
	// MaxSequenceLen bounds sequence arguments; values below 1
	// disable the bound.
	MaxSequenceLen int
	// LogLevel is a zerolog level name (trace, debug, info, warn,
	// error).
	LogLevel string
}

// fileConfig is the config.toml key mapping.
type fileConfig struct {
	DegreesDefault bool   `toml:"degrees_default"`
	MaxSequenceLen int    `toml:"max_sequence_len"`
	LogLevel       string `toml:"log_level"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		DegreesDefault: false,
		MaxSequenceLen: bridge.DefaultMaxSequenceLen,
		LogLevel:       "warn",
	}
}

// loadConfig overlays the TOML file at path over the defaults. An empty
// path returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("degrees_default") {
		cfg.DegreesDefault = raw.DegreesDefault
	}
	if meta.IsDefined("max_sequence_len") {
		cfg.MaxSequenceLen = raw.MaxSequenceLen
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = raw.LogLevel
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}

// newRegistry builds the host registry from the resolved config.
func (c Config) newRegistry() *bridge.Registry {
	return bridge.New(bridge.WithMaxSequenceLen(c.MaxSequenceLen))
}
