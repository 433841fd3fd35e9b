// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/mag"
)

// Output formats.
const (
	outputText = "text"
	outputYAML = "yaml"
	outputJSON = "json"
)

// Config is the file form of the persistent flags. Flags set on the command
// line take precedence over values read from the file.
//
// Example:
//
//	trace_mode = "shortest"
//	output = "yaml"
//	parallel = 4
//	fail_on_violation = false
type Config struct {
	TraceMode       string `toml:"trace_mode"`
	Output          string `toml:"output"`
	Parallel        int    `toml:"parallel"`
	FailOnViolation bool   `toml:"fail_on_violation"`
}

// DefaultConfig returns span tracing, text output, one worker per CPU and a
// non-zero exit status on violations.
func DefaultConfig() Config {
	return Config{
		TraceMode:       apsp.TraceSpan.String(),
		Output:          outputText,
		Parallel:        0,
		FailOnViolation: true,
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys %s: %w",
			path, strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its domain.
func (c Config) Validate() error {
	if _, err := apsp.ParseTraceMode(c.TraceMode); err != nil {
		return fmt.Errorf("trace_mode: %v: %w", err, ErrInvalidConfig)
	}
	switch c.Output {
	case outputText, outputYAML, outputJSON:
	default:
		return fmt.Errorf("output %q (want text, yaml or json): %w", c.Output, ErrInvalidConfig)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel %d must be >= 0: %w", c.Parallel, ErrInvalidConfig)
	}

	return nil
}

// magOptions translates the configuration into separation options.
func (c Config) magOptions() []mag.Option {
	mode, _ := apsp.ParseTraceMode(c.TraceMode)
	opts := []mag.Option{mag.WithTraceMode(mode)}
	if c.Parallel > 0 {
		opts = append(opts, mag.WithParallelism(c.Parallel))
	}

	return opts
}
