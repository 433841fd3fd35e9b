// SPDX-License-Identifier: MIT
// Package cli implements the magsep command-line interface.
//
// magsep reads candidate mixed graphs (a directed and a bidirected edge set
// over the same vertices) and reports the inducing paths and almost directed
// cycles that keep them from being maximal ancestral graphs.
//
// # Commands
//
//   - check: separate one or more candidate files and print the witnesses
//   - distances: print the directed reachability index of a candidate
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "magsep"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// It is called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out     io.Writer // command results
	cfg     Config    // effective configuration, resolved before each command
	flags   flagValues
	verbose bool
}

// flagValues are the raw persistent flag targets; they are merged into cfg
// only when the user set them explicitly.
type flagValues struct {
	configPath string
	traceMode  string
	output     string
	parallel   int
}

// New creates a CLI that writes results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	if out == nil {
		out = os.Stdout
	}
	if logw == nil {
		logw = os.Stderr
	}

	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "magsep finds MAG constraint violations in mixed graphs",
		Long: `magsep checks candidate mixed graphs for the two global properties of a maximal
ancestral graph: no almost directed cycle and no inducing path between
non-adjacent vertices. Each violation is reported with the edges that witness it.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if err := c.resolveConfig(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.SetOut(c.out)

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.configPath, "config", "", "TOML configuration file")
	pf.StringVar(&c.flags.traceMode, "trace-mode", c.cfg.TraceMode, "directed witness reconstruction: span or shortest")
	pf.StringVarP(&c.flags.output, "output", "o", c.cfg.Output, "output format: text, yaml or json")
	pf.IntVar(&c.flags.parallel, "parallel", c.cfg.Parallel, "maximum candidates checked concurrently (0 = one per CPU)")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.distancesCommand())

	return root
}

// resolveConfig layers explicitly set flags over the config file (if any)
// over the defaults, then validates the result.
func (c *CLI) resolveConfig(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	if c.flags.configPath != "" {
		loaded, err := LoadConfig(c.flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		c.Logger.Debug("loaded config", "path", c.flags.configPath)
	}

	fs := cmd.Flags()
	if fs.Changed("trace-mode") {
		cfg.TraceMode = c.flags.traceMode
	}
	if fs.Changed("output") {
		cfg.Output = c.flags.output
	}
	if fs.Changed("parallel") {
		cfg.Parallel = c.flags.parallel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}
