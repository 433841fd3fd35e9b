// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magsep/mag"
)

// checkCommand creates the "check" command.
func (c *CLI) checkCommand() *cobra.Command {
	var failOnViolation bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report MAG constraint violations of candidate graphs",
		Long: `Check reads each FILE as a candidate (YAML, TOML or JSON, chosen by extension)
and reports its almost directed cycles and inducing paths with their witness edges.
Candidates are checked concurrently. The exit status is 2 when any candidate is
infeasible, unless --fail-on-violation=false.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fail := c.cfg.FailOnViolation
			if cmd.Flags().Changed("fail-on-violation") {
				fail = failOnViolation
			}
			return c.runCheck(cmd.Context(), args, fail)
		},
	}
	cmd.Flags().BoolVar(&failOnViolation, "fail-on-violation", true, "exit with status 2 when a violation is found")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, paths []string, failOnViolation bool) error {
	logger := loggerFromContext(ctx)

	inputs := make([]candidateInput, len(paths))
	cands := make([]mag.Candidate, len(paths))
	for i, p := range paths {
		in, err := readCandidate(p)
		if err != nil {
			return err
		}
		logger.Debug("loaded candidate", "name", in.Name, "vertices", in.order(),
			"directed", len(in.Directed.Edges()), "bidirected", len(in.Bidirected.Edges())/2)
		inputs[i] = in
		cands[i] = in.candidate()
	}

	prog := newProgress(logger)
	reports, err := mag.CheckAll(ctx, cands, c.cfg.magOptions()...)
	if err != nil {
		return err
	}

	results := make([]checkResult, len(reports))
	infeasible := 0
	for i, r := range reports {
		results[i] = newCheckResult(inputs[i], r)
		if !r.Feasible() {
			infeasible++
			logger.Debug("violations", "name", inputs[i].Name,
				"inducing_paths", len(r.InducingPaths), "almost_directed_cycles", len(r.AlmostDirectedCycles))
		}
	}
	prog.done("Checked candidates", "count", len(results), "infeasible", infeasible, "trace_mode", c.cfg.TraceMode)

	if c.cfg.Output == outputText {
		err = writeCheckText(c.out, results)
	} else {
		err = encode(c.out, c.cfg.Output, results)
	}
	if err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if infeasible > 0 && failOnViolation {
		return fmt.Errorf("%d of %d candidates: %w", infeasible, len(results), ErrViolations)
	}

	return nil
}
