// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/magsep/apsp"
)

// distancesCommand creates the "distances" command.
func (c *CLI) distancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "distances FILE",
		Short: "Print the directed reachability index of a candidate",
		Long: `Distances prints the all-pairs shortest directed path lengths of the candidate's
directed edges, in edge counts. Unreachable pairs print as "inf" in text output
and null in YAML or JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDistances(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runDistances(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	in, err := readCandidate(path)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	d, err := apsp.Compute(in.Directed)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	prog.done("Computed distances", "name", in.Name, "vertices", d.Order())

	res := newDistancesResult(in, d)
	if c.cfg.Output == outputText {
		err = writeDistancesText(c.out, res)
	} else {
		err = encode(c.out, c.cfg.Output, res)
	}
	if err != nil {
		return fmt.Errorf("write distances: %w", err)
	}

	return nil
}
