// SPDX-License-Identifier: MIT

package mag

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/matrix"
)

const (
	opSeparate = "mag.Separate"
	opCheckAll = "mag.CheckAll"
)

// Separate validates the candidate (dir, bi), computes the index of dir once
// and runs both extractors. Either the full report is returned or an error;
// there is no partial result.
func Separate(dir, bi *matrix.Adjacency, opts ...Option) (*Report, error) {
	o := gatherOptions(opts)
	if o.validate {
		if err := matrix.ValidateMixed(dir, bi); err != nil {
			return nil, fmt.Errorf("%s: %w", opSeparate, err)
		}
	}

	d, err := apsp.Compute(dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSeparate, err)
	}

	// Inputs were checked above; the extractors only need the order checks.
	inner := append(append([]Option{}, opts...), WithoutValidation())

	adc, err := FindAlmostDirectedCycles(dir, bi, d, inner...)
	if err != nil {
		return nil, err
	}
	ips, err := FindInducingPathViolations(dir, bi, d, inner...)
	if err != nil {
		return nil, err
	}

	return &Report{Distances: d, InducingPaths: ips, AlmostDirectedCycles: adc}, nil
}

// Separator binds a set of options and implements Oracle.
type Separator struct {
	opts []Option
}

// NewSeparator returns an Oracle applying opts to every call.
func NewSeparator(opts ...Option) *Separator {
	return &Separator{opts: append([]Option(nil), opts...)}
}

// Separate implements Oracle.
func (s *Separator) Separate(dir, bi *matrix.Adjacency) (*Report, error) {
	return Separate(dir, bi, s.opts...)
}

var _ Oracle = (*Separator)(nil)

// CheckAll separates independent candidates concurrently, at most
// WithParallelism workers at a time. Reports are returned in input order.
// The first failure cancels the remaining work and is returned.
func CheckAll(ctx context.Context, cands []Candidate, opts ...Option) ([]*Report, error) {
	o := gatherOptions(opts)

	for i, c := range cands {
		if c.Directed == nil || c.Bidirected == nil {
			return nil, fmt.Errorf("%s: candidate %d (%s): %w", opCheckAll, i, c.Name, ErrNilCandidate)
		}
	}

	reports := make([]*Report, len(cands))
	g, gctx := errgroup.WithContext(ctx)
	if o.parallelism > 0 {
		g.SetLimit(o.parallelism)
	}

	for i := range cands {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := Separate(cands[i].Directed, cands[i].Bidirected, opts...)
			if err != nil {
				return fmt.Errorf("%s: candidate %d (%s): %w", opCheckAll, i, cands[i].Name, err)
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
