// SPDX-License-Identifier: MIT
// Package: mag
//
// Purpose:
//   - Build witnesses for both global MAG constraints from a computed index.
//   - Both extractors are pure: inputs are only read, outputs are fresh slices.

package mag

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/inducing"
	"github.com/katalvlaran/magsep/matrix"
)

const (
	opInducing = "mag.FindInducingPathViolations"
	opADC      = "mag.FindAlmostDirectedCycles"
)

// checkInputs enforces the candidate contract and index/candidate agreement.
func checkInputs(op string, dir, bi *matrix.Adjacency, d *apsp.Distances, o options) error {
	if o.validate {
		if err := matrix.ValidateMixed(dir, bi); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	} else if dir == nil || bi == nil {
		return fmt.Errorf("%s: %w", op, matrix.ErrNilMatrix)
	}
	if d == nil {
		return fmt.Errorf("%s: distances: %w", op, matrix.ErrNilMatrix)
	}
	if d.Order() != dir.Order() || dir.Order() != bi.Order() {
		return fmt.Errorf("%s: orders index=%d directed=%d bidirected=%d: %w",
			op, d.Order(), dir.Order(), bi.Order(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// edgeSet accumulates directed edges without duplicates.
type edgeSet struct {
	n    int
	seen []bool
	list []matrix.Edge
}

func newEdgeSet(n int) *edgeSet {
	return &edgeSet{n: n, seen: make([]bool, n*n)}
}

func (s *edgeSet) add(edges []matrix.Edge) {
	for _, ed := range edges {
		idx := ed.From*s.n + ed.To
		if s.seen[idx] {
			continue
		}
		s.seen[idx] = true
		s.list = append(s.list, ed)
	}
}

// sorted returns the collected edges in (From, To) order.
func (s *edgeSet) sorted() []matrix.Edge {
	out := append([]matrix.Edge(nil), s.list...)
	sort.Slice(out, func(a, b int) bool { return out[a].Less(out[b]) })

	return out
}

// FindInducingPathViolations reports every inducing path between non-adjacent
// vertices of the candidate (dir, bi), given the index d of dir.
//
// For a path [v0, …, vk] the witness holds:
//   - Bidirected: the consecutive pairs of the path (canonical, sorted);
//   - Directed:   ∪ over interior vi of Trace(vi, v0) ∪ Trace(vi, vk), i.e. the
//     directed edges showing vi is an ancestor of an endpoint.
//
// An empty result means the candidate has no inducing path.
func FindInducingPathViolations(dir, bi *matrix.Adjacency, d *apsp.Distances, opts ...Option) ([]Witness, error) {
	o := gatherOptions(opts)
	if err := checkInputs(opInducing, dir, bi, d, o); err != nil {
		return nil, err
	}

	search := append([]inducing.Option{}, o.search...)
	search = append(search, inducing.WithAdjacency(dir))
	paths, err := inducing.Enumerate(d, bi, search...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInducing, err)
	}

	var out []Witness
	for _, p := range paths {
		w, err := inducingWitness(dir, d, p, o.traceMode)
		if err != nil {
			return nil, fmt.Errorf("%s: path %s: %w", opInducing, p, err)
		}
		out = append(out, w)
	}

	return out, nil
}

// inducingWitness builds the witness of one inducing path.
func inducingWitness(dir *matrix.Adjacency, d *apsp.Distances, p inducing.Path, mode apsp.TraceMode) (Witness, error) {
	s, t := p.Start(), p.End()
	set := newEdgeSet(d.Order())

	for _, v := range p.Interior() {
		for _, end := range [2]int{s, t} {
			edges, err := apsp.Trace(d, dir, v, end, apsp.WithMode(mode))
			if err != nil {
				return Witness{}, err
			}
			set.add(edges)
		}
	}

	bidirected := p.Edges()
	sort.Slice(bidirected, func(a, b int) bool { return bidirected[a].Less(bidirected[b]) })

	return Witness{
		Kind:       KindInducingPath,
		Path:       append([]int(nil), p...),
		Directed:   set.sorted(),
		Bidirected: bidirected,
	}, nil
}

// FindAlmostDirectedCycles reports, for every bidirected edge, each orientation
// u↔v for which a directed path u→…→v exists. Each unordered pair is visited
// once (u < v) and both orientations are tested; a pair inside a directed
// cycle therefore yields two witnesses.
//
// An empty result means the candidate is free of almost directed cycles.
func FindAlmostDirectedCycles(dir, bi *matrix.Adjacency, d *apsp.Distances, opts ...Option) ([]Witness, error) {
	o := gatherOptions(opts)
	if err := checkInputs(opADC, dir, bi, d, o); err != nil {
		return nil, err
	}

	n := bi.Order()
	var out []Witness
	var u, v int
	for u = 0; u < n; u++ {
		for v = u + 1; v < n; v++ {
			if !bi.Has(u, v) {
				continue
			}
			for _, ab := range [2][2]int{{u, v}, {v, u}} {
				a, b := ab[0], ab[1]
				if !d.Reachable(a, b) {
					continue
				}
				edges, err := apsp.Trace(d, dir, a, b, apsp.WithMode(o.traceMode))
				if err != nil {
					return nil, fmt.Errorf("%s: %d<->%d: %w", opADC, a, b, err)
				}
				out = append(out, Witness{
					Kind:       KindAlmostDirectedCycle,
					Path:       []int{a, b},
					Directed:   edges,
					Bidirected: []matrix.Edge{{From: u, To: v}},
				})
			}
		}
	}

	return out, nil
}
