// SPDX-License-Identifier: MIT
// Package inducing implements the endpoint-narrowing depth-first search.
//
// The search is iterative: an explicit stack of frames replaces recursion, so
// depth is bounded only by memory and every pruning decision happens in one
// place (expand). Endpoint and on-path sets are github.com/soniakeys/bits
// bitsets; narrowing is a single And per extension.
package inducing

import (
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/magsep/apsp"
	"github.com/katalvlaran/magsep/matrix"
)

const opEnumerate = "inducing.Enumerate"

// frame is one pending search state.
type frame struct {
	path      Path      // current path, path[0] is the start vertex
	endpoints bits.Bits // admissible endpoints for the remainder of the path
	onPath    bits.Bits // vertices already on path
}

// searcher holds the immutable inputs and reusable tables of one Enumerate call.
type searcher struct {
	n     int
	d     *apsp.Distances
	bi    *matrix.Adjacency
	opts  Options
	desc  []bits.Bits // desc[v]: vertices e with a directed path v→e (v included)
	found []Path
}

// Enumerate returns every inducing-path candidate of the bidirected graph bi
// with respect to the directed reachability index d.
//
// Steps:
//  1. Validate inputs (d non-nil, bi bidirected, equal orders).
//  2. Precompute desc[v] = {e : d(v,e) finite} as bitsets.
//  3. For every start vertex s, run the frame loop with endpoints = all
//     vertices and path = [s].
//
// Output order: by start vertex, then by DFS order with neighbors ascending.
// Paths are simple. A nil result means no candidate exists.
func Enumerate(d *apsp.Distances, bi *matrix.Adjacency, opts ...Option) ([]Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: Validate.
	if d == nil {
		return nil, fmt.Errorf("%s: distances: %w", opEnumerate, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateBidirected(bi); err != nil {
		return nil, fmt.Errorf("%s: %w", opEnumerate, err)
	}
	if d.Order() != bi.Order() {
		return nil, fmt.Errorf("%s: index order %d, bidirected order %d: %w",
			opEnumerate, d.Order(), bi.Order(), matrix.ErrDimensionMismatch)
	}
	if o.Adjacency != nil {
		if err := matrix.ValidateSameOrder(o.Adjacency, bi); err != nil {
			return nil, fmt.Errorf("%s: %w", opEnumerate, err)
		}
	}
	if o.Stats != nil {
		*o.Stats = Stats{}
	}

	n := bi.Order()
	if n == 0 {
		return nil, nil
	}

	// Stage 2: Descendant bitsets.
	s := &searcher{n: n, d: d, bi: bi, opts: o, desc: make([]bits.Bits, n)}
	for v := 0; v < n; v++ {
		s.desc[v] = bits.New(n)
		for e := 0; e < n; e++ {
			if d.Reachable(v, e) {
				s.desc[v].SetBit(e, 1)
			}
		}
	}

	// Stage 3: One search per start vertex.
	for start := 0; start < n; start++ {
		s.run(start)
	}

	return s.found, nil
}

// run performs the depth-first search rooted at start.
func (s *searcher) run(start int) {
	all := bits.New(s.n)
	all.SetAll()
	root := frame{
		path:      Path{start},
		endpoints: all,
		onPath:    bits.New(s.n),
	}
	root.onPath.SetBit(start, 1)

	stack := []frame{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = s.expand(top, stack)
	}
}

// expand handles one frame: emission check first, then extension.
// Children are pushed in descending neighbor order so they pop ascending.
func (s *searcher) expand(f frame, stack []frame) []frame {
	if s.opts.Stats != nil {
		s.opts.Stats.Frames++
	}
	tail := f.path.End()

	// Emission: the tail closes an inducing path when it is still admissible.
	if len(f.path) > 1 && f.endpoints.Bit(tail) == 1 {
		s.emit(f.path)
	}

	// Length bound.
	if s.opts.MaxLength > 0 && len(f.path) >= s.opts.MaxLength {
		return stack
	}

	// Pruning: no admissible endpoint left off the path.
	var free bits.Bits
	free.AndNot(f.endpoints, f.onPath)
	if free.AllZeros() {
		if s.opts.Stats != nil {
			s.opts.Stats.Pruned++
		}
		return stack
	}

	start := f.path.Start()
	for v := s.n - 1; v >= 0; v-- {
		if !s.bi.Has(tail, v) || f.onPath.Bit(v) == 1 {
			continue
		}

		// An interior vertex must be an ancestor of the start or of the far endpoint.
		next := f.endpoints
		if !s.d.Reachable(v, start) {
			var narrowed bits.Bits
			narrowed.And(f.endpoints, s.desc[v])
			if narrowed.AllZeros() {
				if s.opts.Stats != nil {
					s.opts.Stats.Pruned++
				}
				continue
			}
			next = narrowed
		}

		var onPath bits.Bits
		onPath.Set(f.onPath)
		onPath.SetBit(v, 1)

		path := make(Path, len(f.path)+1)
		copy(path, f.path)
		path[len(f.path)] = v

		stack = append(stack, frame{path: path, endpoints: next, onPath: onPath})
	}

	return stack
}

// emit applies the emission filter (orientation, endpoint non-adjacency) and
// records the path. This is the only place where reported paths are filtered.
func (s *searcher) emit(p Path) {
	if s.opts.Stats != nil {
		s.opts.Stats.Candidates++
	}
	a, b := p.Start(), p.End()

	if !s.opts.BothOrientations && b < a {
		return
	}
	if !s.opts.AdjacentEndpoints {
		if s.bi.Has(a, b) {
			return
		}
		if s.opts.Adjacency != nil && s.opts.Adjacency.Adjacent(a, b) {
			return
		}
	}

	out := make(Path, len(p))
	copy(out, p)
	s.found = append(s.found, out)
	if s.opts.Stats != nil {
		s.opts.Stats.Reported++
	}
}
