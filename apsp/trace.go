// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Reconstruct directed edges realizing a connection u→v from the index.
//   - Iterative (explicit work-stack) decomposition of pairs into sub-pairs,
//     terminating at unit distances, with a visited-pair matrix so each pair is
//     decomposed and each edge emitted at most once.

package apsp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/magsep/matrix"
)

const opTrace = "apsp.Trace"

// pair is a pending (from, to) connection awaiting decomposition.
type pair struct {
	i, j int
}

// tracer carries the per-call state of one Trace invocation.
type tracer struct {
	d       *Distances
	adj     *matrix.Adjacency
	mode    TraceMode
	visited []bool // visited[i*n+j]: pair (i,j) already queued or emitted
	stack   []pair
	edges   []matrix.Edge
}

// Trace returns directed edges of adj whose union contains a path u→v of
// length exactly d.At(u, v).
//
// Behavior:
//   - u == v or v unreachable from u: nil, nil (nothing to witness).
//   - d.At(u, v) == 1: the single edge (u, v).
//   - otherwise the pair is decomposed through split vertices k ∉ {i, j}
//     accepted by the mode (see TraceMode) until unit distances remain.
//
// The exact set is not unique when several paths exist; it is deterministic
// for a given input. Output is sorted by (From, To).
//
// Errors: nil inputs (matrix.ErrNilMatrix), order mismatch
// (matrix.ErrDimensionMismatch), u or v out of range (matrix.ErrOutOfRange),
// a unit distance with no edge in adj (ErrInconsistentIndex).
//
// Complexity: Time O(n³) worst case, Space O(n²).
func Trace(d *Distances, adj *matrix.Adjacency, u, v int, opts ...TraceOption) ([]matrix.Edge, error) {
	// Stage 1: Validate inputs.
	if d == nil {
		return nil, fmt.Errorf("%s: distances: %w", opTrace, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNotNil(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", opTrace, err)
	}
	if d.Order() != adj.Order() {
		return nil, fmt.Errorf("%s: index order %d, adjacency order %d: %w",
			opTrace, d.Order(), adj.Order(), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateVertex(adj, u); err != nil {
		return nil, fmt.Errorf("%s: %w", opTrace, err)
	}
	if err := matrix.ValidateVertex(adj, v); err != nil {
		return nil, fmt.Errorf("%s: %w", opTrace, err)
	}

	// Stage 2: Trivial cases.
	if u == v || !d.Reachable(u, v) {
		return nil, nil
	}

	o := defaultTraceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := d.Order()
	t := &tracer{
		d:       d,
		adj:     adj,
		mode:    o.mode,
		visited: make([]bool, n*n),
	}

	// Stage 3: Decompose.
	if err := t.enqueue(u, v); err != nil {
		return nil, err
	}
	for len(t.stack) > 0 {
		top := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		if err := t.split(top); err != nil {
			return nil, err
		}
	}

	// Stage 4: Deterministic order.
	sort.Slice(t.edges, func(a, b int) bool { return t.edges[a].Less(t.edges[b]) })

	return t.edges, nil
}

// enqueue marks (i,j) and either emits it as an edge (unit distance) or
// pushes it for decomposition. Already visited pairs are ignored.
func (t *tracer) enqueue(i, j int) error {
	idx := i*t.d.n + j
	if t.visited[idx] {
		return nil
	}
	t.visited[idx] = true

	if t.d.At(i, j) == 1 {
		if !t.adj.Has(i, j) {
			return fmt.Errorf("%s: unit distance %d->%d has no edge: %w", opTrace, i, j, ErrInconsistentIndex)
		}
		t.edges = append(t.edges, matrix.Edge{From: i, To: j})
		return nil
	}
	t.stack = append(t.stack, pair{i: i, j: j})

	return nil
}

// split enqueues (i,k) and (k,j) for every split vertex k the mode accepts.
func (t *tracer) split(p pair) error {
	n := t.d.n
	dij := t.d.At(p.i, p.j)

	var dik, dkj int
	for k := 0; k < n; k++ {
		if k == p.i || k == p.j {
			continue
		}
		dik = t.d.At(p.i, k)
		if dik == Inf {
			continue
		}
		dkj = t.d.At(k, p.j)
		if dkj == Inf {
			continue
		}
		if t.mode == TraceShortest && dik+dkj != dij {
			continue
		}
		if err := t.enqueue(p.i, k); err != nil {
			return err
		}
		if err := t.enqueue(k, p.j); err != nil {
			return err
		}
	}

	return nil
}
