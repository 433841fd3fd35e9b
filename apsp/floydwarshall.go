// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over a unit-weight 0/1 adjacency,
//     with deterministic loop order.
//   - Runs on a private buffer; the caller's adjacency is only read.
//
// Contract:
//   - Diagonal is 0 before relaxation regardless of adj[i][i].
//   - Inf means "no path"; Inf operands are skipped, never added.

package apsp

import (
	"fmt"

	"github.com/katalvlaran/magsep/matrix"
)

// Operation name constant for unified error wrapping.
const opCompute = "apsp.Compute"

// initDistances converts adjacency (0 / 1) into a fresh distance buffer:
//
//	diag = 0; off-diagonal 1 -> 1; off-diagonal 0 -> Inf.
//
// Complexity: O(n²).
func initDistances(adj *matrix.Adjacency) *Distances {
	n := adj.Order()
	d := &Distances{n: n, data: make([]int, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				// Distance from a vertex to itself is zero, even with a self-loop.
				d.data[i*n+j] = 0
			case adj.Has(i, j):
				d.data[i*n+j] = 1
			default:
				d.data[i*n+j] = Inf
			}
		}
	}

	return d
}

// floydWarshallInPlace runs the APSP closure on d's buffer.
//
// Loop order is fixed (k → i → j); later intermediates see earlier relaxations.
// Time: O(n³); Extra space: O(1). No allocations inside the hot loops.
func floydWarshallInPlace(d *Distances) {
	n := d.n
	data := d.data

	var (
		k, i, j      int // loop indices
		baseK, baseI int // row base offsets for K and I in the flat buffer
		ik, kj, cand int // d[i,k], d[k,j], candidate via k
	)

	for k = 0; k < n; k++ { // outer: pick intermediate vertex k
		baseK = k * n

		for i = 0; i < n; i++ { // middle: source vertex i
			ik = data[i*n+k]
			if ik == Inf { // i cannot reach k, nothing improves via k
				continue
			}
			baseI = i * n

			for j = 0; j < n; j++ { // inner: destination vertex j
				kj = data[baseK+j]
				if kj == Inf {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}
}

// Compute builds the shortest-path index of the directed skeleton adj.
//
// Contract:
//   - adj must be non-nil; cycles are allowed (distances stay well defined
//     because all weights are positive).
//   - The result never aliases adj.
//
// Complexity: Time O(n³), Space O(n²).
func Compute(adj *matrix.Adjacency) (*Distances, error) {
	if err := matrix.ValidateNotNil(adj); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	d := initDistances(adj)
	floydWarshallInPlace(d)

	return d, nil
}
