// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Constructors and accessors for the binary Adjacency container.
//   - Builders (FromRows, FromEdges) validate shape and entries up front so the
//     separation kernels can read cells without per-access error handling.

package matrix

import (
	"fmt"
	"strings"
)

// adjacencyErrorf wraps an underlying error with Adjacency method context.
func adjacencyErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Adjacency.%s(%d,%d): %w", method, row, col, err)
}

// NewAdjacency creates an n×n Adjacency with no edges.
// n == 0 is allowed and yields the empty graph.
// Returns ErrBadShape if n < 0.
// Complexity: O(n²) time and memory.
func NewAdjacency(n int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewAdjacency(%d): %w", n, ErrBadShape)
	}

	return &Adjacency{n: n, data: make([]uint8, n*n)}, nil
}

// FromRows builds an Adjacency from a row slice (rows[i][j] is entry (i,j)).
// Stage 1 (Validate): every row must have len(rows) entries; entries in {0,1}.
// Stage 2 (Execute): copy into the flat buffer (the caller keeps its slices).
// Errors: ErrNonSquare, ErrNonBinary.
// Complexity: O(n²).
func FromRows(rows [][]int) (*Adjacency, error) {
	n := len(rows)
	a := &Adjacency{n: n, data: make([]uint8, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			switch rows[i][j] {
			case 0:
			case 1:
				a.data[i*n+j] = 1
			default:
				return nil, fmt.Errorf("FromRows: entry (%d,%d)=%d: %w", i, j, rows[i][j], ErrNonBinary)
			}
		}
	}

	return a, nil
}

// FromEdges builds an n×n Adjacency with a 1 at every listed edge.
// When symmetric is true each edge is mirrored, producing a bidirected matrix.
// Duplicate edges are harmless. Errors: ErrBadShape, ErrOutOfRange.
// Complexity: O(n² + |edges|).
func FromEdges(n int, edges []Edge, symmetric bool) (*Adjacency, error) {
	a, err := NewAdjacency(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = a.Set(e.From, e.To, 1); err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
		if symmetric {
			if err = a.Set(e.To, e.From, 1); err != nil {
				return nil, fmt.Errorf("FromEdges: %w", err)
			}
		}
	}

	return a, nil
}

// Order returns the number of vertices n.
// Complexity: O(1).
func (a *Adjacency) Order() int {
	return a.n
}

// inRange reports whether i is a valid vertex index.
func (a *Adjacency) inRange(i int) bool {
	return i >= 0 && i < a.n
}

// Has reports whether entry (i,j) is 1. Out-of-range indices report false.
// Complexity: O(1).
func (a *Adjacency) Has(i, j int) bool {
	if !a.inRange(i) || !a.inRange(j) {
		return false
	}

	return a.data[i*a.n+j] == 1
}

// At returns entry (i,j) as 0 or 1.
// Returns ErrOutOfRange if either index is invalid.
func (a *Adjacency) At(i, j int) (int, error) {
	if !a.inRange(i) || !a.inRange(j) {
		return 0, adjacencyErrorf("At", i, j, ErrOutOfRange)
	}

	return int(a.data[i*a.n+j]), nil
}

// Set assigns entry (i,j). Intended for builders before the matrix is shared.
// Errors: ErrOutOfRange, ErrNonBinary.
func (a *Adjacency) Set(i, j, v int) error {
	if !a.inRange(i) || !a.inRange(j) {
		return adjacencyErrorf("Set", i, j, ErrOutOfRange)
	}
	if v != 0 && v != 1 {
		return adjacencyErrorf("Set", i, j, ErrNonBinary)
	}
	a.data[i*a.n+j] = uint8(v)

	return nil
}

// Adjacent reports whether i and j are joined in either direction.
func (a *Adjacency) Adjacent(i, j int) bool {
	return a.Has(i, j) || a.Has(j, i)
}

// Neighbors returns the column indices j with (u,j)=1, ascending.
// Out-of-range u yields nil.
// Complexity: O(n).
func (a *Adjacency) Neighbors(u int) []int {
	if !a.inRange(u) {
		return nil
	}
	var out []int
	base := u * a.n
	for j := 0; j < a.n; j++ {
		if a.data[base+j] == 1 {
			out = append(out, j)
		}
	}

	return out
}

// Edges lists every (i,j) with entry 1 in row-major order.
// Complexity: O(n²).
func (a *Adjacency) Edges() []Edge {
	var out []Edge
	var i, j int
	for i = 0; i < a.n; i++ {
		for j = 0; j < a.n; j++ {
			if a.data[i*a.n+j] == 1 {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}

	return out
}

// Rows returns a fresh [][]int copy of the matrix.
func (a *Adjacency) Rows() [][]int {
	rows := make([][]int, a.n)
	for i := range rows {
		rows[i] = make([]int, a.n)
		for j := 0; j < a.n; j++ {
			rows[i][j] = int(a.data[i*a.n+j])
		}
	}

	return rows
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (a *Adjacency) Clone() *Adjacency {
	data := make([]uint8, len(a.data))
	copy(data, a.data)

	return &Adjacency{n: a.n, data: data}
}

// String implements fmt.Stringer, one bracketed row per line.
func (a *Adjacency) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < a.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < a.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteByte('0' + a.data[i*a.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
