// SPDX-License-Identifier: MIT
// Package: apsp
//
// Purpose:
//   - Read-only accessors over a computed distance index.
//   - FromRows lets callers (and tests) supply a precomputed index.

package apsp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/magsep/matrix"
)

// FromRows builds a Distances value from rows, where Inf marks "no path".
// Errors: matrix.ErrNonSquare for ragged input, ErrInvalidDistance for a
// negative entry or a non-zero diagonal.
// Complexity: O(n²).
func FromRows(rows [][]int) (*Distances, error) {
	n := len(rows)
	d := &Distances{n: n, data: make([]int, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("apsp.FromRows: row %d has %d entries, want %d: %w", i, len(rows[i]), n, matrix.ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			v := rows[i][j]
			if v < 0 || (i == j && v != 0) {
				return nil, fmt.Errorf("apsp.FromRows: entry (%d,%d)=%d: %w", i, j, v, ErrInvalidDistance)
			}
			d.data[i*n+j] = v
		}
	}

	return d, nil
}

// Order returns the number of vertices.
func (d *Distances) Order() int {
	return d.n
}

// At returns the distance i→j (Inf if unreachable). Indices must be in range.
// Complexity: O(1).
func (d *Distances) At(i, j int) int {
	return d.data[i*d.n+j]
}

// Reachable reports whether a directed path i→j exists (including i == j).
func (d *Distances) Reachable(i, j int) bool {
	return d.data[i*d.n+j] != Inf
}

// Rows returns a fresh [][]int copy; Inf is preserved.
func (d *Distances) Rows() [][]int {
	rows := make([][]int, d.n)
	for i := range rows {
		rows[i] = make([]int, d.n)
		copy(rows[i], d.data[i*d.n:(i+1)*d.n])
	}

	return rows
}

// Clone returns a deep copy.
func (d *Distances) Clone() *Distances {
	data := make([]int, len(d.data))
	copy(data, d.data)

	return &Distances{n: d.n, data: data}
}

// Equal reports whether both indices have the same order and entries.
func (d *Distances) Equal(o *Distances) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	for i, v := range d.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String renders one bracketed row per line, with "inf" for unreachable pairs.
func (d *Distances) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(FormatDistance(d.data[i*d.n+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// FormatDistance renders a single distance, "inf" for Inf.
func FormatDistance(v int) string {
	if v == Inf {
		return "inf"
	}

	return strconv.Itoa(v)
}
