// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the separation packages.
// This file contains only domain-facing types (edges and the
// binary adjacency container). Errors and validators live in dedicated files.
package matrix

import "fmt"

// Edge is an ordered vertex pair (From, To).
// For directed edges it reads From→To; for bidirected edges the orientation
// carries no meaning and Canonical() normalizes it to (min, max).
type Edge struct {
	From int `json:"from" yaml:"from" toml:"from"` // tail (or first endpoint)
	To   int `json:"to" yaml:"to" toml:"to"`       // head (or second endpoint)
}

// Canonical returns the edge with endpoints ordered (min, max).
// Complexity: O(1).
func (e Edge) Canonical() Edge {
	if e.From > e.To {
		return Edge{From: e.To, To: e.From}
	}

	return e
}

// Reverse returns the edge with swapped endpoints.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// Less reports whether e sorts before o in (From, To) order.
func (e Edge) Less(o Edge) bool {
	if e.From != o.From {
		return e.From < o.From
	}

	return e.To < o.To
}

// String renders the edge as "u->v".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d", e.From, e.To)
}

// Adjacency is a square 0/1 matrix over vertices [0, n).
// Entry (i,j)=1 means an edge i→j (directed view) or i↔j (bidirected view,
// where the matrix is additionally symmetric).
//
// Storage is a flat row-major []uint8. An *Adjacency is treated as an
// immutable snapshot once handed to the separation routines: they only read it.
type Adjacency struct {
	n    int     // order (number of vertices)
	data []uint8 // flat backing storage, length == n*n
}
