// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the packages built on top of it (apsp, inducing, mag).
// All validators MUST return these sentinels and tests MUST check them via
// errors.Is. No routine panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is added by wrapping at the call site
// with fmt.Errorf("op: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> binary entries -> diagonal -> symmetry -> cross-matrix order.

var (
	// ErrNilMatrix indicates that a nil *Adjacency (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested order is invalid (n < 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a square matrix was required but a row had
	// a different length than the number of rows.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that a vertex index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that two matrices (or a matrix and an
	// index built from another matrix) disagree on the number of vertices.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonBinary signals an entry outside {0,1}.
	ErrNonBinary = errors.New("matrix: entry is not 0 or 1")

	// ErrNonZeroDiagonal signals a self-loop (a[i][i] != 0).
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals a bidirected matrix with a[i][j] != a[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")
)
