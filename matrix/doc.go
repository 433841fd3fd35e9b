// Package matrix offers the binary adjacency container used to describe a
// candidate mixed graph: one matrix for directed edges and one for
// bidirected edges over the same vertex set [0, n).
//
// The matrix package provides:
//
//   - Adjacency: an n×n 0/1 matrix with O(1) cell lookups and O(n²) memory.
//   - Edge: an ordered vertex pair with canonical ordering helpers.
//   - Builders (FromRows, FromEdges) that reject malformed input up front.
//   - Validators for the directed contract (zero diagonal) and the bidirected
//     contract (zero diagonal, symmetric) plus a cross-matrix order check.
//
// Errors:
//
//   - ErrNilMatrix, ErrBadShape, ErrNonSquare, ErrOutOfRange,
//     ErrDimensionMismatch, ErrNonBinary, ErrNonZeroDiagonal, ErrAsymmetry.
//
// Matrices are best for the small, dense instances an exact optimizer
// explores (tens of vertices), where O(n²) memory is negligible.
package matrix
