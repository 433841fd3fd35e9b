// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the input contract of the
//    separation routines: directed matrix (zero diagonal), bidirected matrix
//    (zero diagonal, symmetric), both of the same order.
//  - Keep kernels minimal by delegating nil/shape/diagonal/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Diagonal → Symmetry).
//  - Shape and entry range are enforced by the constructors (FromRows, Set),
//    so an *Adjacency is always square and binary.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if a == nil.
// Complexity: O(1).
func ValidateNotNil(a *Adjacency) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVertex ensures 0 ≤ v < a.Order(). Assumes a is not nil.
// Complexity: O(1).
func ValidateVertex(a *Adjacency, v int) error {
	if !a.inRange(v) {
		return validatorErrorf(fmt.Sprintf("ValidateVertex(%d)", v), ErrOutOfRange)
	}

	return nil
}

// ValidateZeroDiagonal ensures a[i][i] == 0 for every i. Assumes a is not nil.
// Complexity: O(n).
func ValidateZeroDiagonal(a *Adjacency) error {
	for i := 0; i < a.n; i++ {
		if a.data[i*a.n+i] != 0 {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal: vertex %d", i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures a[i][j] == a[j][i]. Assumes a is not nil.
// Only the strict upper triangle is scanned.
// Complexity: O(n²).
func ValidateSymmetric(a *Adjacency) error {
	var i, j int
	for i = 0; i < a.n; i++ {
		for j = i + 1; j < a.n; j++ {
			if a.data[i*a.n+j] != a.data[j*a.n+i] {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: (%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateSameOrder ensures both matrices describe the same vertex set.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameOrder(a, b *Adjacency) error {
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameOrder: %d vs %d", a.n, b.n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateDirected checks the directed-skeleton contract: non-nil, zero diagonal.
// Cycles are allowed.
func ValidateDirected(a *Adjacency) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateDirected", err)
	}
	if err := ValidateZeroDiagonal(a); err != nil {
		return validatorErrorf("ValidateDirected", err)
	}

	return nil
}

// ValidateBidirected checks the bidirected contract: non-nil, zero diagonal, symmetric.
func ValidateBidirected(a *Adjacency) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBidirected", err)
	}
	if err := ValidateZeroDiagonal(a); err != nil {
		return validatorErrorf("ValidateBidirected", err)
	}
	if err := ValidateSymmetric(a); err != nil {
		return validatorErrorf("ValidateBidirected", err)
	}

	return nil
}

// ValidateMixed validates a (directed, bidirected) candidate as a whole:
// each matrix against its own contract, then the shared order.
func ValidateMixed(dir, bi *Adjacency) error {
	if err := ValidateDirected(dir); err != nil {
		return err
	}
	if err := ValidateBidirected(bi); err != nil {
		return err
	}

	return ValidateSameOrder(dir, bi)
}
