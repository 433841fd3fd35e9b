// SPDX-License-Identifier: MIT

package apsp

import "errors"

var (
	// ErrInvalidDistance is returned by FromRows when an entry is negative or
	// a diagonal entry is not zero.
	ErrInvalidDistance = errors.New("apsp: invalid distance entry")

	// ErrInconsistentIndex indicates that the distance index was not built from
	// the adjacency handed to Trace: a unit distance had no matching edge.
	ErrInconsistentIndex = errors.New("apsp: distance index does not match adjacency")
)
