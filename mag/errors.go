// SPDX-License-Identifier: MIT

package mag

import "errors"

var (
	// ErrNilCandidate is returned by CheckAll for a candidate missing a matrix.
	ErrNilCandidate = errors.New("mag: candidate has a nil matrix")

	// ErrUnknownKind is returned when decoding an unrecognized witness kind.
	ErrUnknownKind = errors.New("mag: unknown witness kind")
)
