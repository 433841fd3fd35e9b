// SPDX-License-Identifier: MIT

package cli

import "errors"

var (
	// ErrViolations is returned by check when a candidate is infeasible and
	// fail_on_violation is set. main maps it to exit status 2.
	ErrViolations = errors.New("candidate violates MAG constraints")

	// ErrUnsupportedFormat: the input file extension is not .yaml, .yml, .toml or .json.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrUnknownVertex: an edge names a label not listed in vertices, or an
	// index outside [0, n).
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrDuplicateVertex: a vertex label appears twice.
	ErrDuplicateVertex = errors.New("duplicate vertex label")

	// ErrBadPair: an edge entry is not a pair.
	ErrBadPair = errors.New("edge must be a pair of vertices")

	// ErrConflictingInput: the same edge kind is given both as a list and as a matrix,
	// or the declared vertex count disagrees with a matrix.
	ErrConflictingInput = errors.New("conflicting input")

	// ErrUnknownField: a TOML input carries a key that is not part of the
	// candidate format. YAML and JSON report their own decoder errors.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidConfig: a configuration value is out of its domain.
	ErrInvalidConfig = errors.New("invalid configuration")
)
