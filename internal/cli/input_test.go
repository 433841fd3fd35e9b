// SPDX-License-Identifier: MIT

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magsep/matrix"
)

// q=0, x=1, y=2, w=3: directed {y→x, w→q}, bidirected {x↔w, y↔w, y↔q}.
var (
	wantDirected   = []matrix.Edge{{From: 2, To: 1}, {From: 3, To: 0}}
	wantBidirected = []matrix.Edge{
		{From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 0},
		{From: 2, To: 3}, {From: 3, To: 1}, {From: 3, To: 2},
	}
)

const inducingYAML = `
name: inducing
vertices: [q, x, y, w]
directed:   [[y, x], [w, q]]
bidirected: [[x, w], [y, w], [y, q]]
`

func TestReadCandidate_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
		labels  []string
	}{
		{"yaml labels", "a.yaml", inducingYAML, "inducing", []string{"q", "x", "y", "w"}},
		{"yml mixed refs", "mixed.yml", `
vertices: [q, x, y, w]
directed:   [[y, x], [3, 0]]
bidirected: [[x, w], [2, w], [y, "q"]]
`, "mixed", []string{"q", "x", "y", "w"}},
		{"json indices", "b.json", `{
  "name": "indices",
  "directed": [[2, 1], [3, 0]],
  "bidirected": [[1, 3], [2, 3], [2, 0]]
}`, "indices", []string{"0", "1", "2", "3"}},
		{"toml labels", "c.toml", `
name = "toml"
vertices = ["q", "x", "y", "w"]
directed = [["y", "x"], ["w", "q"]]
bidirected = [["x", "w"], ["y", "w"], ["y", "q"]]
`, "toml", []string{"q", "x", "y", "w"}},
		{"yaml matrices", "d.yaml", `
directed_matrix:
  - [0, 0, 0, 0]
  - [0, 0, 0, 0]
  - [0, 1, 0, 0]
  - [1, 0, 0, 0]
bidirected_matrix:
  - [0, 0, 1, 0]
  - [0, 0, 0, 1]
  - [1, 0, 0, 1]
  - [0, 1, 1, 0]
`, "d", []string{"0", "1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := readCandidate(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, in.Name)
			assert.Equal(t, tt.labels, in.Labels)
			assert.Equal(t, 4, in.order())
			assert.Equal(t, wantDirected, in.Directed.Edges())
			assert.Equal(t, wantBidirected, in.Bidirected.Edges())
		})
	}
}

func TestReadCandidate_Empty(t *testing.T) {
	in, err := readCandidate(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, 0, in.order())

	in, err = readCandidate(writeFile(t, "isolated.yaml", "vertices: [a, b, c]\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, in.order())
	assert.Empty(t, in.Directed.Edges())
}

func TestReadCandidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"extension", "a.txt", "", ErrUnsupportedFormat},
		{"duplicate label", "a.yaml", "vertices: [a, a]", ErrDuplicateVertex},
		{"unknown label", "a.yaml", "vertices: [a, b]\ndirected: [[a, c]]", ErrUnknownVertex},
		{"label without vertices", "a.yaml", "directed: [[a, b]]", ErrUnknownVertex},
		{"index out of range", "a.yaml", "vertices: [a, b]\ndirected: [[0, 2]]", ErrUnknownVertex},
		{"negative index", "a.json", `{"directed": [[-1, 0]]}`, ErrUnknownVertex},
		{"triple", "a.yaml", "directed: [[0, 1, 2]]", ErrBadPair},
		{"list and matrix", "a.yaml", "directed: [[0, 1]]\ndirected_matrix: [[0, 1], [0, 0]]", ErrConflictingInput},
		{"vertices vs matrix", "a.yaml", "vertices: [a]\ndirected_matrix: [[0, 1], [0, 0]]", ErrConflictingInput},
		{"toml unknown key", "a.toml", `colour = "red"`, ErrUnknownField},
		{"self loop", "a.yaml", "directed: [[1, 1]]", matrix.ErrNonZeroDiagonal},
		{"asymmetric matrix", "a.yaml", "bidirected_matrix: [[0, 1], [0, 0]]", matrix.ErrAsymmetry},
		{"non-binary matrix", "a.yaml", "directed_matrix: [[0, 2], [0, 0]]", matrix.ErrNonBinary},
		{"ragged matrix", "a.yaml", "directed_matrix: [[0, 1], [0]]", matrix.ErrNonSquare},
		{"order mismatch", "a.yaml", "directed_matrix: [[0, 1], [0, 0]]\nbidirected_matrix: [[0]]", matrix.ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readCandidate(writeFile(t, tt.file, tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := readCandidate(writeFile(t, "a.yaml", "colour: red"))
	require.Error(t, err, "unknown YAML fields are rejected")
	_, err = readCandidate(writeFile(t, "a.json", `{"colour": "red"}`))
	require.Error(t, err, "unknown JSON fields are rejected")
	_, err = readCandidate("does-not-exist.yaml")
	require.Error(t, err)
}
