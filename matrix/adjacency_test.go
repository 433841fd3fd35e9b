// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magsep/matrix"
)

func TestNewAdjacency(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewAdjacency(4)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Order())
	assert.Empty(t, a.Edges())

	empty, err := matrix.NewAdjacency(0)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Order())
	assert.Equal(t, "", empty.String())

	_, err = matrix.NewAdjacency(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestFromRows_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromRows([][]int{{0, 1}, {0}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.FromRows([][]int{{0, 2}, {0, 0}})
	require.ErrorIs(t, err, matrix.ErrNonBinary)

	_, err = matrix.FromRows([][]int{{0, -1}, {0, 0}})
	require.ErrorIs(t, err, matrix.ErrNonBinary)
}

func TestFromRows_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	rows := [][]int{{0, 1}, {0, 0}}
	a, err := matrix.FromRows(rows)
	require.NoError(t, err)

	rows[0][1] = 0
	assert.True(t, a.Has(0, 1), "mutating the source rows must not change the matrix")
	assert.Equal(t, [][]int{{0, 1}, {0, 0}}, a.Rows())
}

// q, x, y, w fixture from the worked MAG example.
func TestFromEdges(t *testing.T) {
	t.Parallel()

	const q, x, y, w = 0, 1, 2, 3

	dir, err := matrix.FromEdges(4, []matrix.Edge{{From: w, To: x}, {From: q, To: y}}, false)
	require.NoError(t, err)
	assert.True(t, dir.Has(w, x))
	assert.False(t, dir.Has(x, w))
	assert.Equal(t, []matrix.Edge{{From: q, To: y}, {From: w, To: x}}, dir.Edges())

	bi, err := matrix.FromEdges(4, []matrix.Edge{{From: x, To: q}, {From: y, To: w}}, true)
	require.NoError(t, err)
	assert.True(t, bi.Has(x, q))
	assert.True(t, bi.Has(q, x))
	require.NoError(t, matrix.ValidateBidirected(bi))
	assert.Equal(t, []int{q}, bi.Neighbors(x))

	_, err = matrix.FromEdges(2, []matrix.Edge{{From: 0, To: 2}}, false)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestAdjacency_AccessorsAndClone(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewAdjacency(3)
	require.NoError(t, err)
	require.NoError(t, a.Set(0, 2, 1))
	require.ErrorIs(t, a.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, a.Set(0, 1, 5), matrix.ErrNonBinary)

	v, err := a.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	_, err = a.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.False(t, a.Has(-1, 0))
	assert.True(t, a.Adjacent(2, 0))
	assert.Nil(t, a.Neighbors(7))

	c := a.Clone()
	require.NoError(t, c.Set(0, 2, 0))
	assert.True(t, a.Has(0, 2), "clone must be independent")
	assert.Equal(t, "[0, 0, 1]\n[0, 0, 0]\n[0, 0, 0]\n", a.String())
}

func TestEdge_Helpers(t *testing.T) {
	t.Parallel()

	e := matrix.Edge{From: 3, To: 1}
	assert.Equal(t, matrix.Edge{From: 1, To: 3}, e.Canonical())
	assert.Equal(t, matrix.Edge{From: 1, To: 3}, e.Reverse())
	assert.Equal(t, "3->1", e.String())
	assert.True(t, matrix.Edge{From: 0, To: 5}.Less(matrix.Edge{From: 1, To: 0}))
	assert.True(t, matrix.Edge{From: 1, To: 0}.Less(matrix.Edge{From: 1, To: 2}))
	assert.False(t, e.Less(e))
}
