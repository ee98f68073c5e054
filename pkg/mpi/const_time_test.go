package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeCondAssign(t *testing.T) {
	x := NewIntFromInt64(10)
	y := NewIntFromInt64(-20)

	x0 := NewInt().Copy(x)
	require.NoError(t, x0.SafeCondAssign(y, 0))
	assert.Equal(t, x.Text(10), x0.Text(10), "c=0 must leave x unchanged")

	x1 := NewInt().Copy(x)
	require.NoError(t, x1.SafeCondAssign(y, 1))
	assert.Equal(t, y.Text(10), x1.Text(10), "c=1 must assign y")
}

func TestSafeCondAssignRejectsBadC(t *testing.T) {
	x := NewIntFromInt64(1)
	y := NewIntFromInt64(2)
	err := x.SafeCondAssign(y, 2)
	require.Error(t, err)
	assertKind(t, err, BadInputData)
}

func TestSafeCondSwap(t *testing.T) {
	x := NewIntFromInt64(10)
	y := NewIntFromInt64(-20)

	xs, ys := NewInt().Copy(x), NewInt().Copy(y)
	require.NoError(t, xs.SafeCondSwap(ys, 0))
	assert.Equal(t, "10", xs.Text(10))
	assert.Equal(t, "-20", ys.Text(10))

	require.NoError(t, xs.SafeCondSwap(ys, 1))
	assert.Equal(t, "-20", xs.Text(10))
	assert.Equal(t, "10", ys.Text(10))
}

func TestCtSelectTablePicksExactRow(t *testing.T) {
	table := []nat{
		{1, 0},
		{2, 0},
		{3, 0},
		{4, 0},
	}
	dst := make(nat, 2)
	for i := range table {
		ctSelectTable(dst, table, uint(i))
		assert.Equal(t, table[i][0], dst[0])
	}
}
