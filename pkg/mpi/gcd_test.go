package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCDKnownValues(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{48, 18, 6},
		{17, 5, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{1071, 462, 21},
	}
	for _, c := range cases {
		a, b := NewIntFromInt64(c.a), NewIntFromInt64(c.b)
		var g Int
		require.NoError(t, GCD(&g, a, b))
		assert.Equal(t, NewIntFromInt64(c.want).Text(10), g.Text(10), "gcd(%d,%d)", c.a, c.b)
	}
}

func TestGCDDividesBoth(t *testing.T) {
	a := NewIntFromInt64(123456)
	b := NewIntFromInt64(987654)
	var g Int
	require.NoError(t, GCD(&g, a, b))

	var q, r Int
	require.NoError(t, Div(&q, &r, a, &g))
	assert.True(t, r.IsZero())
	require.NoError(t, Div(&q, &r, b, &g))
	assert.True(t, r.IsZero())
}

func TestInvModRoundTrip(t *testing.T) {
	a := NewIntFromInt64(17)
	n := NewIntFromInt64(3120) // RSA-style modulus, coprime to 17
	var inv Int
	require.NoError(t, InvMod(&inv, a, n))

	var prod, r Int
	require.NoError(t, Mul(&prod, a, &inv))
	require.NoError(t, Mod(&r, &prod, n))
	assert.Equal(t, "1", r.Text(10))
}

func TestInvModNotCoprime(t *testing.T) {
	a := NewIntFromInt64(6)
	n := NewIntFromInt64(9)
	var inv Int
	err := InvMod(&inv, a, n)
	require.Error(t, err)
	assertKind(t, err, NotAcceptable)
}

func TestInvModRejectsModulusLEOne(t *testing.T) {
	a := NewIntFromInt64(5)
	for _, n := range []int64{0, 1, -1} {
		var inv Int
		err := InvMod(&inv, a, NewIntFromInt64(n))
		require.Error(t, err, "n=%d", n)
		assertKind(t, err, BadInputData)
	}
}

func TestInvModNegativeBase(t *testing.T) {
	a := NewIntFromInt64(-17)
	n := NewIntFromInt64(3120)
	var inv Int
	require.NoError(t, InvMod(&inv, a, n))
	assert.True(t, inv.Sign() > 0)
	assert.True(t, inv.Cmp(n) < 0)
}
