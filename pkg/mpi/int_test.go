package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetIntAndSign(t *testing.T) {
	cases := []struct {
		v    int64
		sign int
	}{
		{0, 0},
		{5, 1},
		{-5, -1},
		{1<<62 + 7, 1},
	}
	for _, c := range cases {
		x := NewIntFromInt64(c.v)
		assert.Equal(t, c.sign, x.Sign(), "value %d", c.v)
	}
}

func TestNegZeroIsNoOp(t *testing.T) {
	z := NewInt()
	z.Neg()
	assert.Equal(t, 0, z.Sign())
	assert.True(t, z.IsZero())
}

func TestCopyIsDeep(t *testing.T) {
	a := NewIntFromInt64(42)
	b := NewInt().Copy(a)
	require.Equal(t, int64(0), mustInt64(t, b)-42)

	require.NoError(t, AddInt64(a, a, 1))
	assert.NotEqual(t, a.Text(10), b.Text(10), "mutating a must not affect the copy")
}

func TestSwap(t *testing.T) {
	a := NewIntFromInt64(1)
	b := NewIntFromInt64(2)
	a.Swap(b)
	assert.Equal(t, "2", a.Text(10))
	assert.Equal(t, "1", b.Text(10))
}

func TestGrowPreservesValueAndZeroesTail(t *testing.T) {
	z := NewIntFromInt64(7)
	require.NoError(t, z.Grow(8))
	assert.Equal(t, "7", z.Text(10))
	for i, w := range z.abs {
		if i == 0 {
			continue
		}
		assert.Zero(t, w)
	}
	assert.GreaterOrEqual(t, len(z.abs), 8)
}

func TestGrowRejectsOverflow(t *testing.T) {
	z := NewInt()
	err := z.Grow(MaxLimbs + 1)
	require.Error(t, err)
	assertKind(t, err, AllocFailed)
}

func TestAddCommutativeGroup(t *testing.T) {
	a := NewIntFromInt64(123456789)
	b := NewIntFromInt64(-987654321)
	var ab, ba Int
	require.NoError(t, Add(&ab, a, b))
	require.NoError(t, Add(&ba, b, a))
	assert.Equal(t, ab.Text(10), ba.Text(10))

	var back Int
	require.NoError(t, Sub(&back, &ab, b))
	assert.Equal(t, a.Text(10), back.Text(10))
}

func TestAddOppositeSignsCancel(t *testing.T) {
	a := NewIntFromInt64(100)
	b := NewIntFromInt64(-100)
	var z Int
	require.NoError(t, Add(&z, a, b))
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Sign())
}

func TestMulDivRoundTrip(t *testing.T) {
	a := NewIntFromInt64(123456789)
	b := NewIntFromInt64(987)
	var prod Int
	require.NoError(t, Mul(&prod, a, b))

	var q, r Int
	require.NoError(t, Div(&q, &r, &prod, b))
	assert.Equal(t, a.Text(10), q.Text(10))
	assert.True(t, r.IsZero())
}

func TestDivKnownScenario(t *testing.T) {
	a := NewIntFromInt64(1000000)
	b := NewIntFromInt64(7)
	var q, r Int
	require.NoError(t, Div(&q, &r, a, b))
	assert.Equal(t, "142857", q.Text(10))
	assert.Equal(t, "1", r.Text(10))
}

func TestDivByZero(t *testing.T) {
	a := NewIntFromInt64(10)
	b := NewInt()
	var q, r Int
	err := Div(&q, &r, a, b)
	require.Error(t, err)
	assertKind(t, err, DivisionByZero)
}

func TestModAlwaysNonNegative(t *testing.T) {
	a := NewIntFromInt64(-7)
	n := NewIntFromInt64(3)
	var r Int
	require.NoError(t, Mod(&r, a, n))
	assert.Equal(t, "2", r.Text(10))
}

func TestModByZero(t *testing.T) {
	a := NewIntFromInt64(10)
	n := NewInt()
	var r Int
	err := Mod(&r, a, n)
	require.Error(t, err)
	assertKind(t, err, DivisionByZero)
}

func TestModByNegative(t *testing.T) {
	a := NewIntFromInt64(10)
	n := NewIntFromInt64(-3)
	var r Int
	err := Mod(&r, a, n)
	require.Error(t, err)
	assertKind(t, err, NegativeValue)
}

func TestShiftMultiplyDuality(t *testing.T) {
	a := NewIntFromInt64(12345)
	shifted := NewInt().Copy(a)
	require.NoError(t, shifted.ShiftL(10))

	pow2 := NewIntFromInt64(1)
	require.NoError(t, pow2.ShiftL(10))
	var viaMul Int
	require.NoError(t, Mul(&viaMul, a, pow2))

	assert.Equal(t, viaMul.Text(10), shifted.Text(10))
}

func TestBitRoundTrip(t *testing.T) {
	z := NewInt()
	for _, pos := range []int{0, 1, 7, 8, 63, 64, 130} {
		require.NoError(t, z.SetBit(pos, 1))
		assert.Equal(t, uint(1), z.Bit(pos))
	}
	assert.Equal(t, 131, z.BitLen())
}

func TestBinaryRoundTrip(t *testing.T) {
	orig := NewIntFromInt64(0x0102030405)
	buf := make([]byte, orig.Size())
	_, err := orig.FillBytes(buf)
	require.NoError(t, err)

	back, err2 := NewInt().SetBytes(buf)
	require.NoError(t, err2)
	assert.Equal(t, orig.Text(16), back.Text(16))
}

func TestFillBytesBufferTooSmall(t *testing.T) {
	x := NewIntFromInt64(1 << 40)
	_, err := x.FillBytes(make([]byte, 1))
	require.Error(t, err)
	assertKind(t, err, BufferTooSmall)
}

func TestFillBytesLeftPads(t *testing.T) {
	x := NewIntFromInt64(1)
	buf := make([]byte, 4)
	_, err := x.FillBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1}, buf)
}

func TestSelfAliasingMulSquare(t *testing.T) {
	x := NewIntFromInt64(123456789)
	require.NoError(t, Mul(x, x, x))
	assert.Equal(t, "15241578750190521", x.Text(10))
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	e, ok := err.(*Error)
	require.True(t, ok, "expected *mpi.Error, got %T", err)
	assert.Equal(t, want, e.Kind)
}

func mustInt64(t *testing.T, x *Int) int64 {
	t.Helper()
	var v int64
	for _, c := range x.Text(10) {
		if c == '-' {
			continue
		}
		v = v*10 + int64(c-'0')
	}
	if x.Sign() < 0 {
		v = -v
	}
	return v
}
