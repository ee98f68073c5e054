package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStringText(t *testing.T) {
	cases := []struct {
		s, want string
		radix   int
	}{
		{"255", "ff", 10},
		{"-255", "-ff", 10},
		{"0x1A", "1a", 16},
		{"1010", "a", 2},
		{"0", "0", 10},
	}
	for _, c := range cases {
		x := NewInt()
		_, err := x.SetString(c.s, c.radix)
		require.NoError(t, err, c.s)
		assert.Equal(t, c.want, x.Text(16), c.s)
	}
}

func TestSetStringInvalidCharacter(t *testing.T) {
	x := NewInt()
	_, err := x.SetString("12g", 16)
	require.Error(t, err)
	assertKind(t, err, InvalidCharacter)
}

func TestSetStringBadRadix(t *testing.T) {
	x := NewInt()
	_, err := x.SetString("10", 17)
	require.Error(t, err)
	assertKind(t, err, BadInputData)
}

func TestSetBytesRejectsOversizedBuffer(t *testing.T) {
	z := NewInt()
	_, err := z.SetBytes(make([]byte, MaxSize+1))
	require.Error(t, err)
	assertKind(t, err, BadInputData)
}

func TestFillBytesRejectsOversizedBuffer(t *testing.T) {
	x := NewIntFromInt64(1)
	_, err := x.FillBytes(make([]byte, MaxSize+1))
	require.Error(t, err)
	assertKind(t, err, BadInputData)
}

func TestTextRoundTripsThroughRadixes(t *testing.T) {
	x := NewIntFromInt64(123456789)
	for radix := 2; radix <= 16; radix++ {
		s := x.Text(radix)
		back := NewInt()
		_, err := back.SetString(s, radix)
		require.NoError(t, err)
		assert.Equal(t, x.Text(10), back.Text(10), "radix %d", radix)
	}
}
