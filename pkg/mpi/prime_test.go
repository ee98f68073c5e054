package mpi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmallPrimesCoversSpecMinimum(t *testing.T) {
	require.GreaterOrEqual(t, len(smallPrimes), 1600)
	require.GreaterOrEqual(t, smallPrimes[len(smallPrimes)-1], uint64(1<<14-100))
	require.Less(t, smallPrimes[len(smallPrimes)-1], uint64(1<<14))
}

func TestIsPrimeKnownPrimes(t *testing.T) {
	rng := seededRand(42)
	for _, p := range []int64{2, 3, 5, 7, 11, 997, 7919, 1000003} {
		err := IsPrime(NewIntFromInt64(p), rng)
		assert.NoError(t, err, "%d should be prime", p)
	}
}

func TestIsPrimeKnownComposites(t *testing.T) {
	rng := seededRand(42)
	for _, c := range []int64{1, 4, 6, 9, 15, 561, 1000000} {
		err := IsPrime(NewIntFromInt64(c), rng)
		require.Error(t, err, "%d should be composite", c)
		assertKind(t, err, NotAcceptable)
	}
}

func TestGenPrimeProducesCorrectBitLength(t *testing.T) {
	rng := seededRand(7)
	p, err := GenPrime(64, false, rng)
	require.NoError(t, err)
	assert.Equal(t, 64, p.BitLen())
	assert.NoError(t, IsPrime(p, rng))
}

func TestGenPrimeIsOdd(t *testing.T) {
	rng := seededRand(8)
	p, err := GenPrime(48, false, rng)
	require.NoError(t, err)
	assert.False(t, p.IsEven())
}

func TestGenPrimeDHProducesSafePrime(t *testing.T) {
	rng := seededRand(9)
	p, err := GenPrime(48, true, rng)
	require.NoError(t, err)

	var y Int
	require.NoError(t, SubInt64(&y, p, 1))
	y.ShiftR(1)
	assert.NoError(t, IsPrime(&y, rng), "(p-1)/2 must also be prime for a safe prime")
}

func TestGenPrimeRejectsTinyBitLength(t *testing.T) {
	_, err := GenPrime(2, false, seededRand(1))
	require.Error(t, err)
	assertKind(t, err, BadInputData)
}
