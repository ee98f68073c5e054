package mpi

// Configuration knobs, exposed as package variables rather than a config
// struct or functional options, following the teacher's own
// karatsubaThreshold idiom (a tunable exposed as package state). Defaults
// mirror mbedtls's compile-time MBEDTLS_MPI_* constants.
var (
	// MaxLimbs bounds the number of limbs any single Int may grow to.
	// Growth past this returns an AllocFailed error.
	MaxLimbs = 10000

	// MaxWindowSize bounds the sliding window width ExpMod may choose.
	MaxWindowSize = 6

	// MaxSize bounds the byte length SetBytes/FillBytes will operate on;
	// both reject a buf longer than this with BadInputData.
	MaxSize = 1024
)

// maxGenPrimeAttempts bounds GenPrime's candidate search (spec.md's Open
// Question on an iteration bound, resolved in SPEC_FULL.md).
const maxGenPrimeAttempts = 1 << 20
