package mpi

import "math/rand"

// seededRand returns a deterministic RandFunc for tests, the same role
// the teacher's nat.random plays for its own (non-cryptographic) tests:
// reproducible test runs, never used by GenPrime/IsPrime outside tests.
func seededRand(seed int64) RandFunc {
	r := rand.New(rand.NewSource(seed))
	return func(dst []byte) error {
		_, err := r.Read(dst)
		return err
	}
}
