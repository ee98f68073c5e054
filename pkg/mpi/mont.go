package mpi

// montgomerySetup computes the Montgomery parameters for odd modulus n:
// mm = -n^-1 mod 2^_W (via Hensel lifting, Newton-Raphson style) and
// rr = R^2 mod n where R = 2^(_W*len(n)). This is the preamble that used
// to live inline at the top of the teacher's expNNMontgomery; it is
// split out here because ExpMod (expmod.go) needs to reuse rr across
// calls (spec's optional "_RR" cache) and mm for every montgomery() call
// in the sliding-window ladder, not just a single fixed-width one.
func montgomerySetup(n nat) (mm Word, rr nat) {
	// k0 = n[0]^-1 mod 2^_W via repeated squaring (Dumas' iteration for
	// multiplicative inverses modulo a prime power of 2); mm is its
	// negation.
	k0 := 2 - n[0]
	t := n[0] - 1
	for i := 1; i < _W; i <<= 1 {
		t *= t
		k0 *= t + 1
	}
	mm = -k0

	// rr = 2**(2*_W*len(n)) mod n
	one := nat(nil).setWord(1)
	shifted := one.shl(one, uint(2*len(n)*_W))
	_, rr = nat(nil).div(rr, shifted, n)
	if len(rr) < len(n) {
		padded := make(nat, len(n))
		copy(padded, rr)
		rr = padded
	}
	return mm, rr
}
