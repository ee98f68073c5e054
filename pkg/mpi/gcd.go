// This file implements binary GCD (Stein's algorithm) and modular
// inverse via the extended Euclidean algorithm (spec component I). Neither
// appears in the teacher's nat.go, which only ever needed mulRange for
// factorial-style products; both are built from the same limb
// primitives (shr, sub, cmp, bit) the teacher already exposes.
package mpi

// GCD sets z = gcd(|a|, |b|) using the binary (Stein's) algorithm: no
// division, only shifts, subtraction, and comparison, which is why
// crypto libraries favor it over Euclid's algorithm for bignums. gcd(0,
// b) = |b|, gcd(a, 0) = |a|, gcd(0, 0) = 0.
func GCD(z, a, b *Int) error {
	if a.IsZero() {
		z.abs = z.abs.cset(b.abs, 0)
		z.sign = 1
		return nil
	}
	if b.IsZero() {
		z.abs = z.abs.cset(a.abs, 0)
		z.sign = 1
		return nil
	}

	x := append(nat(nil), a.abs...)
	y := append(nat(nil), b.abs...)

	shift := uint(0)
	for x.bit(0) == 0 && y.bit(0) == 0 {
		x = x.shr(x, 1)
		y = y.shr(y, 1)
		shift++
	}
	for x.bit(0) == 0 {
		x = x.shr(x, 1)
	}
	for y.nonzero() != 0 {
		for y.bit(0) == 0 {
			y = y.shr(y, 1)
		}
		if x.cmp(y) > 0 {
			x, y = y, x
		}
		y = y.sub(y, x)
	}

	z.abs = x.shl(x, shift)
	z.sign = 1
	return nil
}

// InvMod sets z = a^-1 mod n via the extended Euclidean algorithm over
// signed Ints (spec's inv_mod), requiring gcd(a, n) == 1. n must be
// greater than 1; a may be any sign (negative a is reduced mod n first).
func InvMod(z, a, n *Int) error {
	if n.Sign() <= 0 || n.abs.cmp(natOne) == 0 {
		return newErr("mpi.InvMod", BadInputData)
	}

	var aRed Int
	if err := Mod(&aRed, a, n); err != nil {
		return err
	}
	if aRed.IsZero() {
		return newErr("mpi.InvMod", NotAcceptable)
	}

	// Extended Euclid: maintain (r0, r1) = (n, a mod n) and the Bezout
	// coefficients (t0, t1) for the second row, updating
	// r0, r1 = r1, r0 - q*r1 in lockstep with t0, t1 = t1, t0 - q*t1.
	r0, r1 := NewInt().Set(n), NewInt().Set(&aRed)
	t0, t1 := NewInt(), NewIntFromInt64(1)

	for !r1.IsZero() {
		var q, r Int
		if err := Div(&q, &r, r0, r1); err != nil {
			return err
		}
		var qt1, newT Int
		if err := Mul(&qt1, &q, t1); err != nil {
			return err
		}
		if err := Sub(&newT, t0, &qt1); err != nil {
			return err
		}
		r0, r1 = r1, &r
		t0, t1 = t1, &newT
	}

	if r0.CmpAbs(natOneInt()) != 0 {
		return newErr("mpi.InvMod", NotAcceptable)
	}

	if t0.Sign() < 0 {
		if err := Add(t0, t0, n); err != nil {
			return err
		}
	}
	z.Copy(t0)
	return nil
}

func natOneInt() *Int { return NewIntFromInt64(1) }
