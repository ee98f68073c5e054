// This file implements modular exponentiation (spec component H). It is
// a generalization of the teacher's own expNNWindowed/expNNMontgomery
// pair (removed from nat.go once this file subsumed them): same
// left-to-right windowed walk over the exponent's bits, same Montgomery ladder via
// nat.montgomery, but with a variable window width chosen from the
// exponent's bit length, and a table lookup that always touches every
// table row (ctSelectTable in const_time.go) instead of indexing
// directly, so the memory-access pattern does not leak which window
// value appeared.
package mpi

// windowWidth picks a sliding-window width for an exponent of the given
// bit length (the teacher used a fixed 4-bit window; these breakpoints
// are this package's own), capped by MaxWindowSize.
func windowWidth(bitlen int) int {
	w := 1
	switch {
	case bitlen >= 1024:
		w = 6
	case bitlen >= 256:
		w = 5
	case bitlen >= 128:
		w = 4
	case bitlen >= 64:
		w = 3
	case bitlen >= 16:
		w = 2
	}
	if w > MaxWindowSize {
		w = MaxWindowSize
	}
	if w < 1 {
		w = 1
	}
	return w
}

// ExpMod sets z = a^e mod n (spec's exp_mod). n must be positive and
// odd; an even or non-positive modulus is BadInputData (Montgomery
// reduction requires gcd(n, 2) == 1). A negative exponent is likewise
// BadInputData since this package does not implement modular inverse
// chaining for it automatically (use InvMod then ExpMod with |e|).
//
// rr, if non-nil, caches R^2 mod n across repeated calls against the
// same modulus (spec's optional _RR parameter): pass a zero-valued Int
// the first time and reuse it on subsequent calls with the same n.
func ExpMod(z, a, e, n, rr *Int) error {
	if n.Sign() <= 0 || n.IsEven() {
		return newErr("mpi.ExpMod", BadInputData)
	}
	if e.Sign() < 0 {
		return newErr("mpi.ExpMod", BadInputData)
	}
	nn := n.abs
	nLen := len(nn)
	if nLen == 1 && nn[0] == 1 {
		z.SetInt64(0)
		return nil
	}

	var aRed Int
	if err := Mod(&aRed, a, n); err != nil {
		return err
	}
	aPadded := make(nat, nLen)
	copy(aPadded, aRed.abs)

	mm, freshRR := montgomerySetup(nn)
	var useRR nat
	if rr != nil && !rr.IsZero() {
		useRR = make(nat, nLen)
		copy(useRR, rr.abs)
	} else {
		useRR = freshRR
		if rr != nil {
			rr.abs = append(nat(nil), freshRR...)
			rr.sign = 1
		}
	}

	mont := func(x, y nat) nat {
		return nat(nil).montgomery(x, y, nn, mm, nLen, make(nat, nLen), 0)
	}

	one := make(nat, nLen)
	one[0] = 1

	aMont := mont(aPadded, useRR)

	bitlen := e.BitLen()
	if bitlen == 0 {
		// a^0 == 1
		result := mont(mont(one, useRR), one)
		z.abs = result.norm()
		z.sign = 1
		return nil
	}

	width := windowWidth(bitlen)
	tableSize := 1 << (width - 1)
	table := make([]nat, tableSize)
	table[0] = aMont
	if tableSize > 1 {
		aSq := mont(aMont, aMont)
		for i := 1; i < tableSize; i++ {
			table[i] = mont(table[i-1], aSq)
		}
	}

	accMont := mont(one, useRR) // Montgomery form of 1, i.e. R mod n
	tmp := make(nat, nLen)

	i := bitlen - 1
	for i >= 0 {
		if e.abs.bit(uint(i)) == 0 {
			accMont = mont(accMont, accMont)
			i--
			continue
		}
		j := i - width + 1
		if j < 0 {
			j = 0
		}
		for e.abs.bit(uint(j)) == 0 {
			j++
		}
		for k := 0; k < i-j+1; k++ {
			accMont = mont(accMont, accMont)
		}
		var wval uint
		for k := i; k >= j; k-- {
			wval = wval<<1 | e.abs.bit(uint(k))
		}
		idx := (wval - 1) / 2
		ctSelectTable(tmp, table, idx)
		accMont = mont(accMont, tmp)
		i = j - 1
	}

	result := mont(accMont, one)
	z.abs = result.norm()
	z.sign = 1
	return nil
}
