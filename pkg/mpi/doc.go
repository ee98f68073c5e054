// Package mpi implements sign-magnitude multi-precision integer
// arithmetic for public-key cryptography: the limb-level kernel, sliding-
// window Montgomery modular exponentiation, binary GCD and modular
// inverse, and Miller-Rabin primality testing and generation that RSA,
// Diffie-Hellman, and auxiliary ECC scalar operations need.
//
// Int is the exported sign-magnitude container. Free functions taking
// an output *Int as their first argument (Add, Mul, Div, ExpMod, GCD,
// InvMod, ...) follow mbedtls's own out-parameter convention rather than
// Go's usual method-returns-a-new-value style, since in-place reuse of
// a large Int's backing storage across a chain of operations is the
// point of a bignum library. Every output argument may alias any input
// argument.
//
// Arithmetic on the magnitude below Int is constant only in structure,
// not in timing, except where documented: SafeCondAssign, SafeCondSwap,
// and ExpMod's windowed table lookup are the operations spec'd to run
// in time and with a memory-access pattern independent of their secret
// inputs. Everything else - in particular the sign and sizes of every
// Int involved - may leak through timing.
package mpi
