// This file implements the thin string/byte converters spec §1 scopes
// as "interface only": SetString/Text for radix 2-16 text, SetBytes/
// FillBytes for big-endian binary. None of this is a focus area: digit
// conversion is a plain multiply-add / divide-by-radix loop over the
// nat helpers (mulAddWW, divW, setBytes, bytes).
package mpi

import "strings"

// Size returns the number of bytes needed to hold |z|'s big-endian
// unsigned magnitude (mbedtls's mbedtls_mpi_size).
func (x *Int) Size() int {
	return (x.abs.bitLen() + 7) / 8
}

// SetBytes sets z to the unsigned big-endian magnitude in buf and
// returns z. z's sign is always +1 (or 0 if buf is all zero). buf
// longer than MaxSize is rejected with BadInputData rather than silently
// accepted, matching mbedtls_mpi_read_binary's MBEDTLS_MPI_MAX_SIZE check.
func (z *Int) SetBytes(buf []byte) (*Int, error) {
	if len(buf) > MaxSize {
		return nil, newErr("Int.SetBytes", BadInputData)
	}
	z.abs = z.abs.setBytes(buf)
	z.sign = 1
	return z, nil
}

// FillBytes writes z's unsigned big-endian magnitude into buf,
// left-zero-padded to len(buf), and returns buf. It fails with
// BufferTooSmall if len(buf) < z.Size(), and BadInputData if
// len(buf) > MaxSize.
func (z *Int) FillBytes(buf []byte) ([]byte, error) {
	if len(buf) < z.Size() {
		return nil, newErr("Int.FillBytes", BufferTooSmall)
	}
	if len(buf) > MaxSize {
		return nil, newErr("Int.FillBytes", BadInputData)
	}
	for i := range buf {
		buf[i] = 0
	}
	// z.abs.bytes wants a limb-aligned destination (it writes exactly
	// _S bytes per limb); stage into one, then right-align into buf,
	// since buf's caller-chosen length need not be limb-aligned.
	tmp := make([]byte, len(z.abs)*_S)
	z.abs.bytes(tmp)
	if len(tmp) <= len(buf) {
		copy(buf[len(buf)-len(tmp):], tmp)
	} else {
		copy(buf, tmp[len(tmp)-len(buf):])
	}
	return buf, nil
}

const digits = "0123456789abcdef"

// SetString parses s in the given radix (2-16) into z (mbedtls's
// mbedtls_mpi_read_string). A leading '-' makes z negative; leading
// '0x'/'0X' is accepted for radix 16. Invalid digits are
// InvalidCharacter; an unsupported radix is BadInputData.
func (z *Int) SetString(s string, radix int) (*Int, error) {
	if radix < 2 || radix > 16 {
		return nil, newErr("Int.SetString", BadInputData)
	}
	sign := 1
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	}
	if radix == 16 {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	}
	if s == "" {
		return nil, newErr("Int.SetString", BadInputData)
	}

	abs := nat(nil)
	base := Word(radix)
	for _, c := range strings.ToLower(s) {
		d := strings.IndexRune(digits, c)
		if d < 0 || d >= radix {
			return nil, newErr("Int.SetString", InvalidCharacter)
		}
		abs = abs.mulAddWW(abs, base, Word(d))
	}
	abs = abs.norm()

	z.abs = abs
	z.sign = sign
	if len(z.abs) == 0 {
		z.sign = 1
	}
	return z, nil
}

// Text returns z's value as a string in the given radix (2-16),
// mbedtls's mbedtls_mpi_write_string. Negative values are prefixed
// with '-'.
func (x *Int) Text(radix int) string {
	if radix < 2 || radix > 16 {
		return ""
	}
	if x.IsZero() {
		return "0"
	}

	base := Word(radix)
	rem := append(nat(nil), x.abs...)
	var out []byte
	for len(rem) > 0 {
		var r Word
		rem, r = rem.divW(rem, base)
		rem = rem.norm()
		out = append(out, digits[r])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if x.sign < 0 {
		return "-" + string(out)
	}
	return string(out)
}
