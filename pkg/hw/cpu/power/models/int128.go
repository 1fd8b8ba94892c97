package models

import (
	"math/big"
	"math/bits"
)

// Full 128-bit product of two signed 64-bit values, two's complement
func mulSigned128(a, b uint64) (hi, lo uint64) {
	hi, lo = bits.Mul64(a, b)

	if int64(a) < 0 {
		hi -= b
	}

	if int64(b) < 0 {
		hi -= a
	}

	return hi, lo
}

// Adds a sign-extended 64-bit value to a 128-bit two's complement value
func addSigned128(hi, lo, c uint64) (uint64, uint64) {
	lo, carry := bits.Add64(lo, c, 0)
	hi, _ = bits.Add64(hi, uint64(int64(c)>>63), carry)
	return hi, lo
}

// Returns whether a 128-bit two's complement value is the sign extension of its low half
func fitsInt64(hi, lo uint64) bool {
	return hi == uint64(int64(lo)>>63)
}

// Signed division of ra<<64 by rb, ok is false when the quotient does not fit in 64 bits
func divSignedExtended(ra, rb uint64) (quotient uint64, ok bool) {
	dividend := new(big.Int).Lsh(big.NewInt(int64(ra)), 64)
	divisor := big.NewInt(int64(rb))

	q := new(big.Int).Quo(dividend, divisor)
	if !q.IsInt64() {
		return 0, false
	}

	return uint64(q.Int64()), true
}
