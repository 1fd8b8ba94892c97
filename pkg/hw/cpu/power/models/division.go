package models

import (
	"math"
	"math/bits"
)

// Signed 64-bit quotient. Division by zero and MinInt64 / -1 overflow with rt = 0
func Divd(ra, rb uint64) OverflowResult {
	dividend, divisor := int64(ra), int64(rb)
	if isSignedDivOverflow(dividend, divisor) {
		return overflowed(0, true)
	}

	return overflowed(uint64(dividend/divisor), false)
}

// Unsigned 64-bit quotient. Division by zero overflows with rt = 0
func Divdu(ra, rb uint64) OverflowResult {
	if rb == 0 {
		return overflowed(0, true)
	}

	return overflowed(ra/rb, false)
}

// Signed quotient of ra << 64 by rb. Overflows with rt = 0 when the quotient does not fit in 64 bits
func Divde(ra, rb uint64) OverflowResult {
	if isSignedDivOverflow(int64(ra), int64(rb)) {
		return overflowed(0, true)
	}

	quotient, ok := divSignedExtended(ra, rb)
	if !ok {
		return overflowed(0, true)
	}

	return overflowed(quotient, false)
}

// Unsigned quotient of ra << 64 by rb. Overflows with rt = 0 when the quotient does not fit in 64 bits
func Divdeu(ra, rb uint64) OverflowResult {
	// (ra << 64) / rb fits in 64 bits iff ra < rb
	if rb == 0 || ra >= rb {
		return overflowed(0, true)
	}

	quotient, _ := bits.Div64(ra, 0, rb)
	return overflowed(quotient, false)
}

// Signed quotient of the low words, zero-extended into rt
func Divw(ra, rb uint64) OverflowResult {
	dividend, divisor := int32(ra), int32(rb)
	if divisor == 0 || (divisor == -1 && dividend == math.MinInt32) {
		return overflowed(0, true)
	}

	return overflowed(uint64(uint32(dividend/divisor)), false)
}

// Unsigned quotient of the low words
func Divwu(ra, rb uint64) OverflowResult {
	dividend, divisor := uint32(ra), uint32(rb)
	if divisor == 0 {
		return overflowed(0, true)
	}

	return overflowed(uint64(dividend/divisor), false)
}

// Signed quotient of the low word of ra shifted 32 bits by the low word of rb, zero-extended into rt
func Divwe(ra, rb uint64) OverflowResult {
	dividend := int64(int32(ra)) << 32
	divisor := int64(int32(rb))
	if isSignedDivOverflow(dividend, divisor) {
		return overflowed(0, true)
	}

	quotient := dividend / divisor
	if int64(int32(quotient)) != quotient {
		return overflowed(0, true)
	}

	return overflowed(uint64(uint32(quotient)), false)
}

// Unsigned quotient of the low word of ra shifted 32 bits by the low word of rb
func Divweu(ra, rb uint64) OverflowResult {
	dividend := uint64(uint32(ra)) << 32
	divisor := uint64(uint32(rb))
	if divisor == 0 {
		return overflowed(0, true)
	}

	quotient := dividend / divisor
	if quotient > math.MaxUint32 {
		return overflowed(0, true)
	}

	return overflowed(quotient, false)
}

// Signed 64-bit remainder, 0 on division by zero and MinInt64 % -1
func Modsd(ra, rb uint64) uint64 {
	dividend, divisor := int64(ra), int64(rb)
	if isSignedDivOverflow(dividend, divisor) {
		return 0
	}

	return uint64(dividend % divisor)
}

// Unsigned 64-bit remainder, 0 on division by zero
func Modud(ra, rb uint64) uint64 {
	if rb == 0 {
		return 0
	}

	return ra % rb
}

// Signed remainder of the low words, sign-extended into rt
func Modsw(ra, rb uint64) uint64 {
	dividend, divisor := int32(ra), int32(rb)
	if divisor == 0 || (divisor == -1 && dividend == math.MinInt32) {
		return 0
	}

	return uint64(int64(dividend % divisor))
}

// Unsigned remainder of the low words
func Moduw(ra, rb uint64) uint64 {
	dividend, divisor := uint32(ra), uint32(rb)
	if divisor == 0 {
		return 0
	}

	return uint64(dividend % divisor)
}
