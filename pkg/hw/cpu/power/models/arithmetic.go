package models

import (
	"math"
	"math/bits"
)

// ra + rb
func Add(ra, rb uint64) OverflowResult {
	rt := ra + rb
	rt32 := int32(ra) + int32(rb)

	return OverflowResult{
		Rt:   rt,
		OV:   int64((ra^rt)&(rb^rt)) < 0,
		OV32: (int32(ra)^rt32)&(int32(rb)^rt32) < 0,
	}
}

// rb - ra
func Subf(ra, rb uint64) OverflowResult {
	rt := rb - ra
	rt32 := int32(rb) - int32(ra)

	return OverflowResult{
		Rt:   rt,
		OV:   int64((rb^ra)&(rb^rt)) < 0,
		OV32: (int32(rb)^int32(ra))&(int32(rb)^rt32) < 0,
	}
}

// Product of the sign-extended low words. Overflows when it does not fit in 32 bits
func Mullw(ra, rb uint64) OverflowResult {
	rt := int64(int32(ra)) * int64(int32(rb))
	return overflowed(uint64(rt), int64(int32(rt)) != rt)
}

// Wrapping 64-bit product. Overflows when the exact signed product does not fit in 64 bits
func Mulld(ra, rb uint64) OverflowResult {
	hi, lo := mulSigned128(ra, rb)
	return overflowed(lo, !fitsInt64(hi, lo))
}

// High word of the signed product of the low words, in both halves of rt
func Mulhw(ra, rb uint64) uint64 {
	high := uint64(uint32((int64(int32(ra)) * int64(int32(rb))) >> 32))
	return high | high<<32
}

// High word of the unsigned product of the low words, in both halves of rt
func Mulhwu(ra, rb uint64) uint64 {
	high := (uint64(uint32(ra)) * uint64(uint32(rb))) >> 32
	return high | high<<32
}

// High 64 bits of the signed 128-bit product
func Mulhd(ra, rb uint64) uint64 {
	hi, _ := mulSigned128(ra, rb)
	return hi
}

// High 64 bits of the unsigned 128-bit product
func Mulhdu(ra, rb uint64) uint64 {
	hi, _ := bits.Mul64(ra, rb)
	return hi
}

// High 64 bits of the signed 128-bit ra * rb + rc
func Maddhd(ra, rb, rc uint64) uint64 {
	hi, lo := mulSigned128(ra, rb)
	hi, _ = addSigned128(hi, lo, rc)
	return hi
}

// High 64 bits of the unsigned 128-bit ra * rb + rc
func Maddhdu(ra, rb, rc uint64) uint64 {
	hi, lo := bits.Mul64(ra, rb)
	_, carry := bits.Add64(lo, rc, 0)
	return hi + carry
}

// Low 64 bits of ra * rb + rc
func Maddld(ra, rb, rc uint64) uint64 {
	return ra*rb + rc
}

func isSignedDivOverflow(dividend, divisor int64) bool {
	return divisor == 0 || (divisor == -1 && dividend == math.MinInt64)
}
