package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	var val T
	return Bits(int(unsafe.Sizeof(val)))
}

// Returns an all ones bitmask of n bits of the given unsigned integer type
func AllOnes[T constraints.Unsigned](bits int) T {
	if bits >= SizeofBits[T]() {
		return ^T(0)
	}

	return (T(1) << bits) - T(1)
}

// Returns the mask of a bit numbered from the most significant bit (bit 0 is the MSB),
// the convention used by POWER register documentation
func MsbMask[T constraints.Unsigned](bit int) T {
	return T(1) << (SizeofBits[T]() - 1 - bit)
}

// Implements a read only view over an unsigned integer, with bits numbered from the most significant one
type BitView[T constraints.Unsigned] struct {
	Bits T
}

// Returns the viewed unsigned int value
func (v BitView[T]) Value() T {
	return v.Bits
}

// Returns the size in bits of the viewed value
func (v BitView[T]) SizeofBits() int {
	return SizeofBits[T]()
}

// Returns whether the given MSB-numbered bit is set
func (v BitView[T]) Test(bit int) bool {
	return v.Bits&MsbMask[T](bit) != 0
}

// Extracts a group of width bits starting at the given MSB-numbered bit, right aligned
func (v BitView[T]) Read(bit int, width int) T {
	shift := v.SizeofBits() - bit - width
	return (v.Bits >> shift) & AllOnes[T](width)
}

// Returns a copy of the view with the given MSB-numbered bit set to value
func (v BitView[T]) With(bit int, value bool) BitView[T] {
	if value {
		return BitView[T]{Bits: v.Bits | MsbMask[T](bit)}
	}

	return BitView[T]{Bits: v.Bits &^ MsbMask[T](bit)}
}

// Creates a bit view out of an unsigned int
func CreateBitView[T constraints.Unsigned](value T) BitView[T] {
	return BitView[T]{
		Bits: value,
	}
}
