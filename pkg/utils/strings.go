package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const HexPrefix = "0x"

// Digits of the widest 64-bit value
const MaxHexDigits = 16

var ErrInvalidHex = errors.New("invalid hexadecimal value")

// Formats an uint value as a "0x" prefixed hex string with uppercase digits and no leading zeros
func FormatHex(value uint64) string {
	return HexPrefix + strings.ToUpper(strconv.FormatUint(value, 16))
}

// Parses a "0x" prefixed hex string (digits in either case, at most 16 of them).
// Anything else, including decimal text, a missing prefix or an empty digit string, is rejected.
func ParseHex(text string) (uint64, error) {
	digits, hasPrefix := strings.CutPrefix(text, HexPrefix)
	if !hasPrefix {
		return 0, MakeError(ErrInvalidHex, "'%v' does not start with '%v'", text, HexPrefix)
	}

	if len(digits) == 0 {
		return 0, MakeError(ErrInvalidHex, "'%v' has no digits", text)
	}

	if len(digits) > MaxHexDigits {
		return 0, MakeError(ErrInvalidHex, "'%v' has more than %v digits", text, MaxHexDigits)
	}

	for _, c := range digits {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return 0, MakeError(ErrInvalidHex, "'%v' contains non hex digit '%c'", text, c)
		}
	}

	value, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, MakeError(ErrInvalidHex, "'%v' does not fit in 64 bits", text)
	}

	return value, nil
}

// Returns an string containing all formatted sequence items separated by a given separator
func FormatSlice[T any](input []T, separator string) string {
	var builder strings.Builder

	for i, value := range input {
		builder.WriteString(fmt.Sprint(value))

		if i < len(input)-1 {
			builder.WriteString(separator)
		}
	}

	return builder.String()
}
