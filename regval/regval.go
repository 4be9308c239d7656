// Package regval provides register value parsing and bit extraction.
//
// A register value is an unsigned integer together with its declared bit
// width (64 for ESR and MIDR, 32 for SMCCC function IDs). Parsing accepts
// decimal or 0x-prefixed hexadecimal text and rejects values that do not
// fit in the declared width.
package regval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors. Wrapped errors carry the offending input text; use
// errors.Is to classify.
var (
	// ErrInvalidFormat reports input that is not valid decimal or hex.
	ErrInvalidFormat = errors.New("invalid number format")

	// ErrValueTooLarge reports a value that does not fit the register width.
	ErrValueTooLarge = errors.New("value too large for register")
)

// Value is a register value together with its declared bit width.
type Value struct {
	// Bits holds the raw register value.
	Bits uint64

	// Width is the declared register width in bits, 32 or 64.
	Width uint
}

// Parse parses a decimal or 0x-prefixed hexadecimal register value of the
// given bit width. Surrounding whitespace is ignored. Values with bits set
// at or above width are rejected, not truncated.
func Parse(text string, width uint) (Value, error) {
	s := strings.TrimSpace(text)

	var bits uint64
	var err error
	if hex, ok := strings.CutPrefix(s, "0x"); ok {
		bits, err = strconv.ParseUint(hex, 16, 64)
	} else {
		bits, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Syntactically a number, just not one that fits 64 bits.
			return Value{}, fmt.Errorf("%w: %q", ErrValueTooLarge, s)
		}
		return Value{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	if width < 64 && bits>>width != 0 {
		return Value{}, fmt.Errorf("%w: %#x exceeds %d bits", ErrValueTooLarge, bits, width)
	}

	return Value{Bits: bits, Width: width}, nil
}

// Extract returns the bits of value in the inclusive range [low, high],
// right-shifted to start at bit 0.
//
// The range is a static property of the decode tables, so an out-of-range
// request is a programmer error and panics.
func Extract(value uint64, low, high uint) uint64 {
	if low > high || high > 63 {
		panic(fmt.Sprintf("regval: invalid bit range [%d, %d]", low, high))
	}

	width := high - low + 1
	if width == 64 {
		return value
	}
	return (value >> low) & ((1 << width) - 1)
}
