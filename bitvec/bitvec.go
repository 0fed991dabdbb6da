package bitvec

import (
	"slices"
	"strings"

	"github.com/ezrec/gatesim/gate"
)

// Vector is a fixed-width binary value, least significant bit first.
type Vector []gate.Bit

// Zero returns an all-zero vector of the given width.
func Zero(width int) Vector {
	return make(Vector, width)
}

// FromDecimal converts a non-negative decimal value to an LSB-first vector
// of the given width. Values too wide for the width are truncated.
// Negative input is a domain error; it is never clamped.
func FromDecimal(n int, width int) (v Vector, err error) {
	if width <= 0 {
		err = ErrWidth
		return
	}
	if n < 0 {
		// Negative values are expressed via 2's complement by the
		// arithmetic engine, not by the codec.
		err = ErrNegative
		return
	}

	v = Zero(width)
	for i := 0; i < width && n > 0; i++ {
		v[i] = gate.Bit(n % 2)
		n /= 2
	}

	return
}

// Decimal converts the vector to its unsigned decimal value.
func (v Vector) Decimal() (n uint) {
	for i := len(v) - 1; i >= 0; i-- {
		n *= 2
		if v[i] == 1 {
			n++
		}
	}
	return
}

// Sign returns the most significant bit.
func (v Vector) Sign() gate.Bit {
	return v[len(v)-1]
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Normalize pads or truncates the vector to the given width. Padding adds
// zero bits on the high end. Truncation reports overflow rather than failing,
// so the arithmetic pipeline stays total.
func (v Vector) Normalize(width int) (out Vector, overflow bool) {
	if len(v) > width {
		return v[:width].Clone(), true
	}

	out = Zero(width)
	copy(out, v)
	return
}

// Format renders the vector as a digit string, grouped into 4-digit
// clusters when longer than 4 digits. msbFirst renders the most
// significant bit on the left, the conventional reading order.
func (v Vector) Format(msbFirst bool) string {
	digits := make([]byte, len(v))
	for i, bit := range v {
		pos := i
		if msbFirst {
			pos = len(v) - 1 - i
		}
		digits[pos] = '0' + byte(bit)
	}

	if len(digits) <= 4 {
		return string(digits)
	}

	parts := []string{}
	for i := 0; i < len(digits); i += 4 {
		end := min(i+4, len(digits))
		parts = append(parts, string(digits[i:end]))
	}

	return strings.Join(parts, " ")
}

// String renders the vector MSB-first.
func (v Vector) String() string {
	return v.Format(true)
}
