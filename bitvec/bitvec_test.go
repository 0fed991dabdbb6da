package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gatesim/gate"
)

func TestFromDecimal(t *testing.T) {
	assert := assert.New(t)

	// 42 = 0010 1010, LSB first.
	v, err := FromDecimal(42, 8)
	assert.NoError(err)
	assert.Equal(Vector{0, 1, 0, 1, 0, 1, 0, 0}, v)

	// Too wide for the width: truncated, not failed.
	v, err = FromDecimal(0x1ff, 8)
	assert.NoError(err)
	assert.Equal(uint(0xff), v.Decimal())

	_, err = FromDecimal(-1, 8)
	assert.ErrorIs(err, ErrNegative)

	_, err = FromDecimal(1, 0)
	assert.ErrorIs(err, ErrWidth)
}

func TestDecimal(t *testing.T) {
	assert := assert.New(t)

	// 1000 1101 (MSB first) = 141
	v := Vector{1, 0, 1, 1, 0, 0, 0, 1}
	assert.Equal(uint(141), v.Decimal())

	assert.Equal(uint(0), Zero(8).Decimal())
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for n := range 256 {
		v, err := FromDecimal(n, 8)
		assert.NoError(err)
		assert.Equal(uint(n), v.Decimal(), "n=%v", n)

		again, err := FromDecimal(int(v.Decimal()), 8)
		assert.NoError(err)
		assert.Equal(v, again)
	}
}

func TestNormalize(t *testing.T) {
	assert := assert.New(t)

	short := Vector{1, 1}
	padded, overflow := short.Normalize(8)
	assert.False(overflow)
	assert.Equal(Vector{1, 1, 0, 0, 0, 0, 0, 0}, padded)
	assert.Equal(uint(3), padded.Decimal())

	long := Vector{1, 0, 1, 0, 1, 0, 1, 0, 1, 1}
	cut, overflow := long.Normalize(8)
	assert.True(overflow)
	assert.Equal(8, len(cut))
	assert.Equal(Vector{1, 0, 1, 0, 1, 0, 1, 0}, cut)

	// Normalize never aliases its input.
	cut[0] = 0
	assert.Equal(gate.Bit(1), long[0])
}

func TestFormat(t *testing.T) {
	assert := assert.New(t)

	v, err := FromDecimal(30000, 16)
	assert.NoError(err)
	assert.Equal("0111 0101 0011 0000", v.Format(true))

	v, err = FromDecimal(5, 4)
	assert.NoError(err)
	assert.Equal("0101", v.Format(true))
	assert.Equal("1010", v.Format(false))

	v, err = FromDecimal(22, 8)
	assert.NoError(err)
	assert.Equal("0001 0110", v.String())
}
