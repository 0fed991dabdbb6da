package alu

import (
	"fmt"

	"github.com/ezrec/gatesim/bitvec"
	"github.com/ezrec/gatesim/gate"
)

// Flags is the CPU-style status register. All five flags are recomputed
// from scratch after every ALU execution; they are never partially updated
// or carried over from a previous operation.
type Flags struct {
	Zero     gate.Bit // Result is all zeros.
	Carry    gate.Bit // Carry or borrow out of the operation.
	Overflow gate.Bit // Signed (2's complement) overflow.
	Sign     gate.Bit // MSB of the result.
	Parity   gate.Bit // Odd parity: 1 if the result has an odd number of 1s.
}

// Reset clears all flags.
func (fl *Flags) Reset() {
	*fl = Flags{}
}

// Update derives the flags from a completed result. Carry and overflow are
// taken verbatim from the dispatch step; Zero and Parity are gate chains
// over the result bits.
func (fl *Flags) Update(result bitvec.Vector, carry, overflow gate.Bit) {
	fl.Reset()

	isZero := gate.Bit(1)
	parity := gate.Bit(0)
	for _, bit := range result {
		isZero = gate.And(isZero, gate.Not(bit))
		parity = gate.Xor(parity, bit)
	}

	fl.Zero = isZero
	fl.Carry = carry
	fl.Overflow = overflow
	fl.Sign = result.Sign()
	fl.Parity = parity
}

// Map returns the flags as a name to bit mapping for external display.
func (fl Flags) Map() map[string]gate.Bit {
	return map[string]gate.Bit{
		"Zero":     fl.Zero,
		"Carry":    fl.Carry,
		"Overflow": fl.Overflow,
		"Sign":     fl.Sign,
		"Parity":   fl.Parity,
	}
}

// String renders the flags in register-dump order.
func (fl Flags) String() string {
	return fmt.Sprintf("Z=%v C=%v V=%v S=%v P=%v",
		fl.Zero, fl.Carry, fl.Overflow, fl.Sign, fl.Parity)
}
