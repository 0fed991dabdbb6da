package arith

import (
	"github.com/ezrec/gatesim/bitvec"
	"github.com/ezrec/gatesim/gate"
	"github.com/ezrec/gatesim/trace"
)

// shiftLeft shifts a vector up one position, filling bit 0 with zero.
// The bit shifted out past the top is dropped.
func shiftLeft(v bitvec.Vector) (out bitvec.Vector) {
	out = bitvec.Zero(len(v))
	copy(out[1:], v)
	return
}

// addCarry chains full adders from bit 0 upward with an explicit initial
// carry, tracing each stage.
func addCarry(a, b bitvec.Vector, carry gate.Bit, tr *trace.Trace) (sum bitvec.Vector, carryOut gate.Bit) {
	sum = bitvec.Zero(len(a))

	for i := range a {
		s, cout := gate.FullAdder(a[i], b[i], carry)
		sum[i] = s

		tr.Add("Full Adder",
			trace.F("Bit", i),
			trace.F("A", a[i]), trace.F("B", b[i]),
			trace.F("CarryIn", carry),
			trace.F("Sum", s), trace.F("CarryOut", cout))

		carry = cout
	}

	carryOut = carry
	return
}

// Add sums two equal-width vectors with a chain of full adders, carry
// propagating from bit 0 upward. The final carry out is returned
// separately; it is the unsigned overflow indicator, not part of the sum.
func Add(a, b bitvec.Vector, tr *trace.Trace) (sum bitvec.Vector, carryOut gate.Bit) {
	tr.Add("Start Ripple Carry Adder",
		trace.F("A", a), trace.F("B", b), trace.F("Width", len(a)))

	sum, carryOut = addCarry(a, b, 0, tr)

	tr.Add("Addition Complete",
		trace.F("Sum", sum), trace.F("Carry", carryOut))

	return
}

// Negate computes the two's complement: invert every bit, then add one.
// The carry out of the internal add is discarded.
func Negate(a bitvec.Vector, tr *trace.Trace) (out bitvec.Vector) {
	tr.Add("Start 2's Complement", trace.F("Input", a))

	inverted := bitvec.Zero(len(a))
	for i := range a {
		inverted[i] = gate.Not(a[i])
	}

	tr.Add("Invert All Bits (1's Complement)", trace.F("Result", inverted))

	one := bitvec.Zero(len(a))
	one[0] = 1
	out, _ = Add(inverted, one, nil)

	tr.Add("Add 1", trace.F("Result", out))

	return
}

// Subtract computes a-b as a single adder chain a + NOT(b) with carry in 1.
//
// The carry in completes the 2's complement of b inside the chain, so the
// chain's carry out is the true inverted borrow even when b is zero (a
// separate negate-then-add would wrap b=0 and lose that carry). Carry out
// 1 means a >= b. Signed overflow occurs exactly when the operands have
// different signs and the result's sign matches the subtrahend's.
func Subtract(a, b bitvec.Vector, tr *trace.Trace) (diff bitvec.Vector, borrow, overflow gate.Bit) {
	tr.Add("Start Subtraction (A - B)",
		trace.F("A", a), trace.F("B", b))

	inverted := bitvec.Zero(len(b))
	for i := range b {
		inverted[i] = gate.Not(b[i])
	}
	tr.Add("1's Complement of B", trace.F("Comp", inverted))

	diff, carryOut := addCarry(a, inverted, 1, tr)

	borrow = gate.Not(carryOut)
	overflow = gate.And(
		gate.Xor(a.Sign(), b.Sign()),
		gate.Xnor(diff.Sign(), b.Sign()),
	)

	tr.Add("Subtraction Complete",
		trace.F("Diff", diff),
		trace.F("Borrow", borrow),
		trace.F("Overflow", overflow))

	return
}
