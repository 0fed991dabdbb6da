package arith

import (
	"github.com/ezrec/gatesim/bitvec"
	"github.com/ezrec/gatesim/gate"
	"github.com/ezrec/gatesim/trace"
)

// Multiply computes the full 2N-bit product of two N-bit vectors by
// shift-and-add. Callers that need only N bits take the low half and treat
// any set bit in the high half as overflow.
func Multiply(a, b bitvec.Vector, tr *trace.Trace) (product bitvec.Vector) {
	width := len(a)

	tr.Add("Start Multiplication (Shift-and-Add)",
		trace.F("A", a), trace.F("B", b))

	// Product accumulator and working multiplicand are both 2N bits;
	// the multiplicand starts in the low half.
	product = bitvec.Zero(width * 2)
	working, _ := a.Normalize(width * 2)

	for i := range width {
		tr.Add("Check Multiplier Bit",
			trace.F("Bit", i),
			trace.F("Value", b[i]),
			trace.F("Product", product))

		if b[i] == 1 {
			product, _ = Add(product, working, nil)
			tr.Add("Add Shifted Multiplicand",
				trace.F("Multiplicand", working),
				trace.F("Product", product))
		}

		working = shiftLeft(working)
		tr.Add("Shift Multiplicand Left", trace.F("Multiplicand", working))
	}

	tr.Add("Multiplication Complete", trace.F("Product", product))

	return
}

// Divide computes quotient and remainder by restoring division over an
// (A,Q) register pair: A accumulates the remainder, Q starts as the
// dividend and collects quotient bits as the pair shifts left.
//
// A zero divisor is detected up front and short-circuits to zero quotient
// and remainder with a trace marker; the division is never attempted.
func Divide(a, b bitvec.Vector, tr *trace.Trace) (quotient, remainder bitvec.Vector) {
	width := len(a)

	tr.Add("Start Division (Restoring)",
		trace.F("A", a), trace.F("B", b))

	isZero := gate.Bit(1)
	for _, bit := range b {
		isZero = gate.And(isZero, gate.Not(bit))
	}
	if isZero == 1 {
		tr.Add("ERROR: Divide by Zero")
		quotient = bitvec.Zero(width)
		remainder = bitvec.Zero(width)
		return
	}

	// A carries one extra high bit so the trial subtraction's sign is an
	// exact A < M comparison even when the divisor uses the full width.
	acc := bitvec.Zero(width + 1) // A
	m, _ := b.Normalize(width + 1)
	q := a.Clone() // Q

	for i := range width {
		// Shift the combined (A,Q) pair left one bit; Q's high bit
		// moves into A's vacated low bit.
		qMSB := q.Sign()
		acc = shiftLeft(acc)
		q = shiftLeft(q)
		acc[0] = qMSB

		tr.Add("Shift Left (A,Q)",
			trace.F("Step", i+1),
			trace.F("A", acc), trace.F("Q", q))

		trial, _, _ := Subtract(acc, m, nil)
		tr.Add("Calculate A - M",
			trace.F("A", acc), trace.F("M", m), trace.F("Trial", trial))

		if trial.Sign() == 1 {
			// Negative: restore by leaving A unchanged.
			q[0] = 0
			tr.Add("A Negative: Q[0]=0, Restore A",
				trace.F("A", acc), trace.F("Q", q))
		} else {
			q[0] = 1
			acc = trial
			tr.Add("A Non-negative: Q[0]=1, Commit A",
				trace.F("A", acc), trace.F("Q", q))
		}
	}

	quotient = q
	remainder = acc[:width].Clone()
	tr.Add("Division Complete",
		trace.F("Quotient", quotient), trace.F("Remainder", remainder))

	return
}
