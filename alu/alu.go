package alu

import (
	"log"

	"github.com/ezrec/gatesim/arith"
	"github.com/ezrec/gatesim/bitvec"
	"github.com/ezrec/gatesim/gate"
	"github.com/ezrec/gatesim/trace"
)

// ALU executes single operations at a fixed bit width and owns the flag
// register. Instances are independent; separate callers may each use their
// own ALU without coordination.
type ALU struct {
	Verbose bool // Set to enable verbose logging.

	Width int   // Operand and result width in bits.
	Flags Flags // Status flags, overwritten by every Execute.
}

// New creates an ALU of the given bit width.
func New(width int) (alu *ALU) {
	alu = &ALU{
		Width: width,
	}

	return
}

// Execute runs one operation and returns the result vector, updating the
// flag register as a side effect. Operands are normalized to the ALU width
// first; a nil b stands in for the all-zero vector on unary opcodes.
//
// An unrecognized opcode is a soft failure: the result is all-zero, the
// flags derive from that zero result, and the trace records the opcode.
func (alu *ALU) Execute(op Opcode, a, b bitvec.Vector, tr *trace.Trace) (result bitvec.Vector) {
	tr.Reset()

	a, aover := a.Normalize(alu.Width)
	if b == nil {
		b = bitvec.Zero(alu.Width)
	}
	b, bover := b.Normalize(alu.Width)

	tr.Add("ALU Execution Start",
		trace.F("Opcode", op), trace.F("A", a), trace.F("B", b))
	if aover || bover {
		tr.Add("Operand Truncated to Width", trace.F("Width", alu.Width))
	}

	result = bitvec.Zero(alu.Width)
	var carry, overflow gate.Bit

	switch op {
	case OP_ADD:
		result, carry = arith.Add(a, b, tr)
		// Signed overflow: operands share a sign, result's differs.
		overflow = gate.And(
			gate.Xnor(a.Sign(), b.Sign()),
			gate.Xor(a.Sign(), result.Sign()),
		)

	case OP_SUB:
		// Borrow feeds the Carry flag.
		result, carry, overflow = arith.Subtract(a, b, tr)

	case OP_MUL:
		product := arith.Multiply(a, b, tr)
		result = product[:alu.Width].Clone()
		// Any high-half bit is multiplication overflow.
		for _, bit := range product[alu.Width:] {
			overflow = gate.Or(overflow, bit)
		}

	case OP_DIV:
		// The remainder is observable only through the trace.
		result, _ = arith.Divide(a, b, tr)

	case OP_AND:
		for i := range result {
			result[i] = gate.And(a[i], b[i])
		}
		tr.Add("Logical AND", trace.F("Result", result))

	case OP_OR:
		for i := range result {
			result[i] = gate.Or(a[i], b[i])
		}
		tr.Add("Logical OR", trace.F("Result", result))

	case OP_XOR:
		for i := range result {
			result[i] = gate.Xor(a[i], b[i])
		}
		tr.Add("Logical XOR", trace.F("Result", result))

	case OP_NOT:
		for i := range result {
			result[i] = gate.Not(a[i])
		}
		tr.Add("Logical NOT", trace.F("Result", result))

	case OP_SHL:
		carry = a.Sign()
		copy(result[1:], a)
		tr.Add("Shift Left", trace.F("Result", result), trace.F("Carry", carry))

	case OP_SHR:
		carry = a[0]
		copy(result, a[1:])
		tr.Add("Shift Right", trace.F("Result", result), trace.F("Carry", carry))

	case OP_ROL:
		carry = a.Sign()
		copy(result[1:], a)
		result[0] = carry
		tr.Add("Rotate Left", trace.F("Result", result), trace.F("Carry", carry))

	case OP_ROR:
		carry = a[0]
		copy(result, a[1:])
		result[alu.Width-1] = carry
		tr.Add("Rotate Right", trace.F("Result", result), trace.F("Carry", carry))

	default:
		tr.Add("ERROR: Unknown Opcode", trace.F("Opcode", int(op)))
	}

	alu.Flags.Update(result, carry, overflow)

	tr.Add("ALU Execution Complete",
		trace.F("Result", result), trace.F("Flags", alu.Flags))

	if alu.Verbose {
		log.Printf("alu: %v a:%v b:%v -> %v [%v]", op, a, b, result, alu.Flags)
	}

	return
}
