package alu

import (
	"errors"

	"github.com/ezrec/gatesim/bitvec"
	"github.com/ezrec/gatesim/trace"
)

// Instruction is a decoded operation for the control unit. OperandB may be
// nil; the ALU substitutes the all-zero vector.
type Instruction struct {
	Opcode   Opcode
	OperandA bitvec.Vector
	OperandB bitvec.Vector
}

// Control validates instructions and forwards them to the ALU. It is the
// only validation layer above the ALU.
type Control struct {
	ALU *ALU // The ALU this control unit commands.
}

// NewControl creates a control unit commanding the given ALU.
func NewControl(alu *ALU) (cu *Control) {
	cu = &Control{
		ALU: alu,
	}

	return
}

// Run decodes and executes a single instruction. A missing opcode or
// missing operand A fails before the ALU is invoked, so no flag or trace
// side effect occurs for an invalid instruction.
func (cu *Control) Run(in Instruction, tr *trace.Trace) (result bitvec.Vector, err error) {
	if in.Opcode == 0 {
		err = errors.Join(ErrInstructionInvalid, ErrOpcodeMissing)
		return
	}
	if in.OperandA == nil {
		err = errors.Join(ErrInstructionInvalid, ErrOperandMissing)
		return
	}
	result = cu.ALU.Execute(in.Opcode, in.OperandA, in.OperandB, tr)

	return
}
