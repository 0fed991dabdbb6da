// Package alu implements the arithmetic logic unit and its control unit.
//
// The ALU accepts an opcode plus one or two operand bit vectors, dispatches
// to the gate-level arithmetic engine or to direct gate and shift circuits,
// and recomputes the full flag register (Zero, Carry, Overflow, Sign,
// Parity) from every result. The control unit is the ALU's only caller
// contract: it validates an instruction before the ALU ever runs.
//
// Note that the Parity flag uses the odd convention: 1 means an odd number
// of set bits in the result.
package alu
