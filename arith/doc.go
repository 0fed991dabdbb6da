// Package arith implements binary arithmetic built entirely from logic
// gates: ripple-carry addition, two's-complement negation and subtraction,
// shift-and-add multiplication, and restoring division.
//
// Operations are stateless free functions over LSB-first bit vectors. Both
// operands of a binary operation must have the same width; padding foreign
// input to width is the caller's concern (see bitvec.Normalize). Every
// operation takes a trace sink; pass nil to skip recording.
//
// No function here uses a native arithmetic operator on operand bits. All
// bit manipulation flows through the gate package.
package arith
