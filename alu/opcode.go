package alu

// Opcode identifies a single ALU operation. The zero value is reserved so
// that a missing opcode in an instruction is detectable.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_ADD = Opcode(1)  // add
	OP_SUB = Opcode(2)  // sub
	OP_MUL = Opcode(3)  // mul
	OP_DIV = Opcode(4)  // div
	OP_AND = Opcode(5)  // and
	OP_OR  = Opcode(6)  // or
	OP_XOR = Opcode(7)  // xor
	OP_NOT = Opcode(8)  // not
	OP_SHL = Opcode(9)  // shl
	OP_SHR = Opcode(10) // shr
	OP_ROL = Opcode(11) // rol
	OP_ROR = Opcode(12) // ror
)

// OpClass is the family an opcode dispatches through.
type OpClass int

//go:generate go tool stringer -linecomment -type=OpClass
const (
	CLASS_ARITH = OpClass(0) // arith
	CLASS_LOGIC = OpClass(1) // logic
	CLASS_SHIFT = OpClass(2) // shift
)

// Valid returns true if the opcode names a known operation.
func (op Opcode) Valid() bool {
	return op >= OP_ADD && op <= OP_ROR
}

// Class returns the dispatch family of the opcode.
func (op Opcode) Class() OpClass {
	switch {
	case op <= OP_DIV:
		return CLASS_ARITH
	case op <= OP_NOT:
		return CLASS_LOGIC
	default:
		return CLASS_SHIFT
	}
}

// Unary returns true if the opcode takes a single operand.
func (op Opcode) Unary() bool {
	return op == OP_NOT || op.Class() == CLASS_SHIFT
}
