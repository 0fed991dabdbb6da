package gate

// HalfAdder adds two bits.
//
//	sum   = a XOR b
//	carry = a AND b
func HalfAdder(a, b Bit) (sum, carry Bit) {
	sum = Xor(a, b)
	carry = And(a, b)
	return
}

// FullAdder adds two bits plus a carry input using two half adders.
// The carry out is the OR of the two intermediate carries.
func FullAdder(a, b, carryIn Bit) (sum, carryOut Bit) {
	s1, c1 := HalfAdder(a, b)
	sum, c2 := HalfAdder(s1, carryIn)
	carryOut = Or(c1, c2)
	return
}

// Mux2 is a 2-to-1 multiplexer: sel=0 selects a, sel=1 selects b.
func Mux2(a, b, sel Bit) Bit {
	return Or(And(a, Not(sel)), And(b, sel))
}
