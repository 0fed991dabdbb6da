package gate

// Bit is a single binary digit. Valid values are 0 and 1 only; producing
// any other value is a defect in the producer, not a runtime condition.
type Bit uint8

// And returns 1 only if both inputs are 1.
func And(a, b Bit) Bit {
	if a == 1 && b == 1 {
		return 1
	}
	return 0
}

// Or returns 1 if at least one input is 1.
func Or(a, b Bit) Bit {
	if a == 1 || b == 1 {
		return 1
	}
	return 0
}

// Not inverts the input.
func Not(a Bit) Bit {
	if a == 0 {
		return 1
	}
	return 0
}

// Xor returns 1 if the inputs differ.
// Constructed from the other gates: (a AND NOT b) OR (NOT a AND b).
func Xor(a, b Bit) Bit {
	return Or(And(a, Not(b)), And(Not(a), b))
}

// Nand is the complement of And.
func Nand(a, b Bit) Bit {
	return Not(And(a, b))
}

// Nor is the complement of Or.
func Nor(a, b Bit) Bit {
	return Not(Or(a, b))
}

// Xnor returns 1 if the inputs match.
func Xnor(a, b Bit) Bit {
	return Not(Xor(a, b))
}
