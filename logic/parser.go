package logic

import (
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/ezrec/gatesim/gate"
)

// opInfo describes one operator symbol.
type opInfo struct {
	precedence int
	unary      bool
}

// operators maps post-substitution operator symbols to their properties.
var operators = map[string]opInfo{
	"!": {precedence: 3, unary: true},
	"~": {precedence: 3, unary: true},
	"&": {precedence: 2},
	"|": {precedence: 1},
	"^": {precedence: 1},
}

// wordOps substitutes word-form operators for their single-character
// symbols. XOR must be replaced before OR.
var wordOps = [](struct{ word, symbol string }){
	{"XOR", "^"},
	{"AND", "&"},
	{"OR", "|"},
	{"NOT", "!"},
}

// tokenPattern matches a variable name, an operator or parenthesis, or a
// run of digits.
var tokenPattern = regexp.MustCompile(`[A-Z]+|[&|^!~()]|[0-9]+`)

// Tokenize splits an expression into variable, operator, parenthesis, and
// constant tokens. The expression is case-folded to uppercase first, so
// variable names and word operators are case-insensitive.
func Tokenize(expression string) (tokens []string) {
	expr := strings.ToUpper(expression)
	for _, op := range wordOps {
		expr = strings.ReplaceAll(expr, op.word, op.symbol)
	}

	return tokenPattern.FindAllString(expr, -1)
}

// isVariable returns true for a token that names a variable.
func isVariable(token string) bool {
	_, isOp := operators[token]
	return !isOp && token[0] >= 'A' && token[0] <= 'Z'
}

// Variables returns the sorted set of distinct variable names in a token
// sequence.
func Variables(tokens []string) (names []string) {
	set := map[string]struct{}{}
	for _, token := range tokens {
		if isVariable(token) {
			set[token] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(set))
}

// ToPostfix converts an infix token sequence to postfix (reverse Polish)
// notation with the shunting-yard algorithm. Operands pass straight
// through; operators drain the stack of anything with greater or equal
// precedence before being pushed.
func ToPostfix(tokens []string) (postfix []string) {
	var stack []string

	top := func() string { return stack[len(stack)-1] }
	pop := func() (token string) {
		token = top()
		stack = stack[:len(stack)-1]
		return
	}

	for _, token := range tokens {
		op, isOp := operators[token]

		switch {
		case token == "(":
			stack = append(stack, token)
		case token == ")":
			for len(stack) > 0 && top() != "(" {
				postfix = append(postfix, pop())
			}
			if len(stack) > 0 {
				pop() // discard the "("
			}
		case isOp:
			for len(stack) > 0 && top() != "(" &&
				operators[top()].precedence >= op.precedence {
				postfix = append(postfix, pop())
			}
			stack = append(stack, token)
		default:
			postfix = append(postfix, token)
		}
	}

	for len(stack) > 0 {
		postfix = append(postfix, pop())
	}

	return
}

// bitOf evaluates a single operand token: a bound variable, an unbound
// variable (which defaults to 0), or a constant.
func bitOf(token string, values map[string]gate.Bit) gate.Bit {
	if isVariable(token) {
		return values[token]
	}
	// Constant: any nonzero digit run is 1.
	if strings.Trim(token, "0") == "" {
		return 0
	}
	return 1
}

// apply computes one binary operator application through the gate library.
func apply(token string, a, b gate.Bit) gate.Bit {
	switch token {
	case "&":
		return gate.And(a, b)
	case "|":
		return gate.Or(a, b)
	default: // "^"
		return gate.Xor(a, b)
	}
}

// EvalPostfix evaluates a postfix token sequence against a variable
// assignment. A unary operator pops one operand; a binary operator pops
// two, the first popped being the right-hand operand.
//
// A malformed expression can finish with more than one stack entry; the
// result is then the top of the stack, the most recently computed value.
func EvalPostfix(postfix []string, values map[string]gate.Bit) (out gate.Bit) {
	var stack Stack

	for _, token := range postfix {
		op, isOp := operators[token]

		if !isOp {
			stack.Push(bitOf(token, values))
			continue
		}

		if op.unary {
			if operand, ok := stack.Pop(); ok {
				stack.Push(gate.Not(operand))
			}
			continue
		}

		b, okB := stack.Pop()
		a, okA := stack.Pop()
		if okA && okB {
			stack.Push(apply(token, a, b))
		}
	}

	out, _ = stack.Peek()

	return
}

// Evaluate parses and evaluates a Boolean expression against a variable
// assignment. Unbound variables evaluate to 0.
func Evaluate(expression string, values map[string]gate.Bit) gate.Bit {
	return EvalPostfix(ToPostfix(Tokenize(expression)), values)
}
