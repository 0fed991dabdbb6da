package logic

import (
	"github.com/ezrec/gatesim/gate"
	"github.com/ezrec/gatesim/trace"
)

// opName names an operator symbol for trace output.
func opName(token string) string {
	switch token {
	case "&":
		return "AND"
	case "|":
		return "OR"
	case "^":
		return "XOR"
	default:
		return "NOT"
	}
}

// Simulate evaluates an expression exactly as Evaluate does, recording one
// trace step per consumed token plus a final step carrying the output.
// The returned output always agrees with Evaluate for identical inputs.
func Simulate(expression string, values map[string]gate.Bit) (out gate.Bit, tr *trace.Trace) {
	tr = trace.New()

	tokens := Tokenize(expression)
	postfix := ToPostfix(tokens)

	tr.Add("Convert to Postfix Notation",
		trace.F("Infix", tokens), trace.F("Postfix", postfix))

	var stack Stack

	for _, token := range postfix {
		op, isOp := operators[token]

		if !isOp {
			value := bitOf(token, values)
			stack.Push(value)
			tr.Add("Load Variable",
				trace.F("Variable", token),
				trace.F("Value", value),
				trace.F("Stack", stack.Snapshot()))
			continue
		}

		if op.unary {
			operand, ok := stack.Pop()
			if !ok {
				continue
			}
			result := gate.Not(operand)
			stack.Push(result)
			tr.Add("Apply NOT",
				trace.F("Operand", operand),
				trace.F("Result", result),
				trace.F("Stack", stack.Snapshot()))
			continue
		}

		b, okB := stack.Pop()
		a, okA := stack.Pop()
		if !okA || !okB {
			continue
		}
		result := apply(token, a, b)
		stack.Push(result)
		tr.Add("Apply "+opName(token),
			trace.F("A", a),
			trace.F("B", b),
			trace.F("Result", result),
			trace.F("Stack", stack.Snapshot()))
	}

	// Top of stack, as in EvalPostfix, so malformed input agrees too.
	out, _ = stack.Peek()
	tr.Add("Circuit Output", trace.F("Output", out))

	return
}
