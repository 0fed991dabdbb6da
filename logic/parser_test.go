package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/gatesim/gate"
)

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr   string
		tokens []string
	}){
		{"A AND B", []string{"A", "&", "B"}},
		{"a and b", []string{"A", "&", "B"}},
		{"(A OR B) AND NOT C", []string{"(", "A", "|", "B", ")", "&", "!", "C"}},
		{"A XOR B", []string{"A", "^", "B"}},
		{"A & ~B", []string{"A", "&", "~", "B"}},
		{"A | 1", []string{"A", "|", "1"}},
		{"IN AND OUT", []string{"IN", "&", "OUT"}},
	}

	for _, entry := range table {
		assert.Equal(entry.tokens, Tokenize(entry.expr), entry.expr)
	}
}

func TestVariables(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]string{"A", "B"}, Variables(Tokenize("B AND A AND B")))
	assert.Equal([]string{"A", "B", "C"}, Variables(Tokenize("(A OR B) AND NOT C")))
	assert.Empty(Variables(Tokenize("1 AND 0")))
}

func TestToPostfix(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr    string
		postfix []string
	}){
		{"A AND B", []string{"A", "B", "&"}},
		{"A & B | C", []string{"A", "B", "&", "C", "|"}},
		{"A | B & C", []string{"A", "B", "C", "&", "|"}},
		{"(A | B) & C", []string{"A", "B", "|", "C", "&"}},
		{"NOT A AND B", []string{"A", "!", "B", "&"}},
		{"A XOR B OR C", []string{"A", "B", "^", "C", "|"}},
	}

	for _, entry := range table {
		assert.Equal(entry.postfix, ToPostfix(Tokenize(entry.expr)), entry.expr)
	}
}

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		expr   string
		values map[string]gate.Bit
		out    gate.Bit
	}){
		{"A AND B", map[string]gate.Bit{"A": 1, "B": 1}, 1},
		{"A AND B", map[string]gate.Bit{"A": 1, "B": 0}, 0},
		{"(A OR B) AND NOT C", map[string]gate.Bit{"A": 1, "B": 0, "C": 0}, 1},
		{"(A OR B) AND NOT C", map[string]gate.Bit{"A": 1, "B": 0, "C": 1}, 0},
		{"A XOR B", map[string]gate.Bit{"A": 1, "B": 1}, 0},
		{"A XOR B", map[string]gate.Bit{"A": 0, "B": 1}, 1},
		{"NOT A", map[string]gate.Bit{"A": 0}, 1},
		// Unbound variables default to 0.
		{"A OR B", map[string]gate.Bit{"A": 0}, 0},
		{"NOT B", map[string]gate.Bit{}, 1},
		// Constants.
		{"A AND 1", map[string]gate.Bit{"A": 1}, 1},
		{"A OR 0", map[string]gate.Bit{"A": 0}, 0},
	}

	for _, entry := range table {
		assert.Equal(entry.out, Evaluate(entry.expr, entry.values),
			"%v %v", entry.expr, entry.values)
	}
}

func TestEvaluateMalformed(t *testing.T) {
	assert := assert.New(t)

	// Two operands and no operator leave both on the stack; the result is
	// the top entry, the most recently loaded value.
	assert.Equal(gate.Bit(0), Evaluate("A B", map[string]gate.Bit{"A": 1, "B": 0}))
	assert.Equal(gate.Bit(1), Evaluate("A B", map[string]gate.Bit{"A": 0, "B": 1}))

	out, _ := Simulate("A B", map[string]gate.Bit{"A": 1, "B": 0})
	assert.Equal(gate.Bit(0), out)
}

func TestEvaluateStateless(t *testing.T) {
	assert := assert.New(t)

	// Repeated evaluation of the same expression is stable.
	values := map[string]gate.Bit{"A": 1, "B": 0, "C": 0}
	for range 3 {
		assert.Equal(gate.Bit(1), Evaluate("(A OR B) AND NOT C", values))
	}
}
