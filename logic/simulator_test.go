package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/gatesim/gate"
)

func TestSimulate(t *testing.T) {
	assert := assert.New(t)

	out, tr := Simulate("(A OR B) AND NOT C",
		map[string]gate.Bit{"A": 1, "B": 0, "C": 0})

	assert.Equal(gate.Bit(1), out)
	require.NotNil(t, tr)

	// Postfix is A B | C ! &: one conversion step, six token steps, one
	// output step.
	require.Len(t, tr.Steps, 8)
	assert.Equal("Convert to Postfix Notation", tr.Steps[0].Description)
	assert.Equal("Load Variable", tr.Steps[1].Description)
	assert.Equal("Load Variable", tr.Steps[2].Description)
	assert.Equal("Apply OR", tr.Steps[3].Description)
	assert.Equal("Load Variable", tr.Steps[4].Description)
	assert.Equal("Apply NOT", tr.Steps[5].Description)
	assert.Equal("Apply AND", tr.Steps[6].Description)
	assert.Equal("Circuit Output", tr.Steps[7].Description)

	value, ok := tr.Steps[7].Get("Output")
	require.True(t, ok)
	assert.Equal("1", value)
}

func TestSimulateStackSnapshots(t *testing.T) {
	assert := assert.New(t)

	_, tr := Simulate("A AND B", map[string]gate.Bit{"A": 1, "B": 1})
	require.Len(t, tr.Steps, 5)

	stack, ok := tr.Steps[2].Get("Stack")
	require.True(t, ok)
	assert.Equal("[1 1]", stack)

	stack, ok = tr.Steps[3].Get("Stack")
	require.True(t, ok)
	assert.Equal("[1]", stack)
}

func TestSimulateAgreesWithEvaluate(t *testing.T) {
	assert := assert.New(t)

	expressions := []string{
		"A AND B",
		"A OR B",
		"A XOR B",
		"NOT A",
		"(A OR B) AND NOT C",
		"A AND B OR C",
		"A XOR B XOR C",
		"NOT (A AND B) OR C",
	}

	for _, expr := range expressions {
		names := Variables(Tokenize(expr))
		count := 1 << len(names)

		for i := range count {
			values := map[string]gate.Bit{}
			for j, name := range names {
				values[name] = gate.Bit((i >> (len(names) - 1 - j)) & 1)
			}

			out, _ := Simulate(expr, values)
			assert.Equal(Evaluate(expr, values), out, "%v %v", expr, values)
		}
	}
}
