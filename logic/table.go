package logic

import (
	"fmt"
	"strings"

	"github.com/ezrec/gatesim/gate"
)

// Row is one truth table assignment and its output.
type Row struct {
	Inputs []gate.Bit // Values in Variables order.
	Output gate.Bit
}

// Table is a complete truth table for an expression.
type Table struct {
	Expression string
	Variables  []string // Sorted distinct variable names.
	Rows       []Row    // 2^n rows in binary enumeration order.
}

// TruthTable enumerates every assignment of the expression's variables and
// records the output for each. Assignments are enumerated in binary order
// with the first sorted variable in the most significant position. An
// expression without variables is an error, not a one-row table.
func TruthTable(expression string) (tbl *Table, err error) {
	tokens := Tokenize(expression)
	names := Variables(tokens)

	if len(names) == 0 {
		err = ErrNoVariables
		return
	}

	postfix := ToPostfix(tokens)

	tbl = &Table{
		Expression: expression,
		Variables:  names,
	}

	count := 1 << len(names)
	for i := range count {
		values := map[string]gate.Bit{}
		inputs := make([]gate.Bit, len(names))

		for j, name := range names {
			bit := gate.Bit((i >> (len(names) - 1 - j)) & 1)
			values[name] = bit
			inputs[j] = bit
		}

		tbl.Rows = append(tbl.Rows, Row{
			Inputs: inputs,
			Output: EvalPostfix(postfix, values),
		})
	}

	return
}

// Format renders the table with a header of variable names joined by " | "
// followed by "OUT", and one row per assignment.
func (tbl *Table) Format() string {
	var sb strings.Builder

	header := strings.Join(tbl.Variables, " | ") + " | OUT"
	sb.WriteString(header + "\n")
	sb.WriteString(strings.Repeat("-", len(header)) + "\n")

	for _, row := range tbl.Rows {
		cells := make([]string, len(row.Inputs))
		for n, bit := range row.Inputs {
			cells[n] = fmt.Sprintf("%v", bit)
		}
		fmt.Fprintf(&sb, "%v |  %v\n", strings.Join(cells, " | "), row.Output)
	}

	return sb.String()
}
