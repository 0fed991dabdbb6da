package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ezrec/gatesim/alu"
	"github.com/ezrec/gatesim/bitvec"
	"github.com/ezrec/gatesim/gate"
	"github.com/ezrec/gatesim/logic"
	"github.com/ezrec/gatesim/trace"
)

// opcodeOf resolves an opcode mnemonic such as "add" or "xor".
func opcodeOf(name string) (op alu.Opcode, err error) {
	name = strings.ToLower(name)
	for op = alu.OP_ADD; op.Valid(); op++ {
		if op.String() == name {
			return
		}
	}

	err = fmt.Errorf("unknown operation: %v", name)
	return
}

// runOperation executes one ALU operation and prints the result, flags, and
// (optionally) the gate-level trace.
func runOperation(operation string, a, b, width int, traced, verbose bool) {
	op, err := opcodeOf(operation)
	if err != nil {
		log.Fatal(err)
	}

	va, err := bitvec.FromDecimal(a, width)
	if err != nil {
		log.Fatalf("-a %v: %v", a, err)
	}

	var vb bitvec.Vector
	if !op.Unary() {
		vb, err = bitvec.FromDecimal(b, width)
		if err != nil {
			log.Fatalf("-b %v: %v", b, err)
		}
	}

	unit := alu.New(width)
	unit.Verbose = verbose

	var tr *trace.Trace
	if traced {
		tr = trace.New()
	}

	control := alu.NewControl(unit)
	result, err := control.Run(alu.Instruction{
		Opcode:   op,
		OperandA: va,
		OperandB: vb,
	}, tr)
	if err != nil {
		log.Fatal(err)
	}

	if traced {
		fmt.Print(tr)
	}

	fmt.Printf("%v = %v (%v)\n", op, result, result.Decimal())
	fmt.Printf("flags: %v\n", &unit.Flags)
}

// parseAssignments reads "NAME=BIT" arguments into a variable assignment.
func parseAssignments(args []string) (values map[string]gate.Bit, err error) {
	values = map[string]gate.Bit{}

	for _, arg := range args {
		name, bit, found := strings.Cut(arg, "=")
		if !found {
			err = fmt.Errorf("expected NAME=BIT, got: %v", arg)
			return
		}

		switch bit {
		case "0":
			values[strings.ToUpper(name)] = 0
		case "1":
			values[strings.ToUpper(name)] = 1
		default:
			err = fmt.Errorf("%v: bit must be 0 or 1, got: %v", name, bit)
			return
		}
	}

	return
}

// runExpression evaluates a Boolean expression: a full truth table when no
// assignments are given, a single evaluation otherwise.
func runExpression(expression string, args []string, traced bool) {
	if len(args) == 0 {
		tbl, err := logic.TruthTable(expression)
		if err != nil {
			log.Fatalf("%v: %v", expression, err)
		}
		fmt.Print(tbl.Format())
		return
	}

	values, err := parseAssignments(args)
	if err != nil {
		log.Fatal(err)
	}

	out, tr := logic.Simulate(expression, values)
	if traced {
		fmt.Print(tr)
	}
	fmt.Printf("%v = %v\n", expression, out)
}

func main() {
	var operation string
	var a int
	var b int
	var width int
	var expression string
	var traced bool
	var verbose bool

	flag.StringVar(&operation, "op", "", "ALU operation (add, sub, mul, div, and, or, xor, not, shl, shr, rol, ror)")
	flag.IntVar(&a, "a", 0, "First operand")
	flag.IntVar(&b, "b", 0, "Second operand")
	flag.IntVar(&width, "w", 8, "Register width in bits")
	flag.StringVar(&expression, "e", "", "Boolean expression to evaluate")
	flag.BoolVar(&traced, "t", false, "Print the gate-level trace")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	switch {
	case len(operation) != 0 && len(expression) != 0:
		log.Fatalf("%v: -op and -e are mutually exclusive", os.Args[0])
	case len(operation) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
		runOperation(operation, a, b, width, traced, verbose)
	case len(expression) != 0:
		runExpression(expression, flag.Args(), traced)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
