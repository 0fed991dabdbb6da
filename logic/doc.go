// Package logic parses and evaluates Boolean expressions over named
// variables, producing truth tables and step-by-step evaluation traces.
//
// Supported operators, precedence high to low:
//
//	NOT (!, ~, NOT)
//	AND (&, AND)
//	OR, XOR (|, OR, ^, XOR)
//
// Expressions are re-derived on every call: tokenization, infix-to-postfix
// conversion, and postfix evaluation keep no state between calls. Variable
// evaluation flows through the gate package, the same primitives the
// arithmetic engine is built from.
//
// An unbound variable evaluates to 0.
package logic
