// Package gate implements the primitive Boolean gates and the small
// combinational circuits built from them.
//
// Everything downstream (the arithmetic engine, the ALU, the expression
// evaluator) is constructed exclusively from these gates. No function in
// this package uses a native arithmetic or bitwise operator on its inputs.
//
// Inputs are single bits. Callers are responsible for only ever passing 0
// or 1; the gates are pure functions with no error path.
package gate
