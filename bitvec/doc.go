// Package bitvec converts between unsigned integers and fixed-width,
// LSB-first bit vectors, and formats vectors for display.
//
// A Vector of width N stores bit i at index i, so index 0 is the least
// significant digit. Every vector entering or leaving an arithmetic or ALU
// operation has exactly its declared width; Normalize pads or truncates
// foreign input before use.
package bitvec
