package alu

import (
	"errors"

	"github.com/ezrec/gatesim/translate"
)

var f = translate.From

var (
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOperandMissing     = errors.New(f("operand missing"))
)
