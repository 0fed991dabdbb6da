package logic

import (
	"errors"

	"github.com/ezrec/gatesim/translate"
)

var f = translate.From

var (
	ErrNoVariables = errors.New(f("no variables in expression"))
)
