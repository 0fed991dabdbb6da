package bitvec

import (
	"errors"

	"github.com/ezrec/gatesim/translate"
)

var f = translate.From

var (
	ErrNegative = errors.New(f("negative value"))
	ErrWidth    = errors.New(f("width not positive"))
)
