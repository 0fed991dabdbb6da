package logic

import (
	"slices"

	"github.com/ezrec/gatesim/gate"
)

// Stack is the value stack for postfix evaluation.
type Stack struct {
	Data []gate.Bit
}

func (s *Stack) Push(value gate.Bit) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value gate.Bit, ok bool) {
	value, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Peek() (value gate.Bit, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

// Snapshot returns a copy of the stack contents, bottom first.
func (s *Stack) Snapshot() []gate.Bit {
	return slices.Clone(s.Data)
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
