// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/facebookgo/ensure"
)

func TestStack(t *testing.T) {
	const n = 100

	s := NewStack()
	ensure.True(t, s.empty())
	ensure.True(t, s.Top() == nil)
	_, err := s.pop()
	ensure.DeepEqual(t, err, ErrInvalidStackOperation)

	for i := 0; i < n; i++ {
		s.push(Operand{(byte)(i)})
	}
	ensure.DeepEqual(t, s.Size(), n)

	_, err = s.peek(-1)
	ensure.NotNil(t, err)
	for i := 0; i < n; i++ {
		o, err := s.peek(i)
		ensure.Nil(t, err)
		ensure.DeepEqual(t, o, Operand{(byte)(n - i - 1)})
	}
	_, err = s.peek(n)
	ensure.NotNil(t, err)

	for i := 0; i < n; i++ {
		o, err := s.pop()
		ensure.Nil(t, err)
		ensure.DeepEqual(t, o, Operand{(byte)(n - i - 1)})
	}
	ensure.True(t, s.empty())
}

func TestNewStackCopies(t *testing.T) {
	item := Operand{1, 2}
	s := NewStack(item, Operand{3})
	item[0] = 9
	ensure.DeepEqual(t, s.Items(), ops([]byte{1, 2}, []byte{3}))

	items := s.Items()
	items[0][0] = 7
	ensure.DeepEqual(t, s.Top(), Operand{3})
	ensure.DeepEqual(t, s.Items()[0], Operand{1, 2})
	ensure.DeepEqual(t, s.String(), "[0102] [03]")
}

func TestStackResultsNotShared(t *testing.T) {
	s1 := NewStack()
	ensure.Nil(t, Evaluate(s1, mustAssemble(t, "'a' 'a' EQUAL"), nil, 0, 0))
	top := s1.Top()
	top[0] = 0
	ensure.DeepEqual(t, s1.Items(), ops([]byte{1}))

	s1.stk[0][0] = 0
	s2 := NewStack()
	ensure.Nil(t, Evaluate(s2, mustAssemble(t, "'a' 'a' EQUAL 'a' 'b' EQUAL"), nil, 0, 0))
	ensure.DeepEqual(t, s2.Items(), ops([]byte{1}, []byte{0}))
}

func TestStackShuffles(t *testing.T) {
	newStack := func() *Stack {
		return NewStack(Operand{1}, Operand{2}, Operand{3}, Operand{4}, Operand{5}, Operand{6})
	}
	tests := []struct {
		name string
		fn   func(s *Stack) error
		want []Operand
	}{
		{"dup1", func(s *Stack) error { return s.dupN(1) }, ops([]byte{1}, []byte{2}, []byte{3}, []byte{4}, []byte{5}, []byte{6}, []byte{6})},
		{"dup3", func(s *Stack) error { return s.dupN(3) }, ops([]byte{1}, []byte{2}, []byte{3}, []byte{4}, []byte{5}, []byte{6}, []byte{4}, []byte{5}, []byte{6})},
		{"over2", func(s *Stack) error { return s.overN(2) }, ops([]byte{1}, []byte{2}, []byte{3}, []byte{4}, []byte{5}, []byte{6}, []byte{3}, []byte{4})},
		{"rot1", func(s *Stack) error { return s.rotN(1) }, ops([]byte{1}, []byte{2}, []byte{3}, []byte{5}, []byte{6}, []byte{4})},
		{"rot2", func(s *Stack) error { return s.rotN(2) }, ops([]byte{3}, []byte{4}, []byte{5}, []byte{6}, []byte{1}, []byte{2})},
		{"swap2", func(s *Stack) error { return s.swapN(2) }, ops([]byte{1}, []byte{2}, []byte{5}, []byte{6}, []byte{3}, []byte{4})},
		{"nip", func(s *Stack) error { _, err := s.nip(1); return err }, ops([]byte{1}, []byte{2}, []byte{3}, []byte{4}, []byte{6})},
		{"pick", func(s *Stack) error { return s.pickN(5) }, ops([]byte{1}, []byte{2}, []byte{3}, []byte{4}, []byte{5}, []byte{6}, []byte{1})},
		{"roll", func(s *Stack) error { return s.rollN(5) }, ops([]byte{2}, []byte{3}, []byte{4}, []byte{5}, []byte{6}, []byte{1})},
		{"tuck", func(s *Stack) error { return s.tuck() }, ops([]byte{1}, []byte{2}, []byte{3}, []byte{4}, []byte{6}, []byte{5}, []byte{6})},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newStack()
			ensure.Nil(t, test.fn(s))
			ensure.DeepEqual(t, s.Items(), test.want)
		})
	}

	// underflow leaves the stack untouched
	for _, fn := range []func(s *Stack) error{
		func(s *Stack) error { return s.dupN(7) },
		func(s *Stack) error { return s.overN(4) },
		func(s *Stack) error { return s.rotN(3) },
		func(s *Stack) error { return s.swapN(4) },
		func(s *Stack) error { return s.pickN(6) },
		func(s *Stack) error { return s.rollN(6) },
	} {
		s := newStack()
		ensure.DeepEqual(t, fn(s), ErrInvalidStackOperation)
		ensure.DeepEqual(t, s.Size(), 6)
	}
}
