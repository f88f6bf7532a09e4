// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/hex"
	"strings"
)

// Operand represents stack operand when interpretting script
type Operand []byte

// Stack is used when interpretting script. The last element is the top.
// A Stack must not be shared by two concurrent evaluations.
type Stack struct {
	stk []Operand
}

// NewStack creates a stack holding the given elements, bottom first.
func NewStack(items ...Operand) *Stack {
	stk := make([]Operand, 0, len(items))
	for _, item := range items {
		stk = append(stk, copyOperand(item))
	}
	return &Stack{stk}
}

// Size returns the number of elements on the stack.
func (s *Stack) Size() int {
	return len(s.stk)
}

// Items returns a copy of the stack elements, bottom first.
func (s *Stack) Items() []Operand {
	items := make([]Operand, len(s.stk))
	for i, o := range s.stk {
		items[i] = copyOperand(o)
	}
	return items
}

// Top returns a copy of the top element, or nil on an empty stack.
func (s *Stack) Top() Operand {
	o, err := s.peek(0)
	if err != nil {
		return nil
	}
	return copyOperand(o)
}

func (s *Stack) String() string {
	str := make([]string, len(s.stk))
	for i, o := range s.stk {
		str[i] = "[" + hex.EncodeToString(o) + "]"
	}
	return strings.Join(str, " ")
}

func (s *Stack) empty() bool {
	return len(s.stk) == 0
}

func (s *Stack) push(o Operand) {
	s.stk = append(s.stk, o)
}

func (s *Stack) pushNum(n ScriptNum) {
	s.push(n.Bytes())
}

func (s *Stack) pushBool(v bool) {
	if v {
		s.push(Operand{1})
	} else {
		s.push(Operand{0})
	}
}

func (s *Stack) pop() (Operand, error) {
	return s.nip(0)
}

func (s *Stack) popNum() (ScriptNum, error) {
	o, err := s.pop()
	if err != nil {
		return 0, err
	}
	return MakeScriptNum(o)
}

// peek returns the idx-th element counting from the top, which is 0.
func (s *Stack) peek(idx int) (Operand, error) {
	stackLen := len(s.stk)
	if idx < 0 || idx >= stackLen {
		return nil, ErrInvalidStackOperation
	}
	return s.stk[stackLen-idx-1], nil
}

func (s *Stack) peekNum(idx int) (ScriptNum, error) {
	o, err := s.peek(idx)
	if err != nil {
		return 0, err
	}
	return MakeScriptNum(o)
}

// nip removes and returns the idx-th element counting from the top.
func (s *Stack) nip(idx int) (Operand, error) {
	stackLen := len(s.stk)
	if idx < 0 || idx >= stackLen {
		return nil, ErrInvalidStackOperation
	}
	pos := stackLen - idx - 1
	o := s.stk[pos]
	copy(s.stk[pos:], s.stk[pos+1:])
	s.stk[stackLen-1] = nil
	s.stk = s.stk[:stackLen-1]
	return o, nil
}

// dupN duplicates the top n elements, keeping their order.
func (s *Stack) dupN(n int) error {
	if n < 1 || len(s.stk) < n {
		return ErrInvalidStackOperation
	}
	for i := n; i > 0; i-- {
		o, _ := s.peek(n - 1)
		s.push(copyOperand(o))
	}
	return nil
}

// overN copies the n elements found n elements below the top onto the top.
func (s *Stack) overN(n int) error {
	if n < 1 || len(s.stk) < 2*n {
		return ErrInvalidStackOperation
	}
	for i := n; i > 0; i-- {
		o, _ := s.peek(2*n - 1)
		s.push(copyOperand(o))
	}
	return nil
}

// rotN moves the n elements found 2n below the top onto the top.
func (s *Stack) rotN(n int) error {
	if n < 1 || len(s.stk) < 3*n {
		return ErrInvalidStackOperation
	}
	for i := n; i > 0; i-- {
		o, _ := s.nip(3*n - 1)
		s.push(o)
	}
	return nil
}

// swapN swaps the top n elements with the n elements below them.
func (s *Stack) swapN(n int) error {
	if n < 1 || len(s.stk) < 2*n {
		return ErrInvalidStackOperation
	}
	for i := n; i > 0; i-- {
		o, _ := s.nip(2*n - 1)
		s.push(o)
	}
	return nil
}

// pickN copies the idx-th element onto the top.
func (s *Stack) pickN(idx int) error {
	o, err := s.peek(idx)
	if err != nil {
		return err
	}
	s.push(copyOperand(o))
	return nil
}

// rollN moves the idx-th element onto the top.
func (s *Stack) rollN(idx int) error {
	o, err := s.nip(idx)
	if err != nil {
		return err
	}
	s.push(o)
	return nil
}

// tuck copies the top element below the second one.
func (s *Stack) tuck() error {
	if len(s.stk) < 2 {
		return ErrInvalidStackOperation
	}
	top, _ := s.pop()
	second, _ := s.pop()
	s.push(copyOperand(top))
	s.push(second)
	s.push(top)
	return nil
}

func copyOperand(o Operand) Operand {
	c := make(Operand, len(o))
	copy(c, o)
	return c
}
