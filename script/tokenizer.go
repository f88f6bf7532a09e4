// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Tokenizer walks a script one opcode at a time. It is lazy, finite and
// cannot be restarted:
//
//	t := NewTokenizer(script)
//	for t.Next() {
//		op, data := t.Opcode(), t.Data()
//	}
//	if err := t.Err(); err != nil {
//		...
//	}
type Tokenizer struct {
	script []byte
	offset int
	op     OpCode
	data   []byte
	err    error
}

// NewTokenizer returns a tokenizer positioned before the first opcode.
func NewTokenizer(script []byte) *Tokenizer {
	return &Tokenizer{script: script}
}

// Next advances to the next opcode. It returns false at the end of the
// script or on a malformed push, in which case Err is set.
func (t *Tokenizer) Next() bool {
	if t.Done() {
		return false
	}

	script := t.script
	pc := t.offset
	op := OpCode(script[pc])
	pc++

	if !op.IsPushData() {
		t.op, t.data, t.offset = op, nil, pc
		return true
	}

	var operandSize uint64
	switch op {
	case OPPUSHDATA1:
		if len(script)-pc < 1 {
			return t.fail(op, "missing 1-byte length")
		}
		operandSize = uint64(script[pc])
		pc++
	case OPPUSHDATA2:
		if len(script)-pc < 2 {
			return t.fail(op, "missing 2-byte length")
		}
		operandSize = uint64(binary.LittleEndian.Uint16(script[pc : pc+2]))
		pc += 2
	case OPPUSHDATA4:
		if len(script)-pc < 4 {
			return t.fail(op, "missing 4-byte length")
		}
		operandSize = uint64(binary.LittleEndian.Uint32(script[pc : pc+4]))
		pc += 4
	default:
		// opcode itself encodes operand size
		operandSize = uint64(op)
	}

	if uint64(len(script)-pc) < operandSize {
		return t.fail(op, "operand truncated")
	}
	end := pc + int(operandSize)
	t.op, t.data, t.offset = op, script[pc:end:end], end
	return true
}

func (t *Tokenizer) fail(op OpCode, reason string) bool {
	t.err = errors.Wrapf(ErrTokenize, "%s at offset %d: %s", op, t.offset, reason)
	t.offset = len(t.script)
	t.op, t.data = 0, nil
	return false
}

// Done reports whether the tokenizer is exhausted or failed.
func (t *Tokenizer) Done() bool {
	return t.err != nil || t.offset >= len(t.script)
}

// Opcode returns the current opcode.
func (t *Tokenizer) Opcode() OpCode {
	return t.op
}

// Data returns the operand of the current push opcode, empty for OP_0 and
// nil for any other opcode. It aliases the script bytes.
func (t *Tokenizer) Data() []byte {
	return t.data
}

// ByteIndex returns the offset of the byte following the current opcode and
// its operand.
func (t *Tokenizer) ByteIndex() int {
	return t.offset
}

// Err returns the error that stopped the tokenizer, if any.
func (t *Tokenizer) Err() error {
	return t.err
}
