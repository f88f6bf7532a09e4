// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"testing"

	"github.com/facebookgo/ensure"
	"github.com/pkg/errors"
)

func TestTokenizer(t *testing.T) {
	data300 := bytes.Repeat([]byte{0xab}, 300)
	script := NewScript().
		AddOpCode(OP0).
		AddOperand([]byte{1, 2, 3}).
		AddOperand(bytes.Repeat([]byte{0xcd}, 80)).
		AddOperand(data300).
		AddOpCode(OPDUP)
	// PUSHDATA4 with a two byte operand
	*script = append(*script, byte(OPPUSHDATA4), 2, 0, 0, 0, 7, 8)

	type token struct {
		op   OpCode
		data []byte
		end  int
	}
	want := []token{
		{OP0, []byte{}, 1},
		{OpCode(3), []byte{1, 2, 3}, 5},
		{OPPUSHDATA1, bytes.Repeat([]byte{0xcd}, 80), 87},
		{OPPUSHDATA2, data300, 390},
		{OPDUP, nil, 391},
		{OPPUSHDATA4, []byte{7, 8}, 398},
	}

	tk := NewTokenizer(*script)
	var got []token
	for tk.Next() {
		got = append(got, token{tk.Opcode(), tk.Data(), tk.ByteIndex()})
	}
	ensure.Nil(t, tk.Err())
	ensure.True(t, tk.Done())
	ensure.False(t, tk.Next())
	ensure.DeepEqual(t, len(got), len(want))
	for i := range want {
		ensure.DeepEqual(t, got[i].op, want[i].op)
		ensure.True(t, bytes.Equal(got[i].data, want[i].data))
		ensure.DeepEqual(t, got[i].end, want[i].end)
	}
	// OP_0 is an empty push, other opcodes carry no operand
	ensure.True(t, got[0].data != nil)
	ensure.True(t, got[4].data == nil)
}

func TestTokenizerMalformed(t *testing.T) {
	tests := []struct {
		name   string
		script []byte
		parsed int
	}{
		{"truncated direct push", []byte{byte(OP1), 0x02, 0x01}, 1},
		{"missing pushdata1 length", []byte{byte(OPPUSHDATA1)}, 0},
		{"truncated pushdata1", []byte{byte(OPPUSHDATA1), 0x03, 0x01, 0x02}, 0},
		{"missing pushdata2 length", []byte{byte(OPPUSHDATA2), 0x01}, 0},
		{"missing pushdata4 length", []byte{byte(OPNOP), byte(OPPUSHDATA4), 0x01, 0x00, 0x00}, 1},
		{"huge pushdata4", []byte{byte(OPPUSHDATA4), 0xff, 0xff, 0xff, 0xff, 0x00}, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tk := NewTokenizer(test.script)
			parsed := 0
			for tk.Next() {
				parsed++
			}
			ensure.DeepEqual(t, parsed, test.parsed)
			ensure.DeepEqual(t, errors.Cause(tk.Err()), ErrTokenize)
			ensure.True(t, tk.Done())
		})
	}
}

func TestTokenizerEmpty(t *testing.T) {
	tk := NewTokenizer(nil)
	ensure.False(t, tk.Next())
	ensure.Nil(t, tk.Err())
}
