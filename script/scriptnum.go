// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/pkg/errors"
)

// MaxScriptNumLen is the largest operand, in bytes, numeric opcodes accept.
const MaxScriptNumLen = 4

// ScriptNum is an integer as numeric opcodes see it. On the stack it is
// stored little endian in sign-magnitude form, the sign being the high bit of
// the last byte.
//
// Operands are limited to MaxScriptNumLen bytes, but results may overflow
// that (e.g. 0x7fffffff + 1), so the value is kept in an int64.
type ScriptNum int64

// MakeScriptNum decodes a stack element into a ScriptNum. Non-minimal
// encodings such as 0x0100 are accepted and mean the same as their minimal
// form.
func MakeScriptNum(b []byte) (ScriptNum, error) {
	if len(b) > MaxScriptNumLen {
		return 0, errors.Wrapf(ErrNumericDecode, "operand length %d", len(b))
	}
	if len(b) == 0 {
		return 0, nil
	}

	var v int64
	for i, val := range b {
		v |= int64(val) << uint8(8*i)
	}

	// The sign bit is the high bit of the last byte.
	if b[len(b)-1]&0x80 != 0 {
		v &= ^(int64(0x80) << uint8(8*(len(b)-1)))
		return ScriptNum(-v), nil
	}
	return ScriptNum(v), nil
}

// Bytes returns the minimal encoding of the number: empty for zero, with an
// extra sign byte only when the magnitude's top byte already uses the high
// bit.
func (n ScriptNum) Bytes() []byte {
	if n == 0 {
		return []byte{}
	}

	isNegative := n < 0
	if isNegative {
		n = -n
	}

	result := make([]byte, 0, 9)
	for n > 0 {
		result = append(result, byte(n&0xff))
		n >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// AsBool interprets a stack element of any length as a boolean. It is false
// when every byte is zero, or when the only non-zero byte is a trailing 0x80
// (negative zero).
func AsBool(b []byte) bool {
	for i, v := range b {
		if v != 0 {
			if i == len(b)-1 && v == 0x80 {
				return false
			}
			return true
		}
	}
	return false
}

// fromBool encodes a boolean result as a ScriptNum: 1 or empty.
func fromBool(v bool) ScriptNum {
	if v {
		return 1
	}
	return 0
}
