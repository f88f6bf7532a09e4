// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

// opUnaryNum replaces the top element with the result of a unary numeric
// operation: (in -- out)
func (vm *vm) opUnaryNum(op OpCode) error {
	stack := vm.dstack
	n, err := stack.peekNum(0)
	if err != nil {
		return err
	}

	switch op {
	case OP1ADD:
		n++
	case OP1SUB:
		n--
	case OP2MUL:
		n *= 2
	case OP2DIV:
		n /= 2
	case OPNEGATE:
		n = -n
	case OPABS:
		if n < 0 {
			n = -n
		}
	case OPNOT:
		n = fromBool(n == 0)
	case OP0NOTEQUAL:
		n = fromBool(n != 0)
	default:
		return ErrBadOpcode
	}

	stack.pop()
	stack.pushNum(n)
	return nil
}

// opWithin handles OP_WITHIN: (x min max -- out), true iff min <= x < max.
// All three operands are removed even if one fails to decode.
func (vm *vm) opWithin() error {
	stack := vm.dstack
	if stack.Size() < 3 {
		return ErrInvalidStackOperation
	}
	upperOp, _ := stack.pop()
	lowerOp, _ := stack.pop()
	xOp, _ := stack.pop()

	x, err1 := MakeScriptNum(xOp)
	lower, err2 := MakeScriptNum(lowerOp)
	upper, err3 := MakeScriptNum(upperOp)
	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			return err
		}
	}

	stack.pushBool(lower <= x && x < upper)
	return nil
}

// opBinaryNum handles the two operand numeric opcodes: (x1 x2 -- out)
func (vm *vm) opBinaryNum(op OpCode) error {
	stack := vm.dstack
	if stack.Size() < 2 {
		return ErrInvalidStackOperation
	}
	b, err := stack.peekNum(0)
	if err != nil {
		return err
	}
	a, err := stack.peekNum(1)
	if err != nil {
		return err
	}
	stack.pop()
	stack.pop()

	var n ScriptNum
	switch op {
	case OPADD:
		n = a + b
	case OPSUB:
		n = a - b
	case OPBOOLAND:
		n = fromBool(a != 0 && b != 0)
	case OPBOOLOR:
		n = fromBool(a != 0 || b != 0)
	case OPNUMEQUAL, OPNUMEQUALVERIFY:
		n = fromBool(a == b)
	case OPNUMNOTEQUAL:
		n = fromBool(a != b)
	case OPLESSTHAN:
		n = fromBool(a < b)
	case OPGREATERTHAN:
		n = fromBool(a > b)
	case OPLESSTHANOREQUAL:
		n = fromBool(a <= b)
	case OPGREATERTHANOREQUAL:
		n = fromBool(a >= b)
	case OPMIN:
		n = a
		if b < a {
			n = b
		}
	case OPMAX:
		n = a
		if b > a {
			n = b
		}
	default:
		return ErrBadOpcode
	}

	if op == OPNUMEQUALVERIFY {
		if n == 0 {
			return ErrVerifyFailed
		}
		return nil
	}
	stack.pushNum(n)
	return nil
}
