// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
)

func (vm *vm) execStackOp(op OpCode) error {
	stack := vm.dstack

	switch op {
	case OPTOALTSTACK:
		o, err := stack.pop()
		if err != nil {
			return err
		}
		vm.astack.push(o)

	case OPFROMALTSTACK:
		o, err := vm.astack.pop()
		if err != nil {
			return err
		}
		stack.push(o)

	case OP2DROP:
		// (x1 x2 -- )
		if stack.Size() < 2 {
			return ErrInvalidStackOperation
		}
		stack.pop()
		stack.pop()

	case OP2DUP:
		// (x1 x2 -- x1 x2 x1 x2)
		return stack.dupN(2)

	case OP3DUP:
		// (x1 x2 x3 -- x1 x2 x3 x1 x2 x3)
		return stack.dupN(3)

	case OP2OVER:
		// (x1 x2 x3 x4 -- x1 x2 x3 x4 x1 x2)
		return stack.overN(2)

	case OP2ROT:
		// (x1 x2 x3 x4 x5 x6 -- x3 x4 x5 x6 x1 x2)
		return stack.rotN(2)

	case OP2SWAP:
		// (x1 x2 x3 x4 -- x3 x4 x1 x2)
		return stack.swapN(2)

	case OPIFDUP:
		// (x -- 0 | x x)
		top, err := stack.peek(0)
		if err != nil {
			return err
		}
		if AsBool(top) {
			stack.push(copyOperand(top))
		}

	case OPDEPTH:
		// ( -- stacksize)
		stack.pushNum(ScriptNum(stack.Size()))

	case OPDROP:
		// (x -- )
		_, err := stack.pop()
		return err

	case OPDUP:
		// (x -- x x)
		return stack.dupN(1)

	case OPNIP:
		// (x1 x2 -- x2)
		_, err := stack.nip(1)
		return err

	case OPOVER:
		// (x1 x2 -- x1 x2 x1)
		return stack.overN(1)

	case OPROT:
		// (x1 x2 x3 -- x2 x3 x1)
		return stack.rotN(1)

	case OPSWAP:
		// (x1 x2 -- x2 x1)
		return stack.swapN(1)

	case OPSIZE:
		// (in -- in size)
		top, err := stack.peek(0)
		if err != nil {
			return err
		}
		stack.pushNum(ScriptNum(len(top)))

	default:
		return ErrBadOpcode
	}
	return nil
}

// opEqual handles OP_EQUAL and OP_EQUALVERIFY: (x1 x2 -- bool)
func (vm *vm) opEqual(op OpCode) error {
	stack := vm.dstack
	if stack.Size() < 2 {
		return ErrInvalidStackOperation
	}
	op2, _ := stack.pop()
	op1, _ := stack.pop()
	isEqual := bytes.Equal(op1, op2)
	stack.pushBool(isEqual)

	if op == OPEQUALVERIFY {
		if !isEqual {
			return ErrScriptEqualVerify
		}
		stack.pop()
	}
	return nil
}

// opPickRoll handles OP_PICK and OP_ROLL:
// (xn ... x2 x1 x0 n -- xn ... x2 x1 x0 xn)
// (xn ... x2 x1 x0 n -- ... x2 x1 x0 xn)
func (vm *vm) opPickRoll(op OpCode) error {
	stack := vm.dstack
	if stack.Size() < 2 {
		return ErrInvalidStackOperation
	}
	n, err := stack.popNum()
	if err != nil {
		return err
	}
	if n < 0 || int64(n) >= int64(stack.Size()) {
		return ErrInvalidStackOperation
	}
	if op == OPROLL {
		return stack.rollN(int(n))
	}
	return stack.pickN(int(n))
}
