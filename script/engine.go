// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"time"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/log"
	"github.com/BOXFoundation/boxscript/metrics"
	"github.com/pkg/errors"
)

var logger = log.NewLogger("script") // logger

var (
	evalCounter     = metrics.NewCounter("script/eval")
	evalFailCounter = metrics.NewCounter("script/eval/fail")
	evalTimer       = metrics.NewTimer("script/eval/time")
)

// ScriptFlags alter how scripts are evaluated.
type ScriptFlags uint32

const (
	// ScriptVerifyNone evaluates the base opcode set only.
	ScriptVerifyNone ScriptFlags = 0

	// ScriptVerifyExtendedOps additionally enables binary arithmetic and
	// comparison, OP_PICK, OP_ROLL, OP_TUCK, the hash opcodes and the
	// signature checking opcodes. Disabled opcodes stay disabled.
	ScriptVerifyExtendedOps ScriptFlags = 1 << 0
)

// Engine evaluates scripts under a fixed set of flags. An Engine holds no
// per-evaluation state and may be used from many goroutines at once.
type Engine struct {
	flags    ScriptFlags
	sigCache *SigCache
}

// NewEngine returns an engine. sigCache may be nil.
func NewEngine(flags ScriptFlags, sigCache *SigCache) *Engine {
	return &Engine{flags: flags, sigCache: sigCache}
}

// NewEngineFromConfig returns an engine with the flags and signature cache
// described by cfg.
func NewEngineFromConfig(cfg *Config) (*Engine, error) {
	var sigCache *SigCache
	if cfg.ExtendedOps && cfg.SigCacheSize > 0 {
		var err error
		if sigCache, err = NewSigCache(cfg.SigCacheSize); err != nil {
			return nil, err
		}
	}
	return NewEngine(cfg.Flags(), sigCache), nil
}

var defaultEngine = NewEngine(ScriptVerifyNone, nil)

// Evaluate runs script against stack with the base opcode set. See
// (*Engine).Evaluate.
func Evaluate(stack *Stack, script Script, tx *types.Transaction, txInIdx int, hashType SigHashType) error {
	return defaultEngine.Evaluate(stack, script, tx, txInIdx, hashType)
}

// EvaluateBool is Evaluate reporting success as a boolean.
func EvaluateBool(stack *Stack, script Script, tx *types.Transaction, txInIdx int, hashType SigHashType) bool {
	return Evaluate(stack, script, tx, txInIdx, hashType) == nil
}

// VerifyScript evaluates scriptSig then scriptPubKey on a shared stack and
// requires a true top element. See (*Engine).VerifyScript.
func VerifyScript(scriptSig, scriptPubKey Script, tx *types.Transaction, txInIdx int, flags ScriptFlags) error {
	return NewEngine(flags, nil).VerifyScript(scriptSig, scriptPubKey, tx, txInIdx)
}

// vm is the state of a single evaluation.
type vm struct {
	*Engine
	script   Script
	tx       *types.Transaction
	txInIdx  int
	hashType SigHashType

	dstack *Stack
	astack Stack
	cond   condStack
	numOps int
	// codeSepIdx is the offset following the last executed OP_CODESEPARATOR.
	codeSepIdx int
}

// Evaluate runs script, mutating stack in place. It returns nil iff every
// opcode was consumed, every conditional was closed and no limit or opcode
// failure was hit. It does not judge the truth of the final top element.
//
// A non-zero hashType forces the hash type signature opcodes accept.
// tx and txInIdx are only consulted by signature opcodes.
func (e *Engine) Evaluate(
	stack *Stack, script Script, tx *types.Transaction, txInIdx int, hashType SigHashType,
) (err error) {

	start := time.Now()
	evalCounter.Inc(1)
	defer func() {
		evalTimer.UpdateSince(start)
		if err != nil {
			evalFailCounter.Inc(1)
			metrics.NewCounter("script/eval/fail/" + ErrorCategory(err)).Inc(1)
			logger.Debugf("Script evaluation failed: %v", err)
		}
	}()

	if stack == nil {
		stack = NewStack()
	}
	if len(script) > MaxScriptSize {
		return errors.Wrapf(ErrScriptTooLarge, "script size %d", len(script))
	}

	vm := &vm{
		Engine:   e,
		script:   script,
		tx:       tx,
		txInIdx:  txInIdx,
		hashType: hashType,
		dstack:   stack,
	}
	return vm.run()
}

func (vm *vm) run() error {
	t := NewTokenizer(vm.script)
	for offset := 0; t.Next(); offset = t.ByteIndex() {
		executing := vm.cond.executing()
		op, data := t.Opcode(), t.Data()

		if len(data) > MaxScriptElementSize {
			return errors.Wrapf(ErrOperandTooLarge, "%d bytes at offset %d", len(data), offset)
		}
		if op > OP16 {
			vm.numOps++
			if vm.numOps > MaxOpsPerScript {
				return errors.Wrapf(ErrOpCountExceeded, "%s at offset %d", op, offset)
			}
		}
		if op.IsDisabled() {
			return errors.Wrapf(ErrDisabledOpcode, "%s at offset %d", op, offset)
		}

		if executing && op.IsPushData() {
			vm.dstack.push(copyOperand(data))
		} else if executing || op.isConditional() {
			if err := vm.execOp(op, t.ByteIndex()); err != nil {
				return errors.Wrapf(err, "%s at offset %d", op, offset)
			}
		}

		if vm.dstack.Size()+vm.astack.Size() > MaxStackSize {
			return errors.Wrapf(ErrStackDepthExceeded, "%s at offset %d", op, offset)
		}
	}
	if err := t.Err(); err != nil {
		return err
	}
	if !vm.cond.empty() {
		return errors.Wrapf(ErrMalformedControlFlow, "%d unclosed conditionals", len(vm.cond.frames))
	}
	return nil
}

func (vm *vm) hasFlag(flag ScriptFlags) bool {
	return vm.flags&flag == flag
}

// execOp dispatches a non-push opcode. nextOffset is the offset of the byte
// following the opcode.
func (vm *vm) execOp(op OpCode, nextOffset int) error {
	if op.isSmallInt() {
		vm.dstack.pushNum(ScriptNum(int(op) - int(OP1) + 1))
		return nil
	}

	switch op {
	case OPNOP, OPNOP1, OPNOP2, OPNOP3, OPNOP4, OPNOP5,
		OPNOP6, OPNOP7, OPNOP8, OPNOP9, OPNOP10:
		return nil

	// control
	case OPIF, OPNOTIF:
		return vm.opIf(op)
	case OPELSE:
		return vm.cond.toggle()
	case OPENDIF:
		return vm.cond.pop()
	case OPVERIFY:
		return vm.opVerify()
	case OPRETURN:
		return ErrOpReturn

	// stack ops
	case OPTOALTSTACK, OPFROMALTSTACK, OP2DROP, OP2DUP, OP3DUP, OP2OVER,
		OP2ROT, OP2SWAP, OPIFDUP, OPDEPTH, OPDROP, OPDUP, OPNIP, OPOVER,
		OPROT, OPSWAP, OPSIZE:
		return vm.execStackOp(op)

	case OPEQUAL, OPEQUALVERIFY:
		return vm.opEqual(op)

	// numeric
	case OP1ADD, OP1SUB, OP2MUL, OP2DIV, OPNEGATE, OPABS, OPNOT, OP0NOTEQUAL:
		return vm.opUnaryNum(op)
	case OPWITHIN:
		return vm.opWithin()

	case OPCODESEPARATOR:
		vm.codeSepIdx = nextOffset
		return nil
	}

	if !vm.hasFlag(ScriptVerifyExtendedOps) {
		return ErrBadOpcode
	}

	switch op {
	case OPPICK, OPROLL:
		return vm.opPickRoll(op)
	case OPTUCK:
		return vm.dstack.tuck()

	case OPADD, OPSUB, OPBOOLAND, OPBOOLOR, OPNUMEQUAL, OPNUMEQUALVERIFY,
		OPNUMNOTEQUAL, OPLESSTHAN, OPGREATERTHAN, OPLESSTHANOREQUAL,
		OPGREATERTHANOREQUAL, OPMIN, OPMAX:
		return vm.opBinaryNum(op)

	case OPRIPEMD160, OPSHA1, OPSHA256, OPHASH160, OPHASH256:
		return vm.opHash(op)

	case OPCHECKSIG, OPCHECKSIGVERIFY:
		return vm.opCheckSig(op)
	case OPCHECKMULTISIG, OPCHECKMULTISIGVERIFY:
		return vm.opCheckMultiSig(op)
	}

	return ErrBadOpcode
}

// opIf handles OP_IF and OP_NOTIF. In a branch that is not executing the new
// frame is false and the stack is left alone.
func (vm *vm) opIf(op OpCode) error {
	value := false
	if vm.cond.executing() {
		top, err := vm.dstack.pop()
		if err != nil {
			return err
		}
		value = AsBool(top)
		if op == OPNOTIF {
			value = !value
		}
	}
	vm.cond.push(value)
	return nil
}

func (vm *vm) opVerify() error {
	top, err := vm.dstack.peek(0)
	if err != nil {
		return err
	}
	if !AsBool(top) {
		return ErrVerifyFailed
	}
	vm.dstack.pop()
	return nil
}

// VerifyScript evaluates scriptSig on a fresh stack, then scriptPubKey on
// the resulting stack, and requires the final top element to be true.
func (e *Engine) VerifyScript(scriptSig, scriptPubKey Script, tx *types.Transaction, txInIdx int) error {
	stack := NewStack()
	if err := e.Evaluate(stack, scriptSig, tx, txInIdx, 0); err != nil {
		return errors.Wrap(err, "scriptSig")
	}
	if err := e.Evaluate(stack, scriptPubKey, tx, txInIdx, 0); err != nil {
		return errors.Wrap(err, "scriptPubKey")
	}
	if stack.empty() || !AsBool(stack.Top()) {
		return ErrEvalFalse
	}
	return nil
}
