// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/pkg/errors"
)

// constants
const (
	p2PKHScriptLen = 25

	// MaxScriptSize is the largest script that may be evaluated.
	MaxScriptSize = 10000
	// MaxScriptElementSize is the largest operand a push may carry.
	MaxScriptElementSize = 520
	// MaxOpsPerScript caps the number of non-push opcodes in a script.
	MaxOpsPerScript = 201
	// MaxStackSize caps the combined depth of the main and alt stacks.
	MaxStackSize = 1000
	// MaxPubKeysPerMultiSig caps the key count of OP_CHECKMULTISIG.
	MaxPubKeysPerMultiSig = 20
)

// Script represents scripts
type Script []byte

// ParsedOp is one opcode of a script along with its operand.
type ParsedOp struct {
	Opcode OpCode
	Data   []byte
	// Offset of the opcode byte within the script.
	Offset int
}

// PayToPubKeyHashScript creates a script to lock a transaction output to the specified address.
func PayToPubKeyHashScript(pubKeyHash []byte) *Script {
	return NewScript().AddOpCode(OPDUP).AddOpCode(OPHASH160).AddOperand(pubKeyHash).AddOpCode(OPEQUALVERIFY).AddOpCode(OPCHECKSIG)
}

// MultiSigScript creates an m-of-n bare multisig locking script.
func MultiSigScript(m int, pubKeys ...[]byte) *Script {
	s := NewScript().AddInt64(int64(m))
	for _, pubKey := range pubKeys {
		s.AddOperand(pubKey)
	}
	return s.AddInt64(int64(len(pubKeys))).AddOpCode(OPCHECKMULTISIG)
}

// SignatureScript creates a script to unlock a utxo. The hash type byte is
// appended to the DER signature.
func SignatureScript(sig *crypto.Signature, hashType SigHashType, pubKey []byte) *Script {
	return NewScript().AddOperand(SigWithHashType(sig, hashType)).AddOperand(pubKey)
}

// SigWithHashType returns the DER signature followed by the hash type byte,
// the form signature opcodes expect on the stack.
func SigWithHashType(sig *crypto.Signature, hashType SigHashType) []byte {
	return append(sig.Serialize(), byte(hashType))
}

// NewScript returns an empty script
func NewScript() *Script {
	emptyBytes := make([]byte, 0, p2PKHScriptLen)
	return (*Script)(&emptyBytes)
}

// NewScriptFromBytes returns a script from byte slice
func NewScriptFromBytes(scriptBytes []byte) *Script {
	script := Script(scriptBytes)
	return &script
}

// AddOpCode adds an opcode to the script
func (s *Script) AddOpCode(opCode OpCode) *Script {
	*s = append(*s, byte(opCode))
	return s
}

// AddOperand adds an operand to the script using the shortest push
func (s *Script) AddOperand(operand []byte) *Script {
	dataLen := len(operand)

	if dataLen < int(OPPUSHDATA1) {
		*s = append(*s, byte(dataLen))
	} else if dataLen <= 0xff {
		*s = append(*s, byte(OPPUSHDATA1), byte(dataLen))
	} else if dataLen <= 0xffff {
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(dataLen))
		*s = append(*s, byte(OPPUSHDATA2))
		*s = append(*s, buf...)
	} else {
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(dataLen))
		*s = append(*s, byte(OPPUSHDATA4))
		*s = append(*s, buf...)
	}

	// Append the actual operand
	*s = append(*s, operand...)
	return s
}

// AddInt64 pushes an integer, using OP_1NEGATE and OP_1..OP_16 where possible
func (s *Script) AddInt64(val int64) *Script {
	if val == 0 {
		return s.AddOpCode(OP0)
	}
	if val == -1 || (val >= 1 && val <= 16) {
		return s.AddOpCode(OpCode(byte(OP1) - 1 + byte(val)))
	}
	return s.AddOperand(ScriptNum(val).Bytes())
}

// AddScript appends a script to the script
func (s *Script) AddScript(script *Script) *Script {
	*s = append(*s, (*script)...)
	return s
}

// ParseScript splits the script into opcodes. On a malformed push it returns
// the opcodes parsed so far along with the error.
func (s Script) ParseScript() ([]ParsedOp, error) {
	var ops []ParsedOp
	t := NewTokenizer(s)
	for start := 0; t.Next(); start = t.ByteIndex() {
		ops = append(ops, ParsedOp{Opcode: t.Opcode(), Data: t.Data(), Offset: start})
	}
	return ops, t.Err()
}

// Disasm disassembles script in human readable format. If the script fails to parse, the returned string will
// contain the disassembled script up to the failure point, appended by the string '[Error: error info]'
func (s Script) Disasm() string {
	var str []string

	ops, err := s.ParseScript()
	for _, op := range ops {
		if op.Opcode.IsPushData() && op.Opcode != OP0 {
			str = append(str, hex.EncodeToString(op.Data))
		} else {
			str = append(str, op.Opcode.String())
		}
	}
	if err != nil {
		str = append(str, "[Error: "+errors.Cause(err).Error()+"]")
	}

	return strings.Join(str, " ")
}

// Assemble builds a script from its short text form:
//   - opcodes are written as OP_NAME or NAME
//   - plain decimal numbers are pushed with AddInt64
//   - 0x-prefixed hex is inserted into the script verbatim
//   - single quoted strings are pushed as data
func Assemble(asm string) (Script, error) {
	s := NewScript()
	for _, tok := range strings.Fields(asm) {
		if num, err := strconv.ParseInt(tok, 10, 64); err == nil {
			s.AddInt64(num)
		} else if strings.HasPrefix(tok, "0x") {
			raw, err := hex.DecodeString(tok[2:])
			if err != nil {
				return nil, errors.Wrapf(err, "bad hex token %q", tok)
			}
			*s = append(*s, raw...)
		} else if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
			s.AddOperand([]byte(tok[1 : len(tok)-1]))
		} else if op, ok := opCodeByName[tok]; ok {
			s.AddOpCode(op)
		} else {
			return nil, errors.Errorf("bad token %q", tok)
		}
	}
	return *s, nil
}

// removeOpcodeByData returns the script without any push of exactly data.
// The script is returned unchanged if it cannot be parsed.
func removeOpcodeByData(script Script, data []byte) Script {
	return filterScript(script, func(op ParsedOp) bool {
		return op.Opcode.IsPushData() && bytes.Equal(op.Data, data)
	})
}

// removeOpcode returns the script without any occurrence of opcode.
func removeOpcode(script Script, opcode OpCode) Script {
	return filterScript(script, func(op ParsedOp) bool {
		return op.Opcode == opcode
	})
}

func filterScript(script Script, drop func(ParsedOp) bool) Script {
	ops, err := script.ParseScript()
	if err != nil {
		return script
	}
	result := make(Script, 0, len(script))
	for i, op := range ops {
		if drop(op) {
			continue
		}
		end := len(script)
		if i+1 < len(ops) {
			end = ops[i+1].Offset
		}
		result = append(result, script[op.Offset:end]...)
	}
	return result
}
