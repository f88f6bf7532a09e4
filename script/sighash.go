// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/BOXFoundation/boxscript/metrics"
	"github.com/pkg/errors"
)

// SigHashType selects which parts of a transaction a signature commits to.
type SigHashType uint32

// Hash type bits from the end of a signature.
const (
	SigHashOld          SigHashType = 0x0
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80

	// sigHashMask selects the base mode from the low five bits.
	sigHashMask = 0x1f
)

// Base returns the base mode: ALL, NONE, SINGLE or an unrecognized value.
func (t SigHashType) Base() SigHashType {
	return t & sigHashMask
}

// AnyOneCanPay reports whether the ANYONECANPAY modifier is set.
func (t SigHashType) AnyOneCanPay() bool {
	return t&SigHashAnyOneCanPay != 0
}

func (t SigHashType) String() string {
	var base string
	switch t.Base() {
	case SigHashAll:
		base = "ALL"
	case SigHashNone:
		base = "NONE"
	case SigHashSingle:
		base = "SINGLE"
	default:
		base = fmt.Sprintf("0x%x", uint32(t.Base()))
	}
	if t.AnyOneCanPay() {
		return base + "|ANYONECANPAY"
	}
	return base
}

var sighashCounter = metrics.NewCounter("script/sighash")

// CalcSignatureHash computes the digest a signature over input txInIdx of tx
// commits to, with scriptCode standing in for that input's unlocking script.
// tx itself is never modified.
func CalcSignatureHash(
	scriptCode []byte, tx *types.Transaction, txInIdx int, hashType SigHashType,
) (*crypto.HashType, error) {

	if tx == nil || txInIdx < 0 || txInIdx >= len(tx.Vin) {
		return nil, errors.Wrapf(ErrInputIndexOutOfBound, "input %d", txInIdx)
	}
	sighashCounter.Inc(1)

	txCopy := tx.Copy()

	// Blank out other inputs' signatures
	for i, txIn := range txCopy.Vin {
		if i == txInIdx {
			txIn.ScriptSig = append([]byte{}, scriptCode...)
		} else {
			txIn.ScriptSig = []byte{}
		}
	}

	switch hashType.Base() {
	case SigHashNone:
		// Wildcard payee
		txCopy.Vout = txCopy.Vout[:0]
		zeroOtherSequences(txCopy, txInIdx)

	case SigHashSingle:
		// Only lock in the output at the same index as the input
		if txInIdx >= len(txCopy.Vout) {
			return nil, errors.Wrapf(ErrOutputIndexOutOfBound,
				"input %d, %d outputs", txInIdx, len(txCopy.Vout))
		}
		txCopy.Vout = txCopy.Vout[:txInIdx+1]
		for i := 0; i < txInIdx; i++ {
			txCopy.Vout[i].SetNull()
		}
		zeroOtherSequences(txCopy, txInIdx)
	}

	// Blank out other inputs completely
	if hashType.AnyOneCanPay() {
		txCopy.Vin = txCopy.Vin[txInIdx : txInIdx+1]
	}

	return txCopy.TxHash()
}

// zeroOtherSequences lets other inputs update at will.
func zeroOtherSequences(tx *types.Transaction, txInIdx int) {
	for i, txIn := range tx.Vin {
		if i != txInIdx {
			txIn.Sequence = 0
		}
	}
}
