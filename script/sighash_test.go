// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/facebookgo/ensure"
	"github.com/pkg/errors"
)

var testScriptCode = []byte{byte(OPDUP), byte(OPHASH160)}

func mustTxHash(t *testing.T, tx *types.Transaction) []byte {
	hash, err := tx.TxHash()
	ensure.Nil(t, err)
	return hash[:]
}

func TestCalcSignatureHashIndex(t *testing.T) {
	_, err := CalcSignatureHash(testScriptCode, nil, 0, SigHashAll)
	ensure.DeepEqual(t, errors.Cause(err), ErrInputIndexOutOfBound)

	_, err = CalcSignatureHash(testScriptCode, newTestTx(0, 1), 0, SigHashAll)
	ensure.DeepEqual(t, errors.Cause(err), ErrInputIndexOutOfBound)

	tx := newTestTx(2, 1)
	_, err = CalcSignatureHash(testScriptCode, tx, 2, SigHashAll)
	ensure.DeepEqual(t, errors.Cause(err), ErrInputIndexOutOfBound)
	_, err = CalcSignatureHash(testScriptCode, tx, -1, SigHashAll)
	ensure.DeepEqual(t, errors.Cause(err), ErrInputIndexOutOfBound)

	// SINGLE needs an output at the input's index
	_, err = CalcSignatureHash(testScriptCode, tx, 1, SigHashSingle)
	ensure.DeepEqual(t, errors.Cause(err), ErrOutputIndexOutOfBound)
	ensure.DeepEqual(t, ErrorCategory(err), "SighashIndexOutOfRange")
	_, err = CalcSignatureHash(testScriptCode, tx, 0, SigHashSingle)
	ensure.Nil(t, err)
}

func TestCalcSignatureHashAll(t *testing.T) {
	tx := newTestTx(2, 2)
	before, err := tx.Marshal()
	ensure.Nil(t, err)

	hash, err := CalcSignatureHash(testScriptCode, tx, 0, SigHashAll)
	ensure.Nil(t, err)

	after, err := tx.Marshal()
	ensure.Nil(t, err)
	ensure.DeepEqual(t, after, before)

	expected := tx.Copy()
	expected.Vin[0].ScriptSig = testScriptCode
	expected.Vin[1].ScriptSig = nil
	ensure.DeepEqual(t, hash[:], mustTxHash(t, expected))

	// the hash type is not part of the digest
	hashOld, err := CalcSignatureHash(testScriptCode, tx, 0, SigHashOld)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, hashOld, hash)

	// other inputs' scripts do not matter
	tx.Vin[1].ScriptSig = []byte{1, 2, 3}
	hash2, err := CalcSignatureHash(testScriptCode, tx, 0, SigHashAll)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, hash2, hash)

	// but everything else does
	tx.Vin[1].Sequence = 1
	hash3, err := CalcSignatureHash(testScriptCode, tx, 0, SigHashAll)
	ensure.Nil(t, err)
	ensure.NotDeepEqual(t, hash3, hash)
}

func TestCalcSignatureHashNone(t *testing.T) {
	tx := newTestTx(2, 2)
	hash, err := CalcSignatureHash(testScriptCode, tx, 0, SigHashNone)
	ensure.Nil(t, err)

	expected := tx.Copy()
	expected.Vin[0].ScriptSig = testScriptCode
	expected.Vin[1].ScriptSig = nil
	expected.Vin[1].Sequence = 0
	expected.Vout = nil
	ensure.DeepEqual(t, hash[:], mustTxHash(t, expected))

	tx.Vout[0].Value++
	tx.AppendVout(types.NewTxOut(1, nil))
	tx.Vin[1].Sequence = 7
	hash2, err := CalcSignatureHash(testScriptCode, tx, 0, SigHashNone)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, hash2, hash)

	// own sequence is still committed to
	tx.Vin[0].Sequence = 7
	hash3, err := CalcSignatureHash(testScriptCode, tx, 0, SigHashNone)
	ensure.Nil(t, err)
	ensure.NotDeepEqual(t, hash3, hash)
}

func TestCalcSignatureHashSingle(t *testing.T) {
	tx := newTestTx(2, 3)
	hash, err := CalcSignatureHash(testScriptCode, tx, 1, SigHashSingle)
	ensure.Nil(t, err)

	expected := tx.Copy()
	expected.Vin[0].ScriptSig = nil
	expected.Vin[0].Sequence = 0
	expected.Vin[1].ScriptSig = testScriptCode
	expected.Vout = expected.Vout[:2]
	expected.Vout[0] = types.NewTxOut(-1, nil)
	ensure.DeepEqual(t, hash[:], mustTxHash(t, expected))

	// earlier and later outputs are free to change
	tx.Vout[0].Value++
	tx.Vout[2].Value++
	hash2, err := CalcSignatureHash(testScriptCode, tx, 1, SigHashSingle)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, hash2, hash)

	tx.Vout[1].Value++
	hash3, err := CalcSignatureHash(testScriptCode, tx, 1, SigHashSingle)
	ensure.Nil(t, err)
	ensure.NotDeepEqual(t, hash3, hash)

	// the caller's outputs are untouched
	ensure.DeepEqual(t, len(tx.Vout), 3)
	ensure.False(t, tx.Vout[0].IsNull())
}

func TestCalcSignatureHashAnyOneCanPay(t *testing.T) {
	tx := newTestTx(3, 2)
	hashType := SigHashAll | SigHashAnyOneCanPay
	hash, err := CalcSignatureHash(testScriptCode, tx, 1, hashType)
	ensure.Nil(t, err)

	expected := tx.Copy()
	expected.Vin = expected.Vin[1:2]
	expected.Vin[0].ScriptSig = testScriptCode
	ensure.DeepEqual(t, hash[:], mustTxHash(t, expected))

	tx.Vin[0].Sequence = 5
	tx.AppendVin(types.NewTxIn(&tx.Vin[0].PrevOutPoint, nil, 0))
	hash2, err := CalcSignatureHash(testScriptCode, tx, 1, hashType)
	ensure.Nil(t, err)
	ensure.DeepEqual(t, hash2, hash)
	ensure.DeepEqual(t, len(tx.Vin), 4)
}

func TestSigHashTypeString(t *testing.T) {
	ensure.DeepEqual(t, SigHashAll.String(), "ALL")
	ensure.DeepEqual(t, (SigHashSingle | SigHashAnyOneCanPay).String(), "SINGLE|ANYONECANPAY")
	ensure.DeepEqual(t, SigHashType(0x83).Base(), SigHashSingle)
	ensure.True(t, SigHashType(0x81).AnyOneCanPay())
	ensure.False(t, SigHashAll.AnyOneCanPay())
}
