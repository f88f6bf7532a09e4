// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/facebookgo/ensure"
)

var (
	testPrivKey, testPubKey, _ = crypto.NewKeyPair()
	testPubKeyBytes            = testPubKey.Serialize()
	testPubKeyHash             = crypto.Hash160(testPubKeyBytes)
)

func mustAssemble(t *testing.T, asm string) Script {
	s, err := Assemble(asm)
	ensure.Nil(t, err)
	return s
}

// newTestTx returns a transaction with distinct inputs and outputs.
func newTestTx(numIn, numOut int) *types.Transaction {
	tx := types.NewTx(1, 0)
	for i := 0; i < numIn; i++ {
		hash := crypto.HashType{byte(i + 1)}
		tx.AppendVin(types.NewTxIn(types.NewOutPoint(&hash, uint32(i)), []byte{byte(i)}, 0xffffffff))
	}
	for i := 0; i < numOut; i++ {
		tx.AppendVout(types.NewTxOut(int64(1000*(i+1)), []byte{byte(OPDUP), byte(i)}))
	}
	return tx
}

// signInput signs input txInIdx of tx against scriptCode with privKey.
func signInput(t *testing.T, privKey *crypto.PrivateKey, scriptCode Script,
	tx *types.Transaction, txInIdx int, hashType SigHashType) []byte {

	hash, err := CalcSignatureHash(scriptCode, tx, txInIdx, hashType)
	ensure.Nil(t, err)
	sig, err := crypto.Sign(privKey, hash[:])
	ensure.Nil(t, err)
	return SigWithHashType(sig, hashType)
}

func ops(items ...[]byte) []Operand {
	stack := make([]Operand, 0, len(items))
	for _, item := range items {
		stack = append(stack, Operand(item))
	}
	return stack
}
