// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/facebookgo/ensure"
	"github.com/jbenet/goprocess"
	"github.com/pkg/errors"
)

// signedTestTx returns a transaction whose inputs all spend P2PKH outputs
// of the test key, along with those outputs' locking scripts.
func signedTestTx(t *testing.T, numIn int) (*types.Transaction, []Script) {
	tx := newTestTx(numIn, numIn)
	prevScript := *PayToPubKeyHashScript(testPubKeyHash)
	prevScripts := make([]Script, numIn)
	for i := range tx.Vin {
		prevScripts[i] = prevScript
	}
	for i, txIn := range tx.Vin {
		sig := signInput(t, testPrivKey, prevScript, tx, i, SigHashAll)
		txIn.ScriptSig = *NewScript().AddOperand(sig).AddOperand(testPubKeyBytes)
	}
	return tx, prevScripts
}

func TestTxValidator(t *testing.T) {
	proc := goprocess.WithParent(goprocess.Background())
	defer proc.Close()
	validator := NewTxValidator(proc, extendedEngine, 3)

	tx, prevScripts := signedTestTx(t, 8)
	ensure.Nil(t, validator.Validate(tx, prevScripts))

	// the same validator serves repeated calls
	ensure.Nil(t, validator.Validate(tx, prevScripts))

	err := validator.Validate(tx, prevScripts[1:])
	ensure.DeepEqual(t, errors.Cause(err), ErrPrevScriptCount)

	ensure.Nil(t, validator.Validate(types.NewTx(1, 0), nil))
}

func TestTxValidatorFailure(t *testing.T) {
	validator := NewTxValidator(goprocess.Background(), extendedEngine, 0)
	defer validator.Stop()

	tx, prevScripts := signedTestTx(t, 4)
	tx.Vin[2].ScriptSig = tx.Vin[1].ScriptSig
	err := validator.Validate(tx, prevScripts)
	ensure.DeepEqual(t, errors.Cause(err), ErrEvalFalse)
	ensure.StringContains(t, err.Error(), "input 2")

	// the base opcode set cannot run P2PKH
	restricted := NewTxValidator(goprocess.Background(), NewEngine(ScriptVerifyNone, nil), 2)
	defer restricted.Stop()
	tx, prevScripts = signedTestTx(t, 2)
	err = restricted.Validate(tx, prevScripts)
	ensure.DeepEqual(t, errors.Cause(err), ErrBadOpcode)
}

func TestTxValidatorStopped(t *testing.T) {
	validator := NewTxValidator(goprocess.Background(), extendedEngine, 2)
	ensure.Nil(t, validator.Stop())

	tx, prevScripts := signedTestTx(t, 2)
	ensure.DeepEqual(t, validator.Validate(tx, prevScripts), ErrValidatorClosed)
}

func TestTxValidatorNilTx(t *testing.T) {
	validator := NewTxValidator(goprocess.Background(), extendedEngine, 2)
	defer validator.Stop()

	ensure.DeepEqual(t, validator.Validate(nil, nil), ErrNilTx)
	ensure.DeepEqual(t, validator.Validate(nil, []Script{{byte(OPTRUE)}}), ErrNilTx)
}
