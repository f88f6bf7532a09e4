// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"runtime"

	"github.com/BOXFoundation/boxscript/core/types"
	"github.com/BOXFoundation/boxscript/metrics"
	"github.com/jbenet/goprocess"
	"github.com/pkg/errors"
)

// tx validator errors
var (
	ErrPrevScriptCount = errors.New("Previous script count does not match input count")
	ErrValidatorClosed = errors.New("Tx validator is closed")
	ErrNilTx           = errors.New("Tx to validate is nil")
)

var validatedInputMeter = metrics.NewMeter("script/validator/inputs")

// TxValidateItem holds a transaction along with which input to validate.
type TxValidateItem struct {
	TxInIndex int
	TxIn      *types.TxIn
	Tx        *types.Transaction
	// PrevScriptPubKey is the locking script of the output TxIn spends.
	PrevScriptPubKey Script
}

// TxValidator verifies the inputs of a transaction concurrently. Each input
// is evaluated on its own stack.
type TxValidator struct {
	engine  *Engine
	workers int
	proc    goprocess.Process
}

// NewTxValidator creates a validator whose workers live under parent.
// workers <= 0 means one per CPU.
func NewTxValidator(parent goprocess.Process, engine *Engine, workers int) *TxValidator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &TxValidator{
		engine:  engine,
		workers: workers,
		proc:    goprocess.WithParent(parent),
	}
}

// Validate verifies every input of tx, prevScripts[i] being the locking
// script input i spends. It returns the first failure and stops the
// remaining work.
func (v *TxValidator) Validate(tx *types.Transaction, prevScripts []Script) error {
	select {
	case <-v.proc.Closing():
		return ErrValidatorClosed
	default:
	}
	if tx == nil {
		return ErrNilTx
	}
	if len(prevScripts) != len(tx.Vin) {
		return errors.Wrapf(ErrPrevScriptCount, "%d scripts for %d inputs", len(prevScripts), len(tx.Vin))
	}
	if len(tx.Vin) == 0 {
		return nil
	}

	items := make(chan *TxValidateItem)
	results := make(chan error, len(tx.Vin))

	proc := goprocess.WithParent(v.proc)
	defer proc.Close()

	workers := v.workers
	if workers > len(tx.Vin) {
		workers = len(tx.Vin)
	}
	for w := 0; w < workers; w++ {
		proc.Go(func(p goprocess.Process) {
			for {
				select {
				case item, ok := <-items:
					if !ok {
						return
					}
					results <- v.validateItem(item)
				case <-p.Closing():
					return
				}
			}
		})
	}

	proc.Go(func(p goprocess.Process) {
		defer close(items)
		for i, txIn := range tx.Vin {
			item := &TxValidateItem{
				TxInIndex:        i,
				TxIn:             txIn,
				Tx:               tx,
				PrevScriptPubKey: prevScripts[i],
			}
			select {
			case items <- item:
			case <-p.Closing():
				return
			}
		}
	})

	for range tx.Vin {
		select {
		case err := <-results:
			if err != nil {
				return err
			}
		case <-proc.Closing():
			return ErrValidatorClosed
		}
	}
	return nil
}

func (v *TxValidator) validateItem(item *TxValidateItem) error {
	validatedInputMeter.Mark(1)
	err := v.engine.VerifyScript(item.TxIn.ScriptSig, item.PrevScriptPubKey, item.Tx, item.TxInIndex)
	if err != nil {
		logger.Debugf("Input %d failed validation: %v", item.TxInIndex, err)
		return errors.Wrapf(err, "input %d", item.TxInIndex)
	}
	return nil
}

// Stop terminates the validator; in-flight Validate calls return
// ErrValidatorClosed.
func (v *TxValidator) Stop() error {
	return v.proc.Close()
}
