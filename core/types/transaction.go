// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"bytes"
	"errors"
	"io"

	"github.com/BOXFoundation/boxscript/crypto"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// nullValue is the value of a nulled output.
const nullValue = -1

// Define error message
var (
	ErrTrailingData = errors.New("trailing data after tx")
)

// Transaction defines a transaction.
type Transaction struct {
	Version  int32
	Vin      []*TxIn
	Vout     []*TxOut
	LockTime uint32
}

// TxOut defines a transaction output.
type TxOut struct {
	Value        int64
	ScriptPubKey []byte
}

// TxIn defines a transaction input.
type TxIn struct {
	PrevOutPoint OutPoint
	ScriptSig    []byte
	Sequence     uint32
}

// OutPoint defines a data type that is used to track previous transaction outputs.
type OutPoint struct {
	Hash  crypto.HashType
	Index uint32
}

// NewTx generates a new Transaction without inputs and outputs
func NewTx(ver int32, lockTime uint32) *Transaction {
	return &Transaction{
		Version:  ver,
		LockTime: lockTime,
	}
}

// NewOutPoint constructs a OutPoint
func NewOutPoint(hash *crypto.HashType, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// NewTxIn constructs a TxIn
func NewTxIn(prevOutPoint *OutPoint, scriptSig []byte, seq uint32) *TxIn {
	return &TxIn{
		PrevOutPoint: *prevOutPoint,
		ScriptSig:    scriptSig,
		Sequence:     seq,
	}
}

// NewTxOut constructs a TxOut
func NewTxOut(value int64, scriptPubKey []byte) *TxOut {
	return &TxOut{
		Value:        value,
		ScriptPubKey: scriptPubKey,
	}
}

// AppendVin appends tx inputs
func (tx *Transaction) AppendVin(in ...*TxIn) *Transaction {
	tx.Vin = append(tx.Vin, in...)
	return tx
}

// AppendVout appends tx outputs
func (tx *Transaction) AppendVout(out ...*TxOut) *Transaction {
	tx.Vout = append(tx.Vout, out...)
	return tx
}

// Copy returns a deep copy of tx; no slice is shared with the receiver.
func (tx *Transaction) Copy() *Transaction {
	newTx := &Transaction{
		Version:  tx.Version,
		Vin:      make([]*TxIn, 0, len(tx.Vin)),
		Vout:     make([]*TxOut, 0, len(tx.Vout)),
		LockTime: tx.LockTime,
	}
	for _, txIn := range tx.Vin {
		newTx.Vin = append(newTx.Vin, txIn.Copy())
	}
	for _, txOut := range tx.Vout {
		newTx.Vout = append(newTx.Vout, txOut.Copy())
	}
	return newTx
}

// Copy returns a deep copy of the input.
func (txin *TxIn) Copy() *TxIn {
	return &TxIn{
		PrevOutPoint: txin.PrevOutPoint,
		ScriptSig:    copyBytes(txin.ScriptSig),
		Sequence:     txin.Sequence,
	}
}

// Copy returns a deep copy of the output.
func (txout *TxOut) Copy() *TxOut {
	return &TxOut{
		Value:        txout.Value,
		ScriptPubKey: copyBytes(txout.ScriptPubKey),
	}
}

// SetNull marks the output as unset: value -1 and an empty script.
func (txout *TxOut) SetNull() {
	txout.Value = nullValue
	txout.ScriptPubKey = []byte{}
}

// IsNull reports whether the output has been nulled by SetNull.
func (txout *TxOut) IsNull() bool {
	return txout.Value == nullValue
}

////////////////////////////////////////////////////////////////////////////////

// toMsgTx converts tx into its btcd wire representation.
func (tx *Transaction) toMsgTx() *wire.MsgTx {
	msg := wire.NewMsgTx(tx.Version)
	msg.LockTime = tx.LockTime
	for _, txIn := range tx.Vin {
		prevOut := wire.NewOutPoint((*chainhash.Hash)(&txIn.PrevOutPoint.Hash), txIn.PrevOutPoint.Index)
		msgIn := wire.NewTxIn(prevOut, txIn.ScriptSig, nil)
		msgIn.Sequence = txIn.Sequence
		msg.AddTxIn(msgIn)
	}
	for _, txOut := range tx.Vout {
		msg.AddTxOut(wire.NewTxOut(txOut.Value, txOut.ScriptPubKey))
	}
	return msg
}

// fromMsgTx fills tx from its btcd wire representation.
func (tx *Transaction) fromMsgTx(msg *wire.MsgTx) {
	tx.Version = msg.Version
	tx.LockTime = msg.LockTime
	tx.Vin = make([]*TxIn, 0, len(msg.TxIn))
	for _, msgIn := range msg.TxIn {
		tx.Vin = append(tx.Vin, &TxIn{
			PrevOutPoint: OutPoint{
				Hash:  crypto.HashType(msgIn.PreviousOutPoint.Hash),
				Index: msgIn.PreviousOutPoint.Index,
			},
			ScriptSig: msgIn.SignatureScript,
			Sequence:  msgIn.Sequence,
		})
	}
	tx.Vout = make([]*TxOut, 0, len(msg.TxOut))
	for _, msgOut := range msg.TxOut {
		tx.Vout = append(tx.Vout, &TxOut{
			Value:        msgOut.Value,
			ScriptPubKey: msgOut.PkScript,
		})
	}
}

// Serialize writes tx in the legacy (non-witness) bitcoin wire layout.
func (tx *Transaction) Serialize(w io.Writer) error {
	return tx.toMsgTx().SerializeNoWitness(w)
}

// Deserialize decodes a tx from r in the layout written by Serialize.
func (tx *Transaction) Deserialize(r io.Reader) error {
	msg := new(wire.MsgTx)
	if err := msg.DeserializeNoWitness(r); err != nil {
		return err
	}
	tx.fromMsgTx(msg)
	return nil
}

////////////////////////////////////////////////////////////////////////////////

// Marshal method marshal tx object to binary
func (tx *Transaction) Marshal() (data []byte, err error) {
	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal method unmarshal binary data to tx object
func (tx *Transaction) Unmarshal(data []byte) error {
	r := bytes.NewReader(data)
	if err := tx.Deserialize(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return ErrTrailingData
	}
	return nil
}

// TxHash returns the double sha256 of the serialized tx
func (tx *Transaction) TxHash() (*crypto.HashType, error) {
	data, err := tx.Marshal()
	if err != nil {
		return nil, err
	}
	hash := crypto.DoubleHashH(data)
	return &hash, nil
}

// SerializeSize return tx size.
func (tx *Transaction) SerializeSize() (int, error) {
	serializedTx, err := tx.Marshal()
	if err != nil {
		return 0, err
	}
	return len(serializedTx), nil
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
