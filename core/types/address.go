// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"

	"github.com/BOXFoundation/boxscript/crypto"
	"golang.org/x/crypto/ripemd160"
)

// address errors
var (
	ErrInvalidPKHash        = errors.New("Pubkey hash must be 20 bytes")
	ErrInvalidAddressString = errors.New("Invalid address string")
)

// addressPrefixLen is the length of the type prefix of an encoded address.
const addressPrefixLen = 2

var addressTypeP2PKHPrefix = [addressPrefixLen]byte{0x13, 0x26}

// AddressPubKeyHash identifies the owner of a pay-to-pubkey-hash output by
// the hash160 of a public key.
type AddressPubKeyHash struct {
	hash [ripemd160.Size]byte
}

// NewAddressPubKeyHash returns the address of a 20 byte pubkey hash.
func NewAddressPubKeyHash(pkHash []byte) (*AddressPubKeyHash, error) {
	if len(pkHash) != ripemd160.Size {
		return nil, ErrInvalidPKHash
	}
	addr := &AddressPubKeyHash{}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// NewAddressFromPubKey returns the address of a public key.
func NewAddressFromPubKey(pubKey *crypto.PublicKey) (*AddressPubKeyHash, error) {
	return NewAddressPubKeyHash(crypto.Hash160(pubKey.Serialize()))
}

// NewAddress decodes an address from its base58 string form.
func NewAddress(in string) (*AddressPubKeyHash, error) {
	addr := &AddressPubKeyHash{}
	if err := addr.SetString(in); err != nil {
		return nil, err
	}
	return addr, nil
}

// Hash160 returns the pubkey hash locked to by P2PKH scripts.
func (a *AddressPubKeyHash) Hash160() []byte {
	return a.hash[:]
}

// String returns the base58 check encoding of the address.
func (a *AddressPubKeyHash) String() string {
	b := make([]byte, 0, addressPrefixLen+ripemd160.Size)
	b = append(b, addressTypeP2PKHPrefix[:]...)
	b = append(b, a.hash[:]...)
	return crypto.Base58CheckEncode(b)
}

// SetString decodes a base58 check encoded address into a.
func (a *AddressPubKeyHash) SetString(in string) error {
	raw, err := crypto.Base58CheckDecode(in)
	if err != nil {
		return err
	}
	if len(raw) != addressPrefixLen+ripemd160.Size {
		return ErrInvalidAddressString
	}
	var prefix [addressPrefixLen]byte
	copy(prefix[:], raw)
	if prefix != addressTypeP2PKHPrefix {
		return ErrInvalidAddressString
	}
	copy(a.hash[:], raw[addressPrefixLen:])
	return nil
}
