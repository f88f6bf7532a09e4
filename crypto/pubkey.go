// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"github.com/btcsuite/btcd/btcec"
)

// PublicKey is a btcec.PublicKey wrapper
type PublicKey btcec.PublicKey

// PublicKeyFromBytes parses a compressed, uncompressed or hybrid SEC encoded
// public key.
func PublicKeyFromBytes(publicKeyBytes []byte) (*PublicKey, error) {
	publicKey, err := btcec.ParsePubKey(publicKeyBytes, curve)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return (*PublicKey)(publicKey), nil
}

// Serialize get the compressed SEC format of public key
func (p *PublicKey) Serialize() []byte {
	return (*btcec.PublicKey)(p).SerializeCompressed()
}
