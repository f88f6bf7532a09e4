// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import "errors"

// error
var (
	// privkey.go
	ErrInvalidPrivateKeyLength = errors.New("Invalid private key length")

	// pubkey.go
	ErrInvalidPublicKey = errors.New("Invalid public key")

	// signature.go
	ErrInvalidSignature = errors.New("Invalid DER signature")
	ErrInvalidHashSize  = errors.New("Message hash must be 32 bytes")

	// base58.go
	ErrInvalidBase58Encoding = errors.New("Invalid base58 encoding")
	ErrBase58Checksum        = errors.New("Base58 checksum mismatch")
)
