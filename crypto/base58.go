// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"bytes"

	"github.com/btcsuite/btcutil/base58"
)

// checksumLen is the number of double sha256 bytes appended by
// Base58CheckEncode.
const checksumLen = 4

// Base58CheckEncode appends a 4 byte double sha256 checksum to in and
// encodes the result in base58.
func Base58CheckEncode(in []byte) string {
	b := make([]byte, 0, len(in)+checksumLen)
	b = append(b, in...)
	b = append(b, Checksum(in)...)
	return base58.Encode(b)
}

// Checksum returns the first 4 bytes of the double sha256 of input.
func Checksum(input []byte) []byte {
	return DoubleHashB(input)[:checksumLen]
}

// Base58CheckDecode is the inverse of Base58CheckEncode. The payload must
// not be empty.
func Base58CheckDecode(in string) ([]byte, error) {
	raw := base58.Decode(in)
	if len(raw) <= checksumLen {
		return nil, ErrInvalidBase58Encoding
	}
	sep := len(raw) - checksumLen
	content := raw[:sep:sep]
	if !bytes.Equal(Checksum(content), raw[sep:]) {
		return nil, ErrBase58Checksum
	}
	return content, nil
}
