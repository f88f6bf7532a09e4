// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/ripemd160"
)

const (
	// HashSize is length of digest
	HashSize = 32
)

// HashType is renamed hash type
type HashType [HashSize]byte

// String returns the Hash as the hexadecimal string of the byte-reversed
// hash.
func (hash HashType) String() string {
	reverseBytes(hash[:])
	return hex.EncodeToString(hash[:])
}

// SetString sets the hash from its byte-reversed hexadecimal form, the
// inverse of String.
func (hash *HashType) SetString(hashStr string) error {
	buf, err := hex.DecodeString(hashStr)
	if err != nil {
		return err
	}
	if len(buf) != HashSize {
		return fmt.Errorf("Incorrect hash string length : %d", len(buf))
	}
	reverseBytes(buf)
	copy(hash[:], buf)
	return nil
}

// IsEqual returns true if target is the same as hash.
func (hash *HashType) IsEqual(target *HashType) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

// SetBytes convert type []byte to HashType
func (hash *HashType) SetBytes(hashBytes []byte) error {
	if len(hashBytes) != HashSize {
		return fmt.Errorf("Incorrect hash length : %v", hashBytes)
	}
	copy(hash[:], hashBytes)
	return nil
}

// Ripemd160 calculates the RIPEMD160 digest of buf
func Ripemd160(buf []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Sha1 calculates the sha1 digest of buf
func Sha1(buf []byte) []byte {
	digest := sha1.Sum(buf)
	return digest[:]
}

// Sha256 calculates the sha256 digest of buf
func Sha256(buf []byte) []byte {
	digest := sha256.Sum256(buf)
	return digest[:]
}

// Hash160 calculates the hash ripemd160(sha256(b)).
func Hash160(buf []byte) []byte {
	return Ripemd160(Sha256(buf))
}

// DoubleHashB calculates hash(hash(b)) and returns the resulting bytes.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates hash(hash(b)) and returns the resulting bytes as a hash.
func DoubleHashH(b []byte) HashType {
	first := sha256.Sum256(b)
	return HashType(sha256.Sum256(first[:]))
}

func reverseBytes(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
