// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package crypto

import (
	"bytes"
	"encoding/hex"
	"reflect"
	"testing"
)

// test RIPEMD160 hash
func TestRipemd160(t *testing.T) {
	// empty string
	expectDigest := []byte{156, 17, 133, 165, 197, 233, 252, 84, 97, 40, 8, 151, 126, 232, 245, 72, 178, 37, 141, 49}
	emptyStringDigest := Ripemd160([]byte(""))
	if !reflect.DeepEqual(emptyStringDigest, expectDigest) {
		t.Errorf("Ripemd160 digest = %v, expects %v", emptyStringDigest, expectDigest)
	}
}

// test SHA256 hash
func TestSha256(t *testing.T) {
	// empty string
	expectDigest := []byte{227, 176, 196, 66, 152, 252, 28, 20, 154, 251, 244, 200, 153, 111, 185, 36, 39, 174, 65, 228, 100, 155, 147, 76, 164, 149, 153, 27, 120, 82, 184, 85}
	emptyStringDigest := Sha256([]byte(""))
	if !reflect.DeepEqual(emptyStringDigest, expectDigest) {
		t.Errorf("Sha256 digest = %v, expects %v", emptyStringDigest, expectDigest)
	}
}

func TestSha1(t *testing.T) {
	expect := "da39a3ee5e6b4b0d3255bfef95601890afd80709"
	if got := hex.EncodeToString(Sha1(nil)); got != expect {
		t.Errorf("Sha1 digest = %s, expects %s", got, expect)
	}
}

func TestHash160(t *testing.T) {
	data := []byte("contentbox")
	if !bytes.Equal(Hash160(data), Ripemd160(Sha256(data))) {
		t.Error("Hash160 is not ripemd160(sha256(data))")
	}
}

func TestDoubleHash(t *testing.T) {
	data := []byte("blockchain")
	h := DoubleHashH(data)
	if !bytes.Equal(h[:], DoubleHashB(data)) {
		t.Error("DoubleHashH and DoubleHashB disagree")
	}
	if !bytes.Equal(h[:], Sha256(Sha256(data))) {
		t.Error("DoubleHashH is not sha256(sha256(data))")
	}
}

func TestSetString(t *testing.T) {
	hexString := "7c3040dcb540cc57f8c4ed08dbcfba807434dc861c94a1c161b099f58d9ebe6d"
	hash := &HashType{}
	hash.SetString(hexString)
	if hash.String() != hexString {
		t.Errorf("Error setting string to hash\nexpected: %s\nactual: %s", hexString, hash.String())
	}
}

func TestHashType_SetString(t *testing.T) {
	type args struct {
		str string
	}
	tests := []struct {
		name    string
		hash    *HashType
		args    args
		wantErr bool
	}{
		{
			name:    "error encoding",
			hash:    &HashType{},
			args:    args{"123x"},
			wantErr: true,
		},
		{
			name:    "incorrect length",
			hash:    &HashType{},
			args:    args{"1234"},
			wantErr: true,
		},
		{
			name:    "normal hash",
			hash:    &HashType{},
			args:    args{"7c3040dcb540cc57f8c4ed08dbcfba807434dc861c94a1c161b099f58d9ebe6d"},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.hash.SetString(tt.args.str); (err != nil) != tt.wantErr {
				t.Errorf("HashType.SetString() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHashType_IsEqual(t *testing.T) {
	var a, b HashType
	b[0] = 1
	if !a.IsEqual(&a) || a.IsEqual(&b) || a.IsEqual(nil) {
		t.Error("HashType.IsEqual returns unexpected result")
	}
	var nilHash *HashType
	if !nilHash.IsEqual(nil) {
		t.Error("nil hashes should be equal")
	}
}

func Test_reverseBytes(t *testing.T) {
	type args struct {
		buf       []byte
		bufExpect []byte
	}
	tests := []struct {
		name string
		args args
	}{
		{
			name: "empty",
			args: args{
				buf:       []byte{},
				bufExpect: []byte{},
			},
		},
		{
			name: "size 1",
			args: args{
				buf:       []byte{0x01},
				bufExpect: []byte{0x01},
			},
		},
		{
			name: "size 3",
			args: args{
				buf:       []byte{0x01, 0x02, 0x03},
				bufExpect: []byte{0x03, 0x02, 0x01},
			},
		},
		{
			name: "size 4",
			args: args{
				buf:       []byte{0x01, 0x02, 0x03, 0x04},
				bufExpect: []byte{0x04, 0x03, 0x02, 0x01},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reverseBytes(tt.args.buf)
			if !bytes.Equal(tt.args.buf, tt.args.bufExpect) {
				t.Errorf("reverseBytes actual = %v, want %v", tt.args.buf, tt.args.bufExpect)
			}
		})
	}
}
