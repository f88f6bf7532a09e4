// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/BOXFoundation/boxscript/crypto"
)

// opHash replaces the top element with its digest: (in -- hash)
func (vm *vm) opHash(op OpCode) error {
	top, err := vm.dstack.pop()
	if err != nil {
		return err
	}

	var digest []byte
	switch op {
	case OPRIPEMD160:
		digest = crypto.Ripemd160(top)
	case OPSHA1:
		digest = crypto.Sha1(top)
	case OPSHA256:
		digest = crypto.Sha256(top)
	case OPHASH160:
		digest = crypto.Hash160(top)
	case OPHASH256:
		digest = crypto.DoubleHashB(top)
	default:
		return ErrBadOpcode
	}
	vm.dstack.push(digest)
	return nil
}

// subScript returns the part of the script signatures commit to: everything
// after the last executed OP_CODESEPARATOR, without the given signatures and
// without any OP_CODESEPARATOR.
func (vm *vm) subScript(sigs ...[]byte) Script {
	script := append(Script{}, vm.script[vm.codeSepIdx:]...)
	for _, sig := range sigs {
		script = removeOpcodeByData(script, sig)
	}
	return removeOpcode(script, OPCODESEPARATOR)
}

// checkSig verifies a signature, whose last byte is the hash type, against
// the transaction input being evaluated.
func (vm *vm) checkSig(sigBytes, pubKeyBytes []byte, scriptCode Script) bool {
	if len(sigBytes) == 0 {
		return false
	}
	hashType := SigHashType(sigBytes[len(sigBytes)-1])
	if vm.hashType != 0 && hashType != vm.hashType {
		logger.Debugf("Signature hash type %s does not match required %s", hashType, vm.hashType)
		return false
	}
	sigBytes = sigBytes[:len(sigBytes)-1]

	sigHash, err := CalcSignatureHash(scriptCode, vm.tx, vm.txInIdx, hashType)
	if err != nil {
		logger.Debugf("Calculate signature hash failed: %v", err)
		return false
	}

	if vm.sigCache != nil && vm.sigCache.Exists(*sigHash, sigBytes, pubKeyBytes) {
		return true
	}

	sig, err := crypto.SigFromBytes(sigBytes)
	if err != nil {
		logger.Debugf("Deserialize signature failed: %v", err)
		return false
	}
	publicKey, err := crypto.PublicKeyFromBytes(pubKeyBytes)
	if err != nil {
		logger.Debugf("Deserialize public key failed: %v", err)
		return false
	}
	if !sig.VerifySignature(publicKey, sigHash[:]) {
		return false
	}

	if vm.sigCache != nil {
		vm.sigCache.Add(*sigHash, sigBytes, pubKeyBytes)
	}
	return true
}

// opCheckSig handles OP_CHECKSIG and OP_CHECKSIGVERIFY: (sig pubkey -- bool)
func (vm *vm) opCheckSig(op OpCode) error {
	stack := vm.dstack
	if stack.Size() < 2 {
		return ErrInvalidStackOperation
	}
	pubKey, _ := stack.pop()
	sig, _ := stack.pop()

	isVerified := vm.checkSig(sig, pubKey, vm.subScript(sig))
	stack.pushBool(isVerified)

	if op == OPCHECKSIGVERIFY {
		if !isVerified {
			return ErrScriptSignatureVerifyFail
		}
		stack.pop()
	}
	return nil
}

// opCheckMultiSig handles OP_CHECKMULTISIG and OP_CHECKMULTISIGVERIFY:
// (dummy [sig ...] numsigs [pubkey ...] numpubkeys -- bool)
//
// Signatures must appear in the same order as their public keys. One extra
// element below the signatures is consumed and ignored.
func (vm *vm) opCheckMultiSig(op OpCode) error {
	stack := vm.dstack

	// i is the 1-based depth of the element being read
	i := 1
	numKeys, err := stack.peekNum(i - 1)
	if err != nil {
		return err
	}
	if numKeys < 0 || numKeys > MaxPubKeysPerMultiSig {
		return ErrInvalidPubKeyCount
	}
	vm.numOps += int(numKeys)
	if vm.numOps > MaxOpsPerScript {
		return ErrOpCountExceeded
	}

	i++
	keyIdx := i
	i += int(numKeys)
	numSigs, err := stack.peekNum(i - 1)
	if err != nil {
		return err
	}
	if numSigs < 0 || numSigs > numKeys {
		return ErrInvalidSigCount
	}

	i++
	sigIdx := i
	i += int(numSigs)
	if stack.Size() < i {
		return ErrInvalidStackOperation
	}

	sigs := make([][]byte, 0, numSigs)
	for k := 0; k < int(numSigs); k++ {
		sig, _ := stack.peek(sigIdx + k - 1)
		sigs = append(sigs, sig)
	}
	scriptCode := vm.subScript(sigs...)

	success := true
	for keysLeft, sigsLeft := int(numKeys), int(numSigs); success && sigsLeft > 0; {
		sig, _ := stack.peek(sigIdx - 1)
		pubKey, _ := stack.peek(keyIdx - 1)

		if vm.checkSig(sig, pubKey, scriptCode) {
			sigIdx++
			sigsLeft--
		}
		keyIdx++
		keysLeft--

		// If there are more signatures left than keys left,
		// then too many signatures have failed
		if sigsLeft > keysLeft {
			success = false
		}
	}

	for ; i > 0; i-- {
		stack.pop()
	}
	stack.pushBool(success)

	if op == OPCHECKMULTISIGVERIFY {
		if !success {
			return ErrScriptSignatureVerifyFail
		}
		stack.pop()
	}
	return nil
}
