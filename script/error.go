// Copyright (c) 2018 ContentBox Authors.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package script

import (
	"github.com/pkg/errors"
)

// error
var (
	// resource limits
	ErrScriptTooLarge     = errors.New("Script size exceeds limit")
	ErrOperandTooLarge    = errors.New("Push operand size exceeds limit")
	ErrOpCountExceeded    = errors.New("Too many operations in script")
	ErrStackDepthExceeded = errors.New("Stack depth exceeds limit")

	// opcode rejection
	ErrDisabledOpcode = errors.New("Disabled opcode")
	ErrBadOpcode      = errors.New("Bad opcode")

	// execution
	ErrMalformedControlFlow      = errors.New("Unbalanced conditional")
	ErrInvalidStackOperation     = errors.New("Invalid stack operation")
	ErrVerifyFailed              = errors.New("Verification failure")
	ErrScriptEqualVerify         = errors.New("Equality verification failure")
	ErrScriptSignatureVerifyFail = errors.New("Signature verification failure")
	ErrOpReturn                  = errors.New("Encounter OP_RETURN")
	ErrNumericDecode             = errors.New("Numeric operand exceeds 4 bytes")
	ErrInvalidPubKeyCount        = errors.New("Invalid public key count")
	ErrInvalidSigCount           = errors.New("Invalid signature count")

	// tokenizer
	ErrTokenize = errors.New("Malformed push data")

	// sighash
	ErrInputIndexOutOfBound  = errors.New("input index out of bound")
	ErrOutputIndexOutOfBound = errors.New("output index out of bound for SIGHASH_SINGLE")

	// verification outcome
	ErrEvalFalse = errors.New("Script evaluated to false")
)

// IsVerifyFailure reports whether err belongs to the verification failure
// class: VERIFY-style opcodes returning false or OP_RETURN being reached.
func IsVerifyFailure(err error) bool {
	switch errors.Cause(err) {
	case ErrVerifyFailed, ErrScriptEqualVerify, ErrScriptSignatureVerifyFail, ErrOpReturn:
		return true
	}
	return false
}

// errorCategories names each failure class for metrics and logs.
var errorCategories = map[error]string{
	ErrScriptTooLarge:            "ScriptTooLarge",
	ErrOperandTooLarge:           "OperandTooLarge",
	ErrOpCountExceeded:           "OpCountExceeded",
	ErrStackDepthExceeded:        "StackDepthExceeded",
	ErrDisabledOpcode:            "DisabledOpcode",
	ErrBadOpcode:                 "UnknownOrUnsupportedOpcode",
	ErrMalformedControlFlow:      "MalformedControlFlow",
	ErrInvalidStackOperation:     "StackUnderflow",
	ErrVerifyFailed:              "VerifyFailure",
	ErrScriptEqualVerify:         "VerifyFailure",
	ErrScriptSignatureVerifyFail: "VerifyFailure",
	ErrOpReturn:                  "VerifyFailure",
	ErrNumericDecode:             "NumericDecodeFailure",
	ErrInvalidPubKeyCount:        "InvalidMultiSigCount",
	ErrInvalidSigCount:           "InvalidMultiSigCount",
	ErrTokenize:                  "TokenizeError",
	ErrInputIndexOutOfBound:      "SighashIndexOutOfRange",
	ErrOutputIndexOutOfBound:     "SighashIndexOutOfRange",
	ErrEvalFalse:                 "EvalFalse",
}

// ErrorCategory returns the failure class of an error returned by this
// package, or "Other".
func ErrorCategory(err error) string {
	if category, ok := errorCategories[errors.Cause(err)]; ok {
		return category
	}
	return "Other"
}
