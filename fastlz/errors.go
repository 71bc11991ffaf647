// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by DecompressionError. Callers should match on
// these with errors.Is rather than on DecompressionError.Err directly.
var (
	// ErrInputUnderflow is returned when the decoder needs more compressed
	// bytes than remain in the input.
	ErrInputUnderflow = errors.New("fastlz: compressed input underflow")
	// ErrUnsupportedHeader is returned when the top three bits of the first
	// control byte select neither the short (000) nor long (001) variant.
	ErrUnsupportedHeader = errors.New("fastlz: unsupported header byte")
	// ErrInvalidBackreference is returned when a match's lookback distance
	// points before the start of the output buffer.
	ErrInvalidBackreference = errors.New("fastlz: backreference before start of output")
	// ErrOutputTooLarge is returned when decompressed output would exceed
	// the configured MaxOutputSize. The format has no inherent bound; this
	// guards against pathological or malicious input.
	ErrOutputTooLarge = errors.New("fastlz: decompressed output exceeds MaxOutputSize")
)

// DecompressionError wraps a decoding failure with the byte offset into the
// compressed input at which the failure was detected, per the "input
// underflow at any read" / "invalid backreference" / "unsupported header"
// failure modes the format defines.
type DecompressionError struct {
	// Offset is the position of the compressed-input cursor at the time of
	// the fault.
	Offset int
	// Err is one of the sentinel errors above.
	Err error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("fastlz: error at compressed offset %d: %v", e.Offset, e.Err)
}

// Unwrap allows errors.Is(err, ErrInputUnderflow) etc. to see through
// DecompressionError.
func (e *DecompressionError) Unwrap() error {
	return e.Err
}

func decodeErr(offset int, err error) error {
	return &DecompressionError{Offset: offset, Err: err}
}
