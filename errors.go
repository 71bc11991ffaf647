// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package tdc

import (
	"errors"
	"fmt"
)

// Sentinel errors for container framing faults.
var (
	// ErrBadMagic is returned when the file does not begin with "TPDC".
	ErrBadMagic = errors.New("tdc: bad magic")
	// ErrUnsupportedVersion is returned for a header_version outside {0x0100, 0x0200, 0x0300}.
	ErrUnsupportedVersion = errors.New("tdc: unsupported header version")
	// ErrHeaderOverrun is returned when the fixed header plus thing table runs past data_offset.
	ErrHeaderOverrun = errors.New("tdc: header overruns data_offset")
	// ErrNegativePadding is returned when data_offset is smaller than the fixed header requires.
	ErrNegativePadding = errors.New("tdc: negative header padding")
	// ErrTruncatedRecord is returned when a block record's framing or body is cut short.
	ErrTruncatedRecord = errors.New("tdc: truncated block record")
	// ErrCrcMismatch is returned when a decompressed block's CRC does not match the stored CRC.
	ErrCrcMismatch = errors.New("tdc: CRC mismatch")
	// ErrInvalidBlockIndex is returned when DecodeBlock is called with an out-of-range index.
	ErrInvalidBlockIndex = errors.New("tdc: invalid block index")
	// ErrShortLengthField is returned in strict mode when a block's reserved length-field low byte is nonzero.
	ErrShortLengthField = errors.New("tdc: nonzero reserved low byte in block length field")
	// ErrRecordTooLarge is returned when a record's compressed body exceeds MaxRecordBodySize.
	ErrRecordTooLarge = errors.New("tdc: record body exceeds MaxRecordBodySize")
)

// ParserError wraps a container-level framing fault with the byte offset at
// which it was detected.
type ParserError struct {
	Offset int
	Err    error
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("tdc: error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParserError) Unwrap() error { return e.Err }

func parseErr(offset int, err error) error {
	return &ParserError{Offset: offset, Err: err}
}
