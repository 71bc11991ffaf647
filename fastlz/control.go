// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

// Header variants selected by the top three bits of a block's first
// control byte (spec §4.2.1). Any other value is ErrUnsupportedHeader.
const (
	variantShort = 0b000 // match-length overflow: one extra byte
	variantLong  = 0b001 // match-length overflow: 0xFF-chain; offset has its own extension
)

// longOffsetExtendSentinel is the long-variant offset value that signals a
// two-byte big-endian extension follows (spec §4.2.2).
const longOffsetExtendSentinel = 0x1FFF

// maxLiteralRun is the largest literal run a single control byte's low five
// bits can address (low5 in [0,31], length = low5+1).
const maxLiteralRun = 32

// extendedMatchLenCode is the high-three-bits value (7) that signals the
// match length continues into one or more extension bytes.
const extendedMatchLenCode = 7

// splitControlByte splits a control byte into its high-3 and low-5 fields.
func splitControlByte(b byte) (high3, low5 int) {
	return int(b >> 5), int(b & 0x1F)
}

// literalOpcode builds a literal-run control byte for a run of length n,
// where 1 <= n <= maxLiteralRun.
func literalOpcode(n int) byte {
	return byte(n - 1)
}

// opcodeByte truncates v to the single byte it represents on the wire.
// Callers only ever pass values already known to fit in 8 bits; this
// exists so truncation reads as intentional at call sites.
func opcodeByte(v int) byte {
	return byte(v)
}
