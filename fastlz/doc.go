// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

/*
Package fastlz implements the FastLZ-family block codec used by the TDC
(TPDC) capture container: a bit-exact LZ77-style format with two header
variants ("short" and "long"), variable-length literal and match
encodings, 0xFF-chain length overflow, and a self-referential match copy
whose source may overlap the destination being written.

# Decompress

	out, err := fastlz.Decompress(compressed, nil)

A *DecompressionError carries the compressed-input cursor offset at
which decoding failed:

	var derr *fastlz.DecompressionError
	if errors.As(err, &derr) {
		log.Printf("bad block at compressed offset %d: %v", derr.Offset, derr.Err)
	}

# Compress

	out := fastlz.Compress(data, nil)

Compress(data, nil) uses DefaultCompressOptions (Level 1), which runs the
greedy hash-matching encoder. Pass &CompressOptions{Level: 0} for the
literal-only reference encoder instead: simpler, guaranteed to round-trip,
but never emits a backreference. Either way the output only ever uses the
constructs the decoder defines and round-trips identically.
*/
package fastlz
