// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

// Compress compresses data into a single FastLZ-family block, per spec
// §4.2.3. opts may be nil (uses DefaultCompressOptions). The output is
// always decodable by Decompress; Level 0 uses the literal-only reference
// encoder, Level >= 1 (the default) searches for backreferences.
func Compress(data []byte, opts *CompressOptions) []byte {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	variant := variantShort
	if opts.LongVariant {
		variant = variantLong
	}

	if len(data) == 0 {
		// An empty block compresses to zero bytes: Decompress's main loop
		// never executes, so no header byte is needed or possible.
		return nil
	}

	if opts.Level <= 0 {
		return compressLiteralOnly(data, variant)
	}

	return compressGreedy(data, variant, opts.Level)
}

// compressLiteralOnly is the reference encoder from spec §4.2.3: emit a
// header literal for the first up-to-32 bytes, then literal-run opcodes of
// up to 32 bytes until the input is exhausted. Trivially round-trip
// correct, no matching.
func compressLiteralOnly(data []byte, variant int) []byte {
	out := make([]byte, 0, len(data)+len(data)/maxLiteralRun+1)

	n := len(data)
	runLen := min(maxLiteralRun, n)
	out = append(out, opcodeByte(variant<<5|(runLen-1)))
	out = append(out, data[:runLen]...)

	for pos := runLen; pos < n; pos += runLen {
		runLen = min(maxLiteralRun, n-pos)
		out = append(out, literalOpcode(runLen))
		out = append(out, data[pos:pos+runLen]...)
	}

	return out
}

// compressGreedy emits literal runs and backreferences chosen by a
// hash-chain match finder (match.go), still only ever emitting the
// constructs spec §4.2.2 defines.
func compressGreedy(data []byte, variant, level int) []byte {
	params := paramsForLevel(level)
	m := acquireMatcher(data, params, variant == variantLong)
	defer releaseMatcher(m)

	out := make([]byte, 0, len(data))
	headerWritten := false
	litStart := 0
	n := len(data)

	flushLiterals := func(upTo int) {
		for litStart < upTo {
			end := min(litStart+maxLiteralRun, upTo)
			runLen := end - litStart
			if !headerWritten {
				out = append(out, opcodeByte(variant<<5|(runLen-1)))
				headerWritten = true
			} else {
				out = append(out, literalOpcode(runLen))
			}
			out = append(out, data[litStart:end]...)
			litStart = end
		}
	}

	for pos := 0; pos < n; {
		dist, length := m.findMatch(pos)
		m.insert(pos)
		if length < minMatchLen {
			pos++
			continue
		}

		flushLiterals(pos)
		out = emitMatch(out, variant, dist, length)

		for i := pos + 1; i < pos+length && i < n; i++ {
			m.insert(i)
		}
		pos += length
		litStart = pos
	}

	flushLiterals(n)

	return out
}

// emitMatch appends the control byte(s) for a backreference of the given
// distance and length, per spec §4.2.2 (the inverse of Decompress's match
// decoding).
func emitMatch(out []byte, variant, distance, length int) []byte {
	offset := distance - 1
	matchLenCode := length - 2

	high3 := matchLenCode
	if high3 > extendedMatchLenCode {
		high3 = extendedMatchLenCode
	}

	// The 13-bit wire offset field can only hold values up to the sentinel
	// 0x1FFF. In the long variant an offset at or beyond that is written as
	// the sentinel itself plus a big-endian 2-byte extension carrying the
	// remainder (spec §4.2.2); the short variant has no such extension, so
	// its offsets never reach here above 0x1FFF (maxOffsetForVariant caps
	// the matcher's search accordingly).
	wireOffset := offset
	extendOffset := false
	if variant == variantLong && offset >= longOffsetExtendSentinel {
		wireOffset = longOffsetExtendSentinel
		extendOffset = true
	}
	low5 := (wireOffset >> 8) & 0x1F
	oLow := wireOffset & 0xFF

	out = append(out, opcodeByte(high3<<5|low5))

	if matchLenCode >= extendedMatchLenCode {
		extra := matchLenCode - extendedMatchLenCode
		if variant == variantShort {
			out = append(out, opcodeByte(extra))
		} else {
			for extra >= 0xFF {
				out = append(out, 0xFF)
				extra -= 0xFF
			}
			out = append(out, opcodeByte(extra))
		}
	}

	out = append(out, opcodeByte(oLow))

	if extendOffset {
		ext := offset - longOffsetExtendSentinel
		out = append(out, opcodeByte(ext>>8), opcodeByte(ext&0xFF))
	}

	return out
}
