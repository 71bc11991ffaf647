// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

// Decompress decompresses a single FastLZ-family block, per spec §4.2.
// opts may be nil (uses DefaultDecompressOptions). Returns
// *DecompressionError on any malformed input; never panics (decoder
// totality, spec §8). On error the returned byte slice is not nil: it's
// whatever output had already been produced before the fault, for callers
// that want to capture it (e.g. a diagnostic dump).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	maxOut := opts.maxOutputSize()

	cur := cursor{data: src}
	out := make([]byte, 0, len(src))

	// variant is selected by the first control byte's top three bits and
	// governs decoding of every control byte for the rest of the block
	// (spec §3: "the first byte consumed is a header byte that selects the
	// codec variant for the entire block").
	variant := -1

	for cur.remaining() > 0 {
		startPos := cur.pos
		b, err := cur.readByte()
		if err != nil {
			return out, decodeErr(startPos, err)
		}
		high3, low5 := splitControlByte(b)

		var matchLenCode int
		if variant < 0 {
			if high3 != variantShort && high3 != variantLong {
				return out, decodeErr(startPos, ErrUnsupportedHeader)
			}
			variant = high3
			matchLenCode = 0 // header is always a literal opcode
		} else {
			matchLenCode = high3
		}

		if matchLenCode == 0 {
			n := low5 + 1
			lit, err := cur.readN(n)
			if err != nil {
				return out, decodeErr(cur.pos, err)
			}
			out = append(out, lit...)
			if len(out) > maxOut {
				return out, decodeErr(cur.pos, ErrOutputTooLarge)
			}
			continue
		}

		if matchLenCode == extendedMatchLenCode {
			if err := extendMatchLen(&cur, variant, &matchLenCode); err != nil {
				return out, decodeErr(cur.pos, err)
			}
		}

		oLow, err := cur.readByte()
		if err != nil {
			return out, decodeErr(cur.pos, err)
		}
		offset := low5<<8 | int(oLow)

		if variant == variantLong && offset == longOffsetExtendSentinel {
			ext, err := cur.readBE16()
			if err != nil {
				return out, decodeErr(cur.pos, err)
			}
			offset += ext
		}

		length := 2 + matchLenCode
		distance := 1 + offset

		if distance > len(out) {
			return out, decodeErr(cur.pos, ErrInvalidBackreference)
		}
		if len(out)+length > maxOut {
			return out, decodeErr(cur.pos, ErrOutputTooLarge)
		}

		extended, err := appendBackref(out, distance, length)
		if err != nil {
			return out, decodeErr(cur.pos, err)
		}
		out = extended
	}

	return out, nil
}

// extendMatchLen consumes the match-length overflow bytes for a control
// byte whose high3 field was the sentinel 7 (spec §4.2.2). In the short
// variant this is exactly one extra byte; in the long variant it's a chain
// of bytes, each added in turn, terminated by (and including) the first
// byte that isn't 0xFF.
func extendMatchLen(cur *cursor, variant int, matchLenCode *int) error {
	if variant == variantShort {
		e, err := cur.readByte()
		if err != nil {
			return err
		}
		*matchLenCode += int(e)
		return nil
	}

	for {
		v, err := cur.readByte()
		if err != nil {
			return err
		}
		*matchLenCode += int(v)
		if v != 0xFF {
			return nil
		}
	}
}
