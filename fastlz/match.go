// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

// Hash-chain match finder for the greedy encoder. Adapted from the
// teacher's sliding-window dictionary (sliding_window.go, match.go), but
// keyed on 3-byte sequences and bounded by this format's own offset/length
// classes instead of LZO1X's M1-M4.
const (
	hashBits    = 15
	hashSize    = 1 << hashBits
	minMatchLen = 3

	// maxShortExtLen is the longest match the short variant can encode: a
	// control byte (match-length-code 7) plus one extension byte (0-255).
	maxShortExtLen = 2 + extendedMatchLenCode + 255

	// maxLongSearchLen caps how far the greedy matcher extends a match in
	// the long variant; the format itself has no such limit (the 0xFF-chain
	// is unbounded), this just keeps encode time bounded.
	maxLongSearchLen = 2048
)

// maxOffsetForVariant returns the largest lookback offset this encoder will
// consider for the given variant. The short variant's 13-bit offset field
// tops out at the sentinel value itself (0x1FFF); the long variant can
// additionally use the two-byte extension.
func maxOffsetForVariant(longVariant bool) int {
	if longVariant {
		return longOffsetExtendSentinel + 0xFFFF
	}
	return longOffsetExtendSentinel
}

type matcher struct {
	data        []byte
	head        [hashSize]int32 // head[h] = pos+1 of most recent insertion, 0 = empty
	chain       []int32         // chain[pos] = previous position+1 with the same hash, 0 = none
	params      levelParams
	longVariant bool
}

func hash3(b []byte) uint32 {
	h := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	h *= 2654435761
	return h >> (32 - hashBits)
}

// insert records pos in the hash chain for the 3 bytes starting there.
func (m *matcher) insert(pos int) {
	if pos+3 > len(m.data) {
		return
	}
	h := hash3(m.data[pos:])
	m.chain[pos] = m.head[h]
	m.head[h] = int32(pos + 1)
}

// findMatch searches for the best backreference starting at pos. Returns
// (0, 0) if nothing at least minMatchLen long was found within the
// variant's offset window.
func (m *matcher) findMatch(pos int) (distance, length int) {
	if pos+minMatchLen > len(m.data) {
		return 0, 0
	}

	maxOffset := maxOffsetForVariant(m.longVariant)
	maxLen := maxLongSearchLen
	if !m.longVariant {
		maxLen = maxShortExtLen
	}
	if rem := len(m.data) - pos; rem < maxLen {
		maxLen = rem
	}

	h := hash3(m.data[pos:])
	cand := m.head[h]

	bestLen, bestDist := 0, 0
	for chainLeft := m.params.maxChain; cand != 0 && chainLeft > 0; chainLeft-- {
		cpos := int(cand) - 1
		dist := pos - cpos
		if dist > maxOffset {
			break // chain walks strictly increasing distance
		}

		l := 0
		for l < maxLen && m.data[cpos+l] == m.data[pos+l] {
			l++
		}

		if l > bestLen {
			bestLen, bestDist = l, dist
		}
		if bestLen >= m.params.niceLen {
			break
		}

		cand = m.chain[cpos]
	}

	if bestLen < minMatchLen {
		return 0, 0
	}
	return bestDist, bestLen
}
