// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

// defaultMaxOutputSize is the decompression output cap (spec §4.2.4: "a
// decoder SHOULD cap output at an implementation-chosen limit (e.g. 64 MiB)
// to refuse pathological inputs").
const defaultMaxOutputSize = 64 << 20

// DecompressOptions configures decompression. A nil *DecompressOptions is
// equivalent to DefaultDecompressOptions().
type DecompressOptions struct {
	// MaxOutputSize caps the decompressed output length; exceeding it
	// returns ErrOutputTooLarge. Zero means use the package default (64 MiB).
	MaxOutputSize int
}

// DefaultDecompressOptions returns options with the package's default
// output cap.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{MaxOutputSize: defaultMaxOutputSize}
}

func (o *DecompressOptions) maxOutputSize() int {
	if o == nil || o.MaxOutputSize <= 0 {
		return defaultMaxOutputSize
	}
	return o.MaxOutputSize
}

// CompressOptions configures compression.
//
// Level 0 selects the reference literal-only encoder from spec §4.2.3,
// which is trivially round-trip-correct but performs no matching. Level 1
// (the default) and above select a greedy hash-matching encoder that
// searches for backreferences; higher levels search harder (a longer
// "good enough" match length, more hash-chain candidates probed) at the
// cost of speed. The format itself
// places no requirement on the encoder beyond decodability, so this knob is
// purely a compression-ratio/speed tradeoff.
type CompressOptions struct {
	// Level: 0 = literal-only reference encoder; 1-9 = greedy matcher,
	// higher searches harder.
	Level int
	// LongVariant selects the long-variant header (offset/length overflow
	// via extension and 0xFF-chains) instead of the short variant. The long
	// variant supports longer matches and larger offsets without changing
	// decodability; the default (false) matches the short variant the
	// reference encoder in spec §4.2.3 describes.
	LongVariant bool
}

// DefaultCompressOptions returns options for the greedy level-1 encoder
// using the short header variant.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 1}
}
