// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

/*
Package tdc reads and writes the TDC container format produced by a
protocol-analyzer capture tool: a versioned fixed header followed by a
sequence of compressed block records. Each block's body is encoded with
the FastLZ-family codec in the fastlz subpackage and checksummed with the
BZIP2-variant CRC-32 in the crc32bzip2 subpackage.

# Reading

	f, err := os.Open("capture.tdc")
	c, err := tdc.ReadContainer(f, nil)
	raw, err := c.DecodeBlock(0, nil) // decompress + CRC-verify block 0

# Writing

	c := &tdc.Container{
		Version:    tdc.HeaderV2,
		DataOffset: 0x80,
		Header:     tdc.Header{},
	}
	err := c.WriteContainer(w, [][]byte{block0, block1}, nil)

tdc never interprets the decompressed payload; parsing the record streams
inside a block is left to external collaborators.
*/
package tdc
