// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

// cursor is a plain bounds-checked reader over the compressed input, per
// design note "Cursor/stream abstractions" (reimplement the source's
// stateful stream objects as a cursor struct with inline readers).
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.remaining() < 1 {
		return 0, ErrInputUnderflow
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// readBE16 reads a big-endian uint16, used for the long variant's offset
// extension (spec §4.2.2: "read two more bytes big-endian").
func (c *cursor) readBE16() (int, error) {
	if c.remaining() < 2 {
		return 0, ErrInputUnderflow
	}
	v := int(c.data[c.pos])<<8 | int(c.data[c.pos+1])
	c.pos += 2
	return v, nil
}

func (c *cursor) readN(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, ErrInputUnderflow
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
