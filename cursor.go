// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package tdc

import "encoding/binary"

// cursor is a bounds-checked little-endian reader over a byte slice, used
// while the fixed header is still fully buffered in memory.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) readN(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, ErrTruncatedRecord
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) readU16() (uint16, error) {
	b, err := c.readN(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *cursor) readU32() (uint32, error) {
	b, err := c.readN(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// readUintWidth reads a little-endian unsigned integer of width 2, 4, or 8
// bytes, widened into a uint64. Used for the version-dependent unk1/unk5
// fields.
func (c *cursor) readUintWidth(width int) (uint64, error) {
	b, err := c.readN(width)
	if err != nil {
		return 0, err
	}
	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(b)), nil
	case 8:
		return binary.LittleEndian.Uint64(b), nil
	default:
		panic("tdc: unsupported integer width")
	}
}

func appendU16(buf []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(buf, v)
}

func appendU32(buf []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(buf, v)
}

// appendUintWidth appends v as a little-endian unsigned integer truncated
// to width bytes (2, 4, or 8).
func appendUintWidth(buf []byte, v uint64, width int) []byte {
	switch width {
	case 2:
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case 4:
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	case 8:
		return binary.LittleEndian.AppendUint64(buf, v)
	default:
		panic("tdc: unsupported integer width")
	}
}
