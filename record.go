// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package tdc

import "encoding/binary"

// BlockRecord is one on-disk record: the stored CRC-32 of the decompressed
// payload (DecodeBlock verifies it against the body's decompression) and
// the compressed body bytes.
type BlockRecord struct {
	CRC32      uint32
	Compressed []byte
}

// readBlockRecords parses every block record from cur until input is
// exhausted, per §4.3.1: a partial record (fewer than 8 bytes of framing,
// or a short body) is ErrTruncatedRecord.
func readBlockRecords(cur *cursor, opts *ReadOptions) ([]BlockRecord, error) {
	var blocks []BlockRecord

	for cur.remaining() > 0 {
		startPos := cur.pos

		lenFieldBytes, err := cur.readN(4)
		if err != nil {
			return nil, parseErr(startPos, ErrTruncatedRecord)
		}
		lenField := binary.LittleEndian.Uint32(lenFieldBytes)
		compressedLen := int(lenField >> 8)
		lowByte := byte(lenField)
		if lowByte != 0 && opts.strictLengthLowByte() {
			return nil, parseErr(startPos, ErrShortLengthField)
		}
		if compressedLen > opts.maxRecordBodySize() {
			return nil, parseErr(startPos, ErrRecordTooLarge)
		}

		crc, err := cur.readU32()
		if err != nil {
			return nil, parseErr(cur.pos, ErrTruncatedRecord)
		}

		body, err := cur.readN(compressedLen)
		if err != nil {
			return nil, parseErr(cur.pos, ErrTruncatedRecord)
		}

		blocks = append(blocks, BlockRecord{
			CRC32:      crc,
			Compressed: append([]byte(nil), body...),
		})
	}

	return blocks, nil
}

func writeBlockRecord(buf []byte, crc uint32, compressed []byte) []byte {
	lenField := uint32(len(compressed)) << 8
	buf = appendU32(buf, lenField)
	buf = appendU32(buf, crc)
	buf = append(buf, compressed...)
	return buf
}
