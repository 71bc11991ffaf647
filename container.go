// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package tdc

import (
	"bytes"
	"io"

	"github.com/cyrozap/go-tdc/crc32bzip2"
	"github.com/cyrozap/go-tdc/fastlz"
)

// Container is a fully-parsed TDC file: the header fields and the ordered
// list of block records. Blocks are kept in their on-disk compressed form;
// call DecodeBlock to decompress and CRC-verify one.
type Container struct {
	Version    uint16
	DataOffset uint32
	Header     Header
	Blocks     []BlockRecord
}

// ReadContainer reads and parses a full TDC file per §4.3.1. The whole
// stream is buffered in memory; the codec and framer only ever operate on
// byte slices.
func ReadContainer(r io.Reader, opts *ReadOptions) (*Container, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cur := &cursor{data: data}

	magicBytes, err := cur.readN(4)
	if err != nil {
		return nil, parseErr(0, ErrBadMagic)
	}
	if !bytes.Equal(magicBytes, magic[:]) {
		return nil, parseErr(0, ErrBadMagic)
	}

	versionPos := cur.pos
	version, err := cur.readU16()
	if err != nil {
		return nil, parseErr(versionPos, ErrTruncatedRecord)
	}
	if version != HeaderV1 && version != HeaderV2 && version != HeaderV3 {
		return nil, parseErr(versionPos, ErrUnsupportedVersion)
	}

	dataOffset, err := cur.readU32()
	if err != nil {
		return nil, parseErr(cur.pos, ErrTruncatedRecord)
	}

	header, err := readHeader(cur, version)
	if err != nil {
		return nil, parseErr(cur.pos, err)
	}

	if cur.pos > int(dataOffset) {
		return nil, parseErr(cur.pos, ErrHeaderOverrun)
	}
	cur.pos = int(dataOffset)

	blocks, err := readBlockRecords(cur, opts)
	if err != nil {
		return nil, err
	}

	return &Container{
		Version:    version,
		DataOffset: dataOffset,
		Header:     header,
		Blocks:     blocks,
	}, nil
}

// WriteContainer serializes the container's header followed by one
// compressed, CRC-checksummed record per entry in rawBlocks, per §4.3.2.
func (c *Container) WriteContainer(w io.Writer, rawBlocks [][]byte, opts *WriteOptions) error {
	buf := make([]byte, 0, int(c.DataOffset)+len(rawBlocks)*64)
	buf = append(buf, magic[:]...)
	buf = appendU16(buf, c.Version)
	buf = appendU32(buf, c.DataOffset)
	buf = writeHeader(buf, c.Version, c.Header)

	if len(buf) > int(c.DataOffset) {
		return parseErr(len(buf), ErrNegativePadding)
	}
	padding := int(c.DataOffset) - len(buf)
	buf = append(buf, make([]byte, padding)...)

	compressOpts := opts.compressOptions()
	for _, raw := range rawBlocks {
		crc := crc32bzip2.Checksum(raw)
		compressed := fastlz.Compress(raw, compressOpts)
		buf = writeBlockRecord(buf, crc, compressed)
	}

	_, err := w.Write(buf)
	return err
}

// RawBlocks returns the container's block records in their on-disk
// compressed form, without decompressing or verifying them.
func (c *Container) RawBlocks() []BlockRecord {
	return c.Blocks
}

// DecodeBlock decompresses block i and verifies its CRC-32 against the
// stored value, returning ErrCrcMismatch on a mismatch. If opts.DumpDir is
// set, a failed decompression or CRC check writes a diagnostic dump; the
// success path performs no such I/O.
func (c *Container) DecodeBlock(i int, opts *ReadOptions) ([]byte, error) {
	if i < 0 || i >= len(c.Blocks) {
		return nil, ErrInvalidBlockIndex
	}
	block := c.Blocks[i]

	out, err := fastlz.Decompress(block.Compressed, opts.decompressOptions())
	if err != nil {
		dumpOnFailure(opts, i, block, out, err)
		return nil, err
	}

	if crc := crc32bzip2.Checksum(out); crc != block.CRC32 {
		dumpOnFailure(opts, i, block, out, ErrCrcMismatch)
		return nil, ErrCrcMismatch
	}

	return out, nil
}
