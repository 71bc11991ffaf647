// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package tdc

import "github.com/cyrozap/go-tdc/fastlz"

const defaultMaxRecordBodySize = 64 << 20

// ReadOptions configures ReadContainer and Container.DecodeBlock.
type ReadOptions struct {
	// MaxRecordBodySize caps a single block record's compressed body size
	// (0 = default 64 MiB). Guards against a corrupt or hostile length field.
	MaxRecordBodySize int
	// MaxDecompressedSize caps a single block's decompressed output size
	// (0 = fastlz's default, 64 MiB). Forwarded to fastlz.Decompress.
	MaxDecompressedSize int
	// StrictLengthLowByte rejects a block record whose length field's
	// reserved low byte is nonzero, instead of silently discarding it.
	StrictLengthLowByte bool
	// DumpDir, if non-empty, causes DecodeBlock to write a diagnostic dump
	// of the compressed body and any partial output when decompression or
	// CRC verification fails. The success path never writes to DumpDir.
	DumpDir string
}

// DefaultReadOptions returns options with the default size caps and no
// strict checks or debug dumping.
func DefaultReadOptions() *ReadOptions {
	return &ReadOptions{}
}

func (o *ReadOptions) maxRecordBodySize() int {
	if o == nil || o.MaxRecordBodySize <= 0 {
		return defaultMaxRecordBodySize
	}
	return o.MaxRecordBodySize
}

func (o *ReadOptions) strictLengthLowByte() bool {
	return o != nil && o.StrictLengthLowByte
}

func (o *ReadOptions) dumpDir() string {
	if o == nil {
		return ""
	}
	return o.DumpDir
}

func (o *ReadOptions) decompressOptions() *fastlz.DecompressOptions {
	opts := fastlz.DefaultDecompressOptions()
	if o != nil && o.MaxDecompressedSize > 0 {
		opts.MaxOutputSize = o.MaxDecompressedSize
	}
	return opts
}

// WriteOptions configures Container.WriteContainer.
type WriteOptions struct {
	// Compress configures the fastlz encoder used for each block.
	Compress *fastlz.CompressOptions
}

// DefaultWriteOptions returns options using fastlz's default compressor.
func DefaultWriteOptions() *WriteOptions {
	return &WriteOptions{Compress: fastlz.DefaultCompressOptions()}
}

func (o *WriteOptions) compressOptions() *fastlz.CompressOptions {
	if o == nil || o.Compress == nil {
		return fastlz.DefaultCompressOptions()
	}
	return o.Compress
}
