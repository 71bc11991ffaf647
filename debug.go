// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package tdc

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
)

// dumpOnFailure writes the compressed body and whatever partial output was
// produced to opts.DumpDir when decoding block i fails, and logs a summary.
// A no-op when DumpDir is unset, so the success path never touches disk.
func dumpOnFailure(opts *ReadOptions, index int, block BlockRecord, partial []byte, cause error) {
	dir := opts.dumpDir()
	if dir == "" {
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	logger.Error("block decode failed",
		"index", index,
		"compressed_len", len(block.Compressed),
		"partial_len", len(partial),
		"err", cause,
	)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("failed to create dump dir", "dir", dir, "err", err)
		return
	}

	compressedPath := filepath.Join(dir, dumpName(index, "compressed"))
	if err := os.WriteFile(compressedPath, block.Compressed, 0o644); err != nil {
		logger.Error("failed to write compressed dump", "path", compressedPath, "err", err)
	}

	if len(partial) > 0 {
		partialPath := filepath.Join(dir, dumpName(index, "partial"))
		if err := os.WriteFile(partialPath, partial, 0o644); err != nil {
			logger.Error("failed to write partial-output dump", "path", partialPath, "err", err)
		}
	}
}

func dumpName(index int, kind string) string {
	return "block-" + strconv.Itoa(index) + "." + kind + ".bin"
}
