// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

/*
Package crc32bzip2 computes the BZIP2-parameterized CRC-32 used to checksum
each TDC block's decompressed payload: polynomial 0x04C11DB7, initial
register 0xFFFFFFFF, MSB-first (no input reflection), no output reflection,
final XOR 0xFFFFFFFF.

The stdlib hash/crc32 package only implements reflected CRC-32 variants
(IEEE, Castagnoli, Koopman); this non-reflected parameterization has no
stdlib equivalent, so it's computed directly here with a table built at
init time.

	sum := crc32bzip2.Checksum(data)
*/
package crc32bzip2
