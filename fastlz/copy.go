// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

// appendBackref appends length bytes to dst, copied from dst[len(dst)-distance:].
// If distance < length the source window repeats (the copy reads bytes it
// just wrote), which is standard LZ77 run-length behavior: this is the
// "self-referential match copy" spec §3 and §9 call out as needing a
// byte-at-a-time read/write rather than a single bulk copy. We still avoid
// an actual byte-at-a-time Go loop by seeding one distance-sized chunk and
// then doubling from the newly written region, which is equivalent to (and
// much faster than) copying one byte at a time.
func appendBackref(dst []byte, distance, length int) ([]byte, error) {
	outputPos := len(dst)
	srcPos := outputPos - distance
	if srcPos < 0 {
		return nil, ErrInvalidBackreference
	}

	dst = append(dst, make([]byte, length)...)

	if distance >= length {
		copy(dst[outputPos:outputPos+length], dst[srcPos:srcPos+length])
		return dst, nil
	}

	// Overlapping case: seed with one full distance-sized chunk, then grow
	// the copied region exponentially using the bytes we just wrote.
	copy(dst[outputPos:outputPos+distance], dst[srcPos:outputPos])
	copied := distance
	for copied < length {
		n := copy(dst[outputPos+copied:outputPos+length], dst[outputPos:outputPos+copied])
		copied += n
	}

	return dst, nil
}
